package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14")) // cyan
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // green
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")) // yellow
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))  // red
)

func render(style lipgloss.Style, msg string) string {
	if globalNoColor {
		return msg
	}
	return style.Render(msg)
}

func printInfo(msg string) {
	if globalQuiet {
		return
	}
	fmt.Fprintln(os.Stdout, render(infoStyle, msg))
}

func printSuccess(msg string) {
	if globalQuiet {
		return
	}
	fmt.Fprintln(os.Stdout, render(successStyle, "✓ "+msg))
}

func printWarning(msg string) {
	if globalQuiet {
		return
	}
	fmt.Fprintln(os.Stdout, render(warningStyle, "⚠ "+msg))
}

func printErrorMsg(msg string) {
	fmt.Fprintln(os.Stderr, render(errorStyle, "✗ "+msg))
}

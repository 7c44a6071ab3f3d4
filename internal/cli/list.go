package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sprout-cli/sprout/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered templates",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := registry.Load()
		if err != nil {
			return err
		}
		if reg.Len() == 0 {
			printWarning("no templates registered")
			return nil
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		for _, name := range reg.Names() {
			entry, _ := reg.Lookup(name)
			desc := entry.Description
			if desc == "" {
				desc = entry.Source
			}
			fmt.Fprintf(w, "%s\t%s\n", name, desc)
		}
		return w.Flush()
	},
}

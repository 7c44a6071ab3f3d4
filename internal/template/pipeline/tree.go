package pipeline

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/sprout-cli/sprout/internal/debug"
	"github.com/sprout-cli/sprout/internal/template/model"
)

// binaryExtensions lists file extensions copied verbatim without rendering.
var binaryExtensions = []string{
	// Images
	".png", ".jpg", ".jpeg", ".gif", ".bmp", ".ico",
	// Archives
	".zip", ".tar", ".gz", ".bz2", ".xz", ".7z",
	// Executables
	".exe", ".dll", ".so", ".dylib", ".bin",
	// Media
	".mp3", ".mp4", ".avi", ".mov", ".wav",
	// Fonts
	".ttf", ".otf", ".woff", ".woff2",
}

// CollectTree enumerates the files of a staging directory into a FileTree.
// Directories, non-regular files, the .git directory, and the template's
// own configuration artifacts are excluded.
func CollectTree(stagingDir string) (model.FileTree, error) {
	var tree model.FileTree
	var totalBytes int64

	err := filepath.WalkDir(stagingDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				debug.Debug("[pipeline] Skipping unreadable entry: %s", path)
				return nil
			}
			return err
		}

		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return fmt.Errorf("failed to stat %s: %w", path, err)
		}
		if !info.Mode().IsRegular() {
			debug.Debug("[pipeline] Skipping non-regular file: %s", path)
			return nil
		}

		relPath, err := filepath.Rel(stagingDir, path)
		if err != nil {
			return fmt.Errorf("failed to get relative path: %w", err)
		}

		// Template config artifacts are not part of the template output.
		if isConfigArtifact(relPath) {
			debug.Debug("[pipeline] Skipping config artifact: %s", relPath)
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", relPath, err)
		}

		tree = append(tree, model.TemplateFile{
			Path:     relPath,
			Content:  content,
			Mode:     info.Mode(),
			IsBinary: isBinaryFile(relPath, content),
		})
		totalBytes += int64(len(content))

		return nil
	})

	if err != nil {
		return nil, err
	}

	debug.Debug("[pipeline] Collected %d files, total size: %d bytes", len(tree), totalBytes)
	return tree, nil
}

// isConfigArtifact reports whether relPath is a recognized configuration
// filename at the template root.
func isConfigArtifact(relPath string) bool {
	if filepath.Dir(relPath) != "." {
		return false
	}
	for _, name := range model.ConfigFilenames {
		if relPath == name {
			return true
		}
	}
	return false
}

// isBinaryFile reports whether a file must bypass rendering, by extension
// or by a null byte in the first 512 bytes of content.
func isBinaryFile(path string, content []byte) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, binaryExt := range binaryExtensions {
		if ext == binaryExt {
			return true
		}
	}

	size := len(content)
	if size > 512 {
		size = 512
	}
	for i := 0; i < size; i++ {
		if content[i] == 0 {
			return true
		}
	}

	return false
}

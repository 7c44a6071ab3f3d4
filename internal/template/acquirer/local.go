package acquirer

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sprout-cli/sprout/internal/debug"
)

// copyTree recursively copies the contents of srcDir into destDir.
// Existing files in destDir are left in place; only colliding names are
// overwritten. Non-regular files are skipped.
func copyTree(srcDir, destDir string) error {
	return filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Broken symlinks surface here from WalkDir's Lstat; skip them.
			if os.IsNotExist(err) {
				debug.Debug("[acquirer] Skipping unreadable entry: %s", path)
				return nil
			}
			return err
		}

		relPath, err := filepath.Rel(srcDir, path)
		if err != nil {
			return fmt.Errorf("failed to get relative path for %s: %w", path, err)
		}
		if relPath == "." {
			return nil
		}

		targetPath := filepath.Join(destDir, relPath)

		if d.IsDir() {
			if err := os.MkdirAll(targetPath, 0755); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", targetPath, err)
			}
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return fmt.Errorf("failed to stat %s: %w", path, err)
		}
		if !info.Mode().IsRegular() {
			debug.Debug("[acquirer] Skipping non-regular file: %s", relPath)
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", relPath, err)
		}
		if err := os.WriteFile(targetPath, content, info.Mode().Perm()); err != nil {
			return fmt.Errorf("failed to write %s: %w", targetPath, err)
		}

		debug.Debug("[acquirer] Copied %s (%d bytes)", relPath, len(content))
		return nil
	})
}

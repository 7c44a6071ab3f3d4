package pipeline

import (
	"os"
	"path/filepath"

	"github.com/sprout-cli/sprout/internal/debug"
	"github.com/sprout-cli/sprout/internal/template/model"
)

// Writer flushes a rendered file tree to a destination directory.
type Writer interface {
	// WriteTree writes every file in the tree under destDir, creating
	// directories as needed. Pre-existing files not present in the tree are
	// left untouched; colliding names are overwritten. Returns the number
	// of files written.
	WriteTree(tree model.FileTree, destDir string) (int, error)
}

// FileWriter implements Writer for filesystem output.
type FileWriter struct{}

// NewFileWriter creates a new FileWriter.
func NewFileWriter() Writer {
	return &FileWriter{}
}

// WriteTree implements Writer.
func (w *FileWriter) WriteTree(tree model.FileTree, destDir string) (int, error) {
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return 0, NewWriteError(destDir, err)
	}

	written := 0
	for _, file := range tree {
		outputPath := filepath.Join(destDir, file.Path)
		if err := w.writeFile(outputPath, file.Content, file.Mode); err != nil {
			return written, err
		}
		written++
	}
	return written, nil
}

// writeFile writes a single file atomically via a temporary file and
// rename, preserving the template file's permission bits.
func (w *FileWriter) writeFile(path string, content []byte, mode os.FileMode) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return NewWriteError(path, err)
		}
	}

	fileMode := mode.Perm()
	if fileMode&0600 == 0 {
		fileMode |= 0600
	}

	tempFile := path + ".tmp"
	f, err := os.OpenFile(tempFile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fileMode)
	if err != nil {
		return NewWriteError(path, err)
	}

	_, writeErr := f.Write(content)
	closeErr := f.Close()
	if writeErr != nil {
		_ = os.Remove(tempFile)
		return NewWriteError(path, writeErr)
	}
	if closeErr != nil {
		_ = os.Remove(tempFile)
		return NewWriteError(path, closeErr)
	}

	if err := os.Rename(tempFile, path); err != nil {
		_ = os.Remove(tempFile)
		return NewWriteError(path, err)
	}

	debug.Debug("[pipeline] Wrote %s (%d bytes, mode %o)", path, len(content), fileMode)
	return nil
}

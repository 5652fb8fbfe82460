// Package report persists the analysis artifacts: CSV tables, chart
// images, the summary record, and the leaderboard reports. Rendering
// goes through the Renderer interface so the chart backend stays
// swappable; the ranking and labeling decisions live here.
package report

import (
	"fmt"
	"os"
	"path/filepath"
)

// Writer writes every analysis artifact into one output directory.
type Writer struct {
	Dir      string
	Renderer Renderer
}

func NewWriter(dir string, renderer Renderer) *Writer {
	return &Writer{Dir: dir, Renderer: renderer}
}

// EnsureDir creates the output directory if needed. Safe to call on an
// existing directory.
func (w *Writer) EnsureDir() error {
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	return nil
}

// writeAtomic writes data to name inside the output directory through a
// temp file and rename, so a partial write never leaves a truncated
// artifact behind.
func (w *Writer) writeAtomic(name string, data []byte) (string, error) {
	path := filepath.Join(w.Dir, name)

	tmp, err := os.CreateTemp(w.Dir, "."+name+".tmp-*")
	if err != nil {
		return "", fmt.Errorf("creating temp file for %s: %w", name, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()        //nolint:errcheck
		os.Remove(tmpName) //nolint:errcheck
		return "", fmt.Errorf("writing %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName) //nolint:errcheck
		return "", fmt.Errorf("writing %s: %w", name, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName) //nolint:errcheck
		return "", fmt.Errorf("writing %s: %w", name, err)
	}
	return path, nil
}

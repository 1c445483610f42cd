package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ncruces/zenity"
)

// DemoDataset is replayed when no dataset is named.
const DemoDataset = "demo_file.yaml"

var (
	// ErrTooManyArgs is returned when more than one dataset is named.
	ErrTooManyArgs = errors.New("too many arguments")

	// ErrDatasetNotFound is returned when the named file is not in the
	// directory.
	ErrDatasetNotFound = errors.New("dataset not in directory")

	// ErrPickCanceled is returned when the file dialog is dismissed.
	ErrPickCanceled = errors.New("dataset selection canceled")
)

// ResolveDataset maps the positional arguments to a dataset file in dir.
// The name is matched case-insensitively and the path returned uses the
// name as it is on disk.
func ResolveDataset(args []string, dir string) (string, error) {
	var name string
	switch len(args) {
	case 0:
		name = DemoDataset
	case 1:
		name = args[0]
	default:
		return "", fmt.Errorf("%w: got %d, want at most 1", ErrTooManyArgs, len(args))
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", dir, err)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(e.Name(), name) {
			return filepath.Join(dir, e.Name()), nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrDatasetNotFound, name)
}

// PickDataset asks for a dataset with the native file dialog.
func PickDataset() (string, error) {
	path, err := zenity.SelectFile(
		zenity.Title("Open Simulation Dataset"),
		zenity.FileFilters{{
			Name:     "Datasets",
			Patterns: []string{"*.yaml", "*.yml"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", ErrPickCanceled
		}
		return "", fmt.Errorf("file dialog: %w", err)
	}
	return path, nil
}

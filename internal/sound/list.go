package sound

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/maruel/natural"
)

// Asset describes an audio file found in the sound directory.
type Asset struct {
	Name   string
	Path   string
	Choice Choice
	Known  bool
}

// List returns the supported audio files in dir in natural order. Files
// named after a known choice are flagged as such. A missing directory yields
// no assets.
func List(dir string) ([]Asset, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}

		return nil, err
	}

	var assets []Asset

	for _, e := range entries {
		if e.IsDir() {
			continue
		}

		ext := strings.ToLower(filepath.Ext(e.Name()))
		if !slices.Contains(Extensions, ext) {
			continue
		}

		stem := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		c, known := ParseChoice(stem)

		assets = append(assets, Asset{
			Name:   stem,
			Path:   filepath.Join(dir, e.Name()),
			Choice: c,
			Known:  known,
		})
	}

	slices.SortFunc(assets, func(a, b Asset) int {
		switch {
		case natural.Less(a.Name, b.Name):
			return -1
		case natural.Less(b.Name, a.Name):
			return 1
		}

		return 0
	})

	return assets, nil
}

package components

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/MKhiriev/shadbase/models"
)

const componentExt = ".vue"

// Scan walks dir (relative to root unless absolute) and returns the
// discovered components sorted by name. A missing directory yields no
// components and no error. Hidden entries and files whose name has no word
// characters are skipped.
func Scan(root, dir, prefix string) ([]models.Component, error) {
	absDir := resolveDir(root, dir)

	info, err := os.Stat(absDir)
	if errors.Is(err, fs.ErrNotExist) {
		return []models.Component{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("stat component dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotADirectory, absDir)
	}

	found := make([]models.Component, 0)
	seen := make(map[string]string)

	err = filepath.WalkDir(absDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path != absDir && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || filepath.Ext(d.Name()) != componentExt {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			rel = path
		}
		rel = filepath.ToSlash(rel)

		name := ComponentName(prefix, d.Name())
		if name == "" {
			return nil
		}
		if other, ok := seen[name]; ok {
			return fmt.Errorf("%w: %s (%s, %s)", ErrDuplicateComponent, name, other, rel)
		}
		seen[name] = rel

		found = append(found, models.Component{Name: name, Path: rel})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan component dir: %w", err)
	}

	slices.SortFunc(found, func(a, b models.Component) int {
		return strings.Compare(a.Name, b.Name)
	})

	return found, nil
}

func resolveDir(root, dir string) string {
	if filepath.IsAbs(dir) {
		return filepath.Clean(dir)
	}

	return filepath.Join(root, dir)
}

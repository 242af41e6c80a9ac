package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
)

// readDotenv reads a single dotenv file into a map without touching the
// process environment. A missing file yields an empty map and no error.
func readDotenv(path string) (map[string]string, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("error reading dotenv file %q: %w", path, err)
	}

	return values, nil
}

// layerUnder copies every key of lower into upper that upper does not
// already define, so earlier sources keep precedence.
func layerUnder(upper, lower map[string]string) {
	for key, value := range lower {
		if _, ok := upper[key]; !ok {
			upper[key] = value
		}
	}
}

package nuxt

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// assetsPrefix is the URL prefix processed stylesheets are served under.
const assetsPrefix = "/_nuxt/"

// sourceAliases map to the project root.
var sourceAliases = []string{"~~/", "@@/", "~/", "@/"}

// Stylesheet is a global stylesheet after plugin processing.
type Stylesheet struct {
	// Source is the path as configured (e.g. "~/assets/css/tailwind.css").
	Source string `json:"source"`
	// URL is where the processed stylesheet is served.
	URL string `json:"url"`
	// Content is the processed stylesheet.
	Content []byte `json:"-"`
}

// resolveSourcePath resolves aliases and relative paths against root and
// returns the absolute file path and its slash-separated root-relative form.
func resolveSourcePath(root, source string) (string, string, error) {
	p := source
	for _, alias := range sourceAliases {
		if strings.HasPrefix(p, alias) {
			p = strings.TrimPrefix(p, alias)
			break
		}
	}

	abs := filepath.FromSlash(p)
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(root, abs)
	}

	rel, err := filepath.Rel(root, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", "", fmt.Errorf("%w: %s", ErrStylesheetOutsideRoot, source)
	}

	return abs, filepath.ToSlash(rel), nil
}

// loadStylesheets reads every configured stylesheet and runs the plugins over
// it in order.
func loadStylesheets(root string, sources []string, plugins []Plugin) ([]Stylesheet, error) {
	sheets := make([]Stylesheet, 0, len(sources))
	for _, source := range sources {
		abs, rel, err := resolveSourcePath(root, source)
		if err != nil {
			return nil, err
		}

		content, err := os.ReadFile(abs)
		if err != nil {
			return nil, fmt.Errorf("read stylesheet %s: %w", source, err)
		}

		for _, plugin := range plugins {
			content, err = plugin.TransformCSS(abs, content)
			if err != nil {
				return nil, fmt.Errorf("plugin %s on %s: %w", plugin.Name(), source, err)
			}
		}

		sheets = append(sheets, Stylesheet{
			Source:  source,
			URL:     path.Join(assetsPrefix, rel),
			Content: content,
		})
	}

	return sheets, nil
}

package nuxt

import (
	"regexp"

	"github.com/MKhiriev/shadbase/internal/config"
)

// tailwindImport matches the single-line `@import "tailwindcss";` entry point.
var tailwindImport = regexp.MustCompile(`(?m)^[ \t]*@import[ \t]+["']tailwindcss["'][ \t]*;[ \t]*$`)

// tailwindLayers is what the tailwindcss entry point expands to: the cascade
// layer order followed by the layered theme, preflight and utility sheets.
const tailwindLayers = `@layer theme, base, components, utilities;
@import "tailwindcss/theme.css" layer(theme);
@import "tailwindcss/preflight.css" layer(base);
@import "tailwindcss/utilities.css" layer(utilities);`

// tailwindPlugin expands the tailwindcss entry import. Other content passes
// through unchanged.
type tailwindPlugin struct{}

func (tailwindPlugin) Name() string {
	return config.PluginTailwindCSS
}

func (tailwindPlugin) TransformCSS(_ string, src []byte) ([]byte, error) {
	return tailwindImport.ReplaceAllLiteral(src, []byte(tailwindLayers)), nil
}

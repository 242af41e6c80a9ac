package models

// Component describes a UI component discovered in the component directory.
type Component struct {
	// Name is the registered component name, prefix included
	// (e.g. "UiButton" for prefix "Ui" and button/Button.vue).
	Name string `json:"name"`

	// Path is the source file path relative to the project root, using
	// forward slashes.
	Path string `json:"path"`
}

// ComponentManifest is written to .nuxt/components.json after each scan.
type ComponentManifest struct {
	Prefix     string      `json:"prefix"`
	Dir        string      `json:"dir"`
	Components []Component `json:"components"`
}

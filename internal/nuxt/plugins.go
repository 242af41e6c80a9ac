package nuxt

import (
	"fmt"

	"github.com/MKhiriev/shadbase/internal/config"
)

// Plugin transforms stylesheet sources before they are served.
type Plugin interface {
	// Name returns the name the plugin is referenced by in the configuration.
	Name() string

	// TransformCSS returns the processed content of the stylesheet at path.
	TransformCSS(path string, src []byte) ([]byte, error)
}

func builtinPlugins() map[string]Plugin {
	return map[string]Plugin{
		config.PluginTailwindCSS: tailwindPlugin{},
	}
}

// resolvePlugins maps configured names to implementations, keeping order.
func resolvePlugins(names []string, registry map[string]Plugin) ([]Plugin, error) {
	plugins := make([]Plugin, 0, len(names))
	for _, name := range names {
		plugin, ok := registry[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownPlugin, name)
		}
		plugins = append(plugins, plugin)
	}

	return plugins, nil
}

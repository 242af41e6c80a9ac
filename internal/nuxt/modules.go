package nuxt

import (
	"context"

	"github.com/MKhiriev/shadbase/internal/config"
)

// Module is a framework extension installed during [Bootstrap].
type Module interface {
	// Name returns the name the module is referenced by in the configuration.
	Name() string

	// Setup installs the module into app. An error aborts the bootstrap.
	Setup(ctx context.Context, app *App) error
}

func builtinModules() map[string]Module {
	return map[string]Module{
		config.ModuleShadcn:   shadcnModule{},
		config.ModuleSupabase: supabaseModule{},
	}
}

package nuxt

import (
	"context"
	"fmt"

	"github.com/MKhiriev/shadbase/internal/components"
	"github.com/MKhiriev/shadbase/internal/config"
)

// shadcnModule registers UI components from the configured directory under
// the configured prefix.
type shadcnModule struct{}

func (shadcnModule) Name() string {
	return config.ModuleShadcn
}

func (shadcnModule) Setup(_ context.Context, app *App) error {
	registry := components.NewRegistry(app.root, app.cfg.Shadcn, app.logger.WithComponent("components"))
	if err := registry.Refresh(); err != nil {
		return fmt.Errorf("register components: %w", err)
	}

	app.components = registry
	app.logger.Info().
		Str("prefix", app.cfg.Shadcn.Prefix).
		Str("dir", app.cfg.Shadcn.ComponentDir).
		Int("components", len(registry.Components())).
		Msg("shadcn components registered")

	return nil
}

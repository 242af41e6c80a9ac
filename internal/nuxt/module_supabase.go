package nuxt

import (
	"context"
	"fmt"

	"github.com/MKhiriev/shadbase/internal/config"
)

// supabaseModule creates the backend-service client through the configured
// factory. This is where empty or malformed credentials are reported.
type supabaseModule struct{}

func (supabaseModule) Name() string {
	return config.ModuleSupabase
}

func (supabaseModule) Setup(ctx context.Context, app *App) error {
	client, err := app.supabaseFactory(app.cfg.Supabase, app.logger.WithComponent("supabase"))
	if err != nil {
		return fmt.Errorf("create supabase client: %w", err)
	}

	keyInfo := client.KeyInfo()
	app.logger.Info().
		Str("url", client.URL()).
		Str("key_kind", string(keyInfo.Kind)).
		Str("key_role", keyInfo.Role).
		Bool("redirect", app.cfg.Supabase.Redirect).
		Int("cookie_max_age", app.cfg.Supabase.CookieOptions.MaxAge).
		Msg("supabase client created")

	if app.checkHealth {
		if err := client.Health(ctx); err != nil {
			app.logger.Warn().Err(err).Msg("supabase health check failed")
		}
	}

	app.supabase = client
	return nil
}

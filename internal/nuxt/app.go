// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package nuxt

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"time"

	"github.com/MKhiriev/shadbase/internal/adapter"
	"github.com/MKhiriev/shadbase/internal/components"
	"github.com/MKhiriev/shadbase/internal/config"
	"github.com/MKhiriev/shadbase/internal/logger"
	"github.com/MKhiriev/shadbase/internal/metrics"
	"github.com/MKhiriev/shadbase/models"
)

const compatibilityDateLayout = "2006-01-02"

// SupabaseFactory constructs the backend-service client from the resolved
// connection record.
type SupabaseFactory func(cfg config.Supabase, log *logger.Logger) (adapter.SupabaseClient, error)

// Options tune [Bootstrap]. The zero value uses the working directory as the
// project root and the built-in plugins, modules and client factory.
type Options struct {
	// RootDir is the project root that stylesheet and component paths are
	// resolved against.
	RootDir string

	// Plugins and Modules replace the built-in implementations by name.
	Plugins map[string]Plugin
	Modules map[string]Module

	// SupabaseFactory replaces [adapter.NewSupabaseClient].
	SupabaseFactory SupabaseFactory

	// CheckSupabaseHealth calls the service health endpoint after the client
	// is created. A failed check is logged, not returned.
	CheckSupabaseHealth bool
}

// App is a bootstrapped application. It holds a private copy of the
// configuration it was started with.
type App struct {
	cfg               config.AppConfig
	root              string
	compatibilityDate time.Time

	plugins     []Plugin
	stylesheets []Stylesheet
	modules     []string

	supabaseFactory SupabaseFactory
	checkHealth     bool

	components *components.Registry
	supabase   adapter.SupabaseClient

	logger *logger.Logger
}

// Bootstrap starts the framework from cfg: it validates the compatibility
// date, resolves the style plugins, processes the global stylesheets and
// installs the configured modules in order.
func Bootstrap(ctx context.Context, cfg config.AppConfig, opts Options, log *logger.Logger) (*App, error) {
	if log == nil {
		log = logger.Nop()
	}

	date, err := time.Parse(compatibilityDateLayout, cfg.CompatibilityDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCompatibilityDate, cfg.CompatibilityDate)
	}

	root := opts.RootDir
	if root == "" {
		root = "."
	}
	if root, err = filepath.Abs(root); err != nil {
		return nil, fmt.Errorf("resolve project root: %w", err)
	}

	pluginRegistry := builtinPlugins()
	for name, plugin := range opts.Plugins {
		pluginRegistry[name] = plugin
	}
	moduleRegistry := builtinModules()
	for name, module := range opts.Modules {
		moduleRegistry[name] = module
	}

	factory := opts.SupabaseFactory
	if factory == nil {
		factory = adapter.NewSupabaseClient
	}

	app := &App{
		cfg:               cfg.Clone(),
		root:              root,
		compatibilityDate: date,
		supabaseFactory:   factory,
		checkHealth:       opts.CheckSupabaseHealth,
		logger:            log,
	}

	if app.plugins, err = resolvePlugins(app.cfg.Vite.Plugins, pluginRegistry); err != nil {
		return nil, err
	}

	if app.stylesheets, err = loadStylesheets(root, app.cfg.CSS, app.plugins); err != nil {
		return nil, err
	}

	for _, name := range app.cfg.Modules {
		if slices.Contains(app.modules, name) {
			log.Debug().Str("module", name).Msg("module already installed")
			continue
		}

		module, ok := moduleRegistry[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownModule, name)
		}

		if err = module.Setup(ctx, app); err != nil {
			metrics.ModulesInstalledTotal.WithLabelValues(name, metrics.ResultError).Inc()
			return nil, fmt.Errorf("install module %s: %w", name, err)
		}

		metrics.ModulesInstalledTotal.WithLabelValues(name, metrics.ResultOK).Inc()
		app.modules = append(app.modules, name)
	}

	log.Info().
		Str("compatibility_date", cfg.CompatibilityDate).
		Strs("modules", app.modules).
		Int("stylesheets", len(app.stylesheets)).
		Bool("devtools", cfg.Devtools.Enabled).
		Msg("application bootstrapped")

	return app, nil
}

// Config returns a copy of the configuration the app was started with.
func (a *App) Config() config.AppConfig {
	return a.cfg.Clone()
}

// RootDir returns the absolute project root.
func (a *App) RootDir() string {
	return a.root
}

// CompatibilityDate returns the parsed compatibility date.
func (a *App) CompatibilityDate() time.Time {
	return a.compatibilityDate
}

// DevtoolsEnabled reports whether the development tooling is on.
func (a *App) DevtoolsEnabled() bool {
	return a.cfg.Devtools.Enabled
}

// Modules returns the installed module names in installation order.
func (a *App) Modules() []string {
	return slices.Clone(a.modules)
}

// Stylesheets returns the processed global stylesheets in configured order.
func (a *App) Stylesheets() []Stylesheet {
	return slices.Clone(a.stylesheets)
}

// Stylesheet returns the processed stylesheet served at url.
func (a *App) Stylesheet(url string) (Stylesheet, bool) {
	for _, s := range a.stylesheets {
		if s.URL == url {
			return s, true
		}
	}

	return Stylesheet{}, false
}

// Components returns the registered UI components, or nil when the shadcn
// module is not installed.
func (a *App) Components() []models.Component {
	if a.components == nil {
		return nil
	}

	return a.components.Components()
}

// Supabase returns the backend-service client, or nil when the supabase
// module is not installed.
func (a *App) Supabase() adapter.SupabaseClient {
	return a.supabase
}

// Watch re-registers components while the sources change. It returns nil
// immediately unless devtools are enabled and the shadcn module is installed;
// otherwise it blocks until ctx is cancelled.
func (a *App) Watch(ctx context.Context) error {
	if !a.cfg.Devtools.Enabled || a.components == nil {
		return nil
	}

	return a.components.Watch(ctx)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"slices"

	"github.com/MKhiriev/shadbase/models"
)

// AppConfig is the top-level configuration value handed to the framework
// bootstrap and the backend-service client factory.
//
// Struct tags:
//   - env  is the environment variable name for scalar fields (caarlos0/env).
//   - json is the key used when the configuration is printed or served.
//
// An AppConfig is never mutated after resolution. Use [AppConfig.Clone]
// before handing it to code that may modify slices.
type AppConfig struct {
	// CompatibilityDate pins framework behaviour to a release date
	// in "2006-01-02" format.
	CompatibilityDate string `json:"compatibilityDate" yaml:"compatibilityDate"`

	// Devtools toggles the development tooling routes.
	Devtools Devtools `json:"devtools" yaml:"devtools"`

	// CSS lists global stylesheets. Paths may start with the "~/" or "@/"
	// source-directory aliases.
	CSS []string `json:"css" yaml:"css"`

	// Vite holds the style-processing plugin list.
	Vite Vite `json:"vite" yaml:"vite"`

	// Modules lists framework modules installed in order.
	Modules []string `json:"modules" yaml:"modules"`

	// Supabase holds the backend-service connection record.
	Supabase Supabase `json:"supabase" yaml:"supabase"`

	// Shadcn holds the UI-component generation record.
	Shadcn Shadcn `json:"shadcn" yaml:"shadcn"`
}

// Devtools holds development tooling settings.
type Devtools struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
}

// Vite holds build pipeline settings.
type Vite struct {
	// Plugins lists style-processing plugin names resolved by the bootstrap.
	Plugins []string `json:"plugins" yaml:"plugins"`
}

// Supabase holds connection settings for the backend service.
type Supabase struct {
	// URL is the backend service endpoint.
	// Env: SUPABASE_URL
	URL string `env:"SUPABASE_URL" json:"url" yaml:"url"`

	// Key is the backend service access key.
	// Env: SUPABASE_KEY
	Key string `env:"SUPABASE_KEY" json:"key" yaml:"key"`

	// Redirect enables redirecting unauthenticated visitors to the login page.
	Redirect bool `json:"redirect" yaml:"redirect"`

	// CookieOptions controls the session cookies set by the auth relay.
	CookieOptions CookieOptions `json:"cookieOptions" yaml:"cookieOptions"`
}

// CookieOptions holds session cookie attributes.
type CookieOptions struct {
	// MaxAge is the cookie lifetime in seconds. Zero issues browser-session
	// cookies without a Max-Age attribute.
	MaxAge int `json:"maxAge" yaml:"maxAge"`
}

// Shadcn holds UI-component generation settings.
type Shadcn struct {
	// Prefix is prepended to every generated component name.
	Prefix string `json:"prefix" yaml:"prefix"`

	// ComponentDir is the directory, relative to the project root, that
	// holds the component sources.
	ComponentDir string `json:"componentDir" yaml:"componentDir"`
}

// Clone returns a deep copy of cfg that shares no slices with it.
func (cfg AppConfig) Clone() AppConfig {
	cfg.CSS = slices.Clone(cfg.CSS)
	cfg.Vite.Plugins = slices.Clone(cfg.Vite.Plugins)
	cfg.Modules = slices.Clone(cfg.Modules)
	return cfg
}

// PublicRuntimeConfig returns the browser-visible part of the configuration.
func (cfg AppConfig) PublicRuntimeConfig() models.PublicRuntimeConfig {
	return models.PublicRuntimeConfig{
		Supabase: models.PublicSupabaseConfig{
			URL:      cfg.Supabase.URL,
			Key:      cfg.Supabase.Key,
			Redirect: cfg.Supabase.Redirect,
			CookieOptions: models.CookieOptions{
				MaxAge: cfg.Supabase.CookieOptions.MaxAge,
			},
		},
	}
}

// ResolveAppConfig resolves the application configuration from static
// literals and the process environment. It never fails; see [Resolver].
func ResolveAppConfig() AppConfig {
	return NewResolver().Resolve()
}

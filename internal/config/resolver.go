package config

import (
	"maps"
	"os"
	"strings"

	"github.com/MKhiriev/shadbase/internal/logger"
	"github.com/MKhiriev/shadbase/internal/metrics"
)

// Resolver assembles [AppConfig] values from static literals and an
// environment source. A Resolver holds no mutable state after construction
// and may be shared.
type Resolver struct {
	environment map[string]string
	dotenvPaths []string
	logger      *logger.Logger
}

// Option configures a [Resolver].
type Option func(*Resolver)

// WithEnvironment makes the resolver read from environment instead of the
// process environment. The map is copied.
func WithEnvironment(environment map[string]string) Option {
	return func(r *Resolver) {
		r.environment = maps.Clone(environment)
		if r.environment == nil {
			r.environment = map[string]string{}
		}
	}
}

// WithDotenv layers the given dotenv files under the environment. The first
// file defining a key wins, and the environment always wins over files.
// Missing files are skipped.
func WithDotenv(paths ...string) Option {
	return func(r *Resolver) {
		r.dotenvPaths = append(r.dotenvPaths, paths...)
	}
}

// WithLogger sets the logger used to report skipped sources.
func WithLogger(log *logger.Logger) Option {
	return func(r *Resolver) {
		if log != nil {
			r.logger = log
		}
	}
}

// NewResolver constructs a [Resolver]. Without options it reads the process
// environment only.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{logger: logger.Nop()}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Resolve returns a freshly allocated [AppConfig].
//
// SUPABASE_URL and SUPABASE_KEY are copied verbatim; when absent the fields
// are empty. Credentials are not validated here: the backend-service client
// factory owns that failure. Resolve performs no writes and no network I/O.
func (r *Resolver) Resolve() AppConfig {
	cfg, err := newConfigBuilder().
		withStatic().
		withEnv(r.lookupEnvironment()).
		build()
	if err != nil {
		metrics.ConfigResolutionsTotal.WithLabelValues(metrics.ResultError).Inc()
		r.logger.Warn().Err(err).Msg("config resolved with skipped sources")
		return cfg
	}

	metrics.ConfigResolutionsTotal.WithLabelValues(metrics.ResultOK).Inc()
	return cfg
}

// lookupEnvironment returns a private snapshot of the environment source with
// dotenv values layered underneath.
func (r *Resolver) lookupEnvironment() map[string]string {
	var environment map[string]string
	if r.environment != nil {
		environment = maps.Clone(r.environment)
	} else {
		environment = environMap(os.Environ())
	}

	for _, path := range r.dotenvPaths {
		values, err := readDotenv(path)
		if err != nil {
			r.logger.Warn().Err(err).Str("path", path).Msg("dotenv file skipped")
			continue
		}
		layerUnder(environment, values)
	}

	return environment
}

func environMap(environ []string) map[string]string {
	environment := make(map[string]string, len(environ))
	for _, kv := range environ {
		key, value, _ := strings.Cut(kv, "=")
		environment[key] = value
	}

	return environment
}

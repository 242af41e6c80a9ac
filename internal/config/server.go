package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"

	"dario.cat/mergo"
)

// Server holds listen settings for the HTTP server. It is resolved separately
// from [AppConfig], whose fields are not overridable.
type Server struct {
	// Host is the interface the HTTP server binds to.
	// Env: NUXT_HOST
	Host string `env:"NUXT_HOST" envDefault:"0.0.0.0" json:"host"`

	// Port is the TCP port the HTTP server listens on.
	// Env: NUXT_PORT
	Port int `env:"NUXT_PORT" envDefault:"3000" json:"port"`
}

// Address returns the listen address in "host:port" form.
func (s Server) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// ResolveServer loads [Server] from the resolver's environment and applies
// overrides (usually command-line flags) on top; non-zero override fields
// win. The result is validated.
func (r *Resolver) ResolveServer(overrides Server) (*Server, error) {
	cfg := &Server{}
	if err := parseEnv(cfg, r.lookupEnvironment()); err != nil {
		return nil, err
	}

	if err := mergo.Merge(cfg, overrides, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("error merging server configs: %w", err)
	}

	return cfg, cfg.validate()
}

func (s *Server) validate() error {
	var err error
	if s.Host == "" {
		err = errors.Join(err, fmt.Errorf("%w: empty host", ErrInvalidServerConfigs))
	}
	if s.Port < 1 || s.Port > 65535 {
		err = errors.Join(err, fmt.Errorf("%w: port %d out of range", ErrInvalidServerConfigs, s.Port))
	}

	return err
}

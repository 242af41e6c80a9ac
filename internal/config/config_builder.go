package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []*AppConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*AppConfig, 0, 2),
	}
}

// build merges the collected layers in order, later non-zero fields winning.
// Layers that failed to load are skipped, and their errors are returned
// alongside the merged value so the caller can decide how loud to be.
func (b *configBuilder) build() (AppConfig, error) {
	config := new(AppConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			b.err = errors.Join(b.err, fmt.Errorf("error merging configs: %w", err))
		}
	}

	if b.err != nil {
		return *config, fmt.Errorf("error occured during building config: %w", b.err)
	}

	return *config, nil
}

func (b *configBuilder) withStatic() *configBuilder {
	b.configs = append(b.configs, staticConfig())
	return b
}

func (b *configBuilder) withEnv(environment map[string]string) *configBuilder {
	envCfg := &AppConfig{}
	if err := parseEnv(envCfg, environment); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

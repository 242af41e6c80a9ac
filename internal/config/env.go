// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from environment using the caarlos0/env library.
// Struct fields are mapped via their `env` tags. Values are copied verbatim,
// without trimming.
//
// Returns a wrapped error if env.ParseWithOptions fails (e.g. a value cannot
// be converted to the target type).
func parseEnv(cfg any, environment map[string]string) error {
	err := env.ParseWithOptions(cfg, env.Options{Environment: environment})
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

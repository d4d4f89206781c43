// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// Fallback variable names used by existing deployments of the web app.
const (
	envSupabaseURL     = "SUPABASE_URL"
	envSupabaseAnonKey = "SUPABASE_ANON_KEY"
)

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
//
// BaaS settings fall back to SUPABASE_URL and SUPABASE_ANON_KEY when the
// BAAS_ variables are not set.
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be
// converted to the target type).
func parseEnv(cfg *StructuredConfig) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	if cfg.BaaS.URL == "" {
		cfg.BaaS.URL = os.Getenv(envSupabaseURL)
	}
	if cfg.BaaS.AnonKey == "" {
		cfg.BaaS.AnonKey = os.Getenv(envSupabaseAnonKey)
	}

	return nil
}

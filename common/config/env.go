// Package config reads the optional build environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// BuildEnv holds the variables meson and packaging tools export while installing.
// Both are only used to shorten paths in progress messages.
type BuildEnv struct {
	DestDir   string `env:"DESTDIR"`
	BuildRoot string `env:"MESON_BUILD_ROOT"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadBuildEnv returns the build environment, or an empty one if parsing fails.
func LoadBuildEnv() BuildEnv {
	var e BuildEnv
	if err := ParseEnv(&e); err != nil {
		return BuildEnv{}
	}
	return e
}

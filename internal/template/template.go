package template

import (
	_ "embed"
)

//go:embed config.yaml
var DefaultConfig string

// ConfigDir is the name of the namegame configuration directory.
const ConfigDir = ".namegame"

// File name constants for consistent usage across the codebase.
const (
	ConfigFile = "config.yaml"
	EnvFile    = ".env"
)

// DefaultFiles returns the default files to create in .namegame/
func DefaultFiles() map[string]string {
	return map[string]string{
		ConfigFile: DefaultConfig,
	}
}

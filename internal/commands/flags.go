package commands

import (
	"os"
	"path/filepath"

	"github.com/colonyops/stencil/internal/core/config"
	"github.com/colonyops/stencil/internal/stencil"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config

	// App is the stencil application wired in the Before hook
	App *stencil.App
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "stencil", "config.yaml")
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultCatalogPath returns where the book catalog lives unless
// overridden: $XDG_DATA_HOME/shelf/librarystore.
func DefaultCatalogPath() string {
	return filepath.Join(dataHome(), "shelf", "librarystore")
}

// DefaultLedgerPath returns where the active-loan ledger lives unless
// overridden: $XDG_DATA_HOME/shelf/loans.
func DefaultLedgerPath() string {
	return filepath.Join(dataHome(), "shelf", "loans")
}

// DefaultConfigPath returns the optional config file location:
// $XDG_CONFIG_HOME/shelf/config.yaml.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "shelf", "config.yaml")
}

func dataHome() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return dataHome
}

func ExpandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot expand ~: %w", err)
		}
		path = filepath.Join(home, path[2:])
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot expand ~: %w", err)
		}
		path = home
	}

	return filepath.Abs(path)
}

// Package config handles global notation configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config represents the global notation configuration.
type Config struct {
	// Editor is the editor to use for opening notes (defaults to $EDITOR).
	// It may be a compound command such as "code --wait".
	Editor string `toml:"editor"`

	// Root is the directory that contains the notes/ tree (defaults to the
	// working directory).
	Root string `toml:"root"`

	// UI controls optional CLI theming preferences.
	UI UIConfig `toml:"ui"`
}

// UIConfig represents optional CLI theming preferences.
type UIConfig struct {
	// Accent is an optional accent color for paths and picker output.
	// Supported values are ANSI color codes ("0" to "255") or hex colors ("#RRGGBB").
	Accent string `toml:"accent"`
}

// Load loads the configuration from the default location.
// Returns a default config if the file doesn't exist.
func Load() (*Config, error) {
	configPath := DefaultPath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &Config{}, nil
	}

	return LoadFrom(configPath)
}

// LoadFrom loads the configuration from a specific path.
func LoadFrom(path string) (*Config, error) {
	var config Config
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &config, nil
}

// ResolveConfigPath returns the explicit path when given, otherwise the
// default location.
func ResolveConfigPath(explicit string) string {
	if strings.TrimSpace(explicit) != "" {
		return explicit
	}
	return DefaultPath()
}

// DefaultPath returns the default config file path.
// Checks ~/.config/notation/config.toml first (XDG style),
// then falls back to OS-specific location.
func DefaultPath() string {
	if xdgPath, err := XDGPath(); err == nil {
		if _, err := os.Stat(xdgPath); err == nil {
			return xdgPath
		}
	}

	if configDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(configDir, "notation", "config.toml")
	}

	// Last resort fallback
	return filepath.Join(".", "config.toml")
}

// XDGPath returns the XDG-style config path (~/.config/notation/config.toml).
func XDGPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "notation", "config.toml"), nil
}

// GetEditor returns the editor to use, falling back to $EDITOR.
func (c *Config) GetEditor() string {
	if c != nil && strings.TrimSpace(c.Editor) != "" {
		return strings.TrimSpace(c.Editor)
	}
	return strings.TrimSpace(os.Getenv("EDITOR"))
}

// GetRoot returns the configured notes root, expanding a leading "~/".
// An unset root means the working directory.
func (c *Config) GetRoot() string {
	if c == nil || strings.TrimSpace(c.Root) == "" {
		return "."
	}
	root := strings.TrimSpace(c.Root)
	if root == "~" || strings.HasPrefix(root, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(root, "~"))
		}
	}
	return root
}

// Set assigns a config key by its TOML name.
func (c *Config) Set(key, value string) error {
	switch key {
	case "editor":
		c.Editor = value
	case "root":
		c.Root = value
	case "ui.accent":
		c.UI.Accent = value
	default:
		return fmt.Errorf("unknown config key %q (valid: editor, root, ui.accent)", key)
	}
	return nil
}

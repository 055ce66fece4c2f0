// Package config loads and saves the demo program's configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"
)

// Config holds the demo program's settings.
type Config struct {
	Theme       string // style theme name; unknown names fall back to default
	MaxVisible  int    // picker list window size
	Fuzzy       bool   // use the fuzzy matcher instead of substring
	Placeholder string // search input hint text
}

// Dir returns the pick configuration directory.
// Respects XDG_CONFIG_HOME on Unix, APPDATA on Windows.
func Dir() string {
	var base string

	if runtime.GOOS == "windows" {
		base = os.Getenv("APPDATA")
		if base == "" {
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	} else {
		base = os.Getenv("XDG_CONFIG_HOME")
		if base == "" {
			home, _ := os.UserHomeDir()
			base = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(base, "pick")
}

// path returns the config file location, honoring a PICK_CONFIG override.
func path() string {
	if p := os.Getenv("PICK_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(Dir(), "config.toml")
}

// Load reads configuration from the config file and environment. Env var
// overrides use the PICK_ prefix (PICK_THEME, PICK_MAX_VISIBLE, ...). A
// missing config file is not an error; defaults apply.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("theme", "default")
	v.SetDefault("max_visible", 8)
	v.SetDefault("fuzzy", false)
	v.SetDefault("placeholder", "type to filter")

	v.SetConfigType("toml")
	v.SetConfigFile(path())

	v.SetEnvPrefix("PICK")
	v.AutomaticEnv()

	// read config file if present
	_ = v.ReadInConfig()

	c := Config{
		Theme:       v.GetString("theme"),
		MaxVisible:  v.GetInt("max_visible"),
		Fuzzy:       v.GetBool("fuzzy"),
		Placeholder: v.GetString("placeholder"),
	}
	if c.MaxVisible <= 0 {
		return Config{}, fmt.Errorf("config: max_visible must be positive, got %d", c.MaxVisible)
	}
	return c, nil
}

// Save writes the config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	p := path()
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("theme", cfg.Theme)
	v.Set("max_visible", cfg.MaxVisible)
	v.Set("fuzzy", cfg.Fuzzy)
	v.Set("placeholder", cfg.Placeholder)

	if err := v.WriteConfigAs(p); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

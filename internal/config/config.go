// Package config loads the demo application's settings with Viper.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config keys, as spelled in config.json.
const (
	KeyTitle      = "title"
	KeyWidth      = "width"
	KeyHeight     = "height"
	KeyDatabase   = "database"
	KeyEmptyLabel = "empty_label"
	KeyReadOnly   = "read_only"
)

// Flag names bound over config keys when present on the flag set.
const (
	FlagDatabase = "db"
	FlagReadOnly = "read-only"
)

// App is the resolved application configuration.
type App struct {
	Title      string
	Width      float32
	Height     float32
	Database   string
	EmptyLabel string
	ReadOnly   bool
}

// Load reads path (JSON, YAML or TOML by extension) over the defaults.
// A missing file is not an error. Flags set on the command line win over
// the file.
func Load(path string, flags *pflag.FlagSet) (App, error) {
	v := viper.New()
	v.SetDefault(KeyTitle, "Contacts")
	v.SetDefault(KeyWidth, 900)
	v.SetDefault(KeyHeight, 640)
	v.SetDefault(KeyDatabase, "./data.db")
	v.SetDefault(KeyEmptyLabel, "No contacts")
	v.SetDefault(KeyReadOnly, false)

	if flags != nil {
		for key, name := range map[string]string{KeyDatabase: FlagDatabase, KeyReadOnly: FlagReadOnly} {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return App{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return App{}, fmt.Errorf("read config: %w", err)
			}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return App{}, fmt.Errorf("stat config: %w", err)
		}
	}

	cfg := App{
		Title:      v.GetString(KeyTitle),
		Width:      float32(v.GetFloat64(KeyWidth)),
		Height:     float32(v.GetFloat64(KeyHeight)),
		Database:   v.GetString(KeyDatabase),
		EmptyLabel: v.GetString(KeyEmptyLabel),
		ReadOnly:   v.GetBool(KeyReadOnly),
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return App{}, fmt.Errorf("invalid window size %gx%g", cfg.Width, cfg.Height)
	}
	return cfg, nil
}

// Package config loads typewright defaults from a TOML file. A missing file
// is not an error: first runs get the built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the user-tunable defaults the menu starts from.
type Config struct {
	// Tool is the quicktype command, possibly with leading arguments
	// ("npx quicktype").
	Tool string `toml:"tool"`

	SrcLang  string `toml:"src_lang"`
	Lang     string `toml:"lang"`
	TopLevel string `toml:"top_level"`

	// Flags are quicktype switches enabled by default, without the "--"
	// prefix. Valued flags use "name=value" form.
	Flags []string `toml:"flags"`

	// TimeoutMS bounds each quicktype run in milliseconds.
	TimeoutMS int `toml:"timeout_ms"`

	// DebugLog, when set, is the file the zap debug logger writes to.
	DebugLog string `toml:"debug_log"`
}

func Default() Config {
	return Config{
		Tool:     "quicktype",
		SrcLang:  "json",
		Lang:     "go",
		TopLevel: "TopLevel",
	}
}

// DefaultPath is ~/.config/typewright/config.toml (per os.UserConfigDir).
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %s", err)
	}
	return filepath.Join(dir, "typewright", "config.toml"), nil
}

// Load reads path over the built-in defaults. A missing file returns the
// defaults; a malformed file is an error so typos do not silently vanish.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %s", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %s", path, err)
	}
	return cfg, nil
}

package config

import (
	"os"
	"path/filepath"

	"emperror.dev/errors"
	"github.com/adrg/xdg"
	"github.com/spf13/viper"
)

type Git struct {
	// If true, the git segment is never computed: Info returns nil
	// immediately without spawning any git processes.
	Disabled bool
}

// Symbols are the glyphs used to render the indicator segment. The modified
// ("!") and untracked ("?") markers are fixed and not configurable.
type Symbols struct {
	Git      string
	Stashed  string
	Deleted  string
	Staged   string
	Renamed  string
	Conflict string
	Diverged string
	Ahead    string
	Behind   string
}

var Line = struct {
	Git     Git
	Symbols Symbols
}{
	Symbols: DefaultSymbols(),
}

func DefaultSymbols() Symbols {
	return Symbols{
		Git:      "⎇",
		Stashed:  "≡",
		Deleted:  "✘",
		Staged:   "+",
		Renamed:  "»",
		Conflict: "=",
		Diverged: "⇕",
		Ahead:    "⇡",
		Behind:   "⇣",
	}
}

// Load initializes the configuration values.
// It may optionally be called with a list of additional paths to check for the
// config file.
// Returns a boolean indicating whether or not a config file was loaded and an
// error if one occurred.
func Load(paths []string) (bool, error) {
	loaded, err := loadFromFile(paths)
	loadFromEnv()
	return loaded, err
}

func loadFromFile(paths []string) (bool, error) {
	config := viper.New()

	// Viper has support for various formats, so this picks up config.json,
	// config.yaml, config.toml, and so on.
	config.SetConfigName("config")

	// Reasonable places to look for config files.
	config.AddConfigPath(filepath.Join(xdg.ConfigHome, "gitline"))
	config.AddConfigPath("$HOME/.config/gitline")
	config.AddConfigPath("$HOME/.gitline")
	for _, path := range paths {
		config.AddConfigPath(path)
	}

	if err := config.ReadInConfig(); err != nil {
		if errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return false, nil
		}
		return false, err
	}

	if err := config.Unmarshal(&Line); err != nil {
		return true, errors.Wrap(err, "failed to read gitline configs")
	}

	return true, nil
}

func loadFromEnv() {
	if v := os.Getenv("GITLINE_DISABLED"); v == "1" || v == "true" {
		Line.Git.Disabled = true
	}
}

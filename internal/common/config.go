// Package common provides configuration and helpers shared by the commands.
package common

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/abenz1267/stringscore/pkg/score"
	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const (
	Name      = "stringscore"
	EnvPrefix = "STRINGSCORE_"
)

type Config struct {
	Fuzziness float32 `koanf:"fuzziness" desc:"tolerance for query characters missing in the string (0...1)" default:"0"`
	Option    string  `koanf:"option" desc:"normalization: default, favor_smaller_words or reduced_long_string_penalty" default:"default"`
	MinScore  float32 `koanf:"min_score" desc:"minimum score for paths to be printed by walk" default:"0"`
}

func DefaultConfig() Config {
	return Config{
		Fuzziness: 0,
		Option:    score.Default.String(),
		MinScore:  0,
	}
}

// Scorer builds the scorer described by the config.
func (c Config) Scorer() (score.Scorer, error) {
	o, err := score.ParseOption(c.Option)
	if err != nil {
		return score.Scorer{}, fmt.Errorf("config option: %w", err)
	}

	return score.Scorer{Fuzziness: c.Fuzziness, Option: o}, nil
}

// LoadConfig merges the defaults in config with the user config file and
// STRINGSCORE_ environment variables. config must be a pointer to a struct.
func LoadConfig(name string, config any) error {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(config, "koanf"), nil); err != nil {
		return fmt.Errorf("load defaults: %w", err)
	}

	userConfig := ConfigFile(name)

	if FileExists(userConfig) {
		if err := k.Load(file.Provider(userConfig), toml.Parser()); err != nil {
			return fmt.Errorf("load %s: %w", userConfig, err)
		}

		slog.Debug(name, "config", userConfig)
	} else {
		slog.Debug(name, "config", "not found. using default config")
	}

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return fmt.Errorf("load environment: %w", err)
	}

	if err := k.Unmarshal("", config); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	return nil
}

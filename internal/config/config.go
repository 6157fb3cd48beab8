// internal/config/config.go
//
// Configuration for every command.
// Sources, lowest precedence first:
//   - built-in defaults;
//   - an optional YAML file (./wordle.yaml or --config);
//   - environment variables (PORT, LOG_LEVEL, MAX_ATTEMPTS, ...).

package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config is the resolved configuration. Keys mirror the YAML layout.
type Config struct {
	Port     string      `mapstructure:"port"`
	LogLevel string      `mapstructure:"log_level"`
	Words    WordsConfig `mapstructure:"words"`
	Game     GameConfig  `mapstructure:"game"`
	Daily    DailyConfig `mapstructure:"daily"`
}

// WordsConfig locates the word lists. Both paths empty means the embedded lists.
type WordsConfig struct {
	AnswersFile string `mapstructure:"answers_file"`
	AllowedFile string `mapstructure:"allowed_file"`
	CreateStubs bool   `mapstructure:"create_stubs"`
}

// GameConfig holds the defaults for new games.
type GameConfig struct {
	MaxAttempts    int  `mapstructure:"max_attempts"`
	HardMode       bool `mapstructure:"hard_mode"`
	StrictHardMode bool `mapstructure:"strict_hard_mode"`
}

// DailyConfig picks the daily selection scheme.
type DailyConfig struct {
	Scheme string `mapstructure:"scheme"`
	Salt   string `mapstructure:"salt"`
}

// Attempt bounds offered by the settings form.
const (
	MinAttempts = 4
	MaxAttempts = 10
)

// env maps config keys to the environment variables the server has always read.
var env = map[string]string{
	"port":                  "PORT",
	"log_level":             "LOG_LEVEL",
	"words.answers_file":    "WORDS_ANSWERS_FILE",
	"words.allowed_file":    "WORDS_ALLOWED_FILE",
	"words.create_stubs":    "WORDS_CREATE_STUBS",
	"game.max_attempts":     "MAX_ATTEMPTS",
	"game.hard_mode":        "HARD_MODE",
	"game.strict_hard_mode": "STRICT_HARD_MODE",
	"daily.scheme":          "DAILY_SCHEME",
	"daily.salt":            "DAILY_SALT",
}

// Load resolves configuration from defaults, the environment and an optional
// YAML file. An empty path looks for ./wordle.yaml and tolerates its absence;
// an explicit path must exist.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("port", "5175")
	v.SetDefault("log_level", "info")
	v.SetDefault("words.answers_file", "")
	v.SetDefault("words.allowed_file", "")
	v.SetDefault("words.create_stubs", true)
	v.SetDefault("game.max_attempts", 6)
	v.SetDefault("game.hard_mode", false)
	v.SetDefault("game.strict_hard_mode", false)
	v.SetDefault("daily.scheme", "ordinal")
	v.SetDefault("daily.salt", "local_dev_salt")

	for key, name := range env {
		if err := v.BindEnv(key, name); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", name, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else {
		v.SetConfigName("wordle")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks ranges and enumerations.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port is required")
	}
	if c.Game.MaxAttempts < MinAttempts || c.Game.MaxAttempts > MaxAttempts {
		return fmt.Errorf("game.max_attempts must be between %d and %d, got %d", MinAttempts, MaxAttempts, c.Game.MaxAttempts)
	}
	switch c.Daily.Scheme {
	case "ordinal", "salted":
	default:
		return fmt.Errorf("daily.scheme must be ordinal or salted, got %q", c.Daily.Scheme)
	}
	if c.Words.AnswersFile != "" && c.Words.AllowedFile == "" {
		return fmt.Errorf("words.allowed_file is required when words.answers_file is set")
	}
	return nil
}

// ClampAttempts keeps a user-supplied attempt count inside the allowed range.
func ClampAttempts(n int) int {
	return max(MinAttempts, min(MaxAttempts, n))
}

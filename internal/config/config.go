// Package config loads xgx-demo settings from flags, XGX_* environment
// variables, and an optional YAML file, in that order of precedence.
package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"

	xgxscope "github.com/xgx-io/xgx-scope"
	"github.com/xgx-io/xgx-scope/singleton"
)

// Keys shared by flag bindings and the config file.
const (
	KeyCodec     = "codec"
	KeyRounds    = "rounds"
	KeyDir       = "dir"
	KeyLogLevel  = "log_level"
	KeyLogFormat = "log_format"
)

const (
	defaultCodec     = "json"
	defaultRounds    = 3
	defaultLogLevel  = "info"
	defaultLogFormat = "text"

	// maxRounds bounds the demo loop; round trips beyond this say nothing new.
	maxRounds = 10_000
)

// Config holds the demo settings.
type Config struct {
	Codec     string `mapstructure:"codec"`
	Rounds    int    `mapstructure:"rounds"`
	Dir       string `mapstructure:"dir"`
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

// Defaults returns the configuration used when nothing overrides it.
func Defaults() Config {
	return Config{
		Codec:     defaultCodec,
		Rounds:    defaultRounds,
		LogLevel:  defaultLogLevel,
		LogFormat: defaultLogFormat,
	}
}

// New returns a viper instance with defaults and XGX_ environment binding.
func New() *viper.Viper {
	v := viper.New()
	d := Defaults()
	v.SetDefault(KeyCodec, d.Codec)
	v.SetDefault(KeyRounds, d.Rounds)
	v.SetDefault(KeyDir, d.Dir)
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeyLogFormat, d.LogFormat)

	v.SetEnvPrefix("XGX")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads path (if non-empty) into v and decodes the merged settings.
func Load(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if errors.As(err, &notFound) {
				return Config{}, xgxscope.Wrap(err, "config file not found", "path", path)
			}
			return Config{}, xgxscope.Wrap(err, "read config failed", "path", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, xgxscope.Wrap(err, "decode config failed")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the settings and returns the first invalid one.
func (c Config) Validate() error {
	if _, err := singleton.CodecByName(c.Codec); err != nil {
		return err
	}
	if c.Rounds < 1 || c.Rounds > maxRounds {
		return xgxscope.Invalid(KeyRounds, "must be between 1 and 10000").With("rounds", c.Rounds)
	}
	switch strings.ToLower(c.LogFormat) {
	case "json", "text":
	default:
		return xgxscope.Invalid(KeyLogFormat, "must be json or text").With("log_format", c.LogFormat)
	}
	return nil
}

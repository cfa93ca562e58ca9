// Package config loads footstats settings from a config file, environment and defaults.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
	"github.com/utakatalp/football-statistics/internal/errs"
	"github.com/utakatalp/football-statistics/internal/log"
	"github.com/utakatalp/football-statistics/internal/source"
)

type InputConfig struct {
	// Path of the message file, "-" reads stdin.
	Path string `mapstructure:"path"`
}

type DBConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	DSN     string `mapstructure:"dsn"`
}

type HTTPConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

func (h HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", h.Host, h.Port)
}

type Config struct {
	Log   log.Config         `mapstructure:"log"`
	Input InputConfig        `mapstructure:"input"`
	DB    DBConfig           `mapstructure:"database"`
	Kafka source.KafkaConfig `mapstructure:"kafka"`
	HTTP  HTTPConfig         `mapstructure:"http"`
}

// Read reads in the config file and ENV variables if set. With an empty cfgFile
// footstats.yml is searched for in $HOME and the working directory; a missing
// file there is not an error and defaults are used.
func Read(cfgFile string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("footstats")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("%w: reading %s: %w", errs.ErrInvalidConfig, cfgFile, err)
		}
	} else {
		home, errHome := homedir.Dir()
		if errHome == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigName("footstats")

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("%w: %w", errs.ErrInvalidConfig, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: invalid config file format: %w", errs.ErrInvalidConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	switch c.Log.Level {
	case log.Debug, log.Info, log.Warn, log.Error:
	default:
		return fmt.Errorf("%w: log.level %q", errs.ErrInvalidConfig, c.Log.Level)
	}

	if c.DB.Enabled && c.DB.DSN == "" {
		return fmt.Errorf("%w: database.dsn is required when database.enabled", errs.ErrInvalidConfig)
	}

	if _, err := source.ParseOffset(c.Kafka.Offset); err != nil {
		return err
	}

	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("%w: http.port %d", errs.ErrInvalidConfig, c.HTTP.Port)
	}

	return nil
}

// Default config values. Anything defined in the config or env will overwrite them.
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", string(log.Info))
	v.SetDefault("log.file", "")

	v.SetDefault("input.path", "messages.txt")

	v.SetDefault("database.enabled", false)
	v.SetDefault("database.dsn", "postgresql://localhost/footstats?sslmode=disable")

	v.SetDefault("kafka.brokers", []string{"localhost:9092"})
	v.SetDefault("kafka.topic", "football.messages")
	v.SetDefault("kafka.partition", 0)
	v.SetDefault("kafka.offset", "oldest")
	v.SetDefault("kafka.idle_timeout", 5*time.Second)

	v.SetDefault("http.host", "127.0.0.1")
	v.SetDefault("http.port", 6060)
}

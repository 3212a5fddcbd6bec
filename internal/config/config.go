package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
	"pokertable-server/internal/util"
)

// Config provides configuration for the poker table server
type Config struct {
	loaded bool
	Addr   string `yaml:"addr"`
	Log    struct {
		Level             string `yaml:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`
	JWT struct {
		Secret string        `yaml:"secret"`
		TTL    time.Duration `yaml:"ttl"`
	} `yaml:"jwt"`
	Table struct {
		MaxSeats int `yaml:"maxSeats" envconfig:"max_seats"`
		Bots     int `yaml:"bots"`
	} `yaml:"table"`
}

var config Config

// DefaultConfig returns the configuration used when nothing is overridden
func DefaultConfig() Config {
	cfg := Config{
		Addr: ":5000",
	}

	cfg.Log.Level = "info"
	cfg.JWT.TTL = time.Hour * 24
	cfg.Table.MaxSeats = 10
	cfg.Table.Bots = 0

	return cfg
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// Values are read from the defaults, then the YAML file, then the environment
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("PTS_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// defaults only
	case err != nil:
		return err
	default:
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	}

	if err := envconfig.Process("pts", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}

// Package config loads application configuration from ~/.recall/config.yaml
// with RECALL_* environment variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all recall settings. Every field has a usable default so the
// tool works with no config file at all.
type Config struct {
	// DBPath is the SQLite database location.
	DBPath string `mapstructure:"db_path" yaml:"db_path"`

	// DefaultUser is the user id assumed when --user is not given.
	DefaultUser string `mapstructure:"default_user" yaml:"default_user"`

	// TopicsFile points at the YAML category dictionary. Empty means the
	// built-in dictionary.
	TopicsFile string `mapstructure:"topics_file" yaml:"topics_file"`

	// SimilarityThreshold is the minimum Jaccard score for a candidate to
	// count as a duplicate of an existing memory. Must be in [0, 1].
	SimilarityThreshold float64 `mapstructure:"similarity_threshold" yaml:"similarity_threshold"`

	// TopicBoost is added to a search score when a memory topic matches
	// the query. Must be >= 0.
	TopicBoost float64 `mapstructure:"topic_boost" yaml:"topic_boost"`

	// Debug enables verbose diagnostic logging. No behavioral change.
	Debug bool `mapstructure:"debug" yaml:"debug"`
}

// Load reads configuration from the given file, or from
// ~/.recall/config.yaml when path is empty. A missing file yields defaults.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("db_path", defaultDBPath())
	v.SetDefault("default_user", "default")
	v.SetDefault("topics_file", "")
	v.SetDefault("similarity_threshold", 0.8)
	v.SetDefault("topic_boost", 0.2)
	v.SetDefault("debug", false)

	v.SetEnvPrefix("RECALL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(configDir())
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects out-of-range values.
func (c *Config) Validate() error {
	if c.SimilarityThreshold < 0 || c.SimilarityThreshold > 1 {
		return fmt.Errorf("similarity_threshold must be in [0, 1], got %v", c.SimilarityThreshold)
	}
	if c.TopicBoost < 0 {
		return fmt.Errorf("topic_boost must be >= 0, got %v", c.TopicBoost)
	}
	if strings.TrimSpace(c.DefaultUser) == "" {
		return fmt.Errorf("default_user must not be empty")
	}
	return nil
}

func configDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".recall")
}

func defaultDBPath() string {
	if env := os.Getenv("RECALL_DB"); env != "" {
		return env
	}
	return filepath.Join(configDir(), "memory.db")
}

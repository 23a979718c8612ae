package classify

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the topic category dictionary: category name to keywords, and
// category name to multi-word phrases. Immutable once a Classifier is built.
type Config struct {
	Categories map[string][]string `yaml:"categories"`
	Phrases    map[string][]string `yaml:"phrases"`
}

// LoadConfig reads a category dictionary from a YAML file. Absent sections
// degrade to empty maps rather than failing; only an unreadable or
// syntactically invalid file is an error.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read topics config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse topics config: %w", err)
	}

	if cfg.Categories == nil {
		cfg.Categories = map[string][]string{}
	}
	if cfg.Phrases == nil {
		cfg.Phrases = map[string][]string{}
	}
	return &cfg, nil
}

// DefaultConfig returns the built-in category dictionary used when no topics
// file is configured. Categories cover the subjects a personal agent tends
// to accumulate about its user.
func DefaultConfig() *Config {
	return &Config{
		Categories: map[string][]string{
			"food":        {"food", "eat", "pizza", "coffee", "tea", "restaurant", "cook", "meal", "drink", "lunch", "dinner", "breakfast"},
			"work":        {"work", "job", "office", "meeting", "project", "deadline", "boss", "colleague", "career", "company"},
			"family":      {"family", "mother", "father", "sister", "brother", "wife", "husband", "kid", "child", "parent", "son", "daughter"},
			"hobbies":     {"hobby", "game", "read", "book", "music", "movie", "sport", "run", "hike", "paint", "guitar", "chess"},
			"health":      {"health", "doctor", "exercise", "gym", "sleep", "diet", "allergy", "medication", "yoga"},
			"travel":      {"travel", "trip", "flight", "vacation", "visit", "city", "country", "hotel"},
			"identity":    {"name", "age", "birthday", "live", "home", "address", "hometown"},
			"preferences": {"prefer", "like", "love", "hate", "favorite", "enjoy", "dislike"},
		},
		Phrases: map[string][]string{
			"food":        {"love to eat", "favorite food", "go out for"},
			"work":        {"work on", "my job", "at the office"},
			"identity":    {"my name", "i live in", "was born"},
			"preferences": {"my favorite", "really into", "big fan of"},
		},
	}
}

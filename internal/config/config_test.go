package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_ExplicitFile(t *testing.T) {
	path := writeConfig(t, `
db_path: /tmp/custom.db
default_user: sam
similarity_threshold: 0.6
topic_boost: 0.3
debug: true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DBPath != "/tmp/custom.db" {
		t.Fatalf("db_path = %q", cfg.DBPath)
	}
	if cfg.DefaultUser != "sam" {
		t.Fatalf("default_user = %q", cfg.DefaultUser)
	}
	if cfg.SimilarityThreshold != 0.6 {
		t.Fatalf("similarity_threshold = %v", cfg.SimilarityThreshold)
	}
	if cfg.TopicBoost != 0.3 {
		t.Fatalf("topic_boost = %v", cfg.TopicBoost)
	}
	if !cfg.Debug {
		t.Fatal("debug should be true")
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "default_user: alice\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DefaultUser != "alice" {
		t.Fatalf("default_user = %q", cfg.DefaultUser)
	}
	if cfg.SimilarityThreshold != 0.8 {
		t.Fatalf("similarity_threshold = %v, want default 0.8", cfg.SimilarityThreshold)
	}
	if cfg.TopicBoost != 0.2 {
		t.Fatalf("topic_boost = %v, want default 0.2", cfg.TopicBoost)
	}
	if cfg.DBPath == "" {
		t.Fatal("db_path should default to a usable path")
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestLoad_ThresholdOutOfRange(t *testing.T) {
	path := writeConfig(t, "similarity_threshold: 1.5\n")

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "similarity_threshold") {
		t.Fatalf("error = %v", err)
	}
}

func TestLoad_NegativeBoost(t *testing.T) {
	path := writeConfig(t, "topic_boost: -0.1\n")

	if _, err := Load(path); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestValidate_EmptyDefaultUser(t *testing.T) {
	cfg := &Config{DefaultUser: "  ", SimilarityThreshold: 0.8}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for blank default_user")
	}
}

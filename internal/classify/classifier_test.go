package classify

import (
	"os"
	"path/filepath"
	"testing"
)

func foodConfig() *Config {
	return &Config{
		Categories: map[string][]string{"food": {"pizza", "coffee"}},
		Phrases:    map[string][]string{"food": {"love to eat"}},
	}
}

func TestClassify_PhraseAndKeyword(t *testing.T) {
	c := New(foodConfig(), DefaultOptions())

	// "I love to eat pizza" cleans to "love eat pizza": phrase (+3) and
	// one keyword (+1), total 4 of 4 raw -> normalized 1.0.
	scores := c.Classify("I love to eat pizza")
	if got := scores["food"]; got != 1.0 {
		t.Fatalf("food score = %v, want 1.0", got)
	}

	labels := c.Labels("I love to eat pizza")
	if len(labels) != 1 || labels[0] != "food" {
		t.Fatalf("labels = %v, want [food]", labels)
	}
}

func TestClassify_UnknownFallback(t *testing.T) {
	c := New(foodConfig(), DefaultOptions())

	for _, input := range []string{"", "the a an of", "quantum entanglement"} {
		labels := c.Labels(input)
		if len(labels) != 1 || labels[0] != "unknown" {
			t.Errorf("Labels(%q) = %v, want [unknown]", input, labels)
		}
		scores := c.Classify(input)
		if got, ok := scores["unknown"]; !ok || got != 0.0 {
			t.Errorf("Classify(%q) = %v, want {unknown: 0}", input, scores)
		}
	}
}

func TestClassify_Distribution(t *testing.T) {
	cfg := &Config{Categories: map[string][]string{
		"food":  {"pizza"},
		"drink": {"coffee"},
	}}
	c := New(cfg, DefaultOptions())

	scores := c.Classify("pizza and coffee")
	if scores["food"] != 0.5 || scores["drink"] != 0.5 {
		t.Fatalf("scores = %v, want both 0.5", scores)
	}

	// Equal scores order alphabetically.
	labels := c.Labels("pizza and coffee")
	if len(labels) != 2 || labels[0] != "drink" || labels[1] != "food" {
		t.Fatalf("labels = %v, want [drink food]", labels)
	}
}

func TestClassify_ThresholdDropsWeakCategories(t *testing.T) {
	cfg := &Config{
		Categories: map[string][]string{"weak": {"alpha"}},
		Phrases:    map[string][]string{"strong": {"beta gamma"}},
	}
	opts := DefaultOptions()
	opts.ConfidenceThreshold = 0.3
	c := New(cfg, opts)

	// weak: 1 of 4 raw = 0.25 < 0.3; strong: 3 of 4 = 0.75.
	labels := c.Labels("alpha beta gamma")
	if len(labels) != 1 || labels[0] != "strong" {
		t.Fatalf("labels = %v, want [strong]", labels)
	}
}

func TestClassify_SubstringContainment(t *testing.T) {
	cfg := &Config{Categories: map[string][]string{"work": {"work"}}}
	c := New(cfg, DefaultOptions())

	// "working" contains "work" -> substring match counts.
	labels := c.Labels("working late tonight")
	if len(labels) != 1 || labels[0] != "work" {
		t.Fatalf("labels = %v, want [work]", labels)
	}
}

func TestClassify_Deterministic(t *testing.T) {
	c := New(DefaultConfig(), DefaultOptions())
	first := c.Labels("my name is Sam and I love to eat pizza at work")
	for i := 0; i < 10; i++ {
		got := c.Labels("my name is Sam and I love to eat pizza at work")
		if len(got) != len(first) {
			t.Fatalf("run %d: %v != %v", i, got, first)
		}
		for j := range got {
			if got[j] != first[j] {
				t.Fatalf("run %d: %v != %v", i, got, first)
			}
		}
	}
}

func TestLoadConfig_MissingSections(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "topics.yaml")
	os.WriteFile(path, []byte("categories:\n  food: [pizza]\n"), 0o644)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Phrases == nil {
		t.Fatal("phrases should default to empty map")
	}
	if len(cfg.Categories["food"]) != 1 {
		t.Fatalf("categories = %v", cfg.Categories)
	}
}

func TestLoadConfig_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "topics.yaml")
	os.WriteFile(path, []byte(""), 0o644)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Categories == nil || cfg.Phrases == nil {
		t.Fatal("sections should default to empty maps")
	}

	// A classifier over an empty dictionary labels everything unknown.
	c := New(cfg, DefaultOptions())
	labels := c.Labels("anything")
	if len(labels) != 1 || labels[0] != "unknown" {
		t.Fatalf("labels = %v, want [unknown]", labels)
	}
}

func TestLoadConfig_Malformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "topics.yaml")
	os.WriteFile(path, []byte("categories: [not, a, map"), 0o644)

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected error for malformed yaml")
	}
}

func TestNew_NilConfig(t *testing.T) {
	c := New(nil, DefaultOptions())
	labels := c.Labels("whatever")
	if len(labels) != 1 || labels[0] != "unknown" {
		t.Fatalf("labels = %v, want [unknown]", labels)
	}
}

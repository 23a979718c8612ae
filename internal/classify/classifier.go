// Package classify maps free text to topic labels using weighted
// keyword and phrase matching against a category dictionary.
package classify

import (
	"math"
	"sort"
	"strings"

	"github.com/dpratt/recall/internal/model"
	"github.com/dpratt/recall/internal/text"
)

const (
	DefaultPhraseWeight        = 3.0
	DefaultKeywordWeight       = 1.0
	DefaultConfidenceThreshold = 0.1
)

// Options configures classification weights and the confidence cutoff.
type Options struct {
	PhraseWeight        float64
	KeywordWeight       float64
	ConfidenceThreshold float64
}

// DefaultOptions returns the standard weights: phrases count triple.
func DefaultOptions() Options {
	return Options{
		PhraseWeight:        DefaultPhraseWeight,
		KeywordWeight:       DefaultKeywordWeight,
		ConfidenceThreshold: DefaultConfidenceThreshold,
	}
}

// category holds a category's terms, pre-normalized at construction so
// phrase matching runs against the same cleaned form as the input text.
type category struct {
	name     string
	keywords []string
	phrases  []string
}

// Classifier scores text against an immutable category dictionary.
type Classifier struct {
	categories []category
	opts       Options
}

// New builds a Classifier from a category config. A nil config yields a
// classifier that labels everything "unknown".
func New(cfg *Config, opts Options) *Classifier {
	if cfg == nil {
		cfg = &Config{}
	}
	if opts.PhraseWeight == 0 && opts.KeywordWeight == 0 {
		opts = DefaultOptions()
	}

	names := map[string]bool{}
	for name := range cfg.Categories {
		names[name] = true
	}
	for name := range cfg.Phrases {
		names[name] = true
	}

	c := &Classifier{opts: opts}
	for name := range names {
		cat := category{name: name}
		for _, kw := range cfg.Categories[name] {
			if cleaned := text.Clean(kw); cleaned != "" {
				cat.keywords = append(cat.keywords, cleaned)
			}
		}
		for _, ph := range cfg.Phrases[name] {
			if cleaned := text.Clean(ph); cleaned != "" {
				cat.phrases = append(cat.phrases, cleaned)
			}
		}
		c.categories = append(c.categories, cat)
	}
	// Stable scoring output regardless of map iteration order.
	sort.Slice(c.categories, func(i, j int) bool {
		return c.categories[i].name < c.categories[j].name
	})
	return c
}

// Classify returns a confidence score per surviving category. Raw substring
// scores are normalized into a distribution, then categories below the
// confidence threshold are dropped. When nothing scores, the result is
// {"unknown": 0.0}. Scores are rounded to 3 decimals.
func (c *Classifier) Classify(input string) map[string]float64 {
	cleaned := text.Clean(input)

	raw := map[string]float64{}
	total := 0.0
	if cleaned != "" {
		for _, cat := range c.categories {
			score := 0.0
			for _, ph := range cat.phrases {
				if strings.Contains(cleaned, ph) {
					score += c.opts.PhraseWeight
				}
			}
			for _, kw := range cat.keywords {
				if strings.Contains(cleaned, kw) {
					score += c.opts.KeywordWeight
				}
			}
			if score > 0 {
				raw[cat.name] = score
				total += score
			}
		}
	}

	if total == 0 {
		return map[string]float64{model.UnknownTopic: 0.0}
	}

	scores := map[string]float64{}
	for name, score := range raw {
		norm := score / total
		if norm >= c.opts.ConfidenceThreshold {
			scores[name] = math.Round(norm*1000) / 1000
		}
	}
	if len(scores) == 0 {
		return map[string]float64{model.UnknownTopic: 0.0}
	}
	return scores
}

// Labels returns the surviving category names ordered by score descending,
// ties broken by name. Falls back to ["unknown"].
func (c *Classifier) Labels(input string) []string {
	scores := c.Classify(input)
	if _, ok := scores[model.UnknownTopic]; ok && len(scores) == 1 {
		return []string{model.UnknownTopic}
	}

	labels := make([]string, 0, len(scores))
	for name := range scores {
		labels = append(labels, name)
	}
	sort.Slice(labels, func(i, j int) bool {
		if scores[labels[i]] != scores[labels[j]] {
			return scores[labels[i]] > scores[labels[j]]
		}
		return labels[i] < labels[j]
	})
	return labels
}

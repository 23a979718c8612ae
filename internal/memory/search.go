package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/dpratt/recall/internal/model"
	"github.com/dpratt/recall/internal/text"
)

// SearchParams holds parameters for similarity search.
type SearchParams struct {
	UserID string
	Query  string

	// Limit caps the result count. <= 0 means 10.
	Limit int

	// Threshold is the minimum score to include. 0 means the manager's
	// configured similarity threshold.
	Threshold float64

	// SearchTopics enables the topic-match bonus.
	SearchTopics bool

	// TopicBoost overrides the configured boost when > 0.
	TopicBoost float64
}

// Search ranks a user's memories against the query by Jaccard content
// overlap, optionally boosted when a memory topic appears in the query.
// Boosted scores can exceed 1.0; they are a ranking signal, not a
// probability. Ties keep store read order.
func (m *Manager) Search(ctx context.Context, p SearchParams) ([]Match, error) {
	limit := p.Limit
	if limit <= 0 {
		limit = 10
	}
	threshold := p.Threshold
	if threshold == 0 {
		threshold = m.cfg.SimilarityThreshold
	}
	boost := p.TopicBoost
	if boost <= 0 {
		boost = m.cfg.TopicBoost
	}

	memories, err := m.store.ListByUser(ctx, p.UserID)
	if err != nil {
		return nil, fmt.Errorf("list memories: %w", err)
	}

	cleanedQuery := text.Clean(p.Query)

	var matches []Match
	for _, mem := range memories {
		score := text.Jaccard(p.Query, mem.Content)
		if p.SearchTopics && topicInQuery(mem.Topics, cleanedQuery) {
			score += boost
		}
		if score >= threshold {
			matches = append(matches, Match{Memory: mem, Score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	if len(matches) > limit {
		matches = matches[:limit]
	}

	m.log.Debug().Str("user", p.UserID).Str("query", p.Query).
		Int("results", len(matches)).Float64("threshold", threshold).
		Msg("searched memories")
	return matches, nil
}

// topicInQuery reports whether any topic label occurs in the cleaned query.
func topicInQuery(topics []string, cleanedQuery string) bool {
	if cleanedQuery == "" {
		return false
	}
	for _, t := range topics {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" || t == model.UnknownTopic {
			continue
		}
		if strings.Contains(cleanedQuery, t) {
			return true
		}
	}
	return false
}

// bestMatch returns the index and score of the memory most similar to
// content, or (-1, 0) when memories is empty.
func bestMatch(content string, memories []model.Memory) (int, float64) {
	best, bestScore := -1, 0.0
	for i, mem := range memories {
		if score := text.Jaccard(content, mem.Content); best < 0 || score > bestScore {
			best, bestScore = i, score
		}
	}
	return best, bestScore
}

package memory

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/dpratt/recall/internal/text"
)

// ComposeParams holds parameters for context assembly.
type ComposeParams struct {
	UserID string
	Query  string
	Budget int // max chars in output; <= 0 means 2000
}

// ComposedMemory is a scored memory selected for context output.
type ComposedMemory struct {
	ID      string   `json:"id"`
	Content string   `json:"content"`
	Topics  []string `json:"topics"`
	Score   float64  `json:"score"`
}

// ComposeResult is the assembled context response.
type ComposeResult struct {
	Budget   int              `json:"budget"`
	Used     int              `json:"used"`
	Memories []ComposedMemory `json:"memories"`
}

// Compose selects the memories most relevant to the query and greedily packs
// them into a character budget, for injection into an agent prompt. Scoring
// blends content overlap, recency (7-day half-life style decay), and a topic
// match bonus.
func (m *Manager) Compose(ctx context.Context, p ComposeParams) (*ComposeResult, error) {
	budget := p.Budget
	if budget <= 0 {
		budget = 2000
	}

	memories, err := m.store.ListByUser(ctx, p.UserID)
	if err != nil {
		return nil, fmt.Errorf("list memories: %w", err)
	}

	cleanedQuery := text.Clean(p.Query)
	now := time.Now()

	type scored struct {
		idx   int
		score float64
	}
	var candidates []scored
	for i, mem := range memories {
		relevance := text.Jaccard(p.Query, mem.Content)

		ageDays := now.Sub(mem.UpdatedAt).Hours() / 24.0
		recency := math.Exp(-0.1 * ageDays)

		topical := 0.0
		if topicInQuery(mem.Topics, cleanedQuery) {
			topical = 1.0
		}

		score := relevance*0.6 + recency*0.2 + topical*0.2
		if score > 0 {
			candidates = append(candidates, scored{idx: i, score: score})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	result := &ComposeResult{Budget: budget, Memories: []ComposedMemory{}}
	for _, c := range candidates {
		mem := memories[c.idx]
		if result.Used+len(mem.Content) > budget {
			continue
		}
		result.Memories = append(result.Memories, ComposedMemory{
			ID:      mem.ID,
			Content: mem.Content,
			Topics:  mem.Topics,
			Score:   math.Round(c.score*100) / 100,
		})
		result.Used += len(mem.Content)
	}
	return result, nil
}

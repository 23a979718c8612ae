package memory

import (
	"context"
	"fmt"
	"math"
	"time"
)

// Stats summarizes a user's stored memories.
type Stats struct {
	TotalMemories     int            `json:"total_memories"`
	Recent24h         int            `json:"recent_memories_24h"`
	AverageLength     float64        `json:"average_memory_length"`
	TopicDistribution map[string]int `json:"topic_distribution"`
}

// Stats computes aggregate statistics over all of a user's memories.
// Recent24h counts records touched within the last 24 hours; AverageLength
// is the mean character length of memory content, 0 when nothing is stored.
func (m *Manager) Stats(ctx context.Context, userID string) (*Stats, error) {
	memories, err := m.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list memories: %w", err)
	}

	st := &Stats{TopicDistribution: map[string]int{}}
	st.TotalMemories = len(memories)

	cutoff := time.Now().Add(-24 * time.Hour)
	totalLen := 0
	for _, mem := range memories {
		if mem.UpdatedAt.After(cutoff) {
			st.Recent24h++
		}
		totalLen += len(mem.Content)
		for _, t := range mem.Topics {
			st.TopicDistribution[t]++
		}
	}
	if st.TotalMemories > 0 {
		avg := float64(totalLen) / float64(st.TotalMemories)
		st.AverageLength = math.Round(avg*100) / 100
	}
	return st, nil
}

// Package memory implements the semantic memory manager: deduplicated
// storage, similarity-ranked search, and aggregate statistics over a user's
// memories. The manager holds no state between calls; every operation
// re-reads from the store.
package memory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/dpratt/recall/internal/classify"
	"github.com/dpratt/recall/internal/model"
	"github.com/dpratt/recall/internal/store"
)

// ErrEmptyContent is returned when a memory's text is empty or whitespace.
var ErrEmptyContent = errors.New("memory content is empty")

const (
	DefaultSimilarityThreshold = 0.8
	DefaultTopicBoost          = 0.2
)

// Config holds the manager's recognized options.
type Config struct {
	// SimilarityThreshold is the minimum score for a candidate to count as
	// a duplicate, and the default floor for search results.
	SimilarityThreshold float64

	// TopicBoost is the additive bonus for a topic match during search.
	TopicBoost float64

	// Debug enables verbose diagnostics; it changes no behavior.
	Debug bool
}

// DefaultConfig returns the standard manager configuration.
func DefaultConfig() Config {
	return Config{
		SimilarityThreshold: DefaultSimilarityThreshold,
		TopicBoost:          DefaultTopicBoost,
	}
}

// Validate rejects out-of-range options.
func (c Config) Validate() error {
	if c.SimilarityThreshold < 0 || c.SimilarityThreshold > 1 {
		return fmt.Errorf("similarity threshold must be in [0, 1], got %v", c.SimilarityThreshold)
	}
	if c.TopicBoost < 0 {
		return fmt.Errorf("topic boost must be >= 0, got %v", c.TopicBoost)
	}
	return nil
}

// Manager orchestrates memory operations for all users via the store.
type Manager struct {
	store      store.Store
	classifier *classify.Classifier
	cfg        Config
	log        zerolog.Logger

	// userLocks serializes the duplicate-check-then-insert sequence per
	// user within this process. Cross-process writers are not guarded.
	userLocks sync.Map
}

// New creates a Manager. The classifier may be nil, in which case untagged
// memories get no topics instead of classified ones.
func New(st store.Store, cl *classify.Classifier, cfg Config, log zerolog.Logger) (*Manager, error) {
	if cfg.SimilarityThreshold == 0 && cfg.TopicBoost == 0 {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Manager{store: st, classifier: cl, cfg: cfg, log: log}, nil
}

// Match pairs a memory with its similarity score against some query text.
type Match struct {
	Memory model.Memory `json:"memory"`
	Score  float64      `json:"score"`
}

// AddResult reports the outcome of Add. When Duplicate is true no record was
// inserted; Memory is the existing match and Score its similarity.
type AddResult struct {
	Memory    *model.Memory `json:"memory"`
	Duplicate bool          `json:"duplicate"`
	Score     float64       `json:"score,omitempty"`
}

// Add stores a new memory for the user unless a sufficiently similar one
// already exists. Empty or whitespace-only content is rejected with no store
// mutation. A nil topics slice means "classify the content"; pass an empty
// slice to store without topics.
func (m *Manager) Add(ctx context.Context, userID, content string, topics []string) (*AddResult, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	if topics == nil {
		topics = m.classifyTopics(content)
	}

	lock := m.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	existing, err := m.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list memories: %w", err)
	}

	if idx, score := bestMatch(content, existing); idx >= 0 && score >= m.cfg.SimilarityThreshold {
		matched := existing[idx]
		m.log.Debug().Str("user", userID).Str("matched_id", matched.ID).
			Float64("score", score).Msg("duplicate memory, skipping insert")
		return &AddResult{Memory: &matched, Duplicate: true, Score: score}, nil
	}

	mem, err := m.store.Put(ctx, store.PutParams{UserID: userID, Content: content, Topics: topics})
	if err != nil {
		return nil, fmt.Errorf("store memory: %w", err)
	}
	m.log.Debug().Str("user", userID).Str("id", mem.ID).
		Strs("topics", mem.Topics).Msg("stored memory")
	return &AddResult{Memory: mem}, nil
}

// Duplicate returns the best existing match for content when it meets the
// similarity threshold, or nil when the content is novel.
func (m *Manager) Duplicate(ctx context.Context, userID, content string) (*Match, error) {
	existing, err := m.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list memories: %w", err)
	}
	idx, score := bestMatch(content, existing)
	if idx < 0 || score < m.cfg.SimilarityThreshold {
		return nil, nil
	}
	return &Match{Memory: existing[idx], Score: score}, nil
}

// Update overwrites a memory's content and topics in place. A nil topics
// slice re-classifies the new content.
func (m *Manager) Update(ctx context.Context, userID, id, content string, topics []string) (*model.Memory, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	if topics == nil {
		topics = m.classifyTopics(content)
	}
	mem, err := m.store.Update(ctx, store.UpdateParams{
		ID: id, UserID: userID, Content: content, Topics: topics,
	})
	if err != nil {
		return nil, err
	}
	m.log.Debug().Str("user", userID).Str("id", id).Msg("updated memory")
	return mem, nil
}

// Delete removes a single memory.
func (m *Manager) Delete(ctx context.Context, userID, id string) error {
	if err := m.store.Delete(ctx, id, userID); err != nil {
		return err
	}
	m.log.Debug().Str("user", userID).Str("id", id).Msg("deleted memory")
	return nil
}

// Clear removes all of a user's memories. Idempotent: clearing a user with
// nothing stored succeeds with a zero count.
func (m *Manager) Clear(ctx context.Context, userID string) (int64, error) {
	n, err := m.store.Clear(ctx, userID)
	if err != nil {
		return 0, err
	}
	m.log.Debug().Str("user", userID).Int64("removed", n).Msg("cleared memories")
	return n, nil
}

// Get retrieves a single memory by id.
func (m *Manager) Get(ctx context.Context, userID, id string) (*model.Memory, error) {
	return m.store.Get(ctx, id, userID)
}

// List returns all of a user's memories in creation order.
func (m *Manager) List(ctx context.Context, userID string) ([]model.Memory, error) {
	return m.store.ListByUser(ctx, userID)
}

// classifyTopics labels content. Unclassifiable content keeps the "unknown"
// sentinel so stored topics always reflect the classifier's verdict.
func (m *Manager) classifyTopics(content string) []string {
	if m.classifier == nil {
		return []string{}
	}
	return m.classifier.Labels(content)
}

func (m *Manager) userLock(userID string) *sync.Mutex {
	v, _ := m.userLocks.LoadOrStore(userID, &sync.Mutex{})
	return v.(*sync.Mutex)
}

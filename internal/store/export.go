package store

import (
	"context"
	"time"

	"github.com/dpratt/recall/internal/model"
)

// ExportAll returns all memories, optionally filtered by user.
func (s *SQLiteStore) ExportAll(ctx context.Context, userID string) ([]model.Memory, error) {
	query := `SELECT id, user_id, content, topics, created_at, updated_at
	          FROM memories ORDER BY user_id, rowid`
	args := []interface{}{}
	if userID != "" {
		query = `SELECT id, user_id, content, topics, created_at, updated_at
		         FROM memories WHERE user_id = ? ORDER BY rowid`
		args = append(args, userID)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var memories []model.Memory
	for rows.Next() {
		m, err := scanMemory(rows)
		if err != nil {
			return nil, err
		}
		memories = append(memories, m)
	}
	return memories, rows.Err()
}

// Import stores memories from an export, preserving ids and timestamps.
// Records whose id already exists are skipped. Returns the imported count.
func (s *SQLiteStore) Import(ctx context.Context, memories []model.Memory) (int, error) {
	imported := 0
	for _, m := range memories {
		if m.ID == "" {
			m.ID = s.newID()
		}
		if m.CreatedAt.IsZero() {
			m.CreatedAt = time.Now().UTC()
		}
		if m.UpdatedAt.IsZero() {
			m.UpdatedAt = m.CreatedAt
		}
		res, err := s.db.ExecContext(ctx,
			`INSERT OR IGNORE INTO memories (id, user_id, content, topics, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			m.ID, m.UserID, m.Content, topicsJSON(m.Topics),
			m.CreatedAt.Format(time.RFC3339), m.UpdatedAt.Format(time.RFC3339))
		if err != nil {
			return imported, err
		}
		if n, _ := res.RowsAffected(); n > 0 {
			imported++
		}
	}
	return imported, nil
}

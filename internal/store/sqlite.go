package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/dpratt/recall/internal/model"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db      *sql.DB
	entropy *rand.Rand
}

// NewSQLiteStore opens or creates a SQLite database at the given path.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteStore{
		db:      db,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) newID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS memories (
		id         TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL,
		content    TEXT NOT NULL,
		topics     TEXT,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_memories_user ON memories(user_id);
	CREATE INDEX IF NOT EXISTS idx_memories_user_created ON memories(user_id, created_at);
	CREATE INDEX IF NOT EXISTS idx_memories_updated ON memories(updated_at DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteStore) Put(ctx context.Context, p PutParams) (*model.Memory, error) {
	now := time.Now().UTC()
	m := &model.Memory{
		ID:        s.newID(),
		UserID:    p.UserID,
		Content:   p.Content,
		Topics:    normTopics(p.Topics),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.insert(ctx, m); err != nil {
		return nil, fmt.Errorf("insert memory: %w", err)
	}
	return m, nil
}

func (s *SQLiteStore) insert(ctx context.Context, m *model.Memory) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO memories (id, user_id, content, topics, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		m.ID, m.UserID, m.Content, topicsJSON(m.Topics),
		m.CreatedAt.Format(time.RFC3339), m.UpdatedAt.Format(time.RFC3339))
	return err
}

func (s *SQLiteStore) Get(ctx context.Context, id, userID string) (*model.Memory, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, user_id, content, topics, created_at, updated_at
		 FROM memories WHERE id = ? AND user_id = ?`, id, userID)

	m, err := scanMemory(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *SQLiteStore) ListByUser(ctx context.Context, userID string) ([]model.Memory, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, content, topics, created_at, updated_at
		 FROM memories WHERE user_id = ? ORDER BY rowid`, userID)
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

func (s *SQLiteStore) Update(ctx context.Context, p UpdateParams) (*model.Memory, error) {
	now := time.Now().UTC()
	res, err := s.db.ExecContext(ctx,
		`UPDATE memories SET content = ?, topics = ?, updated_at = ?
		 WHERE id = ? AND user_id = ?`,
		p.Content, topicsJSON(p.Topics), now.Format(time.RFC3339), p.ID, p.UserID)
	if err != nil {
		return nil, fmt.Errorf("update memory: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, ErrNotFound
	}
	return s.Get(ctx, p.ID, p.UserID)
}

func (s *SQLiteStore) Delete(ctx context.Context, id, userID string) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM memories WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("delete memory: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLiteStore) Clear(ctx context.Context, userID string) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM memories WHERE user_id = ?`, userID)
	if err != nil {
		return 0, fmt.Errorf("clear memories: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}

func (s *SQLiteStore) Users(ctx context.Context) ([]UserCount, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT user_id, COUNT(*) AS cnt FROM memories GROUP BY user_id ORDER BY cnt DESC, user_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []UserCount
	for rows.Next() {
		var u UserCount
		if err := rows.Scan(&u.UserID, &u.Count); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanMemory(row scanner) (model.Memory, error) {
	var m model.Memory
	var topics sql.NullString
	var createdAt, updatedAt string

	err := row.Scan(&m.ID, &m.UserID, &m.Content, &topics, &createdAt, &updatedAt)
	if err != nil {
		return m, err
	}

	m.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	m.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	m.Topics = []string{}
	if topics.Valid && topics.String != "" {
		json.Unmarshal([]byte(topics.String), &m.Topics)
	}
	return m, nil
}

// normTopics collapses a nil topic list to an empty one.
func normTopics(topics []string) []string {
	if topics == nil {
		return []string{}
	}
	return topics
}

func topicsJSON(topics []string) string {
	b, _ := json.Marshal(normTopics(topics))
	return string(b)
}

package memory

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"automaxbot/internal/model"
)

const conversationSchema = `
CREATE TABLE IF NOT EXISTS conversation_messages (
	id         BIGSERIAL PRIMARY KEY,
	user_id    TEXT NOT NULL,
	role       TEXT NOT NULL,
	content    TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS conversation_messages_user_idx ON conversation_messages (user_id, id);
`

// PostgresStore is the durable backend, for deployments that want the log
// to survive a restart. Same window semantics as the volatile stores: the
// oldest rows are deleted once a user's log exceeds the limit.
type PostgresStore struct {
	pool  *pgxpool.Pool
	limit int
}

func NewPostgresStore(ctx context.Context, url string, limit int) (*PostgresStore, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	if _, err := pool.Exec(ctx, conversationSchema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &PostgresStore{pool: pool, limit: limit}, nil
}

func (s *PostgresStore) Append(ctx context.Context, userID string, msg model.ChatMessage) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO conversation_messages (user_id, role, content) VALUES ($1, $2, $3)`,
		userID, msg.Role, msg.Content,
	)
	if err != nil {
		return fmt.Errorf("append message: %w", err)
	}

	var count int
	if err := s.pool.QueryRow(ctx,
		`SELECT count(*) FROM conversation_messages WHERE user_id = $1`, userID,
	).Scan(&count); err != nil {
		return fmt.Errorf("count messages: %w", err)
	}
	if count <= s.limit {
		return nil
	}

	_, err = s.pool.Exec(ctx,
		`DELETE FROM conversation_messages
		 WHERE user_id = $1 AND id NOT IN (
			SELECT id FROM conversation_messages
			WHERE user_id = $1 ORDER BY id DESC LIMIT $2
		 )`,
		userID, s.limit-1,
	)
	if err != nil {
		return fmt.Errorf("trim window: %w", err)
	}
	return nil
}

func (s *PostgresStore) History(ctx context.Context, userID string) ([]model.ChatMessage, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT role, content FROM conversation_messages WHERE user_id = $1 ORDER BY id ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	defer rows.Close()

	var msgs []model.ChatMessage
	for rows.Next() {
		var m model.ChatMessage
		if err := rows.Scan(&m.Role, &m.Content); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}

func (s *PostgresStore) Reset(ctx context.Context, userID string) error {
	_, err := s.pool.Exec(ctx,
		`DELETE FROM conversation_messages WHERE user_id = $1`, userID)
	return err
}

func (s *PostgresStore) Close() {
	s.pool.Close()
}

package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"automaxbot/internal/model"
)

const (
	redisKeyPrefix  = "conversation:"
	redisSessionTTL = 30 * time.Minute
)

// RedisStore keeps each conversation as a JSON list under one key per user.
// The TTL slides on every append, so an idle conversation eventually
// expires on its own. Append is a read-modify-write, so a per-user lock
// serializes concurrent deliveries for the same conversation.
type RedisStore struct {
	client *redis.Client
	limit  int

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewRedisStore(client *redis.Client, limit int) *RedisStore {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &RedisStore{
		client: client,
		limit:  limit,
		locks:  make(map[string]*sync.Mutex),
	}
}

func (s *RedisStore) userLock(userID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[userID] = l
	}
	return l
}

func (s *RedisStore) Append(ctx context.Context, userID string, msg model.ChatMessage) error {
	l := s.userLock(userID)
	l.Lock()
	defer l.Unlock()

	log, err := s.History(ctx, userID)
	if err != nil {
		return err
	}
	log = trimWindow(append(log, msg), s.limit)

	b, err := json.Marshal(log)
	if err != nil {
		return fmt.Errorf("marshal conversation: %w", err)
	}
	if err := s.client.Set(ctx, redisKeyPrefix+userID, b, redisSessionTTL).Err(); err != nil {
		return fmt.Errorf("save conversation: %w", err)
	}
	return nil
}

func (s *RedisStore) History(ctx context.Context, userID string) ([]model.ChatMessage, error) {
	val, err := s.client.Get(ctx, redisKeyPrefix+userID).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load conversation: %w", err)
	}

	var msgs []model.ChatMessage
	if err := json.Unmarshal([]byte(val), &msgs); err != nil {
		return nil, fmt.Errorf("decode conversation: %w", err)
	}
	return msgs, nil
}

func (s *RedisStore) Reset(ctx context.Context, userID string) error {
	return s.client.Del(ctx, redisKeyPrefix+userID).Err()
}

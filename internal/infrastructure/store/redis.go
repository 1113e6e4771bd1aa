package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/mlakumulu/travel-admin/internal/core/domain"
)

const redisOpTimeout = 3 * time.Second

// RedisStore keeps the session in Redis. Used when the admin front end runs
// on shared terminals and the session has to follow the operator between
// machines. Same read semantics as FileStore: reads never fail, corrupted
// entries are erased.
type RedisStore struct {
	client *redis.Client
	prefix string
	log    zerolog.Logger
}

func NewRedisStore(client *redis.Client, prefix string, log zerolog.Logger) *RedisStore {
	if prefix == "" {
		prefix = "travelctl"
	}
	return &RedisStore{client: client, prefix: prefix, log: log}
}

func (s *RedisStore) SetToken(token string) error {
	ctx, cancel := opContext()
	defer cancel()
	if err := s.client.Set(ctx, s.key("token"), token, 0).Err(); err != nil {
		return fmt.Errorf("store: set token: %w", err)
	}
	return nil
}

func (s *RedisStore) Token() (string, bool) {
	ctx, cancel := opContext()
	defer cancel()
	token, err := s.client.Get(ctx, s.key("token")).Result()
	if err != nil {
		if err != redis.Nil {
			s.log.Warn().Err(err).Msg("session token read failed")
		}
		return "", false
	}
	if token == "" {
		return "", false
	}
	return token, true
}

func (s *RedisStore) SetUser(user *domain.User) error {
	b, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("store: encode user: %w", err)
	}
	ctx, cancel := opContext()
	defer cancel()
	if err := s.client.Set(ctx, s.key("user"), b, 0).Err(); err != nil {
		return fmt.Errorf("store: set user: %w", err)
	}
	return nil
}

func (s *RedisStore) User() (*domain.User, bool) {
	ctx, cancel := opContext()
	defer cancel()
	raw, err := s.client.Get(ctx, s.key("user")).Result()
	if err != nil {
		if err != redis.Nil {
			s.log.Warn().Err(err).Msg("session user read failed")
		}
		return nil, false
	}

	var user domain.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil || !user.Shaped() {
		s.log.Warn().Msg("removing corrupted session user entry")
		_ = s.client.Del(ctx, s.key("user")).Err()
		return nil, false
	}
	return &user, true
}

func (s *RedisStore) Clear() {
	ctx, cancel := opContext()
	defer cancel()
	if err := s.client.Del(ctx, s.key("token"), s.key("user")).Err(); err != nil {
		s.log.Warn().Err(err).Msg("failed to clear session entries")
	}
}

func (s *RedisStore) key(name string) string {
	return s.prefix + ":" + name
}

func opContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), redisOpTimeout)
}

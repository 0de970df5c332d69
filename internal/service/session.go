package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/digitpainter/vote-v4/internal/domain"
)

var ErrSessionNotFound = errors.New("session not found or expired")

// SessionStore keeps sessions in the cache under session:<token> with a
// fixed TTL. Expiry is handled entirely by the cache.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{
		client: client,
		ttl:    ttl,
	}
}

func (s *SessionStore) Save(ctx context.Context, session domain.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("json.Marshal -> %w", err)
	}

	if err = s.client.Set(ctx, sessionKey(session.AccessToken), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("s.client.Set -> %w", err)
	}

	return nil
}

func (s *SessionStore) Get(ctx context.Context, token string) (domain.Session, error) {
	payload, err := s.client.Get(ctx, sessionKey(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.Session{}, ErrSessionNotFound
		}

		return domain.Session{}, fmt.Errorf("s.client.Get -> %w", err)
	}

	var session domain.Session
	if err = json.Unmarshal(payload, &session); err != nil {
		return domain.Session{}, fmt.Errorf("json.Unmarshal -> %w", err)
	}

	return session, nil
}

func (s *SessionStore) Exists(ctx context.Context, token string) (bool, error) {
	n, err := s.client.Exists(ctx, sessionKey(token)).Result()
	if err != nil {
		return false, fmt.Errorf("s.client.Exists -> %w", err)
	}

	return n > 0, nil
}

func (s *SessionStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, sessionKey(token)).Err(); err != nil {
		return fmt.Errorf("s.client.Del -> %w", err)
	}

	return nil
}

func sessionKey(token string) string {
	return "session:" + token
}

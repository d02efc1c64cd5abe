package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"equipment_portal/models"
)

// Store keeps bearer-token sessions in Redis. The key TTL is the expiry:
// stale tokens vanish on their own, lookups after expiry simply miss.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

// Session is the identity a bearer token resolves to.
type Session struct {
	Username string      `json:"username"`
	Role     models.Role `json:"role"`
}

func key(token string) string { return fmt.Sprintf("portal:sess:%s", token) }

func (s *Store) Create(ctx context.Context, token string, sess Session) error {
	b, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, key(token), b, s.ttl).Err()
}

func (s *Store) Get(ctx context.Context, token string) (*Session, error) {
	b, err := s.rdb.Get(ctx, key(token)).Bytes()
	if err != nil {
		return nil, err
	}
	var sess Session
	if err := json.Unmarshal(b, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *Store) Delete(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, key(token)).Err()
}

package tokens

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

var ErrTokenNotFound = errors.New("reset token not found or expired")

// ResetStore holds password-reset tokens until they are consumed or
// expire.
type ResetStore interface {
	Issue(ctx context.Context, email string, ttl time.Duration) (string, error)
	Consume(ctx context.Context, token string) (string, error)
}

// RedisResetStore keys tokens under pwreset:<token> with a TTL; consuming
// a token deletes it so it is single-use.
type RedisResetStore struct {
	client *redis.Client
}

func NewRedisResetStore(client *redis.Client) *RedisResetStore {
	return &RedisResetStore{client: client}
}

func (s *RedisResetStore) Issue(
	ctx context.Context,
	email string,
	ttl time.Duration,
) (string, error) {

	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	token := hex.EncodeToString(buf)

	if err := s.client.Set(ctx, "pwreset:"+token, email, ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

func (s *RedisResetStore) Consume(
	ctx context.Context,
	token string,
) (string, error) {

	key := "pwreset:" + token

	email, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", ErrTokenNotFound
	}
	if err != nil {
		return "", err
	}

	s.client.Del(ctx, key)
	return email, nil
}

package redisstate

import (
	"AccelMailBot/internal/domain/repository"
	"AccelMailBot/internal/domain/schema"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const ttl = 24 * time.Hour

type SessionRepo struct {
	client *redis.Client
}

var _ repository.SessionRepository = (*SessionRepo)(nil)

func NewSessionRepo(client *redis.Client) *SessionRepo {
	return &SessionRepo{client: client}
}

func (r *SessionRepo) Get(ctx context.Context, userID int64) (schema.Session, bool, error) {
	v, err := r.client.Get(ctx, sessionKey(userID)).Result()
	if err == redis.Nil {
		return schema.Session{}, false, nil
	}
	if err != nil {
		return schema.Session{}, false, err
	}

	var sess schema.Session
	if err := json.Unmarshal([]byte(v), &sess); err != nil {
		return schema.Session{}, false, err
	}
	return sess, true, nil
}

func (r *SessionRepo) Set(ctx context.Context, userID int64, sess schema.Session) error {
	b, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, sessionKey(userID), b, ttl).Err()
}

func (r *SessionRepo) Delete(ctx context.Context, userID int64) error {
	return r.client.Del(ctx, sessionKey(userID)).Err()
}

func sessionKey(userID int64) string {
	return fmt.Sprintf("wizard:%d", userID)
}

package repository

import (
	"AccelMailBot/internal/domain/schema"
	"context"
)

type SessionRepository interface {
	Get(ctx context.Context, userID int64) (schema.Session, bool, error)
	Set(ctx context.Context, userID int64, session schema.Session) error
	Delete(ctx context.Context, userID int64) error
}

package repository

import (
	"AccelMailBot/internal/domain/schema"
	"context"
)

type CampaignRepository interface {
	Create(ctx context.Context, userID int64, campaign schema.Campaign) (string, error)
	AttachUpload(ctx context.Context, userID int64, campaignID string, file schema.UploadedFileMeta) error
}

type UploadStore interface {
	Put(ctx context.Context, path string, data []byte, contentType string) error
	DownloadURL(ctx context.Context, path string) (string, error)
}

// FileFetcher retrieves the raw bytes behind a chat file reference.
type FileFetcher interface {
	Fetch(ctx context.Context, fileID string) ([]byte, error)
}

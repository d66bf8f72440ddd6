package firebasestore

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"cloud.google.com/go/storage"

	"AccelMailBot/internal/domain/repository"
)

const downloadURLTTL = 7 * 24 * time.Hour

// UploadStore writes raw list files into the configured bucket.
type UploadStore struct {
	conn *Connector
}

var _ repository.UploadStore = (*UploadStore)(nil)

func NewUploadStore(conn *Connector) *UploadStore {
	return &UploadStore{conn: conn}
}

func (s *UploadStore) Put(ctx context.Context, path string, data []byte, contentType string) error {
	w := s.conn.bucket.Object(path).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return fmt.Errorf("error writing object %s: %w", path, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("error closing object %s: %w", path, err)
	}
	return nil
}

func (s *UploadStore) DownloadURL(ctx context.Context, path string) (string, error) {
	url, err := s.conn.bucket.SignedURL(path, &storage.SignedURLOptions{
		Method:  http.MethodGet,
		Expires: time.Now().Add(downloadURLTTL),
	})
	if err != nil {
		return "", fmt.Errorf("error signing url for %s: %w", path, err)
	}
	return url, nil
}

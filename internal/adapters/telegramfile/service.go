package telegramfile

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"AccelMailBot/internal/domain/repository"
)

// fileResponse is the Telegram getFile envelope.
type fileResponse struct {
	Ok     bool `json:"ok"`
	Result struct {
		FileID   string `json:"file_id"`
		FileSize int    `json:"file_size"`
		FilePath string `json:"file_path"`
	} `json:"result"`
}

// Service downloads attached documents through the Telegram file API so the
// submission gateway can re-home them in object storage.
type Service struct {
	token   string
	baseURL string
	http    *http.Client
}

var _ repository.FileFetcher = (*Service)(nil)

func New(token string) *Service {
	return &Service{
		token:   token,
		baseURL: "https://api.telegram.org",
		http:    http.DefaultClient,
	}
}

// FileURL converts a Telegram file ID to a downloadable URL.
func (s *Service) FileURL(ctx context.Context, fileID string) (string, error) {
	endpoint := fmt.Sprintf("%s/bot%s/getFile?file_id=%s", s.baseURL, s.token, fileID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("error building getFile request: %w", err)
	}

	resp, err := s.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("error getting file path: %w", err)
	}
	defer resp.Body.Close()

	var fr fileResponse
	if err := json.NewDecoder(resp.Body).Decode(&fr); err != nil {
		return "", fmt.Errorf("error decoding getFile response: %w", err)
	}
	if !fr.Ok || fr.Result.FilePath == "" {
		return "", fmt.Errorf("couldn't retrieve file path for file ID: %s", fileID)
	}

	return fmt.Sprintf("%s/file/bot%s/%s", s.baseURL, s.token, fr.Result.FilePath), nil
}

func (s *Service) Fetch(ctx context.Context, fileID string) ([]byte, error) {
	fileURL, err := s.FileURL(ctx, fileID)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fileURL, nil)
	if err != nil {
		return nil, fmt.Errorf("error building download request: %w", err)
	}

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error downloading file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("file download returned %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading file body: %w", err)
	}
	return data, nil
}

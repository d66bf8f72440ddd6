package submit

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"AccelMailBot/internal/domain/repository"
	"AccelMailBot/internal/domain/schema"
)

// Service is the submission gateway: it snapshots the draft into the
// document store and, when a list file was attached, moves the payload
// into object storage and patches the record with retrieval metadata.
type Service struct {
	campaigns repository.CampaignRepository
	uploads   repository.UploadStore
	files     repository.FileFetcher
	appID     string
}

func New(campaigns repository.CampaignRepository, uploads repository.UploadStore, files repository.FileFetcher, appID string) *Service {
	return &Service{campaigns: campaigns, uploads: uploads, files: files, appID: appID}
}

// Submit persists the campaign request. If any storage step fails after the
// record is created, the record stays in the store without its file
// reference; there is no rollback.
func (s *Service) Submit(ctx context.Context, userID int64, draft schema.CampaignDraft) (string, error) {
	record := schema.NewCampaign(draft)

	campaignID, err := s.campaigns.Create(ctx, userID, record)
	if err != nil {
		return "", fmt.Errorf("create campaign record: %w", err)
	}

	if draft.UploadedList == nil {
		return campaignID, nil
	}

	list := draft.UploadedList
	data, err := s.files.Fetch(ctx, list.FileID)
	if err != nil {
		return "", fmt.Errorf("fetch list payload: %w", err)
	}

	path := fmt.Sprintf("applications/%s/users/%d/campaigns/%s/uploads/%s", s.appID, userID, campaignID, list.Name)
	if err := s.uploads.Put(ctx, path, data, list.ContentType); err != nil {
		return "", fmt.Errorf("store list file: %w", err)
	}

	url, err := s.uploads.DownloadURL(ctx, path)
	if err != nil {
		return "", fmt.Errorf("resolve list file url: %w", err)
	}

	meta := schema.UploadedFileMeta{
		Name:        list.Name,
		Path:        path,
		DownloadURL: url,
		ContentType: list.ContentType,
		Size:        list.Size,
	}
	if err := s.campaigns.AttachUpload(ctx, userID, campaignID, meta); err != nil {
		return "", fmt.Errorf("attach upload metadata: %w", err)
	}

	log.Info().Str("campaign", campaignID).Int64("user", userID).Msg("campaign submitted with list file")
	return campaignID, nil
}

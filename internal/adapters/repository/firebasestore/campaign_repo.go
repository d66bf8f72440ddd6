package firebasestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"

	"AccelMailBot/internal/domain/repository"
	"AccelMailBot/internal/domain/schema"
)

// CampaignRepo persists campaign records under
// applications/{appID}/users/{userID}/campaigns.
type CampaignRepo struct {
	conn  *Connector
	appID string
}

var _ repository.CampaignRepository = (*CampaignRepo)(nil)

func NewCampaignRepo(conn *Connector, appID string) *CampaignRepo {
	return &CampaignRepo{conn: conn, appID: appID}
}

func (r *CampaignRepo) Create(ctx context.Context, userID int64, campaign schema.Campaign) (string, error) {
	ref, _, err := r.conn.firestore.Collection(r.campaignsPath(userID)).Add(ctx, campaign)
	if err != nil {
		return "", fmt.Errorf("error creating campaign: %w", err)
	}
	return ref.ID, nil
}

func (r *CampaignRepo) AttachUpload(ctx context.Context, userID int64, campaignID string, file schema.UploadedFileMeta) error {
	doc := r.conn.firestore.Collection(r.campaignsPath(userID)).Doc(campaignID)
	_, err := doc.Update(ctx, []firestore.Update{
		{Path: "uploadedListFile", Value: file},
	})
	if err != nil {
		return fmt.Errorf("error updating campaign %s: %w", campaignID, err)
	}
	return nil
}

func (r *CampaignRepo) campaignsPath(userID int64) string {
	return fmt.Sprintf("applications/%s/users/%d/campaigns", r.appID, userID)
}

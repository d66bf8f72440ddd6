package submit

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"AccelMailBot/internal/domain/schema"
)

type fakeCampaigns struct {
	created  []schema.Campaign
	attached map[string]schema.UploadedFileMeta

	createErr error
	attachErr error
}

func (f *fakeCampaigns) Create(_ context.Context, _ int64, c schema.Campaign) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.created = append(f.created, c)
	return fmt.Sprintf("camp-%d", len(f.created)), nil
}

func (f *fakeCampaigns) AttachUpload(_ context.Context, _ int64, campaignID string, meta schema.UploadedFileMeta) error {
	if f.attachErr != nil {
		return f.attachErr
	}
	if f.attached == nil {
		f.attached = map[string]schema.UploadedFileMeta{}
	}
	f.attached[campaignID] = meta
	return nil
}

type fakeUploads struct {
	objects map[string][]byte
	putErr  error
}

func (f *fakeUploads) Put(_ context.Context, path string, data []byte, _ string) error {
	if f.putErr != nil {
		return f.putErr
	}
	if f.objects == nil {
		f.objects = map[string][]byte{}
	}
	f.objects[path] = data
	return nil
}

func (f *fakeUploads) DownloadURL(_ context.Context, path string) (string, error) {
	return "https://files.example/" + path, nil
}

type fakeFetcher struct {
	data []byte
	err  error
}

func (f *fakeFetcher) Fetch(_ context.Context, _ string) ([]byte, error) {
	return f.data, f.err
}

func draftWithList() schema.CampaignDraft {
	d := schema.DefaultDraft()
	d.Source = schema.SourceUpload
	d.UploadedList = &schema.UploadedListRef{
		Name:        "customers.csv",
		FileID:      "tg-file-9",
		ContentType: "text/csv",
		Size:        64,
	}
	return d
}

func TestSubmitWithoutList(t *testing.T) {
	campaigns := &fakeCampaigns{}
	svc := New(campaigns, &fakeUploads{}, &fakeFetcher{}, "app-1")

	d := schema.DefaultDraft()
	d.Source = schema.SourceEDDM

	id, err := svc.Submit(context.Background(), 42, d)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if id != "camp-1" {
		t.Fatalf("campaign id = %q", id)
	}
	if len(campaigns.attached) != 0 {
		t.Fatal("no upload metadata expected without a list")
	}
	if campaigns.created[0].Status != schema.CampaignStatusSubmitted {
		t.Fatalf("status = %q", campaigns.created[0].Status)
	}
}

func TestSubmitWithListStoresPayloadAndMetadata(t *testing.T) {
	campaigns := &fakeCampaigns{}
	uploads := &fakeUploads{}
	fetcher := &fakeFetcher{data: []byte("FirstName,LastName\nJane,Doe\n")}
	svc := New(campaigns, uploads, fetcher, "app-1")

	id, err := svc.Submit(context.Background(), 42, draftWithList())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	wantPath := "applications/app-1/users/42/campaigns/camp-1/uploads/customers.csv"
	if _, ok := uploads.objects[wantPath]; !ok {
		t.Fatalf("payload not stored at %q; objects: %v", wantPath, uploads.objects)
	}

	meta, ok := campaigns.attached[id]
	if !ok {
		t.Fatal("metadata not attached")
	}
	if meta.Path != wantPath {
		t.Fatalf("meta path = %q, want %q", meta.Path, wantPath)
	}
	if meta.DownloadURL != "https://files.example/"+wantPath {
		t.Fatalf("meta url = %q", meta.DownloadURL)
	}
	if meta.Name != "customers.csv" || meta.ContentType != "text/csv" || meta.Size != 64 {
		t.Fatalf("meta = %+v", meta)
	}
}

func TestSubmitCreateFailure(t *testing.T) {
	campaigns := &fakeCampaigns{createErr: errors.New("firestore down")}
	svc := New(campaigns, &fakeUploads{}, &fakeFetcher{}, "app-1")

	if _, err := svc.Submit(context.Background(), 42, draftWithList()); err == nil {
		t.Fatal("expected an error")
	}
}

func TestSubmitFetchFailureLeavesRecord(t *testing.T) {
	campaigns := &fakeCampaigns{}
	svc := New(campaigns, &fakeUploads{}, &fakeFetcher{err: errors.New("telegram timeout")}, "app-1")

	_, err := svc.Submit(context.Background(), 42, draftWithList())
	if err == nil {
		t.Fatal("expected an error")
	}
	// The record stays in the store without its file reference.
	if len(campaigns.created) != 1 {
		t.Fatalf("created = %d records, want 1", len(campaigns.created))
	}
	if len(campaigns.attached) != 0 {
		t.Fatal("no metadata should be attached after a fetch failure")
	}
}

func TestSubmitStoreFailureLeavesRecord(t *testing.T) {
	campaigns := &fakeCampaigns{}
	uploads := &fakeUploads{putErr: errors.New("bucket unavailable")}
	svc := New(campaigns, uploads, &fakeFetcher{data: []byte("x")}, "app-1")

	if _, err := svc.Submit(context.Background(), 42, draftWithList()); err == nil {
		t.Fatal("expected an error")
	}
	if len(campaigns.created) != 1 {
		t.Fatalf("created = %d records, want 1", len(campaigns.created))
	}
}

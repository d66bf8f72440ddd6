package firebasestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

// Connector holds the Firebase app plus the Firestore and Cloud Storage
// handles the campaign and upload repositories share.
type Connector struct {
	app       *firebase.App
	firestore *firestore.Client
	bucket    *storage.BucketHandle
}

func NewConnector(ctx context.Context, projectID, storageBucket, credentialsFile string) (*Connector, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	config := &firebase.Config{
		ProjectID:     projectID,
		StorageBucket: storageBucket,
	}
	app, err := firebase.NewApp(ctx, config, opts...)
	if err != nil {
		return nil, fmt.Errorf("error initializing Firebase app: %w", err)
	}

	fsClient, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting Firestore client: %w", err)
	}

	storageClient, err := app.Storage(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting Storage client: %w", err)
	}
	bucket, err := storageClient.DefaultBucket()
	if err != nil {
		return nil, fmt.Errorf("error getting default bucket: %w", err)
	}

	return &Connector{
		app:       app,
		firestore: fsClient,
		bucket:    bucket,
	}, nil
}

func (c *Connector) Close() error {
	return c.firestore.Close()
}

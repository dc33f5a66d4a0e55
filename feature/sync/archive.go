package sync

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"

	"roster-sync/core/storage"

	"github.com/minio/minio-go/v7"
)

// Archiver writes run reports to object storage.
type Archiver struct {
	client storage.Client
	bucket string
	prefix string
}

// NewArchiver creates an Archiver writing under prefix in bucket.
func NewArchiver(client storage.Client, bucket, prefix string) *Archiver {
	return &Archiver{client: client, bucket: bucket, prefix: prefix}
}

// Archive uploads report as JSON and returns the object key.
func (a *Archiver) Archive(ctx context.Context, report *Report) (string, error) {
	key := path.Join(a.prefix, report.RosterDate, report.RunID+".json")

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode report: %w", err)
	}

	_, err = a.client.PutObject(ctx, a.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload report %s: %w", key, err)
	}
	return key, nil
}

// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client to provide the small set of operations the sync
// job needs: reading the warehouse credential bundle and archiving run reports.
// This abstraction supports both AWS S3 and self-hosted MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (as seen in core/storage/mocks).
//
// # Operations
//
//   - BucketExists: Verifies access to the target bucket.
//   - PutObject: Uploads content (with size and options).
//   - GetObject: Retrieves content as a stream.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	rc, err := client.GetObject(ctx, "roster-sync", "secrets/warehouse.json", minio.GetObjectOptions{})
package storage

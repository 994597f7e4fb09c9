// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client, which talks to AWS S3, self-hosted MinIO and
// LocalStack alike. Only the operations the piece synchronizer needs are exposed.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (see core/storage/mocks).
//
//   - BucketExists: Probes the target bucket.
//   - MakeBucket: Creates the bucket if needed.
//   - PutObject: Uploads content (with size and content type).
//   - ListObjects: Lists objects under a prefix.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
package storage

package repository

import "context"

// ArtifactRepository publishes exported report files to object storage.
type ArtifactRepository interface {
	// CallerAccount returns the AWS account the profile resolves to.
	CallerAccount(ctx context.Context, profile string) (string, error)
	// Publish uploads the local file under bucket/key and returns its s3:// URI.
	Publish(ctx context.Context, profile, bucket, key, path string) (string, error)
}

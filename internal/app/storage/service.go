/*
Package storage presigns avatar object operations against S3-compatible storage.

The server never proxies avatar bytes: clients upload and download through
presigned URLs scoped to their profile's key.
*/
package storage

import (
	"context"
	"fmt"
	"time"
)

// Avatar key layout and limits.
const (
	avatarKeyPrefix = "avatars/"

	// MaxAvatarBytes bounds an avatar upload.
	MaxAvatarBytes int64 = 5 << 20

	// UploadExpiry is how long an upload URL stays valid.
	UploadExpiry = 10 * time.Minute

	// DownloadExpiry is how long a download URL stays valid.
	DownloadExpiry = 24 * time.Hour
)

// ServiceConfig holds the configuration required to connect to the storage service.
type ServiceConfig struct {
	S3BucketName      string
	S3Endpoint        string
	S3AccessKeyID     string
	S3SecretAccessKey string
}

// AvatarStore defines the public interface for avatar object storage.
type AvatarStore interface {
	// PresignUpload generates a pre-signed URL for uploading a profile's avatar.
	PresignUpload(ctx context.Context, profileID, mimeType string, fileSize int64) (string, error)

	// PresignDownload generates a pre-signed URL for fetching a profile's avatar.
	PresignDownload(ctx context.Context, profileID string) (string, error)

	// Delete removes a profile's avatar object.
	Delete(ctx context.Context, profileID string) error
}

// AvatarKey derives the object key for a profile's avatar.
func AvatarKey(profileID string) string {
	return avatarKeyPrefix + profileID
}

// NewAvatarStore is the factory function for AvatarStore.
// It initializes and returns a concrete implementation based on the provided configuration.
func NewAvatarStore(cfg ServiceConfig) (AvatarStore, error) {
	if cfg.S3BucketName == "" {
		return nil, fmt.Errorf("storage bucket not configured")
	}
	return newS3Client(cfg)
}

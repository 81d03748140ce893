package storage

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"

	"ukoradar/internal/pkg/logx"
)

// s3Client implements the AvatarStore interface, handling interactions with S3-compatible storage.
type s3Client struct {
	cfg    ServiceConfig
	client *s3.Client
	logger zerolog.Logger
}

// newS3Client initializes the S3 client using a custom configuration that supports S3-compatible endpoints.
func newS3Client(cfg ServiceConfig) (*s3Client, error) {
	sdkCfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKeyID,
			cfg.S3SecretAccessKey,
			"",
		)),
		config.WithRegion("auto"),
	)
	if err != nil {
		return nil, errors.New("failed to initialize S3 client configuration")
	}

	client := s3.NewFromConfig(sdkCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.S3Endpoint)
		o.UsePathStyle = true
	})

	return &s3Client{
		cfg:    cfg,
		client: client,
		logger: logx.Logger().With().Str("component", "AvatarStore").Logger(),
	}, nil
}

// PresignUpload implements AvatarStore.
func (c *s3Client) PresignUpload(ctx context.Context, profileID, mimeType string, fileSize int64) (string, error) {
	if fileSize <= 0 || fileSize > MaxAvatarBytes {
		return "", errors.New("avatar size out of bounds")
	}

	key := AvatarKey(profileID)
	presignClient := s3.NewPresignClient(c.client)

	resp, err := presignClient.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:        &c.cfg.S3BucketName,
		Key:           &key,
		ContentType:   &mimeType,
		ContentLength: &fileSize,
	}, s3.WithPresignExpires(UploadExpiry))
	if err != nil {
		c.logger.Error().Err(err).Str("key", key).Msg("Failed to presign avatar upload.")
		return "", errors.New("failed to generate presigned upload URL")
	}

	return resp.URL, nil
}

// PresignDownload implements AvatarStore.
func (c *s3Client) PresignDownload(ctx context.Context, profileID string) (string, error) {
	key := AvatarKey(profileID)
	presignClient := s3.NewPresignClient(c.client)

	resp, err := presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: &c.cfg.S3BucketName,
		Key:    &key,
	}, s3.WithPresignExpires(DownloadExpiry))
	if err != nil {
		c.logger.Error().Err(err).Str("key", key).Msg("Failed to presign avatar download.")
		return "", errors.New("failed to generate presigned URL")
	}

	return resp.URL, nil
}

// Delete implements AvatarStore.
func (c *s3Client) Delete(ctx context.Context, profileID string) error {
	key := AvatarKey(profileID)

	_, err := c.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: &c.cfg.S3BucketName,
		Key:    &key,
	})
	if err != nil {
		c.logger.Error().Err(err).Str("key", key).Msg("Failed to delete avatar object.")
		return errors.New("failed to delete avatar")
	}

	return nil
}

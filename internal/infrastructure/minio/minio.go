package minio

import (
	"context"
	"time"

	"github.com/dezh-tech/immortal/pkg/logger"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const connectTimeout = 10 * time.Second

type Client struct {
	MinioClient *minio.Client
	Bucket      string
}

// New connects to minio and creates the asset bucket when it is missing.
func New(cfg *ClientConfig) (*Client, error) {
	logger.Info("connecting to minio", "endpoint", cfg.Endpoint, "bucket", cfg.Bucket)

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:           credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:          cfg.Secure,
		TrailingHeaders: true,
	})
	if err != nil {
		logger.Error("failed to initialize minio client", "err", err)

		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, err
		}
		logger.Info("created minio bucket", "bucket", cfg.Bucket)
	}

	return &Client{
		MinioClient: client,
		Bucket:      cfg.Bucket,
	}, nil
}

// Ping checks that the asset bucket is reachable.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.MinioClient.BucketExists(ctx, c.Bucket)

	return err
}

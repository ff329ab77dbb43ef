// Package storage issues presigned object-storage URLs. Image bytes never
// pass through the backend; clients upload directly against the URL.
package storage

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/hoplog/hoplog/configs"
)

const uploadExpiry = 15 * time.Minute

type Client struct {
	minio  *minio.Client
	bucket string
}

func NewClient(conf *configs.Config) (*Client, error) {
	client, err := minio.New(conf.Storage.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(conf.Storage.AccessKey, conf.Storage.SecretKey, ""),
		Secure: conf.Storage.UseSSL,
	})
	if err != nil {
		return nil, err
	}

	return &Client{minio: client, bucket: conf.Storage.Bucket}, nil
}

// PresignUpload returns a PUT URL for a new object key derived from the
// caller-supplied filename. The key keeps the original extension only.
func (c *Client) PresignUpload(ctx context.Context, kind string, filename string) (string, string, error) {
	ext := strings.ToLower(path.Ext(filename))
	key := fmt.Sprintf("%s/%s%s", kind, uuid.NewString(), ext)

	presigned, err := c.minio.PresignedPutObject(ctx, c.bucket, key, uploadExpiry)
	if err != nil {
		return "", "", err
	}

	return presigned.String(), key, nil
}

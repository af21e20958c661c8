// Package collab implements the out-of-scope collaborator interfaces
// the core packages are built to expose to, but never depend on:
// remote object fetching, presigned URL issuance, JSON-RPC dispatch,
// and progress rendering.
package collab

import (
	"context"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"
)

// ObjectFetcher retrieves a remote log object into a local reader so
// the extraction pipeline can treat it as just another LineSource.
type ObjectFetcher interface {
	Fetch(ctx context.Context, bucket, key string) (io.ReadCloser, error)
}

// PresignedURLIssuer issues a time-limited GET URL for a result object
// (Findings JSON, identity output, stats JSON) written back to the
// object store.
type PresignedURLIssuer interface {
	PresignGET(ctx context.Context, bucket, key string, expirySeconds int) (string, error)
}

// MinioStore implements ObjectFetcher and PresignedURLIssuer against an
// S3-compatible endpoint.
type MinioStore struct {
	client *minio.Client
}

// NewMinioStore dials an S3-compatible endpoint with static credentials.
func NewMinioStore(endpoint, accessKey, secretKey string, useSSL bool) (*MinioStore, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "dialing object store %q", endpoint)
	}

	return &MinioStore{client: client}, nil
}

// Fetch implements ObjectFetcher.
func (s *MinioStore) Fetch(ctx context.Context, bucket, key string) (io.ReadCloser, error) {
	obj, err := s.client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.Wrapf(err, "fetching object %s/%s", bucket, key)
	}

	return obj, nil
}

// PresignGET implements PresignedURLIssuer.
func (s *MinioStore) PresignGET(ctx context.Context, bucket, key string, expirySeconds int) (string, error) {
	u, err := s.client.PresignedGetObject(ctx, bucket, key, secondsToDuration(expirySeconds), nil)
	if err != nil {
		return "", errors.Wrapf(err, "presigning object %s/%s", bucket, key)
	}

	return u.String(), nil
}

func secondsToDuration(seconds int) time.Duration {
	return time.Duration(seconds) * time.Second
}

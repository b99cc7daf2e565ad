package minio

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/Bot444cyber/UI-Management-System-v1-sub001/internal/config"
	"github.com/Bot444cyber/UI-Management-System-v1-sub001/internal/core/domain"
)

// Adapter is an adapter for minio
type Adapter struct {
	client *minio.Client
	config config.MinioConfig
	logger *slog.Logger
}

// NewAdapter returns Adapter
func NewAdapter(ctx context.Context, cfg config.MinioConfig, logger *slog.Logger) (*Adapter, error) {
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, domain.ErrMissingCredentials
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.BucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to check if bucket exists: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.BucketName, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return &Adapter{client: client, config: cfg, logger: logger}, nil
}

// Upload streams a local file into the bucket under a fresh object key and
// returns the stable reference id plus the public URL the key resolves to.
// isPublic attaches a public-read grant so browsers can fetch the object
// without a signed URL.
func (a *Adapter) Upload(ctx context.Context, localPath, displayName, mimeType string, isPublic bool) (*domain.UploadResult, error) {
	remoteID := uuid.New().String() + strings.ToLower(filepath.Ext(displayName))

	opts := minio.PutObjectOptions{
		ContentType: mimeType,
		UserMetadata: map[string]string{
			"display-name": displayName,
		},
	}
	if isPublic {
		opts.UserMetadata["x-amz-acl"] = "public-read"
	}

	if _, err := a.client.FPutObject(ctx, a.config.BucketName, remoteID, localPath, opts); err != nil {
		return nil, fmt.Errorf("%w: failed to upload object: %w", domain.ErrObjectStore, err)
	}

	a.logger.Info("object uploaded",
		slog.String("remoteID", remoteID),
		slog.String("bucket", a.config.BucketName),
		slog.Bool("public", isPublic))

	return &domain.UploadResult{
		RemoteID:  remoteID,
		PublicURL: a.publicURL(remoteID),
	}, nil
}

// Delete deletes an object from storage
func (a *Adapter) Delete(ctx context.Context, remoteID string) error {
	err := a.client.RemoveObject(ctx, a.config.BucketName, remoteID, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("%w: failed to delete object: %w", domain.ErrObjectStore, err)
	}

	a.logger.Info("object deleted",
		slog.String("remoteID", remoteID),
		slog.String("bucket", a.config.BucketName))

	return nil
}

// FetchStream retrieves an object as a stream. The object is stat'ed first
// so a missing key surfaces as domain.ErrObjectNotFound before any byte is
// handed to the caller.
func (a *Adapter) FetchStream(ctx context.Context, remoteID string) (io.ReadCloser, error) {
	if _, err := a.client.StatObject(ctx, a.config.BucketName, remoteID, minio.StatObjectOptions{}); err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, fmt.Errorf("%w: %s", domain.ErrObjectNotFound, remoteID)
		}
		return nil, fmt.Errorf("%w: failed to stat object: %w", domain.ErrObjectStore, err)
	}

	object, err := a.client.GetObject(ctx, a.config.BucketName, remoteID, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get object: %w", domain.ErrObjectStore, err)
	}
	return object, nil
}

func (a *Adapter) publicURL(remoteID string) string {
	if a.config.PublicBase != "" {
		return fmt.Sprintf("%s/%s", strings.TrimRight(a.config.PublicBase, "/"), remoteID)
	}

	scheme := "http"
	if a.config.UseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, a.config.Endpoint, a.config.BucketName, remoteID)
}

// Package storage implements product photo storage on top of gocloud.dev
// blob buckets.
package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"path"
	"strings"

	"retailpos/config"
	domainerrors "retailpos/internal/domain/errors"
	"retailpos/internal/domain/lifecycle"
	"retailpos/internal/domain/service"
	"retailpos/internal/errors"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type blobPhotoStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	maxUploadSize int64
	logger        *slog.Logger
}

// New opens the configured bucket and returns the photo storage service.
// A missing or unreachable bucket fails startup; the service never runs
// with photo uploads silently disabled.
func New(params Params) (service.PhotoStorage, error) {
	storageCfg := params.Config.Storage
	if storageCfg == nil || strings.TrimSpace(storageCfg.BucketURL) == "" {
		return nil, domainerrors.ErrStorageNotConfigured
	}

	openCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(openCtx, storageCfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", storageCfg.BucketURL)
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &blobPhotoStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(storageCfg.PublicBaseURL, "/"),
		maxUploadSize: int64(storageCfg.MaxUploadMB) << 20,
		logger:        params.Logger,
	}, nil
}

// Upload validates the payload and writes it under a fresh key. The key keeps
// the original extension so the serving side can infer content type.
func (storage *blobPhotoStorage) Upload(ctx context.Context, filename string, payload []byte) (string, error) {
	if len(payload) == 0 {
		return "", domainerrors.ErrValidationFailed.WithDetails("photo payload is empty")
	}
	if int64(len(payload)) > storage.maxUploadSize {
		return "", domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("photo exceeds the %d MB upload limit", storage.maxUploadSize>>20))
	}

	detected := mimetype.Detect(payload)
	if !strings.HasPrefix(detected.String(), "image/") {
		return "", domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("unsupported content type %s, expected an image", detected.String()))
	}

	key := buildObjectKey(filename, detected.Extension())

	writeOpts := &blob.WriterOptions{ContentType: detected.String()}
	if err := storage.bucket.WriteAll(ctx, key, payload, writeOpts); err != nil {
		return "", domainerrors.NewDatabaseExecuteError(err, "failed to write photo to bucket")
	}

	storage.logger.DebugContext(ctx, "photo uploaded",
		slog.String("key", key),
		slog.Int("size", len(payload)))

	return storage.objectURL(key), nil
}

// Delete removes the object the URL points at.
func (storage *blobPhotoStorage) Delete(ctx context.Context, photoURL string) error {
	key, err := storage.keyFromURL(photoURL)
	if err != nil {
		return err
	}

	if err := storage.bucket.Delete(ctx, key); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete photo from bucket")
	}

	return nil
}

// List enumerates every object in the bucket.
func (storage *blobPhotoStorage) List(ctx context.Context) ([]service.StoredObject, error) {
	var objects []service.StoredObject

	iter := storage.bucket.List(nil)
	for {
		obj, err := iter.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list bucket objects")
		}
		if obj.IsDir {
			continue
		}

		objects = append(objects, service.StoredObject{
			Key:  obj.Key,
			URL:  storage.objectURL(obj.Key),
			Size: obj.Size,
		})
	}

	return objects, nil
}

func (storage *blobPhotoStorage) objectURL(key string) string {
	if storage.publicBaseURL == "" {
		return key
	}

	return storage.publicBaseURL + "/" + key
}

// keyFromURL recovers the object key from a URL produced by objectURL.
func (storage *blobPhotoStorage) keyFromURL(photoURL string) (string, error) {
	if storage.publicBaseURL != "" {
		if rest, ok := strings.CutPrefix(photoURL, storage.publicBaseURL+"/"); ok {
			return rest, nil
		}
	}

	parsed, err := url.Parse(photoURL)
	if err != nil || parsed.Path == "" {
		return "", domainerrors.ErrValidationFailed.WithDetails("photo URL does not belong to this bucket")
	}

	return strings.TrimPrefix(parsed.Path, "/"), nil
}

// buildObjectKey derives a collision-free key. The sanitized original name is
// kept as a prefix so bucket listings stay human-readable.
func buildObjectKey(filename, detectedExt string) string {
	base := strings.TrimSuffix(path.Base(filename), path.Ext(filename))
	base = sanitizeKeySegment(base)
	if base == "" {
		base = "photo"
	}

	ext := path.Ext(filename)
	if ext == "" {
		ext = detectedExt
	}

	return fmt.Sprintf("%s-%s%s", base, uuid.NewString(), ext)
}

func sanitizeKeySegment(s string) string {
	var cleaned strings.Builder
	cleaned.Grow(len(s))

	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			cleaned.WriteRune(r)
		case r == '-' || r == '_' || r == '.':
			cleaned.WriteRune(r)
		case r == ' ':
			cleaned.WriteRune('-')
		}
	}

	return cleaned.String()
}

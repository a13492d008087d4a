package storage

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	domainerrors "retailpos/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

// tiny valid PNG header plus padding, enough for mimetype sniffing
var pngPayload = append([]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}, make([]byte, 64)...)

func newTestStorage(t *testing.T) *blobPhotoStorage {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	return &blobPhotoStorage{
		bucket:        bucket,
		publicBaseURL: "https://cdn.example.com/photos",
		maxUploadSize: 1 << 20,
		logger:        slog.Default(),
	}
}

func TestUpload_StoresImageAndReturnsPublicURL(t *testing.T) {
	storage := newTestStorage(t)

	url, err := storage.Upload(context.Background(), "Front View.png", pngPayload)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "https://cdn.example.com/photos/front-view-"))
	assert.True(t, strings.HasSuffix(url, ".png"))

	objects, err := storage.List(context.Background())
	require.NoError(t, err)
	require.Len(t, objects, 1)
	assert.Equal(t, int64(len(pngPayload)), objects[0].Size)
	assert.Equal(t, url, objects[0].URL)
}

func TestUpload_RejectsNonImagePayload(t *testing.T) {
	storage := newTestStorage(t)

	_, err := storage.Upload(context.Background(), "notes.txt", []byte("plain text, not a picture"))

	require.Error(t, err)
	appErr, ok := err.(domainerrors.AppError)
	require.True(t, ok)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestUpload_RejectsOversizedPayload(t *testing.T) {
	storage := newTestStorage(t)
	storage.maxUploadSize = 16

	_, err := storage.Upload(context.Background(), "big.png", pngPayload)

	require.Error(t, err)
	appErr, ok := err.(domainerrors.AppError)
	require.True(t, ok)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestDelete_RemovesUploadedObject(t *testing.T) {
	storage := newTestStorage(t)

	url, err := storage.Upload(context.Background(), "shelf.png", pngPayload)
	require.NoError(t, err)

	require.NoError(t, storage.Delete(context.Background(), url))

	objects, err := storage.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, objects)
}

func TestBuildObjectKey_FallsBackToDetectedExtension(t *testing.T) {
	key := buildObjectKey("photo", ".png")

	assert.True(t, strings.HasPrefix(key, "photo-"))
	assert.True(t, strings.HasSuffix(key, ".png"))
}

package assets

import (
	"context"
	"log/slog"
	"scrapbook/domain/mimetypes"
	"scrapbook/errors"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func newBlobStore(t *testing.T) *BlobStore {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewBlobStore(db, "http://localhost:8080/assets/", logs.GetLoggerFromLevel(slog.LevelDebug))
}

func TestBlobStore_Upload_Open_Resolve(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	store := newBlobStore(t)
	data := []byte{0x89, 'P', 'N', 'G'}

	// When a picture is uploaded
	ref, err := store.Upload(ctx, "profile-pictures/u1/pic 1.png", data, mimetypes.ImagePNG)

	// Then the reference is opaque and resolvable
	req.NoError(err)
	req.Equal("blob://profile-pictures/u1/pic 1.png", ref)

	content, contentType, err := store.Open(ctx, ref)
	req.NoError(err)
	req.Equal(data, content)
	req.Equal(mimetypes.ImagePNG, contentType)

	url, err := store.ResolveDownloadURL(ctx, ref)
	req.NoError(err)
	req.Equal("http://localhost:8080/assets/profile-pictures/u1/pic%201.png", url)
}

func TestBlobStore_Delete(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	store := newBlobStore(t)
	ref, err := store.Upload(ctx, "a/b.jpg", []byte("x"), mimetypes.ImageJPEG)
	req.NoError(err)

	req.NoError(store.Delete(ctx, ref))
	req.NoError(store.Delete(ctx, ref))

	_, err = store.ResolveDownloadURL(ctx, ref)
	req.ErrorIs(err, errors.ErrNotFound)
}

func TestBlobStore_Rejects_Bad_Paths_And_References(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	store := newBlobStore(t)

	for _, p := range []string{"", "/etc/passwd", "../outside", "a/../../b", "."} {
		_, err := store.Upload(ctx, p, []byte("x"), mimetypes.ImagePNG)
		req.ErrorIs(err, errors.ErrValidation, p)
	}
	_, err := store.ResolveDownloadURL(ctx, "gs://bucket/a.png")
	req.ErrorIs(err, errors.ErrValidation)
}

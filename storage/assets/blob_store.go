package assets

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/url"
	"scrapbook/contract"
	"scrapbook/domain/mimetypes"
	"scrapbook/errors"
	"strings"

	"github.com/dgraph-io/badger/v4"
)

const (
	blobScheme     = "blob://"
	blobPrefix     = "blob:"
	blobMetaPrefix = "blobmeta:"
)

// BlobStore keeps assets in the same Badger instance as the documents.
// Download URLs are built under baseURL, serving them is left to the presentation layer.
type BlobStore struct {
	db      *badger.DB
	baseURL string
	log     *slog.Logger
}

var _ contract.IAssetStorage = (*BlobStore)(nil)

func NewBlobStore(db *badger.DB, baseURL string, log *slog.Logger) *BlobStore {
	return &BlobStore{db: db, baseURL: strings.TrimRight(baseURL, "/"), log: log}
}

// Upload overwrites any asset already stored at p.
func (b *BlobStore) Upload(ctx context.Context, p string, data []byte, contentType mimetypes.MIME) (string, error) {
	cleaned, err := cleanPath(p)
	if err != nil {
		return "", err
	}
	if err = ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %v", errors.ErrUpload, err)
	}
	err = b.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(blobPrefix+cleaned), data); err != nil {
			return err
		}
		return txn.Set([]byte(blobMetaPrefix+cleaned), []byte(contentType))
	})
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", errors.ErrUpload, cleaned, err)
	}
	b.log.Debug("Asset stored", "path", cleaned, "bytes", len(data), "content_type", contentType)
	return blobScheme + cleaned, nil
}

func (b *BlobStore) ResolveDownloadURL(ctx context.Context, ref string) (string, error) {
	p, err := parseBlobRef(ref)
	if err != nil {
		return "", err
	}
	if _, _, err = b.Open(ctx, ref); err != nil {
		return "", err
	}
	segments := strings.Split(p, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return b.baseURL + "/" + strings.Join(segments, "/"), nil
}

// Open returns the asset bytes and their media type.
func (b *BlobStore) Open(ctx context.Context, ref string) ([]byte, mimetypes.MIME, error) {
	p, err := parseBlobRef(ref)
	if err != nil {
		return nil, mimetypes.Unknown, err
	}
	if err = ctx.Err(); err != nil {
		return nil, mimetypes.Unknown, fmt.Errorf("%w: %v", errors.ErrQuery, err)
	}
	var data []byte
	contentType := mimetypes.OctetStream
	err = b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(blobPrefix + p))
		if err != nil {
			return err
		}
		if data, err = item.ValueCopy(nil); err != nil {
			return err
		}
		meta, err := txn.Get([]byte(blobMetaPrefix + p))
		if err != nil {
			return nil
		}
		return meta.Value(func(val []byte) error {
			contentType = mimetypes.ToMIME(string(val))
			return nil
		})
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return nil, mimetypes.Unknown, fmt.Errorf("%w: asset %s", errors.ErrNotFound, ref)
	}
	if err != nil {
		return nil, mimetypes.Unknown, fmt.Errorf("%w: asset %s: %v", errors.ErrQuery, ref, err)
	}
	return data, contentType, nil
}

// Delete is idempotent.
func (b *BlobStore) Delete(ctx context.Context, ref string) error {
	p, err := parseBlobRef(ref)
	if err != nil {
		return err
	}
	if err = ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrWrite, err)
	}
	err = b.db.Update(func(txn *badger.Txn) error {
		if err := txn.Delete([]byte(blobPrefix + p)); err != nil {
			return err
		}
		return txn.Delete([]byte(blobMetaPrefix + p))
	})
	if err != nil {
		return fmt.Errorf("%w: asset %s: %v", errors.ErrWrite, ref, err)
	}
	return nil
}

func parseBlobRef(ref string) (string, error) {
	if !strings.HasPrefix(ref, blobScheme) {
		return "", fmt.Errorf("%w: not a blob reference %q", errors.ErrValidation, ref)
	}
	return cleanPath(strings.TrimPrefix(ref, blobScheme))
}

// BlobReference is the reference Upload returns for p.
func BlobReference(p string) string {
	return blobScheme + p
}

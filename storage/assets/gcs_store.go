package assets

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"scrapbook/contract"
	"scrapbook/domain/mimetypes"
	"scrapbook/errors"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

const gcsScheme = "gs://"

// GCSStore uploads assets to a Google Cloud Storage bucket.
// Objects are expected to be publicly readable, download URLs are not signed.
type GCSStore struct {
	client *storage.Client
	bucket string
	log    *slog.Logger
}

var _ contract.IAssetStorage = (*GCSStore)(nil)

// NewGCSClient creates a Google Cloud Storage client. If credentialsFile is empty, ADC is used.
func NewGCSClient(ctx context.Context, credentialsFile string) (*storage.Client, error) {
	if credentialsFile == "" {
		return storage.NewClient(ctx)
	}
	return storage.NewClient(ctx, option.WithCredentialsFile(credentialsFile))
}

func NewGCSStore(client *storage.Client, bucket string, log *slog.Logger) *GCSStore {
	return &GCSStore{client: client, bucket: bucket, log: log}
}

func (g *GCSStore) Upload(ctx context.Context, p string, data []byte, contentType mimetypes.MIME) (string, error) {
	objectPath, err := cleanPath(p)
	if err != nil {
		return "", err
	}
	wc := g.client.Bucket(g.bucket).Object(objectPath).NewWriter(ctx)
	wc.ContentType = string(contentType)
	wc.ChunkSize = 0 // small files, single request
	if _, err = wc.Write(data); err != nil {
		_ = wc.Close()
		return "", fmt.Errorf("%w: %s: %v", errors.ErrUpload, objectPath, err)
	}
	if err = wc.Close(); err != nil {
		return "", fmt.Errorf("%w: %s: %v", errors.ErrUpload, objectPath, err)
	}
	g.log.Debug("Asset uploaded", "bucket", g.bucket, "path", objectPath, "bytes", len(data))
	return GCSReference(g.bucket, objectPath), nil
}

func (g *GCSStore) ResolveDownloadURL(_ context.Context, ref string) (string, error) {
	bucket, objectPath, err := ParseGCSReference(ref)
	if err != nil {
		return "", err
	}
	return PublicURL(bucket, objectPath), nil
}

// Delete ignores objects that are already gone.
func (g *GCSStore) Delete(ctx context.Context, ref string) error {
	bucket, objectPath, err := ParseGCSReference(ref)
	if err != nil {
		return err
	}
	err = g.client.Bucket(bucket).Object(objectPath).Delete(ctx)
	if err != nil && !stderrors.Is(err, storage.ErrObjectNotExist) {
		return fmt.Errorf("%w: %s: %v", errors.ErrWrite, ref, err)
	}
	return nil
}

func (g *GCSStore) Close() error {
	return g.client.Close()
}

func GCSReference(bucket, objectPath string) string {
	return gcsScheme + bucket + "/" + objectPath
}

func ParseGCSReference(ref string) (string, string, error) {
	rest, ok := strings.CutPrefix(ref, gcsScheme)
	if !ok {
		return "", "", fmt.Errorf("%w: not a gcs reference %q", errors.ErrValidation, ref)
	}
	bucket, objectPath, ok := strings.Cut(rest, "/")
	if !ok || bucket == "" {
		return "", "", fmt.Errorf("%w: not a gcs reference %q", errors.ErrValidation, ref)
	}
	objectPath, err := cleanPath(objectPath)
	if err != nil {
		return "", "", err
	}
	return bucket, objectPath, nil
}

// PublicURL builds a public URL for an object (assuming public read access)
func PublicURL(bucket, objectPath string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", bucket, objectPath)
}

// Package assets binds the asset storage contract to concrete backends.
// References are opaque URIs ("blob://path", "gs://bucket/path"), only
// ResolveDownloadURL turns them into something a browser can fetch.
package assets

import (
	"fmt"
	"path"
	"scrapbook/errors"
	"strings"
)

// cleanPath refuses absolute paths and anything escaping the store root.
func cleanPath(p string) (string, error) {
	trimmed := strings.TrimSpace(p)
	if trimmed == "" || strings.HasPrefix(trimmed, "/") {
		return "", fmt.Errorf("%w: invalid asset path %q", errors.ErrValidation, p)
	}
	cleaned := path.Clean(trimmed)
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", fmt.Errorf("%w: invalid asset path %q", errors.ErrValidation, p)
	}
	return cleaned, nil
}

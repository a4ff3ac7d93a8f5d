package internal

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"scrapbook/contract"
	"scrapbook/domain"
	"scrapbook/domain/mimetypes"
	"sort"
	"strings"
	"time"
)

//go:embed inspect.html
var templatesFS embed.FS

// AssetOpener reads back an asset from its reference.
type AssetOpener interface {
	Open(ctx context.Context, ref string) ([]byte, mimetypes.MIME, error)
}

type InspectRow struct {
	ID        string
	CreatedAt string
	UpdatedAt string
	Fields    string
}

type PageData struct {
	Collection string
	Items      []InspectRow
	Error      string
}

// NewDebugServer serves the assets under /assets/ so the download URLs built by
// the blob store resolve, and a document browser under /inspect?collection=users.
// ref maps a request path to the asset reference to open.
func NewDebugServer(store contract.IDocumentStore, assets AssetOpener, ref func(path string) string, log *slog.Logger) http.Handler {
	mux := http.NewServeMux()
	tmpl := template.Must(template.ParseFS(templatesFS, "inspect.html"))

	mux.HandleFunc("/inspect", func(w http.ResponseWriter, r *http.Request) {
		collection := r.URL.Query().Get("collection")
		if collection == "" {
			collection = domain.CollectionUsers
		}
		data := PageData{Collection: collection}
		docs, err := store.List(r.Context(), collection, domain.NewQuery().OrderBy(domain.FieldCreatedAt, domain.Descending))
		if err != nil {
			data.Error = err.Error()
		}
		for _, doc := range docs {
			data.Items = append(data.Items, DocumentRow(doc))
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = tmpl.Execute(w, data)
	})

	mux.HandleFunc("/assets/", func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimPrefix(r.URL.Path, "/assets/")
		data, contentType, err := assets.Open(r.Context(), ref(path))
		if err != nil {
			log.Debug("Asset not served", "path", path, "error", err)
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", string(contentType))
		_, _ = w.Write(data)
	})
	return mux
}

// DocumentRow flattens a document for display, fields sorted by name.
func DocumentRow(doc domain.Document) InspectRow {
	names := make([]string, 0, len(doc.Fields))
	for name := range doc.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s=%v", name, doc.Fields[name]))
	}
	return InspectRow{
		ID:        doc.ID,
		CreatedAt: doc.CreatedAt.Format(time.DateTime),
		UpdatedAt: doc.UpdatedAt.Format(time.DateTime),
		Fields:    strings.Join(parts, " "),
	}
}

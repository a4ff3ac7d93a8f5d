package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"scrapbook/domain"
	"scrapbook/internal"
	"scrapbook/storage"
	"strings"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
)

// Dumps the documents of one collection, newest first:
//
//	go run ./tools -collection users/<uid>/friends -where favorite=true
func main() {
	_ = godotenv.Load()
	var config struct {
		BadgerFilepath string `env:"BADGER_FILEPATH,default=./data/badger"`
		LogLevel       string `env:"LOG_LEVEL,default=WARN"`
	}
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		log.Fatalf("Config error: %v", err)
	}
	dbPath := flag.String("db", config.BadgerFilepath, "Path to badger DB")
	collection := flag.String("collection", domain.CollectionUsers, "Collection to dump")
	where := flag.String("where", "", "Optional field=value equality filter")
	limit := flag.Int("limit", 0, "Maximum number of documents, 0 for all")
	flag.Parse()

	query, err := buildQuery(*where, *limit)
	if err != nil {
		log.Fatal(err)
	}

	// BypassLockGuard allows reading while the CLI holds the lock
	db, err := badger.Open(badger.DefaultOptions(*dbPath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	store := storage.NewDocumentStore(db, logs.GetLoggerFromString(config.LogLevel))
	defer store.Close()

	docs, err := store.List(context.Background(), *collection, query)
	if err != nil {
		log.Fatal(err)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Created", "Updated", "Fields"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	for _, doc := range docs {
		row := internal.DocumentRow(doc)
		table.Append([]string{row.ID, row.CreatedAt, row.UpdatedAt, row.Fields})
	}
	table.Render()
	fmt.Printf("\n%d document(s) in %s\n", len(docs), *collection)
}

// buildQuery understands a single equality filter. "true" and "false" are booleans,
// anything else is compared as a string.
func buildQuery(where string, limit int) (domain.Query, error) {
	query := domain.NewQuery().OrderBy(domain.FieldCreatedAt, domain.Descending)
	if limit > 0 {
		query = query.Limit(limit)
	}
	if where == "" {
		return query, nil
	}
	field, raw, ok := strings.Cut(where, "=")
	if !ok || field == "" {
		return domain.Query{}, fmt.Errorf("-where expects field=value, got %q", where)
	}
	var value any = raw
	switch raw {
	case "true":
		value = true
	case "false":
		value = false
	}
	return query.Where(field, domain.OpEqual, value), nil
}

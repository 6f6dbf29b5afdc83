package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/museo/internal/adapters/driven/storage/sqlite/schema"
	"github.com/custodia-labs/museo/internal/core/domain"
	"github.com/custodia-labs/museo/internal/core/ports/driven"
	"github.com/custodia-labs/museo/internal/logger"
)

// Ensure ArtifactStore implements the interface.
var _ driven.ArtifactStore = (*ArtifactStore)(nil)

const (
	insertMetadata = `
		INSERT INTO artifact_metadata (objectid, title, culture, period, technique, dated,
			department, accessionyear, rank, colorcount, mediacount, classification)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	insertMedia = `
		INSERT INTO artifact_media (objectid, imageurl, rank)
		VALUES (?, ?, ?)`
	insertColor = `
		INSERT INTO artifact_colors (objectid, color, hue, percent)
		VALUES (?, ?, ?, ?)`
)

// ArtifactStore writes the artifact relations to a single SQLite file.
type ArtifactStore struct {
	path   string
	schema fs.FS

	// beforeCommit runs after all rows are written and before commit.
	// Nil outside tests.
	beforeCommit func() error
}

// NewArtifactStore creates a store for the given data directory and file name.
// If dataDir is empty, defaults to ~/.museo/data. If fileName is empty,
// defaults to domain.DefaultDBFileName.
func NewArtifactStore(dataDir, fileName string) (*ArtifactStore, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".museo", "data")
	}
	if fileName == "" {
		fileName = domain.DefaultDBFileName
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &ArtifactStore{
		path:   filepath.Join(dataDir, fileName),
		schema: schema.FS,
	}, nil
}

// Path returns the database file path.
func (s *ArtifactStore) Path() string {
	return s.path
}

// open opens the database file. Callers must close the returned handle.
func (s *ArtifactStore) open(ctx context.Context) (*sql.DB, error) {
	db, err := sql.Open("sqlite", s.path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return db, nil
}

// Replace drops and recreates the three artifact tables with the given rows.
// All statements run in one transaction.
func (s *ArtifactStore) Replace(ctx context.Context, relations domain.Relations) error {
	start := time.Now()

	db, err := s.open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := s.recreateTables(ctx, tx); err != nil {
		return err
	}
	if err := insertRelations(ctx, tx, relations); err != nil {
		return err
	}

	if s.beforeCommit != nil {
		if err := s.beforeCommit(); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	logger.Debug("Replaced artifact tables in %s: %d metadata, %d media, %d colors (%s)",
		s.path, len(relations.Metadata), len(relations.Media), len(relations.Colors),
		time.Since(start).Round(time.Millisecond))
	return nil
}

// recreateTables drops the artifact tables and runs every schema file.
func (s *ArtifactStore) recreateTables(ctx context.Context, tx *sql.Tx) error {
	for _, table := range []string{domain.TableMetadata, domain.TableMedia, domain.TableColors} {
		if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+table); err != nil {
			return fmt.Errorf("dropping %s: %w", table, err)
		}
	}

	entries, err := fs.ReadDir(s.schema, ".")
	if err != nil {
		return fmt.Errorf("reading schema directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".sql") {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)

	for _, name := range files {
		content, err := fs.ReadFile(s.schema, name)
		if err != nil {
			return fmt.Errorf("reading schema %s: %w", name, err)
		}
		if _, err := tx.ExecContext(ctx, string(content)); err != nil {
			return fmt.Errorf("executing schema %s: %w", name, err)
		}
	}
	return nil
}

// insertRelations writes every row through prepared statements.
func insertRelations(ctx context.Context, tx *sql.Tx, r domain.Relations) error {
	metaStmt, err := tx.PrepareContext(ctx, insertMetadata)
	if err != nil {
		return fmt.Errorf("preparing metadata insert: %w", err)
	}
	defer metaStmt.Close()

	for i := range r.Metadata {
		m := &r.Metadata[i]
		if _, err := metaStmt.ExecContext(ctx,
			nullInt(m.ObjectID), nullString(m.Title), nullString(m.Culture), nullString(m.Period),
			nullString(m.Technique), nullString(m.Dated), nullString(m.Department),
			nullInt(m.AccessionYear), nullInt(m.Rank), nullInt(m.ColorCount), nullInt(m.MediaCount),
			m.Classification); err != nil {
			return fmt.Errorf("inserting metadata row %d: %w", i, err)
		}
	}

	mediaStmt, err := tx.PrepareContext(ctx, insertMedia)
	if err != nil {
		return fmt.Errorf("preparing media insert: %w", err)
	}
	defer mediaStmt.Close()

	for i := range r.Media {
		m := &r.Media[i]
		if _, err := mediaStmt.ExecContext(ctx,
			nullInt(m.ObjectID), nullString(m.ImageURL), nullInt(m.Rank)); err != nil {
			return fmt.Errorf("inserting media row %d: %w", i, err)
		}
	}

	colorStmt, err := tx.PrepareContext(ctx, insertColor)
	if err != nil {
		return fmt.Errorf("preparing color insert: %w", err)
	}
	defer colorStmt.Close()

	for i := range r.Colors {
		c := &r.Colors[i]
		if _, err := colorStmt.ExecContext(ctx,
			nullInt(c.ObjectID), nullString(c.Color), nullString(c.Hue), nullFloat(c.Percent)); err != nil {
			return fmt.Errorf("inserting color row %d: %w", i, err)
		}
	}
	return nil
}

// Query executes a statement verbatim and renders every value as text.
func (s *ArtifactStore) Query(ctx context.Context, statement string) (*domain.QueryResult, error) {
	db, err := s.open(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, statement)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("reading columns: %w", err)
	}

	result := &domain.QueryResult{Columns: columns, Rows: [][]string{}}
	values := make([]any, len(columns))
	dest := make([]any, len(columns))
	for i := range values {
		dest[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		row := make([]string, len(columns))
		for i, v := range values {
			row[i] = formatValue(v)
		}
		result.Rows = append(result.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// formatValue renders a scanned column value.
func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return domain.NullText
	case []byte:
		return string(val)
	case string:
		return val
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case time.Time:
		return val.UTC().Format(time.RFC3339)
	default:
		return fmt.Sprint(val)
	}
}

// nullString converts an optional string to a driver value.
func nullString(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}

// nullInt converts an optional integer to a driver value.
func nullInt(p *int64) any {
	if p == nil {
		return nil
	}
	return *p
}

// nullFloat converts an optional float to a driver value.
func nullFloat(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}

package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/hopebridge/contentsync/internal/content"
)

const schema = `
CREATE TABLE IF NOT EXISTS documents (
	collection TEXT NOT NULL,
	id TEXT NOT NULL,
	position INTEGER NOT NULL,
	body TEXT NOT NULL,
	updated_at INTEGER NOT NULL,
	PRIMARY KEY (collection, id)
);
CREATE INDEX IF NOT EXISTS idx_documents_collection ON documents(collection, position);
`

// SQLiteStore implements Store and DocumentStore on a local SQLite database
type SQLiteStore struct {
	db     *sql.DB
	logger *zap.SugaredLogger
}

// Option configures a SQLiteStore
type Option func(*SQLiteStore)

// WithLogger sets the logger used to report skipped documents
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(s *SQLiteStore) {
		s.logger = logger
	}
}

// NewSQLiteStore opens (creating if needed) the cache database at path
func NewSQLiteStore(path string, opts ...Option) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}
	// SQLite allows a single writer; serializing connections avoids SQLITE_BUSY
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize cache schema: %w", err)
	}

	s := &SQLiteStore{
		db:     db,
		logger: zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Close closes the underlying database
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// PutCollection replaces all documents of a collection in a single transaction
func (s *SQLiteStore) PutCollection(ctx context.Context, collection string, docs []content.Document) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM documents WHERE collection = ?`, collection); err != nil {
		return fmt.Errorf("failed to clear collection %s: %w", collection, err)
	}

	now := time.Now().Unix()
	for i, doc := range docs {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO documents (collection, id, position, body, updated_at) VALUES (?, ?, ?, ?, ?)`,
			collection, doc.ID, i, string(doc.Data), now,
		); err != nil {
			return fmt.Errorf("failed to store document %s/%s: %w", collection, doc.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit collection %s: %w", collection, err)
	}
	return nil
}

// Collection returns the stored documents of a collection
func (s *SQLiteStore) Collection(ctx context.Context, collection string) ([]content.Document, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, body FROM documents WHERE collection = ? ORDER BY position`, collection)
	if err != nil {
		return nil, fmt.Errorf("failed to query collection %s: %w", collection, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	docs := []content.Document{}
	for rows.Next() {
		var id, body string
		if err := rows.Scan(&id, &body); err != nil {
			return nil, fmt.Errorf("failed to scan document in %s: %w", collection, err)
		}
		docs = append(docs, content.Document{ID: id, Data: json.RawMessage(body)})
	}
	return docs, rows.Err()
}

// LoadPrimary loads the primary dataset from the cache
func (s *SQLiteStore) LoadPrimary(ctx context.Context) (content.PrimaryDataset, error) {
	var dataset content.PrimaryDataset

	orgs, err := loadCollection[content.Organization](ctx, s, content.CollectionOrganization)
	if err != nil {
		return dataset, err
	}
	if len(orgs) > 0 {
		dataset.Organization = &orgs[0]
	}

	if dataset.Articles, err = loadCollection[content.Article](ctx, s, content.CollectionArticles); err != nil {
		return dataset, err
	}
	if dataset.CoreWork, err = loadCollection[content.CoreWork](ctx, s, content.CollectionCoreWork); err != nil {
		return dataset, err
	}
	if dataset.ImpactStats, err = loadCollection[content.ImpactStat](ctx, s, content.CollectionImpactStats); err != nil {
		return dataset, err
	}
	return dataset, nil
}

// LoadPrograms loads cached programs
func (s *SQLiteStore) LoadPrograms(ctx context.Context) ([]content.Program, error) {
	return loadCollection[content.Program](ctx, s, content.CollectionPrograms)
}

// LoadTeams loads cached teams
func (s *SQLiteStore) LoadTeams(ctx context.Context) ([]content.Team, error) {
	return loadCollection[content.Team](ctx, s, content.CollectionTeams)
}

// LoadTeamMembers loads cached team members
func (s *SQLiteStore) LoadTeamMembers(ctx context.Context) ([]content.TeamMember, error) {
	return loadCollection[content.TeamMember](ctx, s, content.CollectionTeamMembers)
}

// LoadExternalLinks loads cached external links
func (s *SQLiteStore) LoadExternalLinks(ctx context.Context) ([]content.ExternalLink, error) {
	return loadCollection[content.ExternalLink](ctx, s, content.CollectionExternalLinks)
}

// LoadSupportContent loads the cached support mission content, nil on a miss
func (s *SQLiteStore) LoadSupportContent(ctx context.Context) (*content.SupportContent, error) {
	items, err := loadCollection[content.SupportContent](ctx, s, content.CollectionSupportContent)
	if err != nil || len(items) == 0 {
		return nil, err
	}
	return &items[0], nil
}

func loadCollection[T any](ctx context.Context, s *SQLiteStore, collection string) ([]T, error) {
	docs, err := s.Collection(ctx, collection)
	if err != nil {
		return nil, err
	}
	return content.DecodeDocuments[T](docs, func(doc content.Document, err error) {
		s.logger.Warnw("Skipping undecodable cached document",
			"collection", collection,
			"id", doc.ID,
			"error", err)
	}), nil
}

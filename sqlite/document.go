package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/ogniew/pith"
)

// Compile-time interface verification.
var _ pith.DocumentService = (*DocumentService)(nil)

// DocumentService implements pith.DocumentService using SQLite.
type DocumentService struct {
	db *DB
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(db *DB) *DocumentService {
	return &DocumentService{db: db}
}

// hashContent computes the xxhash of content as a hex string.
func hashContent(content string) string {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64String(content))
	return hex.EncodeToString(b)
}

// CreateDocument stores a new document, assigning its ID, content hash,
// word count, and fetch time.
func (s *DocumentService) CreateDocument(ctx context.Context, doc *pith.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	doc.ID = uuid.New().String()
	doc.FetchedAt = time.Now().UTC()
	doc.ContentHash = hashContent(doc.Content)
	if doc.Words == 0 {
		doc.Words = len(strings.Fields(doc.Content))
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO documents (id, source, title, content, content_hash, words, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, doc.ID, doc.Source, doc.Title, doc.Content, doc.ContentHash,
		doc.Words, doc.FetchedAt.Format(time.RFC3339))

	return err
}

// FindDocumentByID retrieves a document by ID.
func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*pith.Document, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, source, title, content, content_hash, words, fetched_at
		FROM documents
		WHERE id = ?
	`, id)

	doc, err := scanDocument(row.Scan)
	if err == sql.ErrNoRows {
		return nil, pith.Errorf(pith.ENOTFOUND, "document not found")
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// FindDocuments retrieves documents matching the filter, most recently
// fetched first.
func (s *DocumentService) FindDocuments(ctx context.Context, filter pith.DocumentFilter) ([]*pith.Document, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, source, title, content, content_hash, words, fetched_at FROM documents WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Source != nil {
		query.WriteString(" AND source = ?")
		args = append(args, *filter.Source)
	}

	query.WriteString(" ORDER BY fetched_at DESC")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*pith.Document
	for rows.Next() {
		doc, err := scanDocument(rows.Scan)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	return docs, rows.Err()
}

// scanDocument reads one documents row through the given scan function.
func scanDocument(scan func(dest ...any) error) (*pith.Document, error) {
	var doc pith.Document
	var fetchedAt string

	if err := scan(&doc.ID, &doc.Source, &doc.Title, &doc.Content,
		&doc.ContentHash, &doc.Words, &fetchedAt); err != nil {
		return nil, err
	}

	var parseErr error
	doc.FetchedAt, parseErr = time.Parse(time.RFC3339, fetchedAt)
	if parseErr != nil {
		return nil, fmt.Errorf("failed to parse fetched_at: %w", parseErr)
	}

	return &doc, nil
}

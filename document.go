package pith

import (
	"context"
	"time"
)

// Document is a stored extraction: the plain text pulled out of one page
// or file, with enough metadata to find it again.
type Document struct {
	ID          string    `json:"id"`
	Source      string    `json:"source"` // URL or file path the HTML came from
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	ContentHash string    `json:"contentHash"`
	Words       int       `json:"words"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.Source == "" {
		return Errorf(EINVALID, "document source required")
	}
	if d.Content == "" {
		return Errorf(EINVALID, "document content required")
	}
	return nil
}

// DocumentFilter filters FindDocuments results.
type DocumentFilter struct {
	ID     *string `json:"id"`
	Source *string `json:"source"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// DocumentWriter persists documents outside the database, e.g. as
// markdown files on disk.
type DocumentWriter interface {
	// WriteDocument writes one document. The destination is derived from
	// the document's source.
	WriteDocument(ctx context.Context, doc *Document) error
}

// DocumentService stores and retrieves extracted documents.
type DocumentService interface {
	// CreateDocument stores a new document, assigning its ID, content
	// hash, and fetch time.
	CreateDocument(ctx context.Context, doc *Document) error

	// FindDocumentByID retrieves a document by ID.
	// Returns ENOTFOUND if the document does not exist.
	FindDocumentByID(ctx context.Context, id string) (*Document, error)

	// FindDocuments retrieves documents matching the filter, most
	// recently fetched first.
	FindDocuments(ctx context.Context, filter DocumentFilter) ([]*Document, error)
}

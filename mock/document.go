package mock

import (
	"context"

	"github.com/ogniew/pith"
)

var _ pith.DocumentService = (*DocumentService)(nil)

// DocumentService is a mock implementation of pith.DocumentService.
type DocumentService struct {
	CreateDocumentFn   func(ctx context.Context, doc *pith.Document) error
	FindDocumentByIDFn func(ctx context.Context, id string) (*pith.Document, error)
	FindDocumentsFn    func(ctx context.Context, filter pith.DocumentFilter) ([]*pith.Document, error)
}

func (s *DocumentService) CreateDocument(ctx context.Context, doc *pith.Document) error {
	return s.CreateDocumentFn(ctx, doc)
}

func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*pith.Document, error) {
	return s.FindDocumentByIDFn(ctx, id)
}

func (s *DocumentService) FindDocuments(ctx context.Context, filter pith.DocumentFilter) ([]*pith.Document, error) {
	return s.FindDocumentsFn(ctx, filter)
}

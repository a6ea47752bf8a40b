package store

import (
	"context"

	"github.com/edinacircular/circular-server/internal/domain"
)

// ListRequests returns every request in insertion order.
func (s *Store) ListRequests(ctx context.Context) ([]domain.Request, error) {
	doc, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Requests, nil
}

// GetRequest returns the request with the given id.
func (s *Store) GetRequest(ctx context.Context, id string) (*domain.Request, error) {
	doc, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	idx := doc.RequestIndex(id)
	if idx < 0 {
		return nil, requestNotFound(id)
	}
	return &doc.Requests[idx], nil
}

// CreateRequest appends req. The caller assigns the id.
func (s *Store) CreateRequest(ctx context.Context, req *domain.Request) error {
	return s.Update(ctx, func(doc *domain.Document) error {
		doc.Requests = append(doc.Requests, *req)
		return nil
	})
}

// DeleteRequest removes the request with the given id and reports whether it
// existed.
func (s *Store) DeleteRequest(ctx context.Context, id string) (bool, error) {
	var removed bool
	err := s.Update(ctx, func(doc *domain.Document) error {
		kept := doc.Requests[:0]
		for _, r := range doc.Requests {
			if r.ID == id {
				removed = true
				continue
			}
			kept = append(kept, r)
		}
		doc.Requests = kept
		return nil
	})
	if err != nil {
		return false, err
	}
	return removed, nil
}

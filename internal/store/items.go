package store

import (
	"context"

	"github.com/edinacircular/circular-server/internal/domain"
)

// ListItems returns every item in insertion order.
func (s *Store) ListItems(ctx context.Context) ([]domain.Item, error) {
	doc, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Items, nil
}

// GetItem returns the item with the given id.
func (s *Store) GetItem(ctx context.Context, id string) (*domain.Item, error) {
	doc, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	idx := doc.ItemIndex(id)
	if idx < 0 {
		return nil, itemNotFound(id)
	}
	return &doc.Items[idx], nil
}

// CreateItem appends item. The caller assigns the id.
func (s *Store) CreateItem(ctx context.Context, item *domain.Item) error {
	return s.Update(ctx, func(doc *domain.Document) error {
		doc.Items = append(doc.Items, *item)
		return nil
	})
}

// DeleteItem removes the item with the given id and reports whether it
// existed. The document is written back either way.
func (s *Store) DeleteItem(ctx context.Context, id string) (bool, error) {
	var removed bool
	err := s.Update(ctx, func(doc *domain.Document) error {
		kept := doc.Items[:0]
		for _, it := range doc.Items {
			if it.ID == id {
				removed = true
				continue
			}
			kept = append(kept, it)
		}
		doc.Items = kept
		return nil
	})
	if err != nil {
		return false, err
	}
	if removed {
		s.logger.Info("item deleted", "item_id", id)
	}
	return removed, nil
}

// SetItemVerified sets the moderation flag on an item and returns the result.
func (s *Store) SetItemVerified(ctx context.Context, id string, verified bool) (*domain.Item, error) {
	var updated domain.Item
	err := s.Update(ctx, func(doc *domain.Document) error {
		idx := doc.ItemIndex(id)
		if idx < 0 {
			return itemNotFound(id)
		}
		doc.Items[idx].Verified = verified
		updated = doc.Items[idx]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

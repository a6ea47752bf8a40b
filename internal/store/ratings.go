package store

import (
	"context"

	"github.com/edinacircular/circular-server/internal/domain"
	"github.com/edinacircular/circular-server/internal/match"
)

// AddRating appends a rating for itemID and recomputes the item's aggregate
// from every rating on record. Out-of-range ratings are rejected before
// anything is written.
//
// The rating is kept even when no item has that id; the returned aggregate
// still covers all ratings recorded for the id.
func (s *Store) AddRating(ctx context.Context, itemID string, rating int) (avg float64, count int, err error) {
	if !domain.ValidRating(rating) {
		return 0, 0, invalidRating(rating)
	}

	err = s.Update(ctx, func(doc *domain.Document) error {
		doc.Ratings = append(doc.Ratings, domain.Rating{ItemID: itemID, Rating: float64(rating)})
		avg, count = match.Aggregate(doc.Ratings, itemID)
		if idx := doc.ItemIndex(itemID); idx >= 0 {
			doc.Items[idx].SetRating(avg, count)
		}
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	return avg, count, nil
}

// ListRatings returns every rating on record.
func (s *Store) ListRatings(ctx context.Context) ([]domain.Rating, error) {
	doc, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Ratings, nil
}

package service

import (
	"context"

	"github.com/edinacircular/circular-server/internal/domain"
	"github.com/edinacircular/circular-server/internal/match"
)

// MetricsService computes the community banner figures.
type MetricsService struct {
	store DocumentLoader
}

// NewMetricsService creates a new metrics service.
func NewMetricsService(store DocumentLoader) *MetricsService {
	return &MetricsService{store: store}
}

// Compute counts items by type and requests that have at least one candidate
// item. Items whose type is not "lend" count as giveaways.
func (s *MetricsService) Compute(ctx context.Context) (*domain.Metrics, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	m := &domain.Metrics{
		TotalItems: len(doc.Items),
		Requests:   len(doc.Requests),
	}
	for i := range doc.Items {
		if doc.Items[i].IsLend() {
			m.LendItems++
		} else {
			m.GiveItems++
		}
	}
	for _, req := range doc.Requests {
		if match.HasCandidate(doc.Items, req) {
			m.MatchedRequests++
		}
	}
	return m, nil
}

package store

import (
	"context"

	"github.com/edinacircular/circular-server/internal/domain"
)

// ListVolunteers returns every volunteer sign-up.
func (s *Store) ListVolunteers(ctx context.Context) ([]domain.Volunteer, error) {
	doc, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Volunteers, nil
}

// CreateVolunteer appends a volunteer sign-up.
func (s *Store) CreateVolunteer(ctx context.Context, v *domain.Volunteer) error {
	return s.Update(ctx, func(doc *domain.Document) error {
		doc.Volunteers = append(doc.Volunteers, *v)
		return nil
	})
}

// ListDonations returns every donation pledge.
func (s *Store) ListDonations(ctx context.Context) ([]domain.Donation, error) {
	doc, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Donations, nil
}

// CreateDonation appends a donation pledge.
func (s *Store) CreateDonation(ctx context.Context, d *domain.Donation) error {
	return s.Update(ctx, func(doc *domain.Document) error {
		doc.Donations = append(doc.Donations, *d)
		return nil
	})
}

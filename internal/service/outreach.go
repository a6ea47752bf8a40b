package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/edinacircular/circular-server/internal/domain"
	"github.com/edinacircular/circular-server/internal/id"
	"github.com/edinacircular/circular-server/internal/validation"
)

// OutreachService records volunteer sign-ups and donation pledges.
type OutreachService struct {
	store     OutreachStore
	validator *validation.Validator
	logger    *slog.Logger
}

// NewOutreachService creates a new outreach service.
func NewOutreachService(store OutreachStore, validator *validation.Validator, logger *slog.Logger) *OutreachService {
	return &OutreachService{
		store:     store,
		validator: validator,
		logger:    logger,
	}
}

// VolunteerRequest is the volunteer sign-up form.
type VolunteerRequest struct {
	Name      string `json:"name" validate:"required,notblank"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required,notblank"`
	Interests string `json:"interests" validate:"required,notblank"`
	Message   string `json:"message"`
}

// DonationRequest is the donation pledge form.
type DonationRequest struct {
	Name      string `json:"name" validate:"required,notblank"`
	Email     string `json:"email" validate:"required,email"`
	Item      string `json:"item" validate:"required,notblank"`
	Condition string `json:"condition" validate:"required,notblank"`
	Message   string `json:"message"`
}

// SignUpVolunteer stores a volunteer sign-up.
func (s *OutreachService) SignUpVolunteer(ctx context.Context, req VolunteerRequest) (*domain.Volunteer, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	volID, err := id.Generate(id.Volunteer)
	if err != nil {
		return nil, fmt.Errorf("generate volunteer ID: %w", err)
	}

	v := &domain.Volunteer{
		ID:        volID,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Interests: req.Interests,
		Message:   req.Message,
		CreatedAt: domain.NewTimestamp(time.Now().UTC()),
	}
	if err := s.store.CreateVolunteer(ctx, v); err != nil {
		return nil, fmt.Errorf("create volunteer: %w", err)
	}

	s.logger.Info("volunteer signed up", "volunteer_id", v.ID, "interests", v.Interests)
	return v, nil
}

// ListVolunteers returns every volunteer sign-up.
func (s *OutreachService) ListVolunteers(ctx context.Context) ([]domain.Volunteer, error) {
	return s.store.ListVolunteers(ctx)
}

// PledgeDonation stores a donation pledge.
func (s *OutreachService) PledgeDonation(ctx context.Context, req DonationRequest) (*domain.Donation, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	donID, err := id.Generate(id.Donation)
	if err != nil {
		return nil, fmt.Errorf("generate donation ID: %w", err)
	}

	d := &domain.Donation{
		ID:        donID,
		Name:      req.Name,
		Email:     req.Email,
		Item:      req.Item,
		Condition: req.Condition,
		Message:   req.Message,
		CreatedAt: domain.NewTimestamp(time.Now().UTC()),
	}
	if err := s.store.CreateDonation(ctx, d); err != nil {
		return nil, fmt.Errorf("create donation: %w", err)
	}

	s.logger.Info("donation pledged", "donation_id", d.ID)
	return d, nil
}

// ListDonations returns every donation pledge.
func (s *OutreachService) ListDonations(ctx context.Context) ([]domain.Donation, error) {
	return s.store.ListDonations(ctx)
}

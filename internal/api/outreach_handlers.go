package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/edinacircular/circular-server/internal/domain"
	"github.com/edinacircular/circular-server/internal/service"
)

func (s *Server) registerOutreachRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listVolunteers",
		Method:      http.MethodGet,
		Path:        "/volunteers",
		Summary:     "List volunteers",
		Tags:        []string{"Outreach"},
	}, s.handleListVolunteers)

	huma.Register(s.api, huma.Operation{
		OperationID:   "signUpVolunteer",
		Method:        http.MethodPost,
		Path:          "/volunteers",
		Summary:       "Volunteer sign-up",
		Tags:          []string{"Outreach"},
		DefaultStatus: http.StatusCreated,
	}, s.handleSignUpVolunteer)

	huma.Register(s.api, huma.Operation{
		OperationID: "listDonations",
		Method:      http.MethodGet,
		Path:        "/donations",
		Summary:     "List donation pledges",
		Tags:        []string{"Outreach"},
	}, s.handleListDonations)

	huma.Register(s.api, huma.Operation{
		OperationID:   "pledgeDonation",
		Method:        http.MethodPost,
		Path:          "/donations",
		Summary:       "Pledge a donation",
		Tags:          []string{"Outreach"},
		DefaultStatus: http.StatusCreated,
	}, s.handlePledgeDonation)
}

// VolunteersOutput wraps a list of volunteers.
type VolunteersOutput struct {
	Body []domain.Volunteer
}

// VolunteerOutput wraps a single volunteer.
type VolunteerOutput struct {
	Body *domain.Volunteer
}

// VolunteerBody is the volunteer sign-up form.
type VolunteerBody struct {
	_         struct{} `json:"-" additionalProperties:"true"`
	Name      string   `json:"name,omitempty" doc:"Full name"`
	Email     string   `json:"email,omitempty" doc:"Email address"`
	Phone     string   `json:"phone,omitempty" doc:"Phone number"`
	Interests string   `json:"interests,omitempty" doc:"How they would like to help"`
	Message   string   `json:"message,omitempty" doc:"Anything else"`
}

// VolunteerInput wraps VolunteerBody for Huma.
type VolunteerInput struct {
	Body VolunteerBody
}

// DonationsOutput wraps a list of donations.
type DonationsOutput struct {
	Body []domain.Donation
}

// DonationOutput wraps a single donation.
type DonationOutput struct {
	Body *domain.Donation
}

// DonationBody is the donation pledge form.
type DonationBody struct {
	_         struct{} `json:"-" additionalProperties:"true"`
	Name      string   `json:"name,omitempty" doc:"Donor name"`
	Email     string   `json:"email,omitempty" doc:"Email address"`
	Item      string   `json:"item,omitempty" doc:"What is being donated"`
	Condition string   `json:"condition,omitempty" doc:"Condition of the item"`
	Message   string   `json:"message,omitempty" doc:"Anything else"`
}

// DonationInput wraps DonationBody for Huma.
type DonationInput struct {
	Body DonationBody
}

func (s *Server) handleListVolunteers(ctx context.Context, _ *struct{}) (*VolunteersOutput, error) {
	volunteers, err := s.services.Outreach.ListVolunteers(ctx)
	if err != nil {
		return nil, s.failure(ctx, "listVolunteers", err)
	}
	return &VolunteersOutput{Body: volunteers}, nil
}

func (s *Server) handleSignUpVolunteer(ctx context.Context, input *VolunteerInput) (*VolunteerOutput, error) {
	v, err := s.services.Outreach.SignUpVolunteer(ctx, service.VolunteerRequest{
		Name:      input.Body.Name,
		Email:     input.Body.Email,
		Phone:     input.Body.Phone,
		Interests: input.Body.Interests,
		Message:   input.Body.Message,
	})
	if err != nil {
		return nil, s.failure(ctx, "signUpVolunteer", err)
	}
	return &VolunteerOutput{Body: v}, nil
}

func (s *Server) handleListDonations(ctx context.Context, _ *struct{}) (*DonationsOutput, error) {
	donations, err := s.services.Outreach.ListDonations(ctx)
	if err != nil {
		return nil, s.failure(ctx, "listDonations", err)
	}
	return &DonationsOutput{Body: donations}, nil
}

func (s *Server) handlePledgeDonation(ctx context.Context, input *DonationInput) (*DonationOutput, error) {
	d, err := s.services.Outreach.PledgeDonation(ctx, service.DonationRequest{
		Name:      input.Body.Name,
		Email:     input.Body.Email,
		Item:      input.Body.Item,
		Condition: input.Body.Condition,
		Message:   input.Body.Message,
	})
	if err != nil {
		return nil, s.failure(ctx, "pledgeDonation", err)
	}
	return &DonationOutput{Body: d}, nil
}

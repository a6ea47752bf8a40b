package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/edinacircular/circular-server/internal/errors"
)

func TestOutreachService_Volunteers(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices(t)

	v, err := svc.outreach.SignUpVolunteer(ctx, VolunteerRequest{
		Name: "Kim", Email: "kim@example.com", Phone: "555-0101", Interests: "repair-cafe",
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(v.ID, "vol-"))
	assert.False(t, v.CreatedAt.IsZero())

	_, err = svc.outreach.SignUpVolunteer(ctx, VolunteerRequest{Name: "Kim", Email: "kim@example.com"})
	assert.ErrorIs(t, err, domainerrors.ErrValidation)

	list, err := svc.outreach.ListVolunteers(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestOutreachService_Donations(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices(t)

	d, err := svc.outreach.PledgeDonation(ctx, DonationRequest{
		Name: "Lee", Email: "lee@example.com", Item: "Bike", Condition: "good", Message: "needs a tyre",
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(d.ID, "don-"))

	_, err = svc.outreach.PledgeDonation(ctx, DonationRequest{Name: "Lee", Email: "bad", Item: "Bike", Condition: "good"})
	assert.ErrorIs(t, err, domainerrors.ErrValidation)

	list, err := svc.outreach.ListDonations(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "needs a tyre", list[0].Message)
}

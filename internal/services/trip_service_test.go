package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tripmate/internal/models/request_models"
	"tripmate/internal/models/response_models"
	"tripmate/pkg/utils"
)

type stubPlanner struct {
	lastReq request_models.TripPlanRequest
	plan    *response_models.ItineraryPlan
}

func (s *stubPlanner) GeneratePlan(ctx context.Context, req request_models.TripPlanRequest) (*response_models.ItineraryPlan, error) {
	s.lastReq = req
	return s.plan, nil
}

func TestCreateTripNormalizesFields(t *testing.T) {
	store := newMemTripStore()
	svc := NewTripService(store, &stubPlanner{})

	trip, err := svc.CreateTrip(context.Background(), request_models.CreateTripRequest{
		Destination: "  Goa ",
		Days:        3,
		Persons:     2,
		Currency:    "inr",
		TripType:    "Relaxed",
	}, "not-a-uuid")
	require.NoError(t, err)

	assert.Equal(t, "Goa", trip.Destination)
	assert.Equal(t, "INR", trip.Currency)
	assert.Equal(t, "relaxed", trip.TripType)
	assert.False(t, trip.HasPlan)
	assert.NotEmpty(t, trip.ID)
}

func TestGetTripByIdNotFound(t *testing.T) {
	svc := NewTripService(newMemTripStore(), &stubPlanner{})

	_, err := svc.GetTripById(context.Background(), "missing")
	assert.ErrorIs(t, err, utils.ErrTripNotFound)
}

func TestGeneratePlanForTripKeysOnTrip(t *testing.T) {
	store := newMemTripStore()
	planner := &stubPlanner{plan: &response_models.ItineraryPlan{Destination: "Goa"}}
	svc := NewTripService(store, planner)

	created, err := svc.CreateTrip(context.Background(), request_models.CreateTripRequest{
		Destination: "Goa", Days: 3, Persons: 2, Budget: 15000, Currency: "INR",
	}, "")
	require.NoError(t, err)

	plan, err := svc.GeneratePlanForTrip(context.Background(), created.ID)
	require.NoError(t, err)
	require.NotNil(t, plan)

	assert.Equal(t, created.ID, planner.lastReq.TripID)
	assert.Equal(t, "Goa", planner.lastReq.Destination)
	assert.Equal(t, 3, planner.lastReq.Days)
}

func TestGeneratePlanForMissingTrip(t *testing.T) {
	svc := NewTripService(newMemTripStore(), &stubPlanner{})

	_, err := svc.GeneratePlanForTrip(context.Background(), "missing")
	assert.ErrorIs(t, err, utils.ErrTripNotFound)
}

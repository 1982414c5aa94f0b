package services

import (
	"context"
	"log"

	"github.com/google/uuid"
	"tripmate/internal/models/db_models"
	"tripmate/internal/models/request_models"
	"tripmate/internal/models/response_models"
	"tripmate/internal/repositories"
	"tripmate/pkg/utils"
)

type TripServiceInterface interface {
	CreateTrip(ctx context.Context, req request_models.CreateTripRequest, userID string) (*response_models.TripResponse, error)
	GetTripById(ctx context.Context, tripID string) (*response_models.TripResponse, error)
	GeneratePlanForTrip(ctx context.Context, tripID string) (*response_models.ItineraryPlan, error)
}

type TripService struct {
	tripRepo repositories.TripRepository
	planner  PlannerServiceInterface
}

func NewTripService(tripRepo repositories.TripRepository, planner PlannerServiceInterface) TripServiceInterface {
	return &TripService{
		tripRepo: tripRepo,
		planner:  planner,
	}
}

func (t *TripService) CreateTrip(ctx context.Context, req request_models.CreateTripRequest, userID string) (*response_models.TripResponse, error) {
	norm, err := NormalizeTripRequest(request_models.TripPlanRequest{
		Destination:  req.Destination,
		Days:         req.Days,
		Persons:      req.Persons,
		Budget:       req.Budget,
		Currency:     req.Currency,
		TripType:     req.TripType,
		TravelMedium: req.TravelMedium,
	})
	if err != nil {
		return nil, err
	}

	trip := &db_models.Trip{
		Destination:  norm.Destination,
		Days:         norm.Days,
		Persons:      norm.Persons,
		Budget:       norm.Budget,
		Currency:     norm.Currency,
		TripType:     norm.TripType,
		TravelMedium: norm.TravelMedium,
	}
	if parsed, err := uuid.Parse(userID); err == nil {
		trip.UserID = parsed
	}

	if err := t.tripRepo.CreateTrip(ctx, trip); err != nil {
		log.Printf("trips: create failed: %v", err)
		return nil, utils.ErrDatabaseError
	}

	return buildTripResponse(trip, nil), nil
}

func (t *TripService) GetTripById(ctx context.Context, tripID string) (*response_models.TripResponse, error) {
	trip, err := t.tripRepo.GetTripById(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	plan, err := t.tripRepo.GetPersistedPlan(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return buildTripResponse(trip, plan), nil
}

// GeneratePlanForTrip runs the planning pipeline keyed by the trip, which
// makes generation at-most-once for the trip's lifetime.
func (t *TripService) GeneratePlanForTrip(ctx context.Context, tripID string) (*response_models.ItineraryPlan, error) {
	trip, err := t.tripRepo.GetTripById(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	return t.planner.GeneratePlan(ctx, request_models.TripPlanRequest{
		Destination:  trip.Destination,
		Days:         trip.Days,
		Persons:      trip.Persons,
		Budget:       trip.Budget,
		Currency:     trip.Currency,
		TripType:     trip.TripType,
		TravelMedium: trip.TravelMedium,
		TripID:       trip.ID.String(),
	})
}

func buildTripResponse(trip *db_models.Trip, plan *response_models.ItineraryPlan) *response_models.TripResponse {
	return &response_models.TripResponse{
		ID:           trip.ID.String(),
		Destination:  trip.Destination,
		Days:         trip.Days,
		Persons:      trip.Persons,
		Budget:       trip.Budget,
		Currency:     trip.Currency,
		TripType:     trip.TripType,
		TravelMedium: trip.TravelMedium,
		HasPlan:      trip.PlanJSON != nil || plan != nil,
		Plan:         plan,
	}
}

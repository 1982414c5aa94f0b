package repositories

import (
	"context"
	"encoding/json"
	"errors"

	"gorm.io/gorm"
	"tripmate/internal/models/db_models"
	"tripmate/internal/models/response_models"
)

type TripRepository interface {
	CreateTrip(ctx context.Context, trip *db_models.Trip) error
	GetTripById(ctx context.Context, tripID string) (*db_models.Trip, error)
	GetPersistedPlan(ctx context.Context, tripID string) (*response_models.ItineraryPlan, error)
	SetPersistedPlan(ctx context.Context, tripID string, plan *response_models.ItineraryPlan) error
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) CreateTrip(ctx context.Context, trip *db_models.Trip) error {
	return r.db.WithContext(ctx).Create(trip).Error
}

func (r *tripRepository) GetTripById(ctx context.Context, tripID string) (*db_models.Trip, error) {
	var trip db_models.Trip
	err := r.db.WithContext(ctx).First(&trip, "id = ?", tripID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &trip, nil
}

func (r *tripRepository) GetPersistedPlan(ctx context.Context, tripID string) (*response_models.ItineraryPlan, error) {
	trip, err := r.GetTripById(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if trip == nil || trip.PlanJSON == nil {
		return nil, nil
	}

	var plan response_models.ItineraryPlan
	if err := json.Unmarshal([]byte(*trip.PlanJSON), &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

// SetPersistedPlan is a compare-and-set against an absent plan. If another
// writer got there first the update matches zero rows and this call is a
// no-op, which keeps the write idempotent.
func (r *tripRepository) SetPersistedPlan(ctx context.Context, tripID string, plan *response_models.ItineraryPlan) error {
	raw, err := json.Marshal(plan)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Model(&db_models.Trip{}).
		Where("id = ? AND plan_json IS NULL", tripID).
		Update("plan_json", string(raw)).Error
}

package db_models

import "github.com/google/uuid"

// Trip stores the structured request and, once generated, the final plan.
// PlanJSON is write-once: it is only ever set from NULL, never overwritten.
type Trip struct {
	BaseModel
	UserID       uuid.UUID
	Destination  string
	Days         int
	Persons      int
	Budget       float64
	Currency     string
	TripType     string
	TravelMedium string
	PlanJSON     *string `gorm:"type:jsonb;column:plan_json"`
}

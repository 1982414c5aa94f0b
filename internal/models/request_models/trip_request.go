package request_models

// TripPlanRequest is the planner's input. TripID is optional; when set the
// pipeline keys on the trip and persists the finished plan to it.
type TripPlanRequest struct {
	Destination  string  `json:"destination" binding:"required"`
	Days         int     `json:"days"`
	Persons      int     `json:"persons"`
	Budget       float64 `json:"budget"`
	Currency     string  `json:"currency"`
	TripType     string  `json:"trip_type"`
	TravelMedium string  `json:"travel_medium"`
	TripID       string  `json:"trip_id,omitempty"`
}

type CreateTripRequest struct {
	Destination  string  `json:"destination" binding:"required"`
	Days         int     `json:"days" binding:"required,min=1"`
	Persons      int     `json:"persons" binding:"required,min=1"`
	Budget       float64 `json:"budget"`
	Currency     string  `json:"currency"`
	TripType     string  `json:"trip_type"`
	TravelMedium string  `json:"travel_medium"`
}

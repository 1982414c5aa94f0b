package response_models

type TripResponse struct {
	ID           string         `json:"id"`
	Destination  string         `json:"destination"`
	Days         int            `json:"days"`
	Persons      int            `json:"persons"`
	Budget       float64        `json:"budget"`
	Currency     string         `json:"currency"`
	TripType     string         `json:"trip_type"`
	TravelMedium string         `json:"travel_medium"`
	HasPlan      bool           `json:"has_plan"`
	Plan         *ItineraryPlan `json:"plan,omitempty"`
}

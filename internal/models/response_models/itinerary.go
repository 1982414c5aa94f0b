package response_models

type RouteLeg struct {
	Mode              string  `json:"mode"`
	DistanceKm        float64 `json:"distance_km"`
	TravelTimeMinutes int     `json:"travel_time_minutes"`
	From              string  `json:"from"`
	To                string  `json:"to"`
}

type Activity struct {
	Time                     string   `json:"time"`
	PlaceName                string   `json:"place_name"`
	Address                  string   `json:"address"`
	Type                     string   `json:"type"`
	EntryFee                 float64  `json:"entry_fee"`
	DurationMinutes          int      `json:"duration_minutes"`
	LocalFoodRecommendations []string `json:"local_food_recommendations"`
	RouteFromPrevious        RouteLeg `json:"route_from_previous"`
}

type DayPlan struct {
	Day        int        `json:"day"`
	Activities []Activity `json:"activities"`
}

type CostBreakdown struct {
	Accommodation float64 `json:"accommodation"`
	Food          float64 `json:"food"`
	Transport     float64 `json:"transport"`
	Activities    float64 `json:"activities"`
	Misc          float64 `json:"misc"`
	Total         float64 `json:"total"`
}

type ItineraryPlan struct {
	Destination        string        `json:"destination"`
	Days               int           `json:"days"`
	Persons            int           `json:"persons"`
	TotalEstimatedCost float64       `json:"total_estimated_cost"`
	Currency           string        `json:"currency"`
	CostBreakdown      CostBreakdown `json:"cost_breakdown"`
	Itinerary          []DayPlan     `json:"itinerary"`
	PackingList        []string      `json:"packing_list"`
	SafetyTips         []string      `json:"safety_tips"`
	Notes              string        `json:"notes,omitempty"`
}

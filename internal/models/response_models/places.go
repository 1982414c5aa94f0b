package response_models

// PlaceCandidate is what the place lookup hands to the planner and the
// grounding pass. AvgCost is per person in the destination's currency;
// zero means unknown.
type PlaceCandidate struct {
	Name      string   `json:"name"`
	Address   string   `json:"address"`
	Kind      string   `json:"kind"`
	PriceTier string   `json:"price_tier,omitempty"`
	AvgCost   float64  `json:"avg_cost,omitempty"`
	Tags      []string `json:"tags,omitempty"`
}

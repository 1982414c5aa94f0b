package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tripmate/internal/models/response_models"
)

func groundablePlan() *response_models.ItineraryPlan {
	return &response_models.ItineraryPlan{
		Destination: "Jaipur",
		Days:        2,
		Persons:     2,
		Currency:    "INR",
		CostBreakdown: response_models.CostBreakdown{
			Accommodation: 4000,
			Transport:     1500,
			Misc:          500,
		},
		Itinerary: []response_models.DayPlan{
			{Day: 1, Activities: []response_models.Activity{
				{Time: "09:00", PlaceName: "Famous landmark", Type: "sightseeing", EntryFee: 100, DurationMinutes: 120},
				{Time: "13:00", PlaceName: "Popular local restaurant", Type: "restaurant", EntryFee: 300, DurationMinutes: 90},
			}},
			{Day: 2, Activities: []response_models.Activity{
				{Time: "10:00", PlaceName: "Tourist spot nearby", Type: "sightseeing", EntryFee: 150, DurationMinutes: 180},
				{Time: "13:30", PlaceName: "Lunch at a popular place", Type: "sightseeing", EntryFee: 250, DurationMinutes: 60},
			}},
		},
		PackingList: []string{"Hat"},
		SafetyTips:  []string{"Stay hydrated"},
	}
}

func TestGroundingReplacesPlaceholdersWithoutDuplicates(t *testing.T) {
	places := &stubPlaces{pools: map[string][]response_models.PlaceCandidate{
		KindAttraction: {
			{Name: "Amber Fort", Address: "Devisinghpura", AvgCost: 500},
			{Name: "Hawa Mahal", Address: "Badi Choupad", AvgCost: 200},
		},
		KindRestaurant: {
			{Name: "LMB Hotel", Address: "Johari Bazar", AvgCost: 400},
			{Name: "Suvarna Mahal", Address: "Rambagh Palace"},
		},
	}}

	plan := NewGroundingService(places, nil).GroundPlan(context.Background(), groundablePlan())

	seen := map[string]bool{}
	for _, day := range plan.Itinerary {
		for _, a := range day.Activities {
			assert.False(t, seen[a.PlaceName], "place %q assigned twice", a.PlaceName)
			seen[a.PlaceName] = true
		}
	}

	assert.Equal(t, "Amber Fort", plan.Itinerary[0].Activities[0].PlaceName)
	assert.Equal(t, "LMB Hotel", plan.Itinerary[0].Activities[1].PlaceName)
	// "Lunch at a popular place" classifies as food by keyword despite the
	// sightseeing type.
	assert.Equal(t, "Suvarna Mahal", plan.Itinerary[1].Activities[1].PlaceName)
}

func TestGroundingFetchesPoolOncePerKind(t *testing.T) {
	places := &stubPlaces{pools: map[string][]response_models.PlaceCandidate{
		KindAttraction: {{Name: "Amber Fort", Address: "Devisinghpura"}, {Name: "Hawa Mahal", Address: "Badi Choupad"}},
		KindRestaurant: {{Name: "LMB Hotel", Address: "Johari Bazar"}, {Name: "Suvarna Mahal"}},
	}}

	NewGroundingService(places, nil).GroundPlan(context.Background(), groundablePlan())

	assert.Equal(t, 1, places.lookups[KindAttraction])
	assert.Equal(t, 1, places.lookups[KindRestaurant])
}

func TestGroundingKeepsOriginalOnPoolExhaustion(t *testing.T) {
	places := &stubPlaces{pools: map[string][]response_models.PlaceCandidate{
		KindAttraction: {{Name: "Amber Fort", Address: "Devisinghpura"}},
		// no restaurants at all
	}}

	plan := NewGroundingService(places, nil).GroundPlan(context.Background(), groundablePlan())

	assert.Equal(t, "Amber Fort", plan.Itinerary[0].Activities[0].PlaceName)
	// Second attraction placeholder has no unused entry left.
	assert.Equal(t, "Tourist spot nearby", plan.Itinerary[1].Activities[0].PlaceName)
	// Food placeholders stay untouched with an empty restaurant pool.
	assert.Equal(t, "Popular local restaurant", plan.Itinerary[0].Activities[1].PlaceName)
}

func TestGroundingRecomputesCostAggregates(t *testing.T) {
	places := &stubPlaces{pools: map[string][]response_models.PlaceCandidate{
		KindAttraction: {{Name: "Amber Fort", AvgCost: 500}, {Name: "Hawa Mahal", AvgCost: 200}},
		KindRestaurant: {{Name: "LMB Hotel", AvgCost: 400}, {Name: "Suvarna Mahal", AvgCost: 600}},
	}}

	plan := NewGroundingService(places, nil).GroundPlan(context.Background(), groundablePlan())

	// persons = 2; attractions: 500 + 200, food: 400 + 600.
	assert.Equal(t, 1400.0, plan.CostBreakdown.Activities)
	assert.Equal(t, 2000.0, plan.CostBreakdown.Food)
	assert.Equal(t, 4000.0, plan.CostBreakdown.Accommodation, "accommodation carries over")
	assert.Equal(t, 1500.0, plan.CostBreakdown.Transport, "transport carries over")
	assert.Equal(t, 500.0, plan.CostBreakdown.Misc, "misc carries over")
	assertCostTotal(t, plan)
	assert.Equal(t, plan.CostBreakdown.Total, plan.TotalEstimatedCost)
}

func TestGroundingLeavesRealNamesAlone(t *testing.T) {
	places := &stubPlaces{pools: map[string][]response_models.PlaceCandidate{
		KindAttraction: {{Name: "Amber Fort"}},
	}}

	plan := &response_models.ItineraryPlan{
		Destination: "Jaipur",
		Days:        1,
		Persons:     1,
		Itinerary: []response_models.DayPlan{
			{Day: 1, Activities: []response_models.Activity{
				{Time: "09:00", PlaceName: "Jantar Mantar", Type: "sightseeing", EntryFee: 50, DurationMinutes: 60},
			}},
		},
		PackingList: []string{"Hat"},
		SafetyTips:  []string{"Stay hydrated"},
	}

	got := NewGroundingService(places, nil).GroundPlan(context.Background(), plan)
	require.Equal(t, "Jantar Mantar", got.Itinerary[0].Activities[0].PlaceName)
	assert.Zero(t, places.lookups[KindAttraction], "no placeholder means no pool fetch")
}

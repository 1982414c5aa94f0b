package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tripmate/internal/models/response_models"
)

func TestFallbackPlanCyclesThroughPlaces(t *testing.T) {
	places := &stubPlaces{pools: map[string][]response_models.PlaceCandidate{
		KindAttraction: {
			{Name: "Fort Kochi Beach", Address: "Fort Kochi"},
			{Name: "Mattancherry Palace", Address: "Mattancherry"},
		},
		KindRestaurant: {
			{Name: "Kashi Art Cafe", Address: "Fort Kochi", AvgCost: 400},
		},
	}}

	req := testRequest()
	req.Destination = "Kochi"

	plan := NewFallbackPlanner(places).BuildPlan(context.Background(), req)

	require.Len(t, plan.Itinerary, 3)
	for i, day := range plan.Itinerary {
		assert.Equal(t, i+1, day.Day)
		require.Len(t, day.Activities, 3)
	}

	// Consecutive attraction slots cycle instead of repeating.
	day1 := plan.Itinerary[0].Activities
	assert.NotEqual(t, day1[0].PlaceName, day1[2].PlaceName)
}

func TestFallbackPlanWithEmptyLookupUsesGenericCatalog(t *testing.T) {
	req := testRequest()
	req.Destination = "Nowhereville"
	req.Budget = 0

	plan := NewFallbackPlanner(&stubPlaces{}).BuildPlan(context.Background(), req)

	require.Len(t, plan.Itinerary, req.Days)
	for _, day := range plan.Itinerary {
		require.NotEmpty(t, day.Activities)
		for _, a := range day.Activities {
			assert.NotEmpty(t, a.PlaceName)
			assert.Greater(t, a.DurationMinutes, 0)
			assert.GreaterOrEqual(t, a.EntryFee, 0.0)
		}
	}
	assertCostTotal(t, plan)
	assert.Greater(t, plan.CostBreakdown.Total, 0.0, "estimated budget must produce non-zero costs")
	assert.NotEmpty(t, plan.PackingList)
	assert.NotEmpty(t, plan.SafetyTips)
}

func TestFallbackCostSplits(t *testing.T) {
	req := testRequest() // 15000 INR

	plan := NewFallbackPlanner(&stubPlaces{}).BuildPlan(context.Background(), req)

	cb := plan.CostBreakdown
	assert.Equal(t, 6000.0, cb.Accommodation, "accommodation is 40% of budget")
	assert.Equal(t, 2250.0, cb.Transport, "transport is 15% of budget")
	assert.GreaterOrEqual(t, cb.Misc, 0.0)
	assertCostTotal(t, plan)
}

func TestFallbackPackingListFollowsTravelMedium(t *testing.T) {
	req := testRequest()
	req.TravelMedium = "car"

	plan := NewFallbackPlanner(&stubPlaces{}).BuildPlan(context.Background(), req)

	assert.Contains(t, plan.PackingList, "Driving license and vehicle documents")
	for _, day := range plan.Itinerary {
		for _, a := range day.Activities {
			assert.Equal(t, "car", a.RouteFromPrevious.Mode)
		}
	}
}

package services

import (
	"context"
	"fmt"
	"log"
	"math"
	"strings"

	"tripmate/internal/models/request_models"
	"tripmate/internal/models/response_models"
)

const fallbackPoolSize = 6

// Per-person per-day budget baseline used when the request carries none.
var budgetBaselines = map[string]float64{
	"INR": 4000,
	"USD": 150,
	"EUR": 140,
	"GBP": 130,
}

const defaultBudgetBaseline = 120

// FallbackPlanner builds a deterministic itinerary from looked-up places.
// It is the pipeline's liveness guarantee: it cannot fail, and its output is
// always schema-valid. When the lookup has nothing for the destination it
// degrades to a generic destination-tagged catalog.
type FallbackPlanner struct {
	places PlaceServiceInterface
}

func NewFallbackPlanner(places PlaceServiceInterface) *FallbackPlanner {
	return &FallbackPlanner{places: places}
}

func (f *FallbackPlanner) BuildPlan(ctx context.Context, req request_models.TripPlanRequest) *response_models.ItineraryPlan {
	attractions := f.places.FindPlaces(ctx, req.Destination, KindAttraction, fallbackPoolSize)
	restaurants := f.places.FindPlaces(ctx, req.Destination, KindRestaurant, fallbackPoolSize)

	if len(attractions) == 0 {
		attractions = genericAttractions(req.Destination)
	}
	if len(restaurants) == 0 {
		restaurants = genericRestaurants(req.Destination)
	}
	log.Printf("planner: rule-based plan for %q using %d attractions, %d restaurants",
		req.Destination, len(attractions), len(restaurants))

	budget := req.Budget
	if budget <= 0 {
		budget = estimateBudget(req.Currency, req.Persons, req.Days)
	}

	tier := priceTierFactor(attractions, restaurants)
	mealBase := round2(dayBaseline(req.Currency) * 0.08 * tier)
	entryBase := round2(dayBaseline(req.Currency) * 0.05 * tier)

	mode := req.TravelMedium
	if mode == "" {
		mode = "walk"
	}

	var itinerary []response_models.DayPlan
	ai, ri := 0, 0
	for day := 1; day <= req.Days; day++ {
		morning := attractions[ai%len(attractions)]
		ai++
		lunch := restaurants[ri%len(restaurants)]
		ri++
		afternoon := attractions[ai%len(attractions)]
		ai++

		activities := []response_models.Activity{
			buildAttractionActivity(morning, "09:00", 180, entryBase, mode, "Hotel"),
			buildMealActivity(lunch, "13:00", 90, mealBase, mode, morning.Name),
			buildAttractionActivity(afternoon, "15:30", 150, entryBase, mode, lunch.Name),
		}

		itinerary = append(itinerary, response_models.DayPlan{
			Day:        day,
			Activities: activities,
		})
	}

	breakdown := buildCostBreakdown(itinerary, budget, req.Persons)

	return &response_models.ItineraryPlan{
		Destination:        req.Destination,
		Days:               req.Days,
		Persons:            req.Persons,
		TotalEstimatedCost: breakdown.Total,
		Currency:           req.Currency,
		CostBreakdown:      breakdown,
		Itinerary:          itinerary,
		PackingList:        buildPackingList(req),
		SafetyTips:         buildSafetyTips(req),
		Notes:              fmt.Sprintf("Rule-based %d-day itinerary for %s built from verified local places.", req.Days, req.Destination),
	}
}

func buildAttractionActivity(place response_models.PlaceCandidate, at string, duration int, entryBase float64, mode, from string) response_models.Activity {
	fee := place.AvgCost
	if fee <= 0 {
		fee = entryBase
	}
	return response_models.Activity{
		Time:                     at,
		PlaceName:                place.Name,
		Address:                  place.Address,
		Type:                     attractionType(place),
		EntryFee:                 round2(fee),
		DurationMinutes:          duration,
		LocalFoodRecommendations: []string{},
		RouteFromPrevious:        buildRouteLeg(mode, from, place.Name),
	}
}

func buildMealActivity(place response_models.PlaceCandidate, at string, duration int, mealBase float64, mode, from string) response_models.Activity {
	cost := place.AvgCost
	if cost <= 0 {
		cost = mealBase
	}
	return response_models.Activity{
		Time:                     at,
		PlaceName:                place.Name,
		Address:                  place.Address,
		Type:                     "restaurant",
		EntryFee:                 round2(cost),
		DurationMinutes:          duration,
		LocalFoodRecommendations: []string{"Regional thali", "Chef's special of the day"},
		RouteFromPrevious:        buildRouteLeg(mode, from, place.Name),
	}
}

func buildRouteLeg(mode, from, to string) response_models.RouteLeg {
	distance := 2.5
	travelTime := 15
	if mode == "walk" {
		distance = 1.2
		travelTime = 18
	}
	return response_models.RouteLeg{
		Mode:              mode,
		DistanceKm:        distance,
		TravelTimeMinutes: travelTime,
		From:              from,
		To:                to,
	}
}

// buildCostBreakdown allocates the budget with fixed splits: accommodation
// 40%, transport 15%, food and activities from the per-activity costs times
// persons, misc as the non-negative remainder. Total is the exact sum of the
// five components.
func buildCostBreakdown(itinerary []response_models.DayPlan, budget float64, persons int) response_models.CostBreakdown {
	accommodation := round2(budget * 0.40)
	transport := round2(budget * 0.15)

	var food, activities float64
	for _, day := range itinerary {
		for _, a := range day.Activities {
			if isFoodActivityType(a.Type) {
				food += a.EntryFee * float64(persons)
			} else {
				activities += a.EntryFee * float64(persons)
			}
		}
	}
	food = round2(food)
	activities = round2(activities)

	misc := round2(budget - accommodation - transport - food - activities)
	if misc < 0 {
		misc = 0
	}

	return response_models.CostBreakdown{
		Accommodation: accommodation,
		Food:          food,
		Transport:     transport,
		Activities:    activities,
		Misc:          misc,
		Total:         accommodation + food + transport + activities + misc,
	}
}

func buildPackingList(req request_models.TripPlanRequest) []string {
	list := []string{
		"Comfortable walking shoes",
		"Sunscreen and sunglasses",
		"Reusable water bottle",
		"Power bank and chargers",
	}
	if req.TravelMedium == "car" || req.TravelMedium == "bike" {
		list = append(list, "Driving license and vehicle documents")
	}
	if req.TripType == "adventure" {
		list = append(list, "First-aid kit")
	}
	return list
}

func buildSafetyTips(req request_models.TripPlanRequest) []string {
	tips := []string{
		"Keep digital and paper copies of your ID",
		"Save local emergency numbers before heading out",
		"Use registered taxis or ride apps at night",
	}
	if req.TravelMedium == "car" {
		tips = append(tips, "Check fuel and tyre pressure before long stretches")
	}
	return tips
}

func estimateBudget(currency string, persons, days int) float64 {
	return dayBaseline(currency) * float64(persons) * float64(days)
}

func dayBaseline(currency string) float64 {
	if base, ok := budgetBaselines[currency]; ok {
		return base
	}
	return defaultBudgetBaseline
}

// priceTierFactor reads the "price tier" signal off the looked-up pools;
// mid-tier when the lookup carries none.
func priceTierFactor(pools ...[]response_models.PlaceCandidate) float64 {
	for _, pool := range pools {
		for _, place := range pool {
			switch strings.ToLower(place.PriceTier) {
			case "budget":
				return 0.7
			case "mid":
				return 1.0
			case "premium":
				return 1.5
			}
		}
	}
	return 1.0
}

func attractionType(place response_models.PlaceCandidate) string {
	for _, tag := range place.Tags {
		switch strings.ToLower(tag) {
		case "museum", "temple", "park", "market":
			return strings.ToLower(tag)
		}
	}
	return "sightseeing"
}

func genericAttractions(destination string) []response_models.PlaceCandidate {
	return []response_models.PlaceCandidate{
		{Name: fmt.Sprintf("Popular viewpoint in %s", destination), Address: destination, Kind: KindAttraction},
		{Name: fmt.Sprintf("%s heritage landmark", destination), Address: destination, Kind: KindAttraction},
		{Name: fmt.Sprintf("Famous market street of %s", destination), Address: destination, Kind: KindAttraction, Tags: []string{"market"}},
		{Name: fmt.Sprintf("City park of %s", destination), Address: destination, Kind: KindAttraction, Tags: []string{"park"}},
	}
}

func genericRestaurants(destination string) []response_models.PlaceCandidate {
	return []response_models.PlaceCandidate{
		{Name: fmt.Sprintf("Popular local restaurant in %s", destination), Address: destination, Kind: KindRestaurant},
		{Name: fmt.Sprintf("Traditional eatery near %s center", destination), Address: destination, Kind: KindRestaurant},
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

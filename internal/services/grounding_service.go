package services

import (
	"context"
	"log"
	"strings"

	"tripmate/internal/models/response_models"
)

const groundingPoolSize = 10

// DefaultPlaceholderKeywords flags generic place names the generators tend
// to emit. Heuristic and tunable, not a completeness guarantee.
var DefaultPlaceholderKeywords = []string{
	"famous",
	"local restaurant",
	"tourist spot",
	"landmark",
	"popular",
	"local market",
	"city center",
}

var mealKeywords = []string{"breakfast", "lunch", "dinner", "brunch"}

// GroundingService replaces placeholder place names in a schema-valid plan
// with verified entities from the place lookup, then recomputes the cost
// aggregates the substitutions may have shifted.
type GroundingService struct {
	places   PlaceServiceInterface
	keywords []string
}

func NewGroundingService(places PlaceServiceInterface, keywords []string) *GroundingService {
	if len(keywords) == 0 {
		keywords = DefaultPlaceholderKeywords
	}
	return &GroundingService{
		places:   places,
		keywords: keywords,
	}
}

// GroundPlan mutates plan in place and returns it. A slot whose kind has no
// unused real entity left keeps its original content; that is never an
// error.
func (g *GroundingService) GroundPlan(ctx context.Context, plan *response_models.ItineraryPlan) *response_models.ItineraryPlan {
	pools := map[string][]response_models.PlaceCandidate{}
	used := map[string]bool{}

	// Names already in the plan are taken; grounding must not introduce a
	// duplicate of an activity it leaves untouched.
	for _, day := range plan.Itinerary {
		for _, a := range day.Activities {
			used[strings.ToLower(a.PlaceName)] = true
		}
	}

	fetchPool := func(kind string) []response_models.PlaceCandidate {
		if pool, ok := pools[kind]; ok {
			return pool
		}
		pool := g.places.FindPlaces(ctx, plan.Destination, kind, groundingPoolSize)
		pools[kind] = pool
		return pool
	}

	grounded := 0
	for i := range plan.Itinerary {
		for j := range plan.Itinerary[i].Activities {
			activity := &plan.Itinerary[i].Activities[j]
			if !g.isPlaceholder(activity.PlaceName) {
				continue
			}

			kind := KindAttraction
			if isFoodActivity(*activity) {
				kind = KindRestaurant
			}

			candidate, ok := nextUnused(fetchPool(kind), used)
			if !ok {
				continue // pool exhausted, keep the original
			}

			used[strings.ToLower(candidate.Name)] = true
			activity.PlaceName = candidate.Name
			if candidate.Address != "" {
				activity.Address = candidate.Address
			}
			if candidate.AvgCost > 0 {
				activity.EntryFee = round2(candidate.AvgCost)
			}
			grounded++
		}
	}
	if grounded > 0 {
		log.Printf("grounding: replaced %d placeholder places for %q", grounded, plan.Destination)
	}

	recomputeCosts(plan)
	return plan
}

func (g *GroundingService) isPlaceholder(name string) bool {
	lower := strings.ToLower(name)
	for _, keyword := range g.keywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

func nextUnused(pool []response_models.PlaceCandidate, used map[string]bool) (response_models.PlaceCandidate, bool) {
	for _, candidate := range pool {
		if candidate.Name == "" || used[strings.ToLower(candidate.Name)] {
			continue
		}
		return candidate, true
	}
	return response_models.PlaceCandidate{}, false
}

func isFoodActivity(a response_models.Activity) bool {
	if isFoodActivityType(a.Type) {
		return true
	}
	lower := strings.ToLower(a.PlaceName)
	for _, keyword := range mealKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

func isFoodActivityType(activityType string) bool {
	return activityType == "restaurant" || activityType == "cafe"
}

// recomputeCosts rebuilds the food and activities buckets from the
// per-activity costs times persons and re-totals the breakdown.
// Accommodation, transport and misc carry over.
func recomputeCosts(plan *response_models.ItineraryPlan) {
	var food, activities float64
	for _, day := range plan.Itinerary {
		for _, a := range day.Activities {
			if isFoodActivity(a) {
				food += a.EntryFee * float64(plan.Persons)
			} else {
				activities += a.EntryFee * float64(plan.Persons)
			}
		}
	}

	cb := &plan.CostBreakdown
	cb.Food = round2(food)
	cb.Activities = round2(activities)
	cb.Total = cb.Accommodation + cb.Food + cb.Transport + cb.Activities + cb.Misc
	plan.TotalEstimatedCost = cb.Total
}

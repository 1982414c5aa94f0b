package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"tripmate/internal/models/request_models"
	"tripmate/internal/models/response_models"
	"tripmate/pkg/utils"
)

var validActivityTypes = map[string]bool{
	"sightseeing": true,
	"restaurant":  true,
	"cafe":        true,
	"market":      true,
	"museum":      true,
	"temple":      true,
	"park":        true,
}

// ValidateCandidatePlan parses an untrusted candidate document and checks it
// against the plan invariants. Every failure comes back as a typed rejection
// wrapping ErrPlanRejected; nothing escapes as a panic. On success the plan
// is normalized: request identity fields are authoritative and the cost
// total is recomputed as the exact sum of its components.
func ValidateCandidatePlan(candidate string, req request_models.TripPlanRequest) (*response_models.ItineraryPlan, error) {
	if strings.TrimSpace(candidate) == "" {
		return nil, rejectf("empty candidate document")
	}

	var plan response_models.ItineraryPlan
	if err := json.Unmarshal([]byte(candidate), &plan); err != nil {
		return nil, rejectf("unmarshal failed: %v", err)
	}

	if len(plan.Itinerary) != req.Days {
		return nil, rejectf("expected %d days, got %d", req.Days, len(plan.Itinerary))
	}

	for i, day := range plan.Itinerary {
		if day.Day != i+1 {
			return nil, rejectf("day %d has day number %d", i+1, day.Day)
		}
		if len(day.Activities) == 0 {
			return nil, rejectf("day %d has no activities", day.Day)
		}
		for j, activity := range day.Activities {
			if err := validateActivity(activity); err != nil {
				return nil, rejectf("day %d, activity %d: %v", day.Day, j+1, err)
			}
			plan.Itinerary[i].Activities[j].Type = strings.ToLower(strings.TrimSpace(activity.Type))
		}
	}

	if len(plan.PackingList) == 0 {
		return nil, rejectf("packing list is empty")
	}
	if len(plan.SafetyTips) == 0 {
		return nil, rejectf("safety tips are empty")
	}

	cb := plan.CostBreakdown
	if cb.Accommodation < 0 || cb.Food < 0 || cb.Transport < 0 || cb.Activities < 0 || cb.Misc < 0 {
		return nil, rejectf("negative cost component")
	}

	plan.Destination = req.Destination
	plan.Days = req.Days
	plan.Persons = req.Persons
	plan.Currency = req.Currency
	plan.CostBreakdown.Total = cb.Accommodation + cb.Food + cb.Transport + cb.Activities + cb.Misc
	plan.TotalEstimatedCost = plan.CostBreakdown.Total

	return &plan, nil
}

func validateActivity(a response_models.Activity) error {
	if strings.TrimSpace(a.PlaceName) == "" {
		return fmt.Errorf("place name is empty")
	}
	if strings.TrimSpace(a.Time) == "" {
		return fmt.Errorf("time is empty")
	}
	if !validActivityTypes[strings.ToLower(strings.TrimSpace(a.Type))] {
		return fmt.Errorf("unknown activity type %q", a.Type)
	}
	if a.EntryFee < 0 {
		return fmt.Errorf("negative entry fee")
	}
	if a.DurationMinutes <= 0 {
		return fmt.Errorf("non-positive duration")
	}
	return nil
}

func rejectf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", utils.ErrPlanRejected, fmt.Sprintf(format, args...))
}

package services

import (
	"strconv"
	"strings"
	"unicode"

	"tripmate/internal/models/request_models"
	"tripmate/pkg/utils"
)

const (
	maxPlanDays       = 30
	maxDestinationLen = 100
	defaultCurrency   = "INR"
)

// NormalizeTripRequest clamps and defaults the request fields so that
// semantically identical requests converge on the same canonical form.
// Only a destination that is empty after cleaning is a hard rejection.
func NormalizeTripRequest(req request_models.TripPlanRequest) (request_models.TripPlanRequest, error) {
	req.Destination = cleanDestination(req.Destination)
	if req.Destination == "" {
		return req, utils.ErrInvalidInput
	}

	if req.Days < 1 {
		req.Days = 1
	}
	if req.Days > maxPlanDays {
		req.Days = maxPlanDays
	}
	if req.Persons < 1 {
		req.Persons = 1
	}
	if req.Budget < 0 {
		req.Budget = 0
	}

	req.Currency = strings.ToUpper(strings.TrimSpace(req.Currency))
	if req.Currency == "" {
		req.Currency = defaultCurrency
	}
	req.TripType = strings.ToLower(strings.TrimSpace(req.TripType))
	req.TravelMedium = strings.ToLower(strings.TrimSpace(req.TravelMedium))
	req.TripID = strings.TrimSpace(req.TripID)

	return req, nil
}

// BuildPlanKey derives the canonical cache/coalescing key from a normalized
// request. Pure and deterministic; kept human-readable for log lines.
func BuildPlanKey(req request_models.TripPlanRequest) string {
	parts := []string{
		strings.ToLower(req.Destination),
		strconv.Itoa(req.Days),
		strconv.Itoa(req.Persons),
		strconv.FormatFloat(req.Budget, 'f', -1, 64),
		req.Currency,
		req.TripType,
		req.TravelMedium,
	}
	return strings.Join(parts, "|")
}

func cleanDestination(s string) string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
	s = strings.TrimSpace(s)

	if len(s) > maxDestinationLen {
		runes := []rune(s)
		if len(runes) > maxDestinationLen {
			s = strings.TrimSpace(string(runes[:maxDestinationLen]))
		}
	}
	return s
}

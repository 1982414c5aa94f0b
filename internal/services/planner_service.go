package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"tripmate/internal/models/request_models"
	"tripmate/internal/models/response_models"
	"tripmate/internal/repositories"
	mem "tripmate/pkg/memcache"
	"tripmate/pkg/utils"
)

// PlanProvider is a uniform adapter over a generation backend. Raw output
// conventions differ per backend; the orchestrator extracts and validates
// once, downstream.
type PlanProvider interface {
	Name() string
	GeneratePlanJSON(ctx context.Context, prompt string) (string, error)
}

// ExhaustionPolicy decides what happens when every provider has failed.
type ExhaustionPolicy string

const (
	// FallbackToRules substitutes the deterministic rule-based plan; the
	// caller never sees provider failures.
	FallbackToRules ExhaustionPolicy = "fallback"
	// FailClosed surfaces ErrProvidersUnavailable instead of degrading
	// quality silently.
	FailClosed ExhaustionPolicy = "fail"
)

type PlannerConfig struct {
	ProviderTimeout     time.Duration
	CacheTTL            time.Duration
	OnExhaustion        ExhaustionPolicy
	PlaceholderKeywords []string
}

func DefaultPlannerConfig() PlannerConfig {
	return PlannerConfig{
		ProviderTimeout: 60 * time.Second,
		CacheTTL:        5 * time.Minute,
		OnExhaustion:    FallbackToRules,
	}
}

type PlannerServiceInterface interface {
	GeneratePlan(ctx context.Context, req request_models.TripPlanRequest) (*response_models.ItineraryPlan, error)
}

type PlannerService struct {
	providers []PlanProvider
	places    PlaceServiceInterface
	tripRepo  repositories.TripRepository
	cache     *mem.PlanCache
	inflight  *mem.InflightGroup
	fallback  *FallbackPlanner
	grounding *GroundingService
	cfg       PlannerConfig
}

func NewPlannerService(
	providers []PlanProvider,
	places PlaceServiceInterface,
	tripRepo repositories.TripRepository,
	cfg PlannerConfig,
) PlannerServiceInterface {
	if cfg.ProviderTimeout <= 0 {
		cfg.ProviderTimeout = 60 * time.Second
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 5 * time.Minute
	}
	if cfg.OnExhaustion == "" {
		cfg.OnExhaustion = FallbackToRules
	}
	return &PlannerService{
		providers: providers,
		places:    places,
		tripRepo:  tripRepo,
		cache:     mem.NewPlanCache(cfg.CacheTTL),
		inflight:  mem.NewInflightGroup(),
		fallback:  NewFallbackPlanner(places),
		grounding: NewGroundingService(places, cfg.PlaceholderKeywords),
		cfg:       cfg,
	}
}

// GeneratePlan runs the pipeline: canonical key, persisted-plan
// short-circuit, in-flight join, cache, provider chain, grounding, then
// cache/persist. At most one generation runs per key at a time.
func (s *PlannerService) GeneratePlan(ctx context.Context, req request_models.TripPlanRequest) (*response_models.ItineraryPlan, error) {
	norm, err := NormalizeTripRequest(req)
	if err != nil {
		return nil, err
	}

	key := BuildPlanKey(norm)
	if norm.TripID != "" {
		// Keying on the trip narrows the window between the idempotency
		// check and the write-once persist.
		key = "trip:" + norm.TripID

		existing, err := s.tripRepo.GetPersistedPlan(ctx, norm.TripID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if existing != nil {
			return existing, nil
		}
	}

	// The producer runs on its own context: a caller disconnect must not
	// abort work that coalesced callers (or the cache) still benefit from.
	genCtx := context.WithoutCancel(ctx)

	return s.inflight.Do(key, func() (*response_models.ItineraryPlan, error) {
		if cached := s.cache.Get(key); cached != nil {
			return cached, nil
		}

		plan, err := s.runProviderChain(genCtx, norm)
		if err != nil {
			return nil, err
		}

		plan = s.grounding.GroundPlan(genCtx, plan)

		s.cache.Set(key, plan)

		if norm.TripID != "" {
			if err := s.tripRepo.SetPersistedPlan(genCtx, norm.TripID, plan); err != nil {
				log.Printf("planner: persisting plan for trip %s failed: %v", norm.TripID, err)
			}
		}

		return plan, nil
	})
}

// runProviderChain walks the ordered providers with a hard per-provider
// timeout and short-circuits on the first schema-valid candidate. A failed
// provider is never retried within the same request.
func (s *PlannerService) runProviderChain(ctx context.Context, req request_models.TripPlanRequest) (*response_models.ItineraryPlan, error) {
	prompt := buildPlanPrompt(req)

	for _, provider := range s.providers {
		pctx, cancel := context.WithTimeout(ctx, s.cfg.ProviderTimeout)
		raw, err := provider.GeneratePlanJSON(pctx, prompt)
		cancel()
		if err != nil {
			log.Printf("planner: provider=%s stage=generate error=%v", provider.Name(), err)
			continue
		}

		candidate := utils.ExtractJSONDocument(raw)
		if candidate == "" {
			log.Printf("planner: provider=%s stage=extract error=no JSON document in response", provider.Name())
			continue
		}

		plan, err := ValidateCandidatePlan(candidate, req)
		if err != nil {
			log.Printf("planner: provider=%s stage=validate error=%v", provider.Name(), err)
			continue
		}

		return plan, nil
	}

	if s.cfg.OnExhaustion == FailClosed {
		return nil, utils.ErrProvidersUnavailable
	}
	return s.fallback.BuildPlan(ctx, req), nil
}

func buildPlanPrompt(req request_models.TripPlanRequest) string {
	var prompt strings.Builder

	prompt.WriteString(fmt.Sprintf(
		"Create a %d-day itinerary for %s for %d person(s), budget %.0f %s, trip style %q, travelling by %q.\n",
		req.Days, req.Destination, req.Persons, req.Budget, req.Currency, req.TripType, req.TravelMedium))
	prompt.WriteString("Return JSON only that exactly matches this schema (keys and types must match):\n")
	prompt.WriteString(`{
  "destination": "string",
  "days": 1,
  "persons": 1,
  "total_estimated_cost": 0,
  "currency": "INR",
  "cost_breakdown": {"accommodation":0,"food":0,"transport":0,"activities":0,"misc":0,"total":0},
  "itinerary": [
    {"day":1,"activities":[
      {"time":"09:00","place_name":"...","address":"...","type":"sightseeing",
       "entry_fee":0,"duration_minutes":120,"local_food_recommendations":[],
       "route_from_previous":{"mode":"walk","distance_km":1.0,"travel_time_minutes":12,"from":"...","to":"..."}}
    ]}
  ],
  "packing_list": ["..."],
  "safety_tips": ["..."],
  "notes": ""
}`)
	prompt.WriteString("\n\nHard constraints:\n")
	prompt.WriteString(fmt.Sprintf("- Exactly %d entries in \"itinerary\", day = 1..%d with no gaps.\n", req.Days, req.Days))
	prompt.WriteString("- Every day has at least one activity.\n")
	prompt.WriteString("- \"type\" is one of: sightseeing, restaurant, cafe, market, museum, temple, park.\n")
	prompt.WriteString("- entry_fee >= 0, duration_minutes > 0.\n")
	prompt.WriteString("- Use real place names with addresses; avoid generic names like \"famous landmark\".\n")
	prompt.WriteString("- cost_breakdown.total = accommodation + food + transport + activities + misc.\n")
	prompt.WriteString("Return JSON only. No comments, no markdown.\n")

	return prompt.String()
}

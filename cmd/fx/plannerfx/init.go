// cmd/fx/plannerfx/init.go
package plannerfx

import (
	"log"
	"os"

	"go.uber.org/fx"
	"tripmate/internal/api/controllers"
	"tripmate/internal/repositories"
	"tripmate/internal/services"
	"tripmate/pkg/utils"
)

var Module = fx.Provide(
	ProvidePlanProviders,
	ProvidePlannerConfig,
	ProvidePlannerService,
	ProvidePlannerController)

// ProvidePlanProviders builds the ordered provider chain from environment
// configuration. A backend with no API key is skipped with a log line; an
// empty chain still works, every request then lands on the rule-based
// planner.
func ProvidePlanProviders() []services.PlanProvider {
	var providers []services.PlanProvider

	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		client, err := utils.NewGeminiPlanClient(apiKey, os.Getenv("GEMINI_MODEL"))
		if err != nil {
			log.Printf("planner: gemini client unavailable: %v", err)
		} else {
			providers = append(providers, client)
		}
	} else {
		log.Println("planner: GEMINI_API_KEY not set, skipping gemini provider")
	}

	if apiKey := os.Getenv("OPENAI_API_KEY"); apiKey != "" {
		providers = append(providers, utils.NewOpenAIPlanClient(apiKey, os.Getenv("OPENAI_MODEL")))
	} else {
		log.Println("planner: OPENAI_API_KEY not set, skipping openai provider")
	}

	log.Printf("planner: %d generation provider(s) configured", len(providers))
	return providers
}

func ProvidePlannerConfig() services.PlannerConfig {
	cfg := services.DefaultPlannerConfig()
	if policy := os.Getenv("PLANNER_EXHAUSTION_POLICY"); policy == string(services.FailClosed) {
		cfg.OnExhaustion = services.FailClosed
	}
	return cfg
}

func ProvidePlannerService(
	providers []services.PlanProvider,
	places services.PlaceServiceInterface,
	tripRepo repositories.TripRepository,
	cfg services.PlannerConfig,
) services.PlannerServiceInterface {
	return services.NewPlannerService(providers, places, tripRepo, cfg)
}

func ProvidePlannerController(
	plannerService services.PlannerServiceInterface,
) *controllers.PlannerController {
	return controllers.NewPlannerController(plannerService)
}

package tripsfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"tripmate/internal/api/controllers"
	"tripmate/internal/repositories"
	"tripmate/internal/services"
)

var Module = fx.Provide(
	provideTripRepo, provideTripService, provideTripsController)

func provideTripRepo(db *gorm.DB) repositories.TripRepository {
	return repositories.NewTripRepository(db)
}

func provideTripService(tripRepo repositories.TripRepository, planner services.PlannerServiceInterface) services.TripServiceInterface {
	return services.NewTripService(tripRepo, planner)
}

func provideTripsController(tripService services.TripServiceInterface) *controllers.TripsController {
	return controllers.NewTripsController(tripService)
}

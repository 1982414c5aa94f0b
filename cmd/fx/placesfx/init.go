package placesfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"tripmate/internal/repositories"
	"tripmate/internal/services"
)

var Module = fx.Provide(
	providePlaceRepo, providePlaceService)

func providePlaceRepo(db *gorm.DB) repositories.PlaceRepository {
	return repositories.NewPlaceRepository(db)
}

func providePlaceService(placeRepo repositories.PlaceRepository) services.PlaceServiceInterface {
	return services.NewPlaceService(placeRepo)
}

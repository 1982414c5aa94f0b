package services

import (
	"context"
	"log"
	"strings"

	"tripmate/internal/models/db_models"
	"tripmate/internal/models/response_models"
	"tripmate/internal/repositories"
	"tripmate/pkg/utils"
)

const (
	KindAttraction = "attraction"
	KindRestaurant = "restaurant"
)

// PlaceServiceInterface is the place-lookup collaborator. It never returns
// an error into the pipeline: lookup failures become empty lists and the
// callers degrade on their own terms.
type PlaceServiceInterface interface {
	FindPlaces(ctx context.Context, destination, kind string, limit int) []response_models.PlaceCandidate
}

type PlaceService struct {
	placeRepo repositories.PlaceRepository
}

func NewPlaceService(placeRepo repositories.PlaceRepository) PlaceServiceInterface {
	return &PlaceService{
		placeRepo: placeRepo,
	}
}

func (p *PlaceService) FindPlaces(ctx context.Context, destination, kind string, limit int) []response_models.PlaceCandidate {
	if limit <= 0 {
		return []response_models.PlaceCandidate{}
	}

	dest := strings.ToLower(strings.TrimSpace(destination))

	places, err := p.placeRepo.FindByDestinationAndKind(ctx, dest, kind, limit)
	if err != nil {
		log.Printf("places: lookup failed for %q/%s: %v", dest, kind, err)
		return []response_models.PlaceCandidate{}
	}

	if len(places) == 0 {
		// Unseeded destination; fall back to embedding similarity.
		vector := utils.TextToVector(dest + " " + kind)
		places, err = p.placeRepo.FindNearestByEmbedding(ctx, vector, kind, limit)
		if err != nil {
			log.Printf("places: embedding lookup failed for %q/%s: %v", dest, kind, err)
			return []response_models.PlaceCandidate{}
		}
	}

	return toPlaceCandidates(places)
}

func toPlaceCandidates(places []db_models.Place) []response_models.PlaceCandidate {
	out := make([]response_models.PlaceCandidate, 0, len(places))
	for _, place := range places {
		out = append(out, response_models.PlaceCandidate{
			Name:      place.Name,
			Address:   place.Address,
			Kind:      place.Kind,
			PriceTier: place.PriceTier,
			AvgCost:   place.AvgCost,
			Tags:      place.Tags,
		})
	}
	return out
}

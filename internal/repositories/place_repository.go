package repositories

import (
	"context"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"tripmate/internal/models/db_models"
)

type PlaceRepository interface {
	FindByDestinationAndKind(ctx context.Context, destination, kind string, limit int) ([]db_models.Place, error)
	FindNearestByEmbedding(ctx context.Context, vector pgvector.Vector, kind string, limit int) ([]db_models.Place, error)
	CreatePlace(ctx context.Context, place db_models.Place) error
}

type placeRepository struct {
	db *gorm.DB
}

func NewPlaceRepository(db *gorm.DB) PlaceRepository {
	return &placeRepository{db: db}
}

func (r *placeRepository) FindByDestinationAndKind(ctx context.Context, destination, kind string, limit int) ([]db_models.Place, error) {
	var places []db_models.Place
	err := r.db.WithContext(ctx).
		Where("destination = ? AND kind = ?", destination, kind).
		Limit(limit).
		Find(&places).Error

	if err != nil {
		return nil, err
	}
	return places, nil
}

// FindNearestByEmbedding is the lookup of last resort for destinations with
// no exact row: cosine distance over the seeded place embeddings.
func (r *placeRepository) FindNearestByEmbedding(ctx context.Context, vector pgvector.Vector, kind string, limit int) ([]db_models.Place, error) {
	var results []db_models.Place

	vecStr := vector.String()

	query := `
        SELECT *
        FROM places
        WHERE kind = $2 AND (1 - (embedding <=> $1)) > 0.7
        ORDER BY embedding <=> $1
        LIMIT $3
    `

	err := r.db.WithContext(ctx).Raw(query, vecStr, kind, limit).Scan(&results).Error

	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *placeRepository) CreatePlace(ctx context.Context, place db_models.Place) error {
	return r.db.WithContext(ctx).Create(&place).Error
}

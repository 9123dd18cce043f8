package repository

import (
	"context"

	"github.com/cityinfo-api/internal/domain"
)

// CityRepository определяет методы для чтения городов
type CityRepository interface {
	// List returns one page of cities matching the filter, ordered by name, together with
	// pagination metadata computed over the whole filtered set.
	List(ctx context.Context, filter domain.CityFilter) ([]domain.City, domain.PaginationMetadata, error)

	// GetByID returns a city, loading its points of interest only when asked to.
	GetByID(ctx context.Context, id int64, includePointsOfInterest bool) (*domain.City, error)

	// Exists reports whether a city with the given id is stored.
	Exists(ctx context.Context, id int64) (bool, error)
}

package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/cityinfo-api/internal/domain"
	"github.com/cityinfo-api/internal/domain/repository"
	"github.com/cityinfo-api/internal/pkg/errors"
)

type cityRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewCityRepository(db *DB) repository.CityRepository {
	return &cityRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *cityRepository) List(ctx context.Context, filter domain.CityFilter) ([]domain.City, domain.PaginationMetadata, error) {
	q := buildCityListQuery(filter)

	var total int
	if err := r.db.GetContext(ctx, &total, q.Count, q.CountArgs...); err != nil {
		r.logger.Error("Failed to count cities", zap.Error(err))
		return nil, domain.PaginationMetadata{}, errors.ErrDatabaseError
	}

	cities := make([]domain.City, 0, filter.PageSize)
	if err := r.db.SelectContext(ctx, &cities, q.Page, q.PageArgs...); err != nil {
		r.logger.Error("Failed to list cities",
			zap.String("name", filter.Name),
			zap.String("search_query", filter.SearchQuery),
			zap.Error(err),
		)
		return nil, domain.PaginationMetadata{}, errors.ErrDatabaseError
	}

	return cities, domain.NewPaginationMetadata(total, filter.PageSize, filter.PageNumber), nil
}

func (r *cityRepository) GetByID(ctx context.Context, id int64, includePointsOfInterest bool) (*domain.City, error) {
	var city domain.City
	err := r.db.GetContext(ctx, &city, "SELECT "+cityColumns+" FROM cities WHERE id = $1", id)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrCityNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get city by ID", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	if !includePointsOfInterest {
		return &city, nil
	}

	pois, err := selectPointsOfInterest(ctx, r.db, id)
	if err != nil {
		r.logger.Error("Failed to load points of interest", zap.Int64("city_id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	city.PointsOfInterest = pois

	return &city, nil
}

func (r *cityRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	if err := r.db.GetContext(ctx, &exists, "SELECT EXISTS (SELECT 1 FROM cities WHERE id = $1)", id); err != nil {
		r.logger.Error("Failed to check city existence", zap.Int64("id", id), zap.Error(err))
		return false, errors.ErrDatabaseError
	}
	return exists, nil
}

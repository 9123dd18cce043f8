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

const pointOfInterestColumns = "id, city_id, name, description"

type pointOfInterestRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewPointOfInterestRepository(db *DB) repository.PointOfInterestRepository {
	return &pointOfInterestRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *pointOfInterestRepository) ListForCity(ctx context.Context, cityID int64) ([]domain.PointOfInterest, error) {
	pois, err := selectPointsOfInterest(ctx, r.db, cityID)
	if err != nil {
		r.logger.Error("Failed to list points of interest", zap.Int64("city_id", cityID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return pois, nil
}

func (r *pointOfInterestRepository) GetForCity(ctx context.Context, cityID, pointOfInterestID int64) (*domain.PointOfInterest, error) {
	query := "SELECT " + pointOfInterestColumns + " FROM points_of_interest WHERE city_id = $1 AND id = $2"

	var poi domain.PointOfInterest
	err := r.db.GetContext(ctx, &poi, query, cityID, pointOfInterestID)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrPointOfInterestNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get point of interest",
			zap.Int64("city_id", cityID),
			zap.Int64("id", pointOfInterestID),
			zap.Error(err),
		)
		return nil, errors.ErrDatabaseError
	}
	return &poi, nil
}

func (r *pointOfInterestRepository) NewUnitOfWork() repository.UnitOfWork {
	return &unitOfWork{db: r.db, logger: r.logger}
}

func selectPointsOfInterest(ctx context.Context, q sqlx.QueryerContext, cityID int64) ([]domain.PointOfInterest, error) {
	pois := []domain.PointOfInterest{}
	query := "SELECT " + pointOfInterestColumns + " FROM points_of_interest WHERE city_id = $1 ORDER BY id"
	if err := sqlx.SelectContext(ctx, q, &pois, query, cityID); err != nil {
		return nil, err
	}
	return pois, nil
}

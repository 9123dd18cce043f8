package repository

import (
	"context"

	"github.com/cityinfo-api/internal/domain"
)

// PointOfInterestRepository определяет методы для работы с точками интереса города
type PointOfInterestRepository interface {
	// ListForCity returns every point of interest owned by the city.
	ListForCity(ctx context.Context, cityID int64) ([]domain.PointOfInterest, error)

	// GetForCity returns the point of interest only if it belongs to cityID.
	GetForCity(ctx context.Context, cityID, pointOfInterestID int64) (*domain.PointOfInterest, error)

	// NewUnitOfWork starts collecting changes for a single request.
	NewUnitOfWork() UnitOfWork
}

// UnitOfWork queues point-of-interest changes and commits them together.
// A unit of work is not safe for concurrent use and must not be reused after Save.
type UnitOfWork interface {
	// AddPointOfInterestForCity queues an insert. The insert is skipped at commit time when
	// the city does not exist; on success the stored id is written back into poi.
	AddPointOfInterestForCity(cityID int64, poi *domain.PointOfInterest)

	// UpdatePointOfInterest queues the current state of poi to be written.
	UpdatePointOfInterest(poi *domain.PointOfInterest)

	// DeletePointOfInterest marks poi for deletion.
	DeletePointOfInterest(poi *domain.PointOfInterest)

	// Save commits all queued changes in one transaction.
	Save(ctx context.Context) (bool, error)
}

// Package mocks holds testify mocks of the repository interfaces.
package mocks

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/cityinfo-api/internal/domain"
	"github.com/cityinfo-api/internal/domain/repository"
)

// CityRepository is a mock of repository.CityRepository
type CityRepository struct {
	mock.Mock
}

func (m *CityRepository) List(ctx context.Context, filter domain.CityFilter) ([]domain.City, domain.PaginationMetadata, error) {
	args := m.Called(ctx, filter)
	cities, _ := args.Get(0).([]domain.City)
	meta, _ := args.Get(1).(domain.PaginationMetadata)
	return cities, meta, args.Error(2)
}

func (m *CityRepository) GetByID(ctx context.Context, id int64, includePointsOfInterest bool) (*domain.City, error) {
	args := m.Called(ctx, id, includePointsOfInterest)
	if city, ok := args.Get(0).(*domain.City); ok {
		return city, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CityRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// PointOfInterestRepository is a mock of repository.PointOfInterestRepository
type PointOfInterestRepository struct {
	mock.Mock
}

func (m *PointOfInterestRepository) ListForCity(ctx context.Context, cityID int64) ([]domain.PointOfInterest, error) {
	args := m.Called(ctx, cityID)
	pois, _ := args.Get(0).([]domain.PointOfInterest)
	return pois, args.Error(1)
}

func (m *PointOfInterestRepository) GetForCity(ctx context.Context, cityID, pointOfInterestID int64) (*domain.PointOfInterest, error) {
	args := m.Called(ctx, cityID, pointOfInterestID)
	if poi, ok := args.Get(0).(*domain.PointOfInterest); ok {
		return poi, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PointOfInterestRepository) NewUnitOfWork() repository.UnitOfWork {
	return m.Called().Get(0).(repository.UnitOfWork)
}

// UnitOfWork is a mock of repository.UnitOfWork
type UnitOfWork struct {
	mock.Mock
}

func (m *UnitOfWork) AddPointOfInterestForCity(cityID int64, poi *domain.PointOfInterest) {
	m.Called(cityID, poi)
}

func (m *UnitOfWork) UpdatePointOfInterest(poi *domain.PointOfInterest) {
	m.Called(poi)
}

func (m *UnitOfWork) DeletePointOfInterest(poi *domain.PointOfInterest) {
	m.Called(poi)
}

func (m *UnitOfWork) Save(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

// UserRepository is a mock of repository.UserRepository
type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if user, ok := args.Get(0).(*domain.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

// FileRepository is a mock of repository.FileRepository
type FileRepository struct {
	mock.Mock
}

func (m *FileRepository) Open(ctx context.Context, name string) (io.ReadCloser, int64, error) {
	args := m.Called(ctx, name)
	rc, _ := args.Get(0).(io.ReadCloser)
	return rc, args.Get(1).(int64), args.Error(2)
}

func (m *FileRepository) Save(ctx context.Context, name string, r io.Reader) (int64, error) {
	args := m.Called(ctx, name, r)
	return args.Get(0).(int64), args.Error(1)
}

// StreamRepository is a mock of repository.StreamRepository
type StreamRepository struct {
	mock.Mock
}

func (m *StreamRepository) ConsumeBatch(ctx context.Context, stream, group, consumer string, maxCount int) ([]domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer, maxCount)
	messages, _ := args.Get(0).([]domain.StreamMessage)
	return messages, args.Error(1)
}

func (m *StreamRepository) ClaimStale(ctx context.Context, stream, group, consumer string, minIdle time.Duration, maxCount int) ([]domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer, minIdle, maxCount)
	messages, _ := args.Get(0).([]domain.StreamMessage)
	return messages, args.Error(1)
}

func (m *StreamRepository) AckMessage(ctx context.Context, stream, group, messageID string) error {
	return m.Called(ctx, stream, group, messageID).Error(0)
}

func (m *StreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	return m.Called(ctx, stream, group).Error(0)
}

func (m *StreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	return m.Called(ctx, stream, data).Error(0)
}

// Notifier is a mock of usecase.Notifier
type Notifier struct {
	mock.Mock
}

func (m *Notifier) Send(ctx context.Context, subject, message string) error {
	return m.Called(ctx, subject, message).Error(0)
}

var (
	_ repository.CityRepository            = (*CityRepository)(nil)
	_ repository.PointOfInterestRepository = (*PointOfInterestRepository)(nil)
	_ repository.UnitOfWork                = (*UnitOfWork)(nil)
	_ repository.UserRepository            = (*UserRepository)(nil)
	_ repository.FileRepository            = (*FileRepository)(nil)
	_ repository.StreamRepository          = (*StreamRepository)(nil)
)

package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/cityinfo-api/internal/domain"
	"github.com/cityinfo-api/internal/domain/repository"
	"github.com/cityinfo-api/internal/pkg/validator"
	"github.com/cityinfo-api/internal/usecase/dto"
)

type CityUseCase struct {
	cityRepo repository.CityRepository
	logger   *zap.Logger
}

func NewCityUseCase(cityRepo repository.CityRepository, logger *zap.Logger) *CityUseCase {
	return &CityUseCase{
		cityRepo: cityRepo,
		logger:   logger,
	}
}

// GetCities returns one page of cities. Page sizes above the maximum are reduced to it.
func (uc *CityUseCase) GetCities(ctx context.Context, query dto.CityListQuery) (dto.CityList, domain.PaginationMetadata, error) {
	if err := validator.Validate(query); err != nil {
		return nil, domain.PaginationMetadata{}, err
	}

	if query.PageSize > domain.MaxCitiesPageSize {
		query.PageSize = domain.MaxCitiesPageSize
	}

	cities, meta, err := uc.cityRepo.List(ctx, domain.CityFilter{
		Name:        query.Name,
		SearchQuery: query.SearchQuery,
		PageNumber:  query.PageNumber,
		PageSize:    query.PageSize,
	})
	if err != nil {
		return nil, domain.PaginationMetadata{}, err
	}

	return dto.CitiesToList(cities), meta, nil
}

// GetCity returns the city without its points of interest.
func (uc *CityUseCase) GetCity(ctx context.Context, id int64) (*dto.CityWithoutPointsOfInterestDTO, error) {
	city, err := uc.cityRepo.GetByID(ctx, id, false)
	if err != nil {
		return nil, err
	}
	out := dto.CityToWithoutPointsOfInterestDTO(*city)
	return &out, nil
}

// GetCityWithPointsOfInterest returns the city together with its points of interest.
func (uc *CityUseCase) GetCityWithPointsOfInterest(ctx context.Context, id int64) (*dto.CityDTO, error) {
	city, err := uc.cityRepo.GetByID(ctx, id, true)
	if err != nil {
		return nil, err
	}
	out := dto.CityToDTO(*city)
	return &out, nil
}

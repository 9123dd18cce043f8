package usecase

import (
	"context"
	stderrors "errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/cityinfo-api/internal/domain/repository"
	"github.com/cityinfo-api/internal/pkg/errors"
	"github.com/cityinfo-api/internal/pkg/patch"
	"github.com/cityinfo-api/internal/pkg/validator"
	"github.com/cityinfo-api/internal/usecase/dto"
)

const deletedNotificationSubject = "Point of interest deleted."

type PointOfInterestUseCase struct {
	cityRepo repository.CityRepository
	poiRepo  repository.PointOfInterestRepository
	notifier Notifier
	logger   *zap.Logger
}

func NewPointOfInterestUseCase(
	cityRepo repository.CityRepository,
	poiRepo repository.PointOfInterestRepository,
	notifier Notifier,
	logger *zap.Logger,
) *PointOfInterestUseCase {
	return &PointOfInterestUseCase{
		cityRepo: cityRepo,
		poiRepo:  poiRepo,
		notifier: notifier,
		logger:   logger,
	}
}

func (uc *PointOfInterestUseCase) GetPointsOfInterest(ctx context.Context, cityID int64) (dto.PointOfInterestList, error) {
	if err := uc.ensureCity(ctx, cityID); err != nil {
		return nil, err
	}

	pois, err := uc.poiRepo.ListForCity(ctx, cityID)
	if err != nil {
		return nil, err
	}
	return dto.PointsOfInterestToList(pois), nil
}

func (uc *PointOfInterestUseCase) GetPointOfInterest(ctx context.Context, cityID, pointOfInterestID int64) (*dto.PointOfInterestDTO, error) {
	if err := uc.ensureCity(ctx, cityID); err != nil {
		return nil, err
	}

	poi, err := uc.poiRepo.GetForCity(ctx, cityID, pointOfInterestID)
	if err != nil {
		return nil, err
	}
	out := dto.PointOfInterestToDTO(*poi)
	return &out, nil
}

// CreatePointOfInterest stores a new point of interest under the city and returns it with its id.
func (uc *PointOfInterestUseCase) CreatePointOfInterest(
	ctx context.Context,
	cityID int64,
	in dto.PointOfInterestForCreationDTO,
) (*dto.PointOfInterestDTO, error) {
	if err := validator.Validate(in); err != nil {
		return nil, err
	}
	if err := uc.ensureCity(ctx, cityID); err != nil {
		return nil, err
	}

	entity := dto.PointOfInterestForCreationToEntity(in)

	uow := uc.poiRepo.NewUnitOfWork()
	uow.AddPointOfInterestForCity(cityID, &entity)
	if err := uc.save(ctx, uow); err != nil {
		return nil, err
	}

	if entity.ID == 0 {
		// city removed between the check and the commit
		return nil, errors.ErrCityNotFound
	}

	uc.logger.Info("Point of interest created",
		zap.Int64("city_id", cityID),
		zap.Int64("id", entity.ID))

	out := dto.PointOfInterestToDTO(entity)
	return &out, nil
}

// UpdatePointOfInterest replaces every editable field of the point of interest.
func (uc *PointOfInterestUseCase) UpdatePointOfInterest(
	ctx context.Context,
	cityID, pointOfInterestID int64,
	in dto.PointOfInterestForUpdateDTO,
) error {
	if err := validator.Validate(in); err != nil {
		return err
	}
	if err := uc.ensureCity(ctx, cityID); err != nil {
		return err
	}

	entity, err := uc.poiRepo.GetForCity(ctx, cityID, pointOfInterestID)
	if err != nil {
		return err
	}

	dto.ApplyPointOfInterestForUpdate(in, entity)

	uow := uc.poiRepo.NewUnitOfWork()
	uow.UpdatePointOfInterest(entity)
	return uc.save(ctx, uow)
}

// PatchPointOfInterest applies doc to the editable view of the point of interest.
// Nothing is written unless every operation applies and the result is valid.
func (uc *PointOfInterestUseCase) PatchPointOfInterest(
	ctx context.Context,
	cityID, pointOfInterestID int64,
	doc patch.Document,
) error {
	if err := uc.ensureCity(ctx, cityID); err != nil {
		return err
	}

	entity, err := uc.poiRepo.GetForCity(ctx, cityID, pointOfInterestID)
	if err != nil {
		return err
	}

	toPatch := dto.PointOfInterestToForUpdateDTO(*entity)
	if err := patch.Apply(doc, &toPatch); err != nil {
		return patchError(err)
	}

	if err := validator.Validate(toPatch); err != nil {
		return err
	}

	dto.ApplyPointOfInterestForUpdate(toPatch, entity)

	uow := uc.poiRepo.NewUnitOfWork()
	uow.UpdatePointOfInterest(entity)
	return uc.save(ctx, uow)
}

// DeletePointOfInterest removes the point of interest and notifies the administrator.
func (uc *PointOfInterestUseCase) DeletePointOfInterest(ctx context.Context, cityID, pointOfInterestID int64) error {
	if err := uc.ensureCity(ctx, cityID); err != nil {
		return err
	}

	entity, err := uc.poiRepo.GetForCity(ctx, cityID, pointOfInterestID)
	if err != nil {
		return err
	}

	uow := uc.poiRepo.NewUnitOfWork()
	uow.DeletePointOfInterest(entity)
	if err := uc.save(ctx, uow); err != nil {
		return err
	}

	message := fmt.Sprintf("Point of interest %s with id %d was deleted.", entity.Name, entity.ID)
	if err := uc.notifier.Send(ctx, deletedNotificationSubject, message); err != nil {
		uc.logger.Error("Failed to send delete notification",
			zap.Int64("city_id", cityID),
			zap.Int64("id", entity.ID),
			zap.Error(err))
	}

	return nil
}

func (uc *PointOfInterestUseCase) ensureCity(ctx context.Context, cityID int64) error {
	exists, err := uc.cityRepo.Exists(ctx, cityID)
	if err != nil {
		return err
	}
	if !exists {
		uc.logger.Info("City wasn't found when accessing points of interest", zap.Int64("city_id", cityID))
		return errors.ErrCityNotFound
	}
	return nil
}

func (uc *PointOfInterestUseCase) save(ctx context.Context, uow repository.UnitOfWork) error {
	ok, err := uow.Save(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return errors.ErrInternalServer
	}
	return nil
}

func patchError(err error) error {
	var perr *patch.Error
	if !stderrors.As(err, &perr) {
		return errors.ErrInvalidPatch.WithDetails(map[string]interface{}{"error": err.Error()})
	}
	return errors.ErrInvalidPatch.WithDetails(map[string]interface{}{
		"operation": perr.Index,
		"op":        string(perr.Op),
		"path":      perr.Path,
		"error":     perr.Err.Error(),
	})
}

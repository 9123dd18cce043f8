package handler

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/cityinfo-api/internal/pkg/errors"
	"github.com/cityinfo-api/internal/pkg/patch"
	"github.com/cityinfo-api/internal/pkg/utils"
	"github.com/cityinfo-api/internal/usecase"
	"github.com/cityinfo-api/internal/usecase/dto"
)

// PointOfInterestHandler - обработчик запросов к точкам интереса города
type PointOfInterestHandler struct {
	poiUC  *usecase.PointOfInterestUseCase
	logger *zap.Logger
}

func NewPointOfInterestHandler(poiUC *usecase.PointOfInterestUseCase, logger *zap.Logger) *PointOfInterestHandler {
	return &PointOfInterestHandler{
		poiUC:  poiUC,
		logger: logger,
	}
}

// GetPointsOfInterest godoc
// @Summary List points of interest of a city
// @Tags PointsOfInterest
// @Produce json,xml
// @Security Bearer
// @Param cityId path int true "City id"
// @Success 200 {array} dto.PointOfInterestDTO
// @Failure 401 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/cities/{cityId}/pointsofinterest [get]
func (h *PointOfInterestHandler) GetPointsOfInterest(c *fiber.Ctx) error {
	cityID, err := paramID(c, "cityId")
	if err != nil {
		return utils.SendError(c, err)
	}

	pois, err := h.poiUC.GetPointsOfInterest(c.UserContext(), cityID)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, pois)
}

// GetPointOfInterest godoc
// @Summary Get a point of interest
// @Tags PointsOfInterest
// @Produce json,xml
// @Security Bearer
// @Param cityId path int true "City id"
// @Param pointOfInterestId path int true "Point of interest id"
// @Success 200 {object} dto.PointOfInterestDTO
// @Failure 401 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/cities/{cityId}/pointsofinterest/{pointOfInterestId} [get]
func (h *PointOfInterestHandler) GetPointOfInterest(c *fiber.Ctx) error {
	cityID, poiID, err := h.ids(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	poi, err := h.poiUC.GetPointOfInterest(c.UserContext(), cityID, poiID)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, poi)
}

// CreatePointOfInterest godoc
// @Summary Create a point of interest
// @Tags PointsOfInterest
// @Accept json,xml
// @Produce json,xml
// @Security Bearer
// @Param cityId path int true "City id"
// @Param request body dto.PointOfInterestForCreationDTO true "Point of interest"
// @Success 201 {object} dto.PointOfInterestDTO
// @Header 201 {string} Location "URL of the created point of interest"
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/cities/{cityId}/pointsofinterest [post]
func (h *PointOfInterestHandler) CreatePointOfInterest(c *fiber.Ctx) error {
	cityID, err := paramID(c, "cityId")
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.PointOfInterestForCreationDTO
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, bodyError(err))
	}

	created, err := h.poiUC.CreatePointOfInterest(c.UserContext(), cityID, req)
	if err != nil {
		return utils.SendError(c, err)
	}

	c.Location(fmt.Sprintf("%s/api/cities/%d/pointsofinterest/%d", c.BaseURL(), cityID, created.ID))
	return utils.Respond(c, fiber.StatusCreated, created)
}

// UpdatePointOfInterest godoc
// @Summary Replace a point of interest
// @Tags PointsOfInterest
// @Accept json,xml
// @Security Bearer
// @Param cityId path int true "City id"
// @Param pointOfInterestId path int true "Point of interest id"
// @Param request body dto.PointOfInterestForUpdateDTO true "New state"
// @Success 204
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/cities/{cityId}/pointsofinterest/{pointOfInterestId} [put]
func (h *PointOfInterestHandler) UpdatePointOfInterest(c *fiber.Ctx) error {
	cityID, poiID, err := h.ids(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.PointOfInterestForUpdateDTO
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, bodyError(err))
	}

	if err := h.poiUC.UpdatePointOfInterest(c.UserContext(), cityID, poiID, req); err != nil {
		return utils.SendError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// PartiallyUpdatePointOfInterest godoc
// @Summary Patch a point of interest
// @Description Applies a JSON Patch document (add, replace, remove on /name and /description).
// @Tags PointsOfInterest
// @Accept json
// @Security Bearer
// @Param cityId path int true "City id"
// @Param pointOfInterestId path int true "Point of interest id"
// @Param request body []patch.Operation true "Patch document"
// @Success 204
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/cities/{cityId}/pointsofinterest/{pointOfInterestId} [patch]
func (h *PointOfInterestHandler) PartiallyUpdatePointOfInterest(c *fiber.Ctx) error {
	cityID, poiID, err := h.ids(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	doc, err := patch.Decode(c.Body())
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidPatch.WithDetails(map[string]interface{}{"error": err.Error()}))
	}

	if err := h.poiUC.PatchPointOfInterest(c.UserContext(), cityID, poiID, doc); err != nil {
		return utils.SendError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeletePointOfInterest godoc
// @Summary Delete a point of interest
// @Tags PointsOfInterest
// @Security Bearer
// @Param cityId path int true "City id"
// @Param pointOfInterestId path int true "Point of interest id"
// @Success 204
// @Failure 401 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/cities/{cityId}/pointsofinterest/{pointOfInterestId} [delete]
func (h *PointOfInterestHandler) DeletePointOfInterest(c *fiber.Ctx) error {
	cityID, poiID, err := h.ids(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := h.poiUC.DeletePointOfInterest(c.UserContext(), cityID, poiID); err != nil {
		return utils.SendError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *PointOfInterestHandler) ids(c *fiber.Ctx) (int64, int64, error) {
	cityID, err := paramID(c, "cityId")
	if err != nil {
		return 0, 0, err
	}
	poiID, err := paramID(c, "pointOfInterestId")
	if err != nil {
		return 0, 0, err
	}
	return cityID, poiID, nil
}

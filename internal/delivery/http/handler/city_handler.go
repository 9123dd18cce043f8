package handler

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/cityinfo-api/internal/domain"
	"github.com/cityinfo-api/internal/pkg/errors"
	"github.com/cityinfo-api/internal/pkg/utils"
	"github.com/cityinfo-api/internal/usecase"
	"github.com/cityinfo-api/internal/usecase/dto"
)

// HeaderPagination carries the pagination metadata of list responses.
const HeaderPagination = "X-Pagination"

// CityHandler - обработчик запросов к городам
type CityHandler struct {
	cityUC *usecase.CityUseCase
	logger *zap.Logger
}

func NewCityHandler(cityUC *usecase.CityUseCase, logger *zap.Logger) *CityHandler {
	return &CityHandler{
		cityUC: cityUC,
		logger: logger,
	}
}

// GetCities godoc
// @Summary List cities
// @Description Returns one page of cities ordered by name. Pagination metadata is returned in the X-Pagination header.
// @Tags Cities
// @Produce json,xml
// @Security Bearer
// @Param name query string false "Exact city name"
// @Param searchQuery query string false "Substring of name or description"
// @Param pageNumber query int false "Page number (1-based)" default(1)
// @Param pageSize query int false "Page size, at most 20" default(10)
// @Success 200 {array} dto.CityWithoutPointsOfInterestDTO
// @Header 200 {string} X-Pagination "Pagination metadata as JSON"
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/cities [get]
func (h *CityHandler) GetCities(c *fiber.Ctx) error {
	query := dto.CityListQuery{
		PageNumber: domain.DefaultPageNumber,
		PageSize:   domain.DefaultPageSize,
	}
	if err := c.QueryParser(&query); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{"query": err.Error()}))
	}

	cities, meta, err := h.cityUC.GetCities(c.UserContext(), query)
	if err != nil {
		return utils.SendError(c, err)
	}

	header, err := json.Marshal(meta)
	if err != nil {
		return utils.SendError(c, err)
	}
	c.Set(HeaderPagination, string(header))

	return utils.SendSuccess(c, cities)
}

// GetCity godoc
// @Summary Get a city
// @Description Returns a city, optionally with its points of interest.
// @Tags Cities
// @Produce json,xml
// @Security Bearer
// @Param id path int true "City id"
// @Param includePointsOfInterest query bool false "Include points of interest" default(false)
// @Success 200 {object} dto.CityDTO
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/cities/{id} [get]
func (h *CityHandler) GetCity(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	if c.QueryBool("includePointsOfInterest", false) {
		city, err := h.cityUC.GetCityWithPointsOfInterest(c.UserContext(), id)
		if err != nil {
			return utils.SendError(c, err)
		}
		return utils.SendSuccess(c, city)
	}

	city, err := h.cityUC.GetCity(c.UserContext(), id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, city)
}

package handler

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/cityinfo-api/internal/pkg/errors"
	"github.com/cityinfo-api/internal/pkg/utils"
	"github.com/cityinfo-api/internal/usecase"
)

const uploadFormField = "file"

// FileHandler - скачивание и загрузка файлов
type FileHandler struct {
	fileUC *usecase.FileUseCase
	logger *zap.Logger
}

func NewFileHandler(fileUC *usecase.FileUseCase, logger *zap.Logger) *FileHandler {
	return &FileHandler{
		fileUC: fileUC,
		logger: logger,
	}
}

// GetFile godoc
// @Summary Download a file
// @Tags Files
// @Produce octet-stream
// @Security Bearer
// @Param id path string true "Stored file name"
// @Success 200 {file} file
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/files/{id} [get]
func (h *FileHandler) GetFile(c *fiber.Ctx) error {
	file, err := h.fileUC.GetFile(c.UserContext(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, file.Name))
	return c.SendStream(file.Content, int(file.Size))
}

// UploadFile godoc
// @Summary Upload a PDF file
// @Tags Files
// @Accept multipart/form-data
// @Produce json,xml
// @Security Bearer
// @Param file formData file true "PDF document, at most 20 MiB"
// @Success 200 {object} dto.FileUploadResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/files [post]
func (h *FileHandler) UploadFile(c *fiber.Ctx) error {
	header, err := c.FormFile(uploadFormField)
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidFile.WithMessage("No file was uploaded"))
	}

	src, err := header.Open()
	if err != nil {
		h.logger.Error("Failed to open uploaded file", zap.Error(err))
		return utils.SendError(c, errors.ErrInvalidFile)
	}
	defer src.Close()

	resp, err := h.fileUC.UploadFile(c.UserContext(), header.Header.Get(fiber.HeaderContentType), header.Size, src)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, resp)
}

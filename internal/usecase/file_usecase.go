package usecase

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cityinfo-api/internal/domain/repository"
	"github.com/cityinfo-api/internal/pkg/errors"
	"github.com/cityinfo-api/internal/usecase/dto"
)

const (
	pdfContentType       = "application/pdf"
	fileUploadedMessage  = "Your file has been uploaded successfully."
	sniffLength          = 3072
	uploadedFileTemplate = "uploaded_file_%s.pdf"
)

// StoredFile - открытый файл для отдачи клиенту
type StoredFile struct {
	Name        string
	ContentType string
	Size        int64
	Content     io.ReadCloser
}

type FileUseCase struct {
	fileRepo       repository.FileRepository
	maxUploadBytes int64
	logger         *zap.Logger
}

func NewFileUseCase(fileRepo repository.FileRepository, maxUploadBytes int64, logger *zap.Logger) *FileUseCase {
	return &FileUseCase{
		fileRepo:       fileRepo,
		maxUploadBytes: maxUploadBytes,
		logger:         logger,
	}
}

// GetFile opens a stored file. The content type is detected from the file content.
// The caller must close StoredFile.Content.
func (uc *FileUseCase) GetFile(ctx context.Context, id string) (*StoredFile, error) {
	if !validFileID(id) {
		return nil, errors.ErrInvalidRequest.WithMessage("Invalid file id")
	}

	rc, size, err := uc.fileRepo.Open(ctx, id)
	if err != nil {
		return nil, err
	}

	head, content, err := peek(rc)
	if err != nil {
		_ = rc.Close()
		uc.logger.Error("Failed to read stored file", zap.String("id", id), zap.Error(err))
		return nil, errors.ErrInternalServer
	}

	return &StoredFile{
		Name:        id,
		ContentType: mimetype.Detect(head).String(),
		Size:        size,
		Content:     readCloser{Reader: content, Closer: rc},
	}, nil
}

// UploadFile stores a PDF. declaredType is the content type sent with the part; the
// content itself must also be a PDF.
func (uc *FileUseCase) UploadFile(ctx context.Context, declaredType string, size int64, r io.Reader) (*dto.FileUploadResponse, error) {
	if size <= 0 || size > uc.maxUploadBytes {
		return nil, errors.ErrInvalidFile.WithMessage(
			fmt.Sprintf("File must be between 1 byte and %d bytes", uc.maxUploadBytes))
	}

	mediaType, _, err := mime.ParseMediaType(declaredType)
	if err != nil || !strings.EqualFold(mediaType, pdfContentType) {
		return nil, errors.ErrInvalidFile.WithMessage("Only PDF files are accepted")
	}

	head, content, err := peek(io.LimitReader(r, uc.maxUploadBytes))
	if err != nil {
		uc.logger.Error("Failed to read upload", zap.Error(err))
		return nil, errors.ErrInvalidFile
	}
	if !mimetype.Detect(head).Is(pdfContentType) {
		return nil, errors.ErrInvalidFile.WithMessage("File content is not a PDF document")
	}

	name := fmt.Sprintf(uploadedFileTemplate, uuid.New())
	if _, err := uc.fileRepo.Save(ctx, name, content); err != nil {
		return nil, err
	}

	return &dto.FileUploadResponse{ID: name, Message: fileUploadedMessage}, nil
}

func validFileID(id string) bool {
	return id != "" &&
		id != "." &&
		!strings.Contains(id, "..") &&
		!strings.ContainsAny(id, `/\`)
}

// peek reads the leading bytes used for content detection and returns a reader that
// still yields the whole stream.
func peek(r io.Reader) ([]byte, io.Reader, error) {
	head := make([]byte, sniffLength)
	n, err := io.ReadFull(r, head)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, nil, err
	}
	head = head[:n]
	return head, io.MultiReader(bytes.NewReader(head), r), nil
}

type readCloser struct {
	io.Reader
	io.Closer
}

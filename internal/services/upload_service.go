package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"realty_backend/internal/config"
	"realty_backend/internal/imageprocessor"
	"realty_backend/internal/logger"
	"realty_backend/internal/services/dto"
	"realty_backend/internal/storage"
	"realty_backend/pkg/apperrors"

	"github.com/google/uuid"
)

type UploadService interface {
	// UploadListingImage сохраняет фотографию объявления и возвращает ее публичный URL
	UploadListingImage(ctx context.Context, userID uint, file *multipart.FileHeader) (*dto.UploadResponse, error)
}

type uploadService struct {
	storage   storage.Storage
	processor *imageprocessor.Processor
	config    config.UploadConfig
}

func NewUploadService(storage storage.Storage, cfg config.UploadConfig) UploadService {
	return &uploadService{
		storage:   storage,
		processor: imageprocessor.NewProcessor(cfg.ImageQuality),
		config:    cfg,
	}
}

func (s *uploadService) UploadListingImage(ctx context.Context, userID uint, file *multipart.FileHeader) (*dto.UploadResponse, error) {
	if file == nil {
		return nil, apperrors.NewBadRequestError("file is required")
	}
	if s.config.MaxSize > 0 && file.Size > s.config.MaxSize {
		return nil, apperrors.ErrFileTooLarge.WithDetails(map[string]int64{"max_size": s.config.MaxSize})
	}

	src, err := file.Open()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Заголовок Content-Type от клиента не проверяем, смотрим на содержимое
	contentType := http.DetectContentType(data)
	if !s.config.IsAllowedType(contentType) {
		return nil, apperrors.ErrInvalidFileType.WithDetails(map[string]string{"content_type": contentType})
	}

	result, err := s.processor.Fit(bytes.NewReader(data), s.bounds())
	if err != nil {
		return nil, apperrors.ErrInvalidFileType.WithError(err)
	}

	path := fmt.Sprintf("listings/%d/%s.%s", userID, uuid.NewString(), result.Extension())
	if err := s.storage.Save(ctx, path, bytes.NewReader(result.Data), result.ContentType()); err != nil {
		return nil, apperrors.InternalError(err)
	}

	url, err := s.storage.GetURL(ctx, path)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "Listing image uploaded", "path", path, "width", result.Width, "height", result.Height)

	return &dto.UploadResponse{
		URL:         url,
		ContentType: result.ContentType(),
		Size:        int64(len(result.Data)),
	}, nil
}

// bounds - рамка, в которую вписывается фотография
func (s *uploadService) bounds() imageprocessor.ImageSize {
	if s.config.MaxDimension <= 0 {
		return imageprocessor.SizeLarge
	}
	return imageprocessor.Square("listing", s.config.MaxDimension)
}

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pet-walker/internal/adapter"
	"github.com/MKhiriev/go-pet-walker/models"
)

type clientFileService struct {
	api   adapter.FileAPI
	guard *SessionGuard
}

// NewClientFileService creates a FileService.
func NewClientFileService(api adapter.FileAPI, guard *SessionGuard) FileService {
	return &clientFileService{api: api, guard: guard}
}

func (s *clientFileService) Upload(ctx context.Context, name string, data []byte) (models.UploadedFile, error) {
	if len(data) == 0 {
		return models.UploadedFile{}, fmt.Errorf("upload file: %w: empty file", models.ErrBadRequest)
	}
	return guarded(ctx, s.guard, "upload file", func(ctx context.Context) (models.UploadedFile, error) {
		return s.api.UploadFile(ctx, name, data)
	})
}

func (s *clientFileService) Download(ctx context.Context, reference string) (models.File, error) {
	if reference == "" {
		return models.File{}, fmt.Errorf("download file: %w: empty reference", models.ErrBadRequest)
	}
	return guarded(ctx, s.guard, "download file", func(ctx context.Context) (models.File, error) {
		return s.api.DownloadFile(ctx, reference)
	})
}

package adapter

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"net/url"
	"path"

	"github.com/MKhiriev/go-pet-walker/models"
)

// UploadFile implements [FileAPI] via a multipart POST /api/files.
func (h *httpServerAdapter) UploadFile(ctx context.Context, name string, data []byte) (models.UploadedFile, error) {
	var out models.UploadedFile

	req, err := h.request(ctx)
	if err != nil {
		return out, fmt.Errorf("upload file: %w", err)
	}

	resp, err := req.
		SetFileReader("file", path.Base(name), bytes.NewReader(data)).
		SetResult(&out).
		Post("/api/files")
	if err != nil {
		return out, fmt.Errorf("upload file: %w", mapTransportError(err))
	}
	if err = mapHTTPError(resp); err != nil {
		return out, fmt.Errorf("upload file: %w", err)
	}

	return out, nil
}

// DownloadFile implements [FileAPI] via GET /api/files/{reference}. The file
// name is taken from the Content-Disposition header when present.
func (h *httpServerAdapter) DownloadFile(ctx context.Context, reference string) (models.File, error) {
	req, err := h.request(ctx)
	if err != nil {
		return models.File{}, fmt.Errorf("download file: %w", err)
	}

	resp, err := req.SetHeader("Accept", "*/*").Get("/api/files/" + url.PathEscape(reference))
	if err != nil {
		return models.File{}, fmt.Errorf("download file %s: %w", reference, mapTransportError(err))
	}
	if err = mapHTTPError(resp); err != nil {
		return models.File{}, fmt.Errorf("download file %s: %w", reference, err)
	}

	file := models.File{
		Reference:   reference,
		ContentType: resp.Header().Get("Content-Type"),
		Data:        resp.Body(),
	}
	if _, params, err := mime.ParseMediaType(resp.Header().Get("Content-Disposition")); err == nil {
		file.Name = path.Base(params["filename"])
	}
	if file.Name == "." || file.Name == "/" {
		file.Name = ""
	}

	return file, nil
}

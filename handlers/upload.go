package handlers

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/frebomedia/freboapi/models"
	"github.com/frebomedia/freboapi/storage"
)

// photoInserter is the slice of the photo repo the upload workflow needs.
type photoInserter interface {
	Create(ctx context.Context, photo *models.Photo) error
}

// uploadFile is one pending file in a batch.
type uploadFile struct {
	Name        string
	ContentType string
	Open        func() (io.ReadCloser, error)
}

// UploadOutcome reports what happened to one file of a batch.
type UploadOutcome struct {
	Filename string     `json:"filename"`
	Key      string     `json:"key,omitempty"`
	PhotoID  *uuid.UUID `json:"photo_id,omitempty"`
	Error    string     `json:"error,omitempty"`
}

// uploadOne writes the file bytes to the object store, then inserts the
// row referencing the key. A storage failure aborts before any row is
// written; a row failure leaves the object for cmd/sweep to reclaim.
func uploadOne(ctx context.Context, store storage.Store, photos photoInserter, f uploadFile, category, startNumber string, eventID *uuid.UUID) (models.Photo, error) {
	key := storage.ObjectKey(category, f.Name)

	src, err := f.Open()
	if err != nil {
		return models.Photo{}, err
	}
	defer src.Close()

	if err := store.Upload(ctx, key, src, f.ContentType); err != nil {
		return models.Photo{}, err
	}

	photo := models.Photo{
		URL:         key,
		Category:    category,
		StartNumber: startNumber,
		EventID:     eventID,
	}
	if err := photos.Create(ctx, &photo); err != nil {
		return models.Photo{}, err
	}
	return photo, nil
}

// uploadBatch processes files strictly in order, recording a per-file
// outcome and continuing past failures so one bad file never blocks the
// rest of the batch.
func uploadBatch(ctx context.Context, store storage.Store, photos photoInserter, files []uploadFile, category, startNumber string, eventID *uuid.UUID) []UploadOutcome {
	outcomes := make([]UploadOutcome, 0, len(files))
	for _, f := range files {
		out := UploadOutcome{Filename: f.Name}
		photo, err := uploadOne(ctx, store, photos, f, category, startNumber, eventID)
		if err != nil {
			out.Error = err.Error()
		} else {
			out.Key = photo.URL
			id := photo.ID
			out.PhotoID = &id
		}
		outcomes = append(outcomes, out)
	}
	return outcomes
}

// UploadPhotos accepts a multipart form with one or more "files" parts
// plus category and optional start_number / event_id fields. Files are
// uploaded sequentially; the response lists a per-file outcome and is
// 207 if any file failed.
func (h *Handler) UploadPhotos(c echo.Context) error {
	category := c.FormValue("category")
	if !models.ValidCategory(category) {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown category")
	}

	var eventID *uuid.UUID
	if s := strings.TrimSpace(c.FormValue("event_id")); s != "" {
		parsed, err := uuid.Parse(s)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid event id")
		}
		eventID = &parsed
	}
	startNumber := strings.TrimSpace(c.FormValue("start_number"))

	form, err := c.MultipartForm()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	parts := form.File["files"]
	if len(parts) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "no files in request")
	}

	files := make([]uploadFile, len(parts))
	for i, part := range parts {
		files[i] = uploadFile{
			Name:        part.Filename,
			ContentType: part.Header.Get("Content-Type"),
			Open: func() (io.ReadCloser, error) {
				return part.Open()
			},
		}
	}

	outcomes := uploadBatch(c.Request().Context(), h.store, h.photos, files, category, startNumber, eventID)

	status := http.StatusCreated
	for _, out := range outcomes {
		if out.Error != "" {
			status = http.StatusMultiStatus
			zap.L().Warn("photo upload failed",
				zap.String("filename", out.Filename),
				zap.String("error", out.Error))
		}
	}

	return c.JSON(status, outcomes)
}

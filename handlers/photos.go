package handlers

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/frebomedia/freboapi/models"
	"github.com/frebomedia/freboapi/repo"
)

// photoData is a photo row plus its resolved public URL, so clients never
// have to know the storage layout.
type photoData struct {
	models.Photo
	PublicURL string `json:"public_url"`
}

func (h *Handler) photoData(p models.Photo) photoData {
	return photoData{Photo: p, PublicURL: h.store.PublicURL(p.URL)}
}

func (h *Handler) photoList(photos []models.Photo) []photoData {
	out := make([]photoData, len(photos))
	for i, p := range photos {
		out[i] = h.photoData(p)
	}
	return out
}

// ListPhotos returns photos newest-first, narrowed by query params:
// category, event, start_number, and portfolio=true which caps the result
// at the portfolio size. The gallery paths map onto dedicated queries:
// an event id dispatches to the event (or event + start number) lookup,
// category with portfolio=true to the portfolio selection.
func (h *Handler) ListPhotos(c echo.Context) error {
	ctx := c.Request().Context()
	startNumber := c.QueryParam("start_number")
	portfolio := c.QueryParam("portfolio") == "true"

	category := c.QueryParam("category")
	if category == "all" {
		category = ""
	}
	if category != "" && !models.ValidCategory(category) {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown category")
	}

	var (
		photos []models.Photo
		err    error
	)
	switch {
	case c.QueryParam("event") != "":
		id, perr := uuid.Parse(c.QueryParam("event"))
		if perr != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid event id")
		}
		if startNumber != "" {
			photos, err = h.photos.ByStartNumber(ctx, id, startNumber)
		} else {
			photos, err = h.photos.ByEvent(ctx, id)
		}
	case category != "" && portfolio && startNumber == "":
		photos, err = h.photos.ByCategory(ctx, category)
	default:
		photos, err = h.photos.List(ctx, repo.ListFilter{
			Category:      category,
			StartNumber:   startNumber,
			PortfolioOnly: portfolio,
		})
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, h.photoList(photos))
}

type updatePhotoRequest struct {
	StartNumber string `json:"start_number"`
	EventID     string `json:"event_id"`
}

// UpdatePhoto edits a photo's mutable metadata: start number and event
// assignment. An empty event_id clears the assignment.
func (h *Handler) UpdatePhoto(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid photo id")
	}

	var req updatePhotoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var eventID *uuid.UUID
	if s := strings.TrimSpace(req.EventID); s != "" {
		parsed, err := uuid.Parse(s)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid event id")
		}
		eventID = &parsed
	}

	err = h.photos.UpdateMeta(c.Request().Context(), id, strings.TrimSpace(req.StartNumber), eventID)
	if err != nil {
		if repo.IsNotFound(err) {
			return echo.NewHTTPError(http.StatusNotFound, "photo not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	photo, err := h.photos.ByID(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, h.photoData(*photo))
}

// DeletePhoto removes the storage object first, then the row. The two
// calls are not transactional; cmd/sweep reconciles anything a failure
// in between leaves behind.
func (h *Handler) DeletePhoto(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid photo id")
	}
	ctx := c.Request().Context()

	photo, err := h.photos.ByID(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return echo.NewHTTPError(http.StatusNotFound, "photo not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	// Absolute URLs predate this API and have no object in our bucket.
	if !strings.HasPrefix(photo.URL, "http://") && !strings.HasPrefix(photo.URL, "https://") {
		if err := h.store.Remove(ctx, []string{photo.URL}); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	if err := h.photos.Delete(ctx, id); err != nil {
		if repo.IsNotFound(err) {
			return echo.NewHTTPError(http.StatusNotFound, "photo not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

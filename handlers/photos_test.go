package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/frebomedia/freboapi/models"
	"github.com/frebomedia/freboapi/repo"
)

// fakePhotoRepo records which query each request dispatches to.
type fakePhotoRepo struct {
	lastCall     string
	lastFilter   repo.ListFilter
	lastEventID  uuid.UUID
	lastStart    string
	lastCategory string
}

func (f *fakePhotoRepo) List(_ context.Context, filter repo.ListFilter) ([]models.Photo, error) {
	f.lastCall, f.lastFilter = "List", filter
	return nil, nil
}

func (f *fakePhotoRepo) ByEvent(_ context.Context, eventID uuid.UUID) ([]models.Photo, error) {
	f.lastCall, f.lastEventID = "ByEvent", eventID
	return nil, nil
}

func (f *fakePhotoRepo) ByStartNumber(_ context.Context, eventID uuid.UUID, startNumber string) ([]models.Photo, error) {
	f.lastCall, f.lastEventID, f.lastStart = "ByStartNumber", eventID, startNumber
	return nil, nil
}

func (f *fakePhotoRepo) ByCategory(_ context.Context, category string) ([]models.Photo, error) {
	f.lastCall, f.lastCategory = "ByCategory", category
	return nil, nil
}

func (f *fakePhotoRepo) ByID(_ context.Context, _ uuid.UUID) (*models.Photo, error) {
	return nil, repo.ErrNotFound
}

func (f *fakePhotoRepo) Create(_ context.Context, _ *models.Photo) error { return nil }

func (f *fakePhotoRepo) UpdateMeta(_ context.Context, _ uuid.UUID, _ string, _ *uuid.UUID) error {
	return nil
}

func (f *fakePhotoRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

func listPhotos(t *testing.T, photos photoRepo, query string) error {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/photos"+query, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := &Handler{photos: photos, store: &urlStore{}}
	return h.ListPhotos(c)
}

func TestListPhotosDispatch(t *testing.T) {
	eventID := uuid.New()
	tests := []struct {
		query    string
		call     string
		category string
		start    string
	}{
		{"?event=" + eventID.String(), "ByEvent", "", ""},
		{"?event=" + eventID.String() + "&start_number=114", "ByStartNumber", "", "114"},
		{"?category=motocross&portfolio=true", "ByCategory", "motocross", ""},
		{"?category=motocross", "List", "motocross", ""},
		{"?category=all", "List", "", ""},
		{"", "List", "", ""},
	}
	for i, test := range tests {
		fake := &fakePhotoRepo{}
		if err := listPhotos(t, fake, test.query); err != nil {
			t.Errorf("%d %q: %v", i, test.query, err)
			continue
		}
		if fake.lastCall != test.call {
			t.Errorf("%d %q: expect %s, got %s", i, test.query, test.call, fake.lastCall)
			continue
		}
		switch test.call {
		case "ByEvent", "ByStartNumber":
			if fake.lastEventID != eventID {
				t.Errorf("%d expect event id %s, got %s", i, eventID, fake.lastEventID)
			}
			if fake.lastStart != test.start {
				t.Errorf("%d expect start number %q, got %q", i, test.start, fake.lastStart)
			}
		case "ByCategory":
			if fake.lastCategory != test.category {
				t.Errorf("%d expect category %q, got %q", i, test.category, fake.lastCategory)
			}
		case "List":
			if fake.lastFilter.Category != test.category {
				t.Errorf("%d expect filter category %q, got %q", i, test.category, fake.lastFilter.Category)
			}
		}
	}
}

func TestListPhotosUnknownCategory(t *testing.T) {
	err := listPhotos(t, &fakePhotoRepo{}, "?category=landscape")
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expect 400, got %v", err)
	}
}

type urlStore struct {
	fakeStore
}

func (s *urlStore) PublicURL(key string) string {
	if key == "" {
		return ""
	}
	if len(key) > 4 && key[:4] == "http" {
		return key
	}
	return "https://example.supabase.co/storage/v1/object/public/media/" + key
}

func TestPhotoListResolvesURLs(t *testing.T) {
	h := &Handler{store: &urlStore{}}
	photos := []models.Photo{
		{URL: "motocross/1-aaaa1111.jpg"},
		{URL: "https://cdn.example.com/legacy.jpg"},
	}

	out := h.photoList(photos)

	if len(out) != 2 {
		t.Fatalf("expect 2 rows, got %d", len(out))
	}
	if out[0].PublicURL != "https://example.supabase.co/storage/v1/object/public/media/motocross/1-aaaa1111.jpg" {
		t.Errorf("relative key not resolved: %q", out[0].PublicURL)
	}
	if out[1].PublicURL != "https://cdn.example.com/legacy.jpg" {
		t.Errorf("absolute url should pass through: %q", out[1].PublicURL)
	}
	if out[0].URL != photos[0].URL {
		t.Errorf("stored key should be preserved: %q", out[0].URL)
	}
}

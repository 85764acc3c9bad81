// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-pet-walker/internal/config"
	"github.com/MKhiriev/go-pet-walker/internal/logger"
	"github.com/MKhiriev/go-pet-walker/internal/utils"
	"github.com/MKhiriev/go-pet-walker/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter creates an httpServerAdapter pointed at a test server
// serving router.
func newTestAdapter(t *testing.T, router http.Handler) *httpServerAdapter {
	t.Helper()
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	a, err := NewHTTPServerAdapter(config.Adapter{HTTPAddress: srv.URL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ── construction ────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "localhost:8080", want: "http://localhost:8080"},
		{raw: " https://api.example.com/ ", want: "https://api.example.com"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.Adapter{}, nil)
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

func TestToken_Trimmed(t *testing.T) {
	a := newTestAdapter(t, chi.NewRouter())
	a.SetToken("  abc  ")
	assert.Equal(t, "abc", a.Token())
	a.SetToken("")
	assert.Empty(t, a.Token())
}

// ── auth ────────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	want := models.User{ID: 7, Name: "Alice", Email: "alice@example.com", Role: models.RoleOwner}

	r := chi.NewRouter()
	r.Post("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var creds models.Credentials
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "alice@example.com", creds.Email)
		assert.NotEmpty(t, r.Header.Get(utils.RequestIDHeader))

		w.Header().Set("Authorization", "Bearer token-1")
		writeJSON(w, http.StatusOK, want)
	})

	a := newTestAdapter(t, r)
	got, err := a.Login(context.Background(), models.Credentials{Email: "alice@example.com", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, "token-1", a.Token())
}

func TestLogin_Unauthorized(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/api/auth/login", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("invalid email/password"))
	})

	a := newTestAdapter(t, r)
	_, err := a.Login(context.Background(), models.Credentials{Email: "a@b.io"})

	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrUnauthorized)
	assert.Contains(t, err.Error(), "invalid email/password")
	assert.Empty(t, a.Token())
}

func TestRegister_MissingToken(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/api/auth/register", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusCreated, models.User{ID: 1})
	})

	a := newTestAdapter(t, r)
	_, err := a.Register(context.Background(), models.Registration{Email: "a@b.io"})

	assert.ErrorIs(t, err, ErrMissingToken)
}

func TestMe_SendsBearer(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/auth/me", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, models.User{ID: 3})
	})

	a := newTestAdapter(t, r)
	a.SetToken("secret")
	got, err := a.Me(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), got.ID)
}

// ── paged endpoints ─────────────────────────────────────────────────────────

func TestFeaturedWalkers_PageQuery(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/walkers/featured", func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		size, _ := strconv.Atoi(r.URL.Query().Get("pageSize"))
		assert.Equal(t, 2, page)
		assert.Equal(t, 15, size)

		writeJSON(w, http.StatusOK, models.Paged[models.Walker]{
			Result:      []models.Walker{{User: models.User{ID: 16}}},
			PageSize:    size,
			TotalPages:  4,
			CurrentPage: page,
		})
	})

	a := newTestAdapter(t, r)
	got, err := a.FeaturedWalkers(context.Background(), models.PageRequest{Page: 2, PageSize: 15})

	require.NoError(t, err)
	assert.Equal(t, 4, got.TotalPages)
	assert.Equal(t, 2, got.CurrentPage)
	require.Len(t, got.Result, 1)
	assert.Equal(t, int64(16), got.Result[0].ID)
}

func TestListAssignments_Filter(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/assignments", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "open", q.Get("status"))
		assert.Equal(t, "park", q.Get("q"))
		assert.Equal(t, "1.5,2,3,4.25", q.Get("bounds"))
		writeJSON(w, http.StatusOK, models.Paged[models.Assignment]{TotalPages: 1, CurrentPage: 1})
	})

	a := newTestAdapter(t, r)
	_, err := a.ListAssignments(context.Background(), models.AssignmentFilter{
		Status: models.AssignmentOpen,
		Query:  "park",
		Bounds: &models.Bounds{South: 1.5, West: 2, North: 3, East: 4.25},
	}, models.PageRequest{Page: 1, PageSize: 15})

	require.NoError(t, err)
}

func TestPagedEndpoints_Paths(t *testing.T) {
	r := chi.NewRouter()
	var hits atomic.Int32
	paged := func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		writeJSON(w, http.StatusOK, map[string]any{"result": []any{}, "pageSize": 15, "totalPages": 0, "currentPage": 1})
	}
	r.Get("/api/assignments/{id}/pets", paged)
	r.Get("/api/assignments/{id}/recruitments", paged)
	r.Get("/api/pets", paged)
	r.Get("/api/pets/{id}/medical-records", paged)
	r.Get("/api/posts/{id}/comments", paged)
	r.Get("/api/channels/{id}/messages", paged)
	r.Get("/api/users/{id}/reviews", paged)

	a := newTestAdapter(t, r)
	ctx := context.Background()
	p := models.PageRequest{Page: 1, PageSize: 15}

	_, err := a.AssignmentPets(ctx, 1, p)
	require.NoError(t, err)
	_, err = a.AssignmentRecruitments(ctx, 1, p)
	require.NoError(t, err)
	_, err = a.ListPets(ctx, p)
	require.NoError(t, err)
	_, err = a.MedicalRecords(ctx, 1, p)
	require.NoError(t, err)
	_, err = a.Comments(ctx, 1, p)
	require.NoError(t, err)
	_, err = a.Messages(ctx, 1, p)
	require.NoError(t, err)
	_, err = a.UserReviews(ctx, 1, p)
	require.NoError(t, err)

	assert.Equal(t, int32(7), hits.Load())
}

// ── single resources ────────────────────────────────────────────────────────

func TestGetAssignment_NotFound(t *testing.T) {
	a := newTestAdapter(t, chi.NewRouter())
	_, err := a.GetAssignment(context.Background(), 99)

	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.Equal(t, models.NotFound, models.KindOf(err))
}

func TestCanRecruit(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/assignments/{id}/eligibility", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"eligible": chi.URLParam(r, "id") == "5"})
	})

	a := newTestAdapter(t, r)
	ok, err := a.CanRecruit(context.Background(), 5)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = a.CanRecruit(context.Background(), 6)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUpdatePet_UsesPut(t *testing.T) {
	r := chi.NewRouter()
	r.Put("/api/pets/{id}", func(w http.ResponseWriter, r *http.Request) {
		var p models.Pet
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&p))
		assert.Equal(t, "12", chi.URLParam(r, "id"))
		writeJSON(w, http.StatusOK, p)
	})

	a := newTestAdapter(t, r)
	got, err := a.UpdatePet(context.Background(), models.Pet{ID: 12, Name: "Rex"})
	require.NoError(t, err)
	assert.Equal(t, "Rex", got.Name)
}

func TestRecruitmentAnswers(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/api/recruitments/{id}/{answer}", func(w http.ResponseWriter, r *http.Request) {
		status := models.RecruitmentAccepted
		if chi.URLParam(r, "answer") == "decline" {
			status = models.RecruitmentDeclined
		}
		writeJSON(w, http.StatusOK, models.Recruitment{ID: 1, Status: status})
	})

	a := newTestAdapter(t, r)
	got, err := a.AcceptRecruitment(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, models.RecruitmentAccepted, got.Status)

	got, err = a.DeclineRecruitment(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, models.RecruitmentDeclined, got.Status)
}

func TestSendMessage_Conflict(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/api/channels/{id}/messages", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
	})

	a := newTestAdapter(t, r)
	_, err := a.SendMessage(context.Background(), 1, models.MessageDraft{Content: "hi"})
	assert.ErrorIs(t, err, models.ErrConflict)
}

// ── files ───────────────────────────────────────────────────────────────────

func TestDownloadFile(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/files/{ref}", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "abc 1", chi.URLParam(r, "ref"))
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="../vet.pdf"`)
		_, _ = w.Write([]byte("%PDF-1.4"))
	})

	a := newTestAdapter(t, r)
	got, err := a.DownloadFile(context.Background(), "abc 1")

	require.NoError(t, err)
	assert.Equal(t, "vet.pdf", got.Name)
	assert.Equal(t, "application/pdf", got.ContentType)
	assert.Equal(t, []byte("%PDF-1.4"), got.Data)
}

func TestDownloadFile_NoDisposition(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/files/{ref}", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("x"))
	})

	a := newTestAdapter(t, r)
	got, err := a.DownloadFile(context.Background(), "ref")
	require.NoError(t, err)
	assert.Empty(t, got.Name)
}

func TestUploadFile(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/api/files", func(w http.ResponseWriter, r *http.Request) {
		f, hdr, err := r.FormFile("file")
		if !assert.NoError(t, err) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer f.Close()
		body, _ := io.ReadAll(f)
		assert.Equal(t, "photo.jpg", hdr.Filename)
		assert.Equal(t, []byte("jpeg"), body)
		writeJSON(w, http.StatusCreated, models.UploadedFile{Reference: "f-1", Name: hdr.Filename})
	})

	a := newTestAdapter(t, r)
	got, err := a.UploadFile(context.Background(), "/tmp/photo.jpg", []byte("jpeg"))
	require.NoError(t, err)
	assert.Equal(t, "f-1", got.Reference)
}

// ── errors and limiting ─────────────────────────────────────────────────────

func TestMapHTTPError_Statuses(t *testing.T) {
	tests := []struct {
		status int
		kind   models.ErrorKind
	}{
		{http.StatusBadRequest, models.BadRequest},
		{http.StatusUnprocessableEntity, models.BadRequest},
		{http.StatusUnauthorized, models.Unauthorized},
		{http.StatusForbidden, models.Forbidden},
		{http.StatusNotFound, models.NotFound},
		{http.StatusConflict, models.Conflict},
		{http.StatusInternalServerError, models.ServerError},
		{http.StatusBadGateway, models.Network},
		{http.StatusTooManyRequests, models.Network},
		{http.StatusTeapot, models.Unknown},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			r := chi.NewRouter()
			r.Get("/api/auth/me", func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			})

			a := newTestAdapter(t, r)
			_, err := a.Me(context.Background())
			require.Error(t, err)
			assert.Equal(t, tt.kind, models.KindOf(err))
		})
	}
}

func TestTransportError_IsNetwork(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	a, err := NewHTTPServerAdapter(config.Adapter{HTTPAddress: url, RequestTimeout: time.Second}, logger.Nop())
	require.NoError(t, err)

	_, err = a.Me(context.Background())
	require.Error(t, err)
	assert.Equal(t, models.Network, models.KindOf(err))
}

func TestCancelledContext_NotNetwork(t *testing.T) {
	a := newTestAdapter(t, chi.NewRouter())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := a.Me(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRateLimiter_WaitsForTokens(t *testing.T) {
	var hits atomic.Int32
	r := chi.NewRouter()
	r.Get("/api/auth/me", func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		writeJSON(w, http.StatusOK, models.User{})
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	a, err := NewHTTPServerAdapter(config.Adapter{HTTPAddress: srv.URL, RateLimit: 0.001, RateBurst: 1}, logger.Nop())
	require.NoError(t, err)

	_, err = a.Me(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = a.Me(ctx)
	require.Error(t, err)
	assert.Equal(t, int32(1), hits.Load())
}

package location

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-pet-walker/internal/config"
	"github.com/MKhiriev/go-pet-walker/internal/logger"
	"github.com/MKhiriev/go-pet-walker/internal/mock"
	"github.com/MKhiriev/go-pet-walker/internal/store"
	"github.com/MKhiriev/go-pet-walker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// scriptedSource fails a number of times before reporting loc.
type scriptedSource struct {
	failures atomic.Int32
	calls    atomic.Int32
	loc      models.Location
}

func (s *scriptedSource) Locate(context.Context) (models.Location, error) {
	s.calls.Add(1)
	if s.failures.Add(-1) >= 0 {
		return models.Location{}, ErrUnavailable
	}
	return s.loc, nil
}

func TestStaticSource(t *testing.T) {
	_, err := StaticSource{}.Locate(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)

	loc := models.Location{Latitude: 55.75, Longitude: 37.61}
	got, err := StaticSource{Location: loc}.Locate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, loc, got)
}

func TestHTTPSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/ok":
			_, _ = w.Write([]byte(`{"lat": 59.93, "lon": 30.31}`))
		case "/empty":
			_, _ = w.Write([]byte(`{}`))
		default:
			w.WriteHeader(http.StatusServiceUnavailable)
		}
	}))
	defer srv.Close()

	got, err := NewHTTPSource(srv.URL+"/ok", time.Second).Locate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.Location{Latitude: 59.93, Longitude: 30.31}, got)

	_, err = NewHTTPSource(srv.URL+"/empty", time.Second).Locate(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = NewHTTPSource(srv.URL+"/down", time.Second).Locate(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestNewSource(t *testing.T) {
	_, ok := NewSource(config.Location{GeoURL: "http://geo"}, 0).(*HTTPSource)
	assert.True(t, ok)

	s, ok := NewSource(config.Location{Latitude: 1, Longitude: 2}, 0).(StaticSource)
	require.True(t, ok)
	assert.Equal(t, models.Location{Latitude: 1, Longitude: 2}, s.Location)
}

func TestObserver_FirstWaitsForFix(t *testing.T) {
	src := &scriptedSource{loc: models.Location{Latitude: 10, Longitude: 20}}
	src.failures.Store(2)

	o := NewObserver(src, 5*time.Millisecond, logger.Nop())
	_, known := o.Current()
	assert.False(t, known)

	o.Start(context.Background())
	defer o.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	got, err := o.First(ctx)
	require.NoError(t, err)
	assert.Equal(t, src.loc, got)
	assert.GreaterOrEqual(t, src.calls.Load(), int32(3))

	cur, known := o.Current()
	assert.True(t, known)
	assert.Equal(t, src.loc, cur)
}

func TestObserver_FirstHonoursContext(t *testing.T) {
	o := NewObserver(StaticSource{}, time.Hour, logger.Nop())
	o.Start(context.Background())
	defer o.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := o.First(ctx)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestObserver_StopKeepsLastFix(t *testing.T) {
	loc := models.Location{Latitude: 1, Longitude: 1}
	o := NewObserver(StaticSource{Location: loc}, time.Hour, logger.Nop())
	o.Start(context.Background())

	_, err := o.First(context.Background())
	require.NoError(t, err)
	o.Stop()

	got, known := o.Current()
	assert.True(t, known)
	assert.Equal(t, loc, got)
}

func TestCachedSource(t *testing.T) {
	loc := models.Location{Latitude: 59.93, Longitude: 30.31}

	t.Run("remembers a fresh fix", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		prefs := mock.NewMockPreferenceRepository(ctrl)
		prefs.EXPECT().Put(gomock.Any(), LastFixKey, `{"latitude":59.93,"longitude":30.31}`).Return(nil)

		got, err := NewCachedSource(StaticSource{Location: loc}, prefs, nil).Locate(context.Background())
		require.NoError(t, err)
		assert.Equal(t, loc, got)
	})

	t.Run("falls back to the remembered fix", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		prefs := mock.NewMockPreferenceRepository(ctrl)
		prefs.EXPECT().Get(gomock.Any(), LastFixKey).Return(`{"latitude":59.93,"longitude":30.31}`, nil)

		got, err := NewCachedSource(StaticSource{}, prefs, nil).Locate(context.Background())
		require.NoError(t, err)
		assert.Equal(t, loc, got)
	})

	t.Run("nothing remembered", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		prefs := mock.NewMockPreferenceRepository(ctrl)
		prefs.EXPECT().Get(gomock.Any(), LastFixKey).Return("", store.ErrPreferenceNotFound)

		_, err := NewCachedSource(StaticSource{}, prefs, nil).Locate(context.Background())
		assert.ErrorIs(t, err, ErrUnavailable)
	})

	t.Run("malformed entry is dropped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		prefs := mock.NewMockPreferenceRepository(ctrl)
		prefs.EXPECT().Get(gomock.Any(), LastFixKey).Return("{", nil)
		prefs.EXPECT().Delete(gomock.Any(), LastFixKey).Return(nil)

		_, err := NewCachedSource(StaticSource{}, prefs, nil).Locate(context.Background())
		assert.ErrorIs(t, err, ErrUnavailable)
	})
}

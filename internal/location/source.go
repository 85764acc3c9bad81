// Package location tracks the device position for the map screen.
//
// A [Source] produces one position fix; an [Observer] polls a source on a
// background worker and keeps the latest fix.
package location

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pet-walker/internal/config"
	"github.com/MKhiriev/go-pet-walker/internal/utils"
	"github.com/MKhiriev/go-pet-walker/models"
)

// ErrUnavailable is returned when no position can be determined.
var ErrUnavailable = errors.New("location unavailable")

// Source produces the current device position.
type Source interface {
	Locate(ctx context.Context) (models.Location, error)
}

// StaticSource always reports the same configured position.
type StaticSource struct {
	Location models.Location
}

// Locate implements Source. The zero location counts as not configured.
func (s StaticSource) Locate(context.Context) (models.Location, error) {
	if s.Location == (models.Location{}) {
		return models.Location{}, ErrUnavailable
	}
	return s.Location, nil
}

// HTTPSource asks a geo-IP endpoint for the position. The endpoint must
// answer with a JSON object carrying "lat" and "lon".
type HTTPSource struct {
	client *utils.HTTPClient
	url    string
}

type geoResponse struct {
	Lat *float64 `json:"lat"`
	Lon *float64 `json:"lon"`
}

// NewHTTPSource creates an HTTPSource querying url.
func NewHTTPSource(url string, timeout time.Duration) *HTTPSource {
	client := utils.NewHTTPClient()
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &HTTPSource{client: client, url: url}
}

// Locate implements Source.
func (s *HTTPSource) Locate(ctx context.Context) (models.Location, error) {
	var out geoResponse

	resp, err := s.client.R().SetContext(ctx).SetResult(&out).Get(s.url)
	if err != nil {
		return models.Location{}, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	if resp.IsError() {
		return models.Location{}, fmt.Errorf("%w: geo endpoint answered %d", ErrUnavailable, resp.StatusCode())
	}
	if out.Lat == nil || out.Lon == nil {
		return models.Location{}, fmt.Errorf("%w: geo endpoint answered without coordinates", ErrUnavailable)
	}

	return models.Location{Latitude: *out.Lat, Longitude: *out.Lon}, nil
}

// NewSource picks the source described by cfg: the geo-IP endpoint when
// GeoURL is set, the static coordinates otherwise.
func NewSource(cfg config.Location, timeout time.Duration) Source {
	if cfg.GeoURL != "" {
		return NewHTTPSource(cfg.GeoURL, timeout)
	}
	return StaticSource{Location: models.Location{Latitude: cfg.Latitude, Longitude: cfg.Longitude}}
}

package models

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{name: "nil", err: nil, want: Unknown},
		{name: "plain", err: errors.New("boom"), want: Unknown},
		{name: "wrapped not found", err: fmt.Errorf("GET /api/pets/1: %w: no such pet", ErrNotFound), want: NotFound},
		{name: "unauthorized", err: ErrUnauthorized, want: Unauthorized},
		{name: "conflict", err: fmt.Errorf("%w", ErrConflict), want: Conflict},
		{name: "deadline", err: fmt.Errorf("call: %w", context.DeadlineExceeded), want: Network},
		{name: "dial error", err: &net.OpError{Op: "dial", Err: errors.New("refused")}, want: Network},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestErrorOf_RoundTrip(t *testing.T) {
	for _, kind := range []ErrorKind{Unauthorized, Forbidden, NotFound, Conflict, BadRequest, ServerError, Network} {
		assert.Equal(t, kind, KindOf(ErrorOf(kind)), kind.String())
	}
	assert.Equal(t, Unknown, KindOf(ErrorOf(Unknown)))
	assert.Equal(t, "UNKNOWN", ErrorKind(99).String())
}

func TestLocation_DistanceKm(t *testing.T) {
	moscow := Location{Latitude: 55.7558, Longitude: 37.6173}
	petersburg := Location{Latitude: 59.9343, Longitude: 30.3351}

	assert.InDelta(t, 634, moscow.DistanceKm(petersburg), 5)
	assert.InDelta(t, moscow.DistanceKm(petersburg), petersburg.DistanceKm(moscow), 1e-9)
	assert.Zero(t, moscow.DistanceKm(moscow))
}

func TestBoundsAround(t *testing.T) {
	center := Location{Latitude: 55.75, Longitude: 37.61}
	b := BoundsAround(center, 5)

	assert.Less(t, b.South, center.Latitude)
	assert.Greater(t, b.North, center.Latitude)
	assert.Less(t, b.West, center.Longitude)
	assert.Greater(t, b.East, center.Longitude)

	edge := Location{Latitude: b.North, Longitude: center.Longitude}
	assert.InDelta(t, 5, center.DistanceKm(edge), 0.1)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "math"

const earthRadiusKm = 6371.0

// Location is a WGS84 coordinate pair.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// DistanceKm returns the great-circle distance between l and other using
// the haversine formula.
func (l Location) DistanceKm(other Location) float64 {
	lat1 := l.Latitude * math.Pi / 180
	lat2 := other.Latitude * math.Pi / 180
	dLat := (other.Latitude - l.Latitude) * math.Pi / 180
	dLng := (other.Longitude - l.Longitude) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// Bounds is a latitude/longitude rectangle used by the map view.
type Bounds struct {
	South float64 `json:"south"`
	West  float64 `json:"west"`
	North float64 `json:"north"`
	East  float64 `json:"east"`
}

// BoundsAround returns a square of roughly radiusKm around center.
func BoundsAround(center Location, radiusKm float64) Bounds {
	dLat := radiusKm / 111.0
	dLng := radiusKm / (111.0 * math.Max(math.Cos(center.Latitude*math.Pi/180), 0.01))
	return Bounds{
		South: center.Latitude - dLat,
		West:  center.Longitude - dLng,
		North: center.Latitude + dLat,
		East:  center.Longitude + dLng,
	}
}

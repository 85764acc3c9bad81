// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// ClientConfig is the top-level configuration container of the client. It
// is populated by merging defaults, an optional JSON file, environment
// variables and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type ClientConfig struct {
	// Adapter holds the settings of the HTTP transport to the marketplace
	// API.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the local database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Downloads holds attachment download settings.
	Downloads Downloads `envPrefix:"DOWNLOADS_"`

	// Paging holds settings shared by every paged list.
	Paging Paging `envPrefix:"PAGING_"`

	// Location holds device location settings.
	Location Location `envPrefix:"LOCATION_"`

	// Log holds logging settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Adapter holds outbound transport settings.
type Adapter struct {
	// HTTPAddress is the base address of the API, with or without scheme
	// (e.g. "localhost:8080" or "https://api.example.com").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request (e.g. "10s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RateLimit is the sustained number of requests per second allowed.
	// Env: ADAPTER_RATE_LIMIT
	RateLimit float64 `env:"RATE_LIMIT"`

	// RateBurst is the number of requests allowed in a burst.
	// Env: ADAPTER_RATE_BURST
	RateBurst int `env:"RATE_BURST"`
}

// Storage groups the local persistence settings.
type Storage struct {
	// DB holds the SQLite settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite file path or DSN (e.g. "walker.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Downloads holds attachment download settings.
type Downloads struct {
	// Dir is where downloaded attachments are written.
	// Env: DOWNLOADS_DIR
	Dir string `env:"DIR"`
}

// Paging holds list paging settings.
type Paging struct {
	// PageSize is the number of items requested per page.
	// Env: PAGING_PAGE_SIZE
	PageSize int `env:"PAGE_SIZE"`
}

// Location holds device location settings. With GeoURL empty the static
// coordinates are used as the device position.
type Location struct {
	// Env: LOCATION_LATITUDE
	Latitude float64 `env:"LATITUDE"`

	// Env: LOCATION_LONGITUDE
	Longitude float64 `env:"LONGITUDE"`

	// GeoURL is an optional geo-IP endpoint returning {"lat":..,"lon":..}.
	// Env: LOCATION_GEO_URL
	GeoURL string `env:"GEO_URL"`

	// PollInterval is how often the observer refreshes the position.
	// Env: LOCATION_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`
}

// Log holds logging settings.
type Log struct {
	// File is the log file path; empty means "logs" next to the executable.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

func defaultConfig() *ClientConfig {
	return &ClientConfig{
		Adapter: Adapter{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 15 * time.Second,
			RateLimit:      10,
			RateBurst:      20,
		},
		Storage:   Storage{DB: DB{DSN: "walker.db"}},
		Downloads: Downloads{Dir: "downloads"},
		Paging:    Paging{PageSize: 15},
		Location:  Location{PollInterval: 30 * time.Second},
	}
}

// GetClientConfig loads, merges, and validates the client configuration.
// args are the command-line arguments without the program name.
func GetClientConfig(args []string) (*ClientConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}

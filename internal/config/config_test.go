// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_DefaultsAreValid(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)
	assert.Equal(t, 15, cfg.Paging.PageSize)
	assert.Equal(t, "localhost:8080", cfg.Adapter.HTTPAddress)
}

func TestBuild_LaterConfigOverridesEarlier(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs,
		&ClientConfig{Paging: Paging{PageSize: 30}},
		&ClientConfig{Adapter: Adapter{HTTPAddress: "api.example.com"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.Paging.PageSize)
	assert.Equal(t, "api.example.com", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout, "zero fields keep earlier values")
}

func TestBuild_InvalidConfig(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &ClientConfig{})

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
	assert.ErrorIs(t, err, ErrInvalidPagingConfigs)
}

// ── sources ───────────────────────────────────────────────────────────────────

func TestParseEnv_AllFields(t *testing.T) {
	t.Setenv("CONFIG", "/path/to/config.json")
	t.Setenv("ADAPTER_ADDRESS", "https://api.example.com")
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "5s")
	t.Setenv("ADAPTER_RATE_LIMIT", "2.5")
	t.Setenv("ADAPTER_RATE_BURST", "4")
	t.Setenv("STORAGE_DB_DATABASE_URI", "/tmp/walker.db")
	t.Setenv("DOWNLOADS_DIR", "/tmp/downloads")
	t.Setenv("PAGING_PAGE_SIZE", "20")
	t.Setenv("LOCATION_LATITUDE", "55.75")
	t.Setenv("LOCATION_LONGITUDE", "37.61")
	t.Setenv("LOCATION_GEO_URL", "http://geo.local/json")
	t.Setenv("LOCATION_POLL_INTERVAL", "1m")
	t.Setenv("LOG_FILE", "/tmp/walker.log")

	cfg := &ClientConfig{}
	require.NoError(t, parseEnv(cfg, nil))

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "https://api.example.com", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.InDelta(t, 2.5, cfg.Adapter.RateLimit, 1e-9)
	assert.Equal(t, 4, cfg.Adapter.RateBurst)
	assert.Equal(t, "/tmp/walker.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/tmp/downloads", cfg.Downloads.Dir)
	assert.Equal(t, 20, cfg.Paging.PageSize)
	assert.InDelta(t, 55.75, cfg.Location.Latitude, 1e-9)
	assert.InDelta(t, 37.61, cfg.Location.Longitude, 1e-9)
	assert.Equal(t, "http://geo.local/json", cfg.Location.GeoURL)
	assert.Equal(t, time.Minute, cfg.Location.PollInterval)
	assert.Equal(t, "/tmp/walker.log", cfg.Log.File)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "soon")

	err := parseEnv(&ClientConfig{}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestParseEnv_ExplicitEnvironment(t *testing.T) {
	t.Setenv("DOWNLOADS_DIR", "/from/process")

	cfg := &ClientConfig{}
	require.NoError(t, parseEnv(cfg, map[string]string{
		"ADAPTER_ADDRESS":  "localhost:9000",
		"PAGING_PAGE_SIZE": "7",
	}))

	assert.Equal(t, "localhost:9000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 7, cfg.Paging.PageSize)
	assert.Empty(t, cfg.Downloads.Dir)
}

func TestParseFlags(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-a", "localhost:9000",
		"-request-timeout", "3s",
		"-d", "local.db",
		"-page-size", "25",
		"-lat", "10.5",
		"-config", "cfg.json",
	})
	require.NoError(t, err)

	assert.Equal(t, "localhost:9000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "local.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 25, cfg.Paging.PageSize)
	assert.InDelta(t, 10.5, cfg.Location.Latitude, 1e-9)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	_, err := parseFlags([]string{"-nope"})
	assert.Error(t, err)
}

func TestParseJSON(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"adapter":  map[string]any{"http_address": "json.example.com", "request_timeout": "7s"},
		"storage":  map[string]any{"db": map[string]any{"dsn": "json.db"}},
		"paging":   map[string]any{"page_size": 40},
		"location": map[string]any{"poll_interval": "2m"},
	})

	cfg, err := parseJSON(path)
	require.NoError(t, err)
	assert.Equal(t, "json.example.com", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 7*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "json.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 40, cfg.Paging.PageSize)
	assert.Equal(t, 2*time.Minute, cfg.Location.PollInterval)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON("/definitely/not/here.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	var d Duration

	require.NoError(t, json.Unmarshal([]byte(`"90s"`), &d))
	assert.Equal(t, 90*time.Second, time.Duration(d))

	require.NoError(t, json.Unmarshal([]byte(`1000`), &d))
	assert.Equal(t, time.Microsecond, time.Duration(d))

	assert.Error(t, json.Unmarshal([]byte(`true`), &d))
	assert.Error(t, json.Unmarshal([]byte(`"later"`), &d))

	out, err := json.Marshal(Duration(time.Second))
	require.NoError(t, err)
	assert.Equal(t, `"1s"`, string(out))
}

// ── priority ──────────────────────────────────────────────────────────────────

func TestGetClientConfig_Priority(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"adapter":   map[string]any{"http_address": "json.example.com"},
		"paging":    map[string]any{"page_size": 40},
		"downloads": map[string]any{"dir": "json-downloads"},
	})
	t.Setenv("CONFIG", path)
	t.Setenv("PAGING_PAGE_SIZE", "50")

	cfg, err := GetClientConfig([]string{"-a", "flag.example.com"})
	require.NoError(t, err)

	assert.Equal(t, "flag.example.com", cfg.Adapter.HTTPAddress, "flags beat json")
	assert.Equal(t, 50, cfg.Paging.PageSize, "env beats json")
	assert.Equal(t, "json-downloads", cfg.Downloads.Dir, "json beats defaults")
	assert.Equal(t, "walker.db", cfg.Storage.DB.DSN, "defaults fill the rest")
}

func TestGetClientConfig_ValidationError(t *testing.T) {
	t.Setenv("PAGING_PAGE_SIZE", "500")

	_, err := GetClientConfig(nil)
	assert.ErrorIs(t, err, ErrInvalidPagingConfigs)
}

func TestValidate_Location(t *testing.T) {
	cfg := defaultConfig()
	cfg.Location.Latitude = 91

	assert.ErrorIs(t, cfg.validate(), ErrInvalidLocationConfigs)
}

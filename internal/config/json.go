package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON layout of the client config.
type StructuredJSONConfig struct {
	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		RateLimit      float64  `json:"rate_limit"`
		RateBurst      int      `json:"rate_burst"`
	} `json:"adapter,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Downloads struct {
		Dir string `json:"dir"`
	} `json:"downloads,omitempty"`

	Paging struct {
		PageSize int `json:"page_size"`
	} `json:"paging,omitempty"`

	Location struct {
		Latitude     float64  `json:"latitude"`
		Longitude    float64  `json:"longitude"`
		GeoURL       string   `json:"geo_url"`
		PollInterval Duration `json:"poll_interval"`
	} `json:"location,omitempty"`

	Log struct {
		File string `json:"file"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*ClientConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return &ClientConfig{
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			RateLimit:      jsonCfg.Adapter.RateLimit,
			RateBurst:      jsonCfg.Adapter.RateBurst,
		},
		Storage:   Storage{DB: DB{DSN: jsonCfg.Storage.DB.DSN}},
		Downloads: Downloads{Dir: jsonCfg.Downloads.Dir},
		Paging:    Paging{PageSize: jsonCfg.Paging.PageSize},
		Location: Location{
			Latitude:     jsonCfg.Location.Latitude,
			Longitude:    jsonCfg.Location.Longitude,
			GeoURL:       jsonCfg.Location.GeoURL,
			PollInterval: time.Duration(jsonCfg.Location.PollInterval),
		},
		Log: Log{File: jsonCfg.Log.File},
	}, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as plain nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// parseFlags parses the client command-line flags from args.
//
// Flags:
//
//	-a api address (host:port or URL)
//	-request-timeout outbound request timeout (e.g., "10s")
//	-rate-limit requests per second
//	-rate-burst request burst size
//	-d local database DSN
//	-downloads attachment download directory
//	-page-size items per page
//	-lat / -lng static device coordinates
//	-geo-url geo-IP endpoint
//	-location-interval location poll interval
//	-log-file log file path
//	-c/-config json file path with configs
func parseFlags(args []string) (*ClientConfig, error) {
	fs := flag.NewFlagSet("walker-client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		address        string
		requestTimeout time.Duration
		rateLimit      float64
		rateBurst      int
		databaseDSN    string
		downloadsDir   string
		pageSize       int
		latitude       float64
		longitude      float64
		geoURL         string
		pollInterval   time.Duration
		logFile        string
		jsonConfigPath string
	)

	fs.StringVar(&address, "a", "", "API address host:port or URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 10s)")
	fs.Float64Var(&rateLimit, "rate-limit", 0, "Requests per second")
	fs.IntVar(&rateBurst, "rate-burst", 0, "Request burst size")
	fs.StringVar(&databaseDSN, "d", "", "Local database DSN")
	fs.StringVar(&downloadsDir, "downloads", "", "Attachment download directory")
	fs.IntVar(&pageSize, "page-size", 0, "Items per page")
	fs.Float64Var(&latitude, "lat", 0, "Static latitude")
	fs.Float64Var(&longitude, "lng", 0, "Static longitude")
	fs.StringVar(&geoURL, "geo-url", "", "Geo-IP endpoint")
	fs.DurationVar(&pollInterval, "location-interval", 0, "Location poll interval")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &ClientConfig{
		Adapter: Adapter{
			HTTPAddress:    address,
			RequestTimeout: requestTimeout,
			RateLimit:      rateLimit,
			RateBurst:      rateBurst,
		},
		Storage:   Storage{DB: DB{DSN: databaseDSN}},
		Downloads: Downloads{Dir: downloadsDir},
		Paging:    Paging{PageSize: pageSize},
		Location: Location{
			Latitude:     latitude,
			Longitude:    longitude,
			GeoURL:       geoURL,
			PollInterval: pollInterval,
		},
		Log:          Log{File: logFile},
		JSONFilePath: jsonConfigPath,
	}, nil
}

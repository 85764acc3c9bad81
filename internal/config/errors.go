package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid transport settings
	// (missing address, non-positive timeout, negative rate limits).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates an empty local database DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidDownloadConfigs indicates an empty download directory.
	ErrInvalidDownloadConfigs = errors.New("invalid downloads configuration")
	// ErrInvalidPagingConfigs indicates a page size outside [1, 100].
	ErrInvalidPagingConfigs = errors.New("invalid paging configuration")
	// ErrInvalidLocationConfigs indicates out-of-range coordinates or a
	// negative poll interval.
	ErrInvalidLocationConfigs = errors.New("invalid location configuration")
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"strings"
)

const maxPageSize = 100

// validate checks that the merged [ClientConfig] is usable. All problems
// are reported at once.
func (cfg *ClientConfig) validate() error {
	var errs []error

	if strings.TrimSpace(cfg.Adapter.HTTPAddress) == "" || cfg.Adapter.RequestTimeout <= 0 {
		errs = append(errs, ErrInvalidAdapterConfigs)
	}
	if cfg.Adapter.RateLimit < 0 || cfg.Adapter.RateBurst < 0 {
		errs = append(errs, ErrInvalidAdapterConfigs)
	}

	if strings.TrimSpace(cfg.Storage.DB.DSN) == "" {
		errs = append(errs, ErrInvalidStorageConfigs)
	}

	if strings.TrimSpace(cfg.Downloads.Dir) == "" {
		errs = append(errs, ErrInvalidDownloadConfigs)
	}

	if cfg.Paging.PageSize < 1 || cfg.Paging.PageSize > maxPageSize {
		errs = append(errs, ErrInvalidPagingConfigs)
	}

	if cfg.Location.Latitude < -90 || cfg.Location.Latitude > 90 ||
		cfg.Location.Longitude < -180 || cfg.Location.Longitude > 180 ||
		cfg.Location.PollInterval < 0 {
		errs = append(errs, ErrInvalidLocationConfigs)
	}

	return errors.Join(errs...)
}

package location

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-pet-walker/internal/logger"
	"github.com/MKhiriev/go-pet-walker/internal/store"
	"github.com/MKhiriev/go-pet-walker/models"
)

// LastFixKey is the preference key holding the last known position.
const LastFixKey = "location.last_fix"

// CachedSource remembers every fix of the wrapped source in the preference
// store and answers with the remembered one while the source is failing.
type CachedSource struct {
	source Source
	prefs  store.PreferenceRepository
	logger *logger.Logger
}

// NewCachedSource wraps source.
func NewCachedSource(source Source, prefs store.PreferenceRepository, log *logger.Logger) *CachedSource {
	if log == nil {
		log = logger.Nop()
	}
	return &CachedSource{source: source, prefs: prefs, logger: log}
}

// Locate implements Source.
func (s *CachedSource) Locate(ctx context.Context) (models.Location, error) {
	loc, err := s.source.Locate(ctx)
	if err == nil {
		s.remember(ctx, loc)
		return loc, nil
	}

	raw, perr := s.prefs.Get(ctx, LastFixKey)
	if perr != nil {
		return models.Location{}, err
	}
	var cached models.Location
	if jerr := json.Unmarshal([]byte(raw), &cached); jerr != nil {
		s.logger.Warn().Err(jerr).Str("func", "CachedSource.Locate").Msg("dropping malformed cached position")
		_ = s.prefs.Delete(ctx, LastFixKey)
		return models.Location{}, err
	}
	return cached, nil
}

func (s *CachedSource) remember(ctx context.Context, loc models.Location) {
	raw, err := json.Marshal(loc)
	if err != nil {
		return
	}
	if err = s.prefs.Put(ctx, LastFixKey, string(raw)); err != nil {
		s.logger.Err(err).Str("func", "CachedSource.remember").Msg("failed to store position")
	}
}

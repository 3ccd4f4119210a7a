package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"guide_paris/internal/adapters/observability"
	"guide_paris/internal/catalog"
	"guide_paris/internal/domain"
)

const (
	missGeocode = "geocode"
	missPhotos  = "photos"
)

// EnrichmentService asks the external services for what the catalog does
// not carry (coordinates, photos) and stores the answers.
type EnrichmentService struct {
	geo        domain.Geocoder
	photos     domain.PhotoProvider
	repo       domain.EnrichmentRepository
	cache      domain.Cache
	photoCount int
}

func NewEnrichmentService(g domain.Geocoder, p domain.PhotoProvider, r domain.EnrichmentRepository, cache domain.Cache, photoCount int) *EnrichmentService {
	if photoCount <= 0 {
		photoCount = 5
	}
	return &EnrichmentService{geo: g, photos: p, repo: r, cache: cache, photoCount: photoCount}
}

// EnrichRestaurant geocodes and fetches photos for r. An unavailable answer
// is recorded as a miss and is not an error; anything else is returned.
func (s *EnrichmentService) EnrichRestaurant(ctx context.Context, r domain.Restaurant) error {
	e := domain.Enrichment{RestaurantID: r.ID}

	// 1) Coordinates, unless the catalog already has them.
	if r.Coordinates == nil && s.geo != nil {
		c, err := s.geo.Geocode(ctx, r.Address)
		switch {
		case err == nil:
			e.Coordinates = &c
			observability.ObserveEnrich(missGeocode, "ok")
		case errors.Is(err, domain.ErrUnavailable):
			observability.ObserveEnrich(missGeocode, "miss")
			s.logMiss(ctx, r.ID, missGeocode, err)
		default:
			observability.ObserveEnrich(missGeocode, "error")
			return fmt.Errorf("geocode %s: %w", r.ID, err)
		}
	} else {
		observability.ObserveEnrich(missGeocode, "skip")
	}

	// 2) Photos: best-effort, same miss handling.
	if len(r.Photos) == 0 && s.photos != nil {
		ps, err := s.photos.Photos(ctx, r.Name+", "+r.Address, s.photoCount)
		switch {
		case err == nil:
			e.PhotoRefs = ps
			observability.ObserveEnrich(missPhotos, "ok")
		case errors.Is(err, domain.ErrUnavailable):
			observability.ObserveEnrich(missPhotos, "miss")
			s.logMiss(ctx, r.ID, missPhotos, err)
		default:
			observability.ObserveEnrich(missPhotos, "error")
			return fmt.Errorf("photos %s: %w", r.ID, err)
		}
	} else {
		observability.ObserveEnrich(missPhotos, "skip")
	}

	if e.Coordinates == nil && len(e.PhotoRefs) == 0 {
		return nil
	}
	if err := s.repo.UpsertEnrichment(ctx, e); err != nil {
		return fmt.Errorf("upsert enrichment for %s: %w", r.ID, err)
	}
	s.invalidate(ctx, r)
	return nil
}

// logMiss records an unavailable answer; failing to record it only warns.
func (s *EnrichmentService) logMiss(ctx context.Context, id, kind string, cause error) {
	if err := s.repo.LogMiss(ctx, id, kind, cause.Error()); err != nil {
		log.Warn().Err(err).Str("id", id).Str("kind", kind).Msg("record enrichment miss failed")
	}
}

// invalidate drops the cached detail view and the enrichment map.
func (s *EnrichmentService) invalidate(ctx context.Context, r domain.Restaurant) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, restaurantKey(catalog.Slug(r.Name))); err != nil {
		log.Warn().Err(err).Str("id", r.ID).Msg("cache invalidation failed")
	}
	_ = s.cache.Del(ctx, enrichmentsKey)
}

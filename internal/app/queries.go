package app

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"guide_paris/internal/adapters/observability"
	"guide_paris/internal/catalog"
	"guide_paris/internal/domain"
	"guide_paris/internal/navigation"
	"guide_paris/internal/search"
)

// QueryService serves the read side: the catalog and search engine are
// pure, enrichment comes from the repository behind the cache.
type QueryService struct {
	cat      *catalog.Catalog
	engine   *search.Engine
	routes   navigation.Resolver
	repo     domain.EnrichmentRepository
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewQueryService(c *catalog.Catalog, routes navigation.Resolver, r domain.EnrichmentRepository, cache domain.Cache, ttl time.Duration) *QueryService {
	return &QueryService{
		cat:      c,
		engine:   search.New(c),
		routes:   routes,
		repo:     r,
		cache:    cache,
		cacheTTL: ttl,
	}
}

// List applies the combined filter and merges enrichment into each result.
func (s *QueryService) List(ctx context.Context, c search.Criteria) []domain.RestaurantView {
	rs := s.engine.Filter(c)
	observability.ObserveSearch("list", len(rs))
	return s.Views(ctx, rs)
}

// Views renders rs with their enrichment merged in.
func (s *QueryService) Views(ctx context.Context, rs []domain.Restaurant) []domain.RestaurantView {
	enr := s.enrichments(ctx)
	out := make([]domain.RestaurantView, 0, len(rs))
	for _, r := range rs {
		var e *domain.Enrichment
		if v, ok := enr[r.ID]; ok {
			e = &v
		}
		out = append(out, toView(merge(r, e), s.routes))
	}
	return out
}

// Markers is List restricted to restaurants with known coordinates.
func (s *QueryService) Markers(ctx context.Context, c search.Criteria) []domain.Marker {
	out := []domain.Marker{}
	for _, v := range s.List(ctx, c) {
		if v.Coordinates == nil {
			continue
		}
		out = append(out, domain.Marker{ID: v.ID, Name: v.Name, Coordinates: *v.Coordinates, Route: v.Route})
	}
	return out
}

func (s *QueryService) GetRestaurant(ctx context.Context, slug string) (domain.RestaurantView, error) {
	key := restaurantKey(slug)
	var rv domain.RestaurantView
	if ok, _ := s.cache.Get(ctx, key, &rv); ok {
		return rv, nil
	}

	r, ok := s.cat.BySlug(slug)
	if !ok {
		return domain.RestaurantView{}, domain.ErrNotFound
	}
	var e *domain.Enrichment
	switch got, err := s.repo.GetEnrichment(ctx, r.ID); {
	case err == nil:
		e = &got
	case errors.Is(err, domain.ErrNotFound):
	default:
		// enrichment is optional; serve the catalog data and skip the cache
		log.Warn().Err(err).Str("id", r.ID).Msg("enrichment lookup failed")
		return toView(r, s.routes), nil
	}

	rv = toView(merge(r, e), s.routes)
	_ = s.cache.Set(ctx, key, rv, int(s.cacheTTL.Seconds()))
	return rv, nil
}

func (s *QueryService) Autocomplete(q string) []string {
	out := s.engine.Autocomplete(q)
	observability.ObserveSearch("autocomplete", len(out))
	return out
}

func (s *QueryService) Categories() search.Categories { return s.engine.Categorize() }

func (s *QueryService) Tags() []domain.TagCount { return s.engine.Tags() }

func (s *QueryService) Route(name string) (domain.Route, error) {
	r, ok := s.routes.Resolve(name)
	if !ok {
		return domain.Route{}, domain.ErrNotFound
	}
	return r, nil
}

// enrichments is best effort: any failure yields an empty map.
func (s *QueryService) enrichments(ctx context.Context) map[string]domain.Enrichment {
	var out map[string]domain.Enrichment
	if ok, _ := s.cache.Get(ctx, enrichmentsKey, &out); ok {
		return out
	}
	out, err := s.repo.ListEnrichments(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("list enrichments failed")
		return map[string]domain.Enrichment{}
	}
	_ = s.cache.Set(ctx, enrichmentsKey, out, int(s.cacheTTL.Seconds()))
	return out
}

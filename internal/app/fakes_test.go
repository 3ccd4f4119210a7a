package app_test

import (
	"context"
	"encoding/json"

	"guide_paris/internal/domain"
)

// ---- fakes ----

type fakeRepo struct {
	enr       map[string]domain.Enrichment
	misses    []string
	listCalls int
	getErr    error
	listErr   error
	upsertErr error
	missErr   error
}

func (f *fakeRepo) UpsertEnrichment(ctx context.Context, e domain.Enrichment) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	if f.enr == nil {
		f.enr = map[string]domain.Enrichment{}
	}
	f.enr[e.RestaurantID] = e
	return nil
}
func (f *fakeRepo) LogMiss(ctx context.Context, id, kind, reason string) error {
	if f.missErr != nil {
		return f.missErr
	}
	f.misses = append(f.misses, id+":"+kind)
	return nil
}
func (f *fakeRepo) GetEnrichment(ctx context.Context, id string) (domain.Enrichment, error) {
	if f.getErr != nil {
		return domain.Enrichment{}, f.getErr
	}
	e, ok := f.enr[id]
	if !ok {
		return domain.Enrichment{}, domain.ErrNotFound
	}
	return e, nil
}
func (f *fakeRepo) ListEnrichments(ctx context.Context) (map[string]domain.Enrichment, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make(map[string]domain.Enrichment, len(f.enr))
	for k, v := range f.enr {
		out[k] = v
	}
	return out, nil
}

// fakeCache stores JSON like the redis adapter does.
type fakeCache struct {
	store map[string][]byte
	dels  []string
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	v, ok := c.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(v, dst)
}
func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	if c.store == nil {
		c.store = map[string][]byte{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.store[key] = b
	return nil
}
func (c *fakeCache) Del(ctx context.Context, key string) error {
	c.dels = append(c.dels, key)
	delete(c.store, key)
	return nil
}

type fakeGeocoder struct {
	coords map[string]domain.Coordinates
	err    error
	calls  int
}

func (g *fakeGeocoder) Geocode(ctx context.Context, address string) (domain.Coordinates, error) {
	g.calls++
	if g.err != nil {
		return domain.Coordinates{}, g.err
	}
	c, ok := g.coords[address]
	if !ok {
		return domain.Coordinates{}, domain.ErrUnavailable
	}
	return c, nil
}

type fakePhotos struct {
	photos []string
	err    error
	limit  int
}

func (p *fakePhotos) Photos(ctx context.Context, query string, limit int) ([]string, error) {
	p.limit = limit
	if p.err != nil {
		return nil, p.err
	}
	if len(p.photos) == 0 {
		return nil, domain.ErrUnavailable
	}
	return p.photos, nil
}

type fakeAdminStore struct {
	saved []domain.Restaurant
	has   bool
}

func (s *fakeAdminStore) LoadAdminList(ctx context.Context) ([]domain.Restaurant, error) {
	if !s.has {
		return nil, domain.ErrNotFound
	}
	return s.saved, nil
}
func (s *fakeAdminStore) SaveAdminList(ctx context.Context, rs []domain.Restaurant) error {
	s.saved, s.has = rs, true
	return nil
}

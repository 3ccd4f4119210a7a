package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"guide_paris/internal/app"
	"guide_paris/internal/catalog"
	"guide_paris/internal/domain"
	"guide_paris/internal/navigation"
	"guide_paris/internal/search"
)

func newQueries(repo *fakeRepo, cache *fakeCache) *app.QueryService {
	return app.NewQueryService(catalog.Default(), navigation.Default(catalog.Default()), repo, cache, 10*time.Minute)
}

func TestGetRestaurant_CacheMissThenHit(t *testing.T) {
	repo := &fakeRepo{enr: map[string]domain.Enrichment{
		"1": {RestaurantID: "1", Coordinates: &domain.Coordinates{Lat: 48.8557, Lng: 2.3167}},
	}}
	cache := &fakeCache{}
	q := newQueries(repo, cache)

	// Miss (first time, populates cache)
	rv, err := q.GetRestaurant(context.Background(), "larpege")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if rv.ID != "1" || rv.Name != "L'Arpège" || rv.Coordinates == nil || rv.Coordinates.Lat != 48.8557 {
		t.Fatalf("unexpected view: %+v", rv)
	}
	if rv.Route == nil || rv.Route.Path != "/arpege" {
		t.Fatalf("expected override route, got %+v", rv.Route)
	}
	if len(rv.Distinctions) != 2 || rv.Distinctions[0].Icon != catalog.IconMichelin3 || rv.Distinctions[1].Tag != "gault-millau-5" {
		t.Fatalf("unexpected distinctions: %+v", rv.Distinctions)
	}

	// Mutate repo to ensure second read indeed comes from cache
	repo.enr["1"] = domain.Enrichment{RestaurantID: "1", Coordinates: &domain.Coordinates{Lat: 0, Lng: 0}}

	rv2, err := q.GetRestaurant(context.Background(), "larpege")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if rv2.Coordinates.Lat != 48.8557 {
		t.Fatalf("expected cached coordinates, got %+v", rv2.Coordinates)
	}
}

func TestGetRestaurant_NotFound(t *testing.T) {
	q := newQueries(&fakeRepo{}, &fakeCache{})
	if _, err := q.GetRestaurant(context.Background(), "nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetRestaurant_RepoFailureServesCatalogUncached(t *testing.T) {
	cache := &fakeCache{}
	q := newQueries(&fakeRepo{getErr: errors.New("db down")}, cache)

	rv, err := q.GetRestaurant(context.Background(), "double")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if rv.Name != "Double" || rv.Coordinates != nil {
		t.Fatalf("unexpected view: %+v", rv)
	}
	if rv.Route == nil || rv.Route.Path != "/restaurants/double" {
		t.Fatalf("expected slug route, got %+v", rv.Route)
	}
	if len(cache.store) != 0 {
		t.Fatalf("degraded view must not be cached")
	}
}

func TestList_FiltersAndMerges(t *testing.T) {
	repo := &fakeRepo{enr: map[string]domain.Enrichment{
		"7": {RestaurantID: "7", PhotoRefs: []string{"p1"}},
	}}
	cache := &fakeCache{}
	q := newQueries(repo, cache)

	got := q.List(context.Background(), search.Criteria{Query: "bistrot", Tags: []string{"bib-gourmand"}})
	if len(got) != 1 || got[0].Name != "L'Ami Jean" {
		t.Fatalf("unexpected list: %+v", got)
	}
	if len(got[0].Photos) != 1 || got[0].Photos[0] != "/v1/photos/p1" {
		t.Fatalf("expected merged photos, got %+v", got[0].Photos)
	}

	// enrichment map is cached between calls
	_ = q.List(context.Background(), search.Criteria{})
	if repo.listCalls != 1 {
		t.Fatalf("expected 1 repo list call, got %d", repo.listCalls)
	}
}

func TestList_RepoFailureStillLists(t *testing.T) {
	q := newQueries(&fakeRepo{listErr: errors.New("db down")}, &fakeCache{})
	if got := q.List(context.Background(), search.Criteria{}); len(got) != 10 {
		t.Fatalf("expected full catalog, got %d", len(got))
	}
}

func TestMarkers_OnlyGeocoded(t *testing.T) {
	repo := &fakeRepo{enr: map[string]domain.Enrichment{
		"4": {RestaurantID: "4", Coordinates: &domain.Coordinates{Lat: 48.853, Lng: 2.380}},
	}}
	q := newQueries(repo, &fakeCache{})

	got := q.Markers(context.Background(), search.Criteria{})
	if len(got) != 1 || got[0].Name != "Septime" || got[0].Route == nil || got[0].Route.Path != "/septime" {
		t.Fatalf("unexpected markers: %+v", got)
	}
}

func TestRoute(t *testing.T) {
	q := newQueries(&fakeRepo{}, &fakeCache{})

	r, err := q.Route("Allard")
	if err != nil || r.Kind != navigation.KindOverride {
		t.Fatalf("unexpected route %+v err=%v", r, err)
	}
	r, err = q.Route("Frenchie")
	if err != nil || r.Path != "/restaurants/frenchie" {
		t.Fatalf("unexpected route %+v err=%v", r, err)
	}
	for _, name := range []string{"???", "Chez Personne"} {
		if _, err := q.Route(name); !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("%q: expected ErrNotFound, got %v", name, err)
		}
	}
}

func TestAutocompleteAndCategories(t *testing.T) {
	q := newQueries(&fakeRepo{}, &fakeCache{})
	if got := q.Autocomplete("bib"); len(got) != 1 || got[0] != "Bib Gourmand" {
		t.Fatalf("unexpected suggestions: %v", got)
	}
	c := q.Categories()
	if len(c.Starred) != 5 || len(c.BibGourmand) != 2 {
		t.Fatalf("unexpected categories: %+v", c)
	}
	if len(q.Tags()) == 0 {
		t.Fatalf("expected tags")
	}
}

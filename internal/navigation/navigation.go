// Package navigation turns a restaurant's display name into a route.
//
// Some restaurants have a dedicated page reachable only by their exact
// name; every other restaurant goes to the generic slug detail page.
// Chain keeps that precedence.
package navigation

import (
	"guide_paris/internal/catalog"
	"guide_paris/internal/domain"
)

const (
	KindOverride = "override"
	KindDetail   = "detail"

	DetailPrefix = "/restaurants/"
)

type Resolver interface {
	Resolve(name string) (domain.Route, bool)
}

// Overrides maps exact display names to dedicated pages. Unknown names do
// not resolve.
type Overrides map[string]string

// DefaultOverrides are the hand-built pages.
func DefaultOverrides() Overrides {
	return Overrides{
		"L'Arpège":  "/arpege",
		"Guy Savoy": "/guy-savoy",
		"Septime":   "/septime",
		"Allard":    "/allard",
	}
}

func (o Overrides) Resolve(name string) (domain.Route, bool) {
	p, ok := o[name]
	if !ok {
		return domain.Route{}, false
	}
	return domain.Route{Path: p, Kind: KindOverride}, true
}

// RouteFor is the historical lookup: overrides only, unknown names are a no-op.
func (o Overrides) RouteFor(name string) (string, bool) {
	r, ok := o.Resolve(name)
	return r.Path, ok
}

// SlugRoutes sends catalog restaurants to the generic detail page. Names
// whose slug has no catalog entry do not resolve.
type SlugRoutes struct{ Catalog *catalog.Catalog }

func (s SlugRoutes) Resolve(name string) (domain.Route, bool) {
	slug := catalog.Slug(name)
	if slug == "" || s.Catalog == nil {
		return domain.Route{}, false
	}
	if _, ok := s.Catalog.BySlug(slug); !ok {
		return domain.Route{}, false
	}
	return domain.Route{Path: DetailPrefix + slug, Kind: KindDetail}, true
}

type chain []Resolver

// Chain asks each resolver in turn; the first answer wins.
func Chain(rs ...Resolver) Resolver { return chain(rs) }

func (c chain) Resolve(name string) (domain.Route, bool) {
	for _, r := range c {
		if route, ok := r.Resolve(name); ok {
			return route, true
		}
	}
	return domain.Route{}, false
}

// Default is overrides first, then the detail page of a restaurant in c.
func Default(c *catalog.Catalog) Resolver {
	return Chain(DefaultOverrides(), SlugRoutes{Catalog: c})
}

// Package catalog holds the immutable restaurant directory and the pure
// lookups over it.
package catalog

import (
	"fmt"
	"strings"

	"guide_paris/internal/domain"
)

type Catalog struct {
	items  []domain.Restaurant
	bySlug map[string]int
	byID   map[string]int
}

// New validates rs and decodes every distinction label once. The input is
// copied; later changes to rs do not reach the catalog.
func New(rs []domain.Restaurant) (*Catalog, error) {
	c := &Catalog{
		items:  make([]domain.Restaurant, 0, len(rs)),
		bySlug: make(map[string]int, len(rs)),
		byID:   make(map[string]int, len(rs)),
	}
	names := make(map[string]struct{}, len(rs))
	for i, r := range rs {
		id, name := strings.TrimSpace(r.ID), strings.TrimSpace(r.Name)
		if id == "" || name == "" {
			return nil, fmt.Errorf("%w: entry %d has an empty id or name", domain.ErrInvalidCatalog, i)
		}
		if _, dup := c.byID[r.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %q", domain.ErrInvalidCatalog, r.ID)
		}
		if _, dup := names[r.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate name %q", domain.ErrInvalidCatalog, r.Name)
		}
		names[r.Name] = struct{}{}

		r = r.Clone()
		r.Tags = ParseDistinctions(r.Distinctions)

		c.byID[r.ID] = len(c.items)
		// slugs may collide; the first entry keeps the slot
		if _, taken := c.bySlug[Slug(r.Name)]; !taken {
			c.bySlug[Slug(r.Name)] = len(c.items)
		}
		c.items = append(c.items, r)
	}
	return c, nil
}

func MustNew(rs []domain.Restaurant) *Catalog {
	c, err := New(rs)
	if err != nil {
		panic(err)
	}
	return c
}

// Default is the Paris seed catalog.
func Default() *Catalog { return MustNew(Paris()) }

// All returns every restaurant in insertion order.
func (c *Catalog) All() []domain.Restaurant {
	out := make([]domain.Restaurant, len(c.items))
	for i, r := range c.items {
		out[i] = r.Clone()
	}
	return out
}

func (c *Catalog) Len() int { return len(c.items) }

// BySlug returns the first restaurant whose name slugifies to slug.
func (c *Catalog) BySlug(slug string) (domain.Restaurant, bool) {
	i, ok := c.bySlug[slug]
	if !ok {
		return domain.Restaurant{}, false
	}
	return c.items[i].Clone(), true
}

func (c *Catalog) ByID(id string) (domain.Restaurant, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Restaurant{}, false
	}
	return c.items[i].Clone(), true
}

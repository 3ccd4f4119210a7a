// Package search filters the catalog by free text and distinction tags.
// Everything here is a linear scan over an in-memory slice.
package search

import (
	"strings"

	"guide_paris/internal/catalog"
	"guide_paris/internal/domain"
)

const MaxSuggestions = 5

type Engine struct{ cat *catalog.Catalog }

func New(c *catalog.Catalog) *Engine { return &Engine{cat: c} }

// Criteria is what a list or map view sends: a restaurant is kept when it
// matches Query and at least one of Tags.
type Criteria struct {
	Query string
	Tags  []string
}

func (e *Engine) Search(q string) []domain.Restaurant { return Search(e.cat.All(), q) }

func (e *Engine) Filter(c Criteria) []domain.Restaurant {
	return FilterByDistinctionTags(Search(e.cat.All(), c.Query), c.Tags)
}

// Search keeps, in order, the restaurants whose name, cuisine, address or any
// distinction contains q, ignoring case. A blank q keeps everything.
func Search(rs []domain.Restaurant, q string) []domain.Restaurant {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return rs
	}
	out := make([]domain.Restaurant, 0, len(rs))
	for _, r := range rs {
		if matches(r, q) {
			out = append(out, r)
		}
	}
	return out
}

func matches(r domain.Restaurant, q string) bool {
	if contains(r.Name, q) || contains(r.Cuisine, q) || contains(r.Address, q) {
		return true
	}
	for _, d := range r.Distinctions {
		if contains(d, q) {
			return true
		}
	}
	return false
}

// contains expects needle to be lowercased already.
func contains(s, needle string) bool { return strings.Contains(strings.ToLower(s), needle) }

// Autocomplete suggests up to MaxSuggestions distinct strings: matching
// names first, then cuisines, then distinction labels.
func (e *Engine) Autocomplete(q string) []string { return Autocomplete(e.cat.All(), q) }

func Autocomplete(rs []domain.Restaurant, q string) []string {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return []string{}
	}
	out := make([]string, 0, MaxSuggestions)
	seen := make(map[string]struct{}, MaxSuggestions)
	add := func(s string) bool {
		if !contains(s, q) {
			return false
		}
		if _, dup := seen[s]; !dup {
			seen[s] = struct{}{}
			out = append(out, s)
		}
		return len(out) == MaxSuggestions
	}

	for _, r := range rs {
		if add(r.Name) {
			return out
		}
	}
	for _, r := range rs {
		if add(r.Cuisine) {
			return out
		}
	}
	for _, r := range rs {
		for _, d := range r.Distinctions {
			if add(d) {
				return out
			}
		}
	}
	return out
}

// FilterByDistinctionTags keeps restaurants holding at least one selected
// tag. A tag selects a distinction by its key ("michelin-2") or its exact
// label. No tags means no filtering.
func FilterByDistinctionTags(rs []domain.Restaurant, tags []string) []domain.Restaurant {
	if len(tags) == 0 {
		return rs
	}
	selected := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		selected[t] = struct{}{}
	}
	out := make([]domain.Restaurant, 0, len(rs))
	for _, r := range rs {
		if hasAnyTag(r, selected) {
			out = append(out, r)
		}
	}
	return out
}

func hasAnyTag(r domain.Restaurant, selected map[string]struct{}) bool {
	ds := r.Tags
	if ds == nil {
		ds = catalog.ParseDistinctions(r.Distinctions)
	}
	for _, d := range ds {
		if _, ok := selected[d.Key()]; ok {
			return true
		}
		if _, ok := selected[d.Label]; ok {
			return true
		}
	}
	return false
}

// Tags lists the decoded distinction tags present in the catalog, in order
// of first appearance. Unrecognised labels are left out.
func (e *Engine) Tags() []domain.TagCount {
	var out []domain.TagCount
	idx := map[string]int{}
	for _, r := range e.cat.All() {
		for _, d := range r.Tags {
			if d.Kind == domain.OtherDistinction {
				continue
			}
			k := d.Key()
			if i, ok := idx[k]; ok {
				out[i].Count++
				continue
			}
			idx[k] = len(out)
			out = append(out, domain.TagCount{Tag: k, Label: d.Label, Count: 1})
		}
	}
	return out
}

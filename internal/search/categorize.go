package search

import (
	"strings"

	"guide_paris/internal/domain"
)

const (
	BucketStarred     = "Restaurants étoilés"
	BucketBibGourmand = "Bib Gourmand"
	BucketFrench      = "Cuisine française"
	BucketBistro      = "Bistrots"
)

// Categories holds four independent buckets; a restaurant can sit in any
// number of them.
type Categories struct {
	Starred     []domain.Restaurant `json:"starred"`
	BibGourmand []domain.Restaurant `json:"bibGourmand"`
	French      []domain.Restaurant `json:"french"`
	Bistro      []domain.Restaurant `json:"bistro"`
}

// Buckets returns the buckets keyed by display label.
func (c Categories) Buckets() map[string][]domain.Restaurant {
	return map[string][]domain.Restaurant{
		BucketStarred:     c.Starred,
		BucketBibGourmand: c.BibGourmand,
		BucketFrench:      c.French,
		BucketBistro:      c.Bistro,
	}
}

func (e *Engine) Categorize() Categories { return Categorize(e.cat.All()) }

func Categorize(rs []domain.Restaurant) Categories {
	c := Categories{
		Starred:     []domain.Restaurant{},
		BibGourmand: []domain.Restaurant{},
		French:      []domain.Restaurant{},
		Bistro:      []domain.Restaurant{},
	}
	for _, r := range rs {
		if anyContains(r.Distinctions, "étoile") {
			c.Starred = append(c.Starred, r)
		}
		if anyContains(r.Distinctions, "Bib Gourmand") {
			c.BibGourmand = append(c.BibGourmand, r)
		}
		cuisine := strings.ToLower(r.Cuisine)
		if strings.Contains(cuisine, "française") {
			c.French = append(c.French, r)
		}
		if strings.Contains(cuisine, "bistrot") {
			c.Bistro = append(c.Bistro, r)
		}
	}
	return c
}

func anyContains(labels []string, needle string) bool {
	for _, l := range labels {
		if strings.Contains(l, needle) {
			return true
		}
	}
	return false
}

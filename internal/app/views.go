package app

import (
	"net/url"

	"guide_paris/internal/catalog"
	"guide_paris/internal/domain"
	"guide_paris/internal/navigation"
)

func restaurantKey(slug string) string { return "restaurant:" + slug }

const enrichmentsKey = "enrichments"

// PhotoPathPrefix is where the API serves photos by reference.
const PhotoPathPrefix = "/v1/photos/"

// PhotoPath is the API path serving the image for a stored reference.
func PhotoPath(ref string) string { return PhotoPathPrefix + url.PathEscape(ref) }

// merge fills coordinates and photos the catalog lacks from e. Stored
// references become API photo paths.
func merge(r domain.Restaurant, e *domain.Enrichment) domain.Restaurant {
	if e == nil {
		return r
	}
	if r.Coordinates == nil && e.Coordinates != nil {
		c := *e.Coordinates
		r.Coordinates = &c
	}
	if len(r.Photos) == 0 && len(e.PhotoRefs) > 0 {
		r.Photos = make([]string, 0, len(e.PhotoRefs))
		for _, ref := range e.PhotoRefs {
			r.Photos = append(r.Photos, PhotoPath(ref))
		}
	}
	return r
}

func toView(r domain.Restaurant, res navigation.Resolver) domain.RestaurantView {
	v := domain.RestaurantView{
		ID:           r.ID,
		Slug:         catalog.Slug(r.Name),
		Name:         r.Name,
		Cuisine:      r.Cuisine,
		Address:      r.Address,
		Phone:        r.Phone,
		PriceRange:   r.PriceRange,
		Distinctions: make([]domain.DistinctionView, 0, len(r.Distinctions)),
		Coordinates:  r.Coordinates,
		Photos:       r.Photos,
		Description:  r.Description,
	}
	tags := r.Tags
	if len(tags) != len(r.Distinctions) {
		tags = catalog.ParseDistinctions(r.Distinctions)
	}
	for _, d := range tags {
		v.Distinctions = append(v.Distinctions, domain.DistinctionView{
			Label: d.Label,
			Text:  catalog.DistinctionText(d.Label),
			Icon:  catalog.Icon(d),
			Tag:   d.Key(),
		})
	}
	if route, ok := res.Resolve(r.Name); ok {
		v.Route = &route
	}
	return v
}

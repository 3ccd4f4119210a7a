package gmaps

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"guide_paris/internal/domain"
)

// Geocode resolves address to coordinates. ZERO_RESULTS and 404 come back
// as domain.ErrUnavailable.
func (c *Client) Geocode(ctx context.Context, address string) (domain.Coordinates, error) {
	var out geocodeResponse
	u := c.endpoint("/geocode/json", url.Values{"address": {address}, "region": {"fr"}})
	if err := c.get(ctx, "geocode", u, &out); err != nil {
		return domain.Coordinates{}, unavailable(err)
	}
	if err := out.err(); err != nil {
		return domain.Coordinates{}, unavailable(err)
	}
	if len(out.Results) == 0 {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: %w", address, domain.ErrUnavailable)
	}
	loc := out.Results[0].Geometry.Location
	return domain.Coordinates{Lat: loc.Lat, Lng: loc.Lng}, nil
}

func unavailable(err error) error {
	if errors.Is(err, ErrNotFound) {
		return fmt.Errorf("%w: %v", domain.ErrUnavailable, err)
	}
	return err
}

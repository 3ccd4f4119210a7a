package gmaps

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"guide_paris/internal/adapters/observability"
	"guide_paris/internal/domain"
)

// Photos finds the place matching query and returns up to limit photo
// references. OpenPhoto turns a reference into image bytes.
func (c *Client) Photos(ctx context.Context, query string, limit int) ([]string, error) {
	var found findPlaceResponse
	u := c.endpoint("/place/findplacefromtext/json", url.Values{
		"input":     {query},
		"inputtype": {"textquery"},
		"fields":    {"place_id,photos"},
	})
	if err := c.get(ctx, "findplace", u, &found); err != nil {
		return nil, unavailable(err)
	}
	if err := found.err(); err != nil {
		return nil, unavailable(err)
	}
	if len(found.Candidates) == 0 {
		return nil, fmt.Errorf("photos %q: %w", query, domain.ErrUnavailable)
	}
	cand := found.Candidates[0]

	// findplace returns at most one photo; details has the full list.
	photos := cand.Photos
	var details placeDetailsResponse
	u = c.endpoint("/place/details/json", url.Values{"place_id": {cand.PlaceID}, "fields": {"photos"}})
	if err := c.get(ctx, "details", u, &details); err == nil && details.err() == nil && len(details.Result.Photos) > 0 {
		photos = details.Result.Photos
	}
	if len(photos) == 0 {
		return nil, fmt.Errorf("photos %q: %w", query, domain.ErrUnavailable)
	}

	if limit > 0 && len(photos) > limit {
		photos = photos[:limit]
	}
	out := make([]string, 0, len(photos))
	for _, p := range photos {
		if p.PhotoReference != "" {
			out = append(out, p.PhotoReference)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("photos %q: %w", query, domain.ErrUnavailable)
	}
	return out, nil
}

// OpenPhoto fetches the image for a photo reference. The API key stays in
// the outbound request and never reaches the caller.
func (c *Client) OpenPhoto(ctx context.Context, ref string) (io.ReadCloser, string, error) {
	if err := c.rl.Wait(ctx); err != nil {
		return nil, "", err
	}
	u := c.endpoint("/place/photo", url.Values{
		"maxwidth":        {strconv.Itoa(photoMaxWidth)},
		"photo_reference": {ref},
	})
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, "", scrub(err)
	}
	req.Header.Set("User-Agent", userAgent)

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal("gmaps", "photo", 0, time.Since(start))
		return nil, "", scrub(err)
	}
	observability.ObserveExternal("gmaps", "photo", resp.StatusCode, time.Since(start))

	switch resp.StatusCode {
	case http.StatusOK:
		return resp.Body, resp.Header.Get("Content-Type"), nil
	case http.StatusBadRequest, http.StatusNotFound:
		resp.Body.Close()
		return nil, "", fmt.Errorf("photo %q: %w", ref, domain.ErrUnavailable)
	default:
		resp.Body.Close()
		return nil, "", fmt.Errorf("photo %q: bad status %d", ref, resp.StatusCode)
	}
}

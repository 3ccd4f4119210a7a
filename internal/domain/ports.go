package domain

import (
	"context"
	"io"
	"time"
)

// Geocoder resolves a free-text postal address. ErrUnavailable means the
// provider has no answer for it.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (Coordinates, error)
}

// PhotoProvider returns up to limit opaque photo references for a place
// query. References carry no credentials and are safe to store.
// ErrUnavailable means the provider has no photos for it.
type PhotoProvider interface {
	Photos(ctx context.Context, query string, limit int) ([]string, error)
}

// PhotoSource streams the image behind a PhotoProvider reference. The
// caller closes the body. ErrUnavailable means the reference is unknown.
type PhotoSource interface {
	OpenPhoto(ctx context.Context, ref string) (body io.ReadCloser, contentType string, err error)
}

type EnrichmentRepository interface {
	// Write paths
	UpsertEnrichment(ctx context.Context, e Enrichment) error
	LogMiss(ctx context.Context, restaurantID, kind, reason string) error

	// Read paths
	GetEnrichment(ctx context.Context, restaurantID string) (Enrichment, error)
	ListEnrichments(ctx context.Context) (map[string]Enrichment, error)
}

// AdminStore holds the admin panel's list, read and written wholesale.
// LoadAdminList returns ErrNotFound when nothing was saved yet.
type AdminStore interface {
	LoadAdminList(ctx context.Context) ([]Restaurant, error)
	SaveAdminList(ctx context.Context, rs []Restaurant) error
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// Enrichment is what the external services told us about a restaurant.
type Enrichment struct {
	RestaurantID string       `json:"restaurantId"`
	Coordinates  *Coordinates `json:"coordinates,omitempty"`
	PhotoRefs    []string     `json:"photoRefs,omitempty"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// Read models

type Route struct {
	Path string `json:"path"`
	Kind string `json:"kind"` // override|detail
}

type DistinctionView struct {
	Label string `json:"label"`
	Text  string `json:"text"`
	Icon  string `json:"icon"`
	Tag   string `json:"tag"`
}

type RestaurantView struct {
	ID           string            `json:"id"`
	Slug         string            `json:"slug"`
	Name         string            `json:"name"`
	Cuisine      string            `json:"cuisine"`
	Address      string            `json:"address"`
	Phone        string            `json:"phone,omitempty"`
	PriceRange   PriceRange        `json:"priceRange"`
	Distinctions []DistinctionView `json:"distinctions"`
	Coordinates  *Coordinates      `json:"coordinates,omitempty"`
	Photos       []string          `json:"photos,omitempty"`
	Description  string            `json:"description,omitempty"`
	Route        *Route            `json:"route,omitempty"`
}

type Marker struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Coordinates Coordinates `json:"coordinates"`
	Route       *Route      `json:"route,omitempty"`
}

type TagCount struct {
	Tag   string `json:"tag"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

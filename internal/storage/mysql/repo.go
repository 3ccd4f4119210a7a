package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"guide_paris/internal/domain"
)

func valF64(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}

func valJSON(b []byte) any {
	if len(b) == 0 {
		return nil
	}
	return string(b)
}

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func (r *Repo) UpsertEnrichment(ctx context.Context, e domain.Enrichment) error {
	var lat, lng *float64
	if e.Coordinates != nil {
		lat, lng = &e.Coordinates.Lat, &e.Coordinates.Lng
	}
	var refs []byte
	if len(e.PhotoRefs) > 0 {
		b, err := json.Marshal(e.PhotoRefs)
		if err != nil {
			return fmt.Errorf("marshal photo refs for %s: %w", e.RestaurantID, err)
		}
		refs = b
	}
	_, err := r.db.ExecContext(ctx, upsertEnrichmentSQL,
		e.RestaurantID,
		valF64(lat),
		valF64(lng),
		valJSON(refs),
	)
	return err
}

// reasonMaxChars is the width of enrich_misses.reason in characters.
const reasonMaxChars = 255

func (r *Repo) LogMiss(ctx context.Context, restaurantID, kind, reason string) error {
	_, err := r.db.ExecContext(ctx, insertMissSQL, restaurantID, kind, truncateChars(reason, reasonMaxChars))
	return err
}

// truncateChars keeps at most n characters of s, never splitting a UTF-8
// sequence. Invalid bytes are replaced first.
func truncateChars(s string, n int) string {
	s = strings.ToValidUTF8(s, "\uFFFD")
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

type scanner interface{ Scan(dest ...any) error }

func scanEnrichment(s scanner) (domain.Enrichment, error) {
	var e domain.Enrichment
	var lat, lng sql.NullFloat64
	var refs []byte
	var updated time.Time
	if err := s.Scan(&e.RestaurantID, &lat, &lng, &refs, &updated); err != nil {
		return domain.Enrichment{}, err
	}
	if lat.Valid && lng.Valid {
		e.Coordinates = &domain.Coordinates{Lat: lat.Float64, Lng: lng.Float64}
	}
	if len(refs) > 0 {
		if err := json.Unmarshal(refs, &e.PhotoRefs); err != nil {
			return domain.Enrichment{}, fmt.Errorf("decode photo refs for %s: %w", e.RestaurantID, err)
		}
	}
	e.UpdatedAt = updated
	return e, nil
}

func (r *Repo) GetEnrichment(ctx context.Context, restaurantID string) (domain.Enrichment, error) {
	e, err := scanEnrichment(r.db.QueryRowContext(ctx, getEnrichmentSQL, restaurantID))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Enrichment{}, domain.ErrNotFound
	}
	return e, err
}

func (r *Repo) ListEnrichments(ctx context.Context) (map[string]domain.Enrichment, error) {
	rows, err := r.db.QueryContext(ctx, listEnrichmentsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]domain.Enrichment)
	for rows.Next() {
		e, err := scanEnrichment(rows)
		if err != nil {
			return nil, err
		}
		out[e.RestaurantID] = e
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repo) SaveAdminList(ctx context.Context, rs []domain.Restaurant) error {
	if rs == nil {
		rs = []domain.Restaurant{}
	}
	b, err := json.Marshal(rs)
	if err != nil {
		return fmt.Errorf("marshal admin list: %w", err)
	}
	_, err = r.db.ExecContext(ctx, upsertAdminSnapshotSQL, string(b))
	return err
}

func (r *Repo) LoadAdminList(ctx context.Context) ([]domain.Restaurant, error) {
	var payload []byte
	err := r.db.QueryRowContext(ctx, getAdminSnapshotSQL).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var out []domain.Restaurant
	if err := json.Unmarshal(payload, &out); err != nil {
		return nil, fmt.Errorf("decode admin list: %w", err)
	}
	return out, nil
}

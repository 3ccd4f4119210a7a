package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"guide_paris/internal/catalog"
	"guide_paris/internal/domain"
)

// AdminService manages the admin panel's list. That list is separate from
// the catalog: it starts as a copy of it and is never merged back.
type AdminService struct {
	store    domain.AdminStore
	cat      *catalog.Catalog
	validate *validator.Validate
	newID    func() string
}

func NewAdminService(store domain.AdminStore, c *catalog.Catalog) *AdminService {
	return &AdminService{
		store:    store,
		cat:      c,
		validate: validator.New(),
		newID:    uuid.NewString,
	}
}

// List returns the saved admin list, or the catalog when nothing was saved.
func (s *AdminService) List(ctx context.Context) ([]domain.Restaurant, error) {
	rs, err := s.store.LoadAdminList(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		return stripTags(s.cat.All()), nil
	}
	if err != nil {
		return nil, err
	}
	return rs, nil
}

// Replace validates rs and stores it wholesale. Records without an id get
// a fresh UUID.
func (s *AdminService) Replace(ctx context.Context, rs []domain.Restaurant) ([]domain.Restaurant, error) {
	out := make([]domain.Restaurant, 0, len(rs))
	ids := make(map[string]struct{}, len(rs))
	for i, r := range rs {
		r.ID = strings.TrimSpace(r.ID)
		r.Name = strings.TrimSpace(r.Name)
		if err := s.validate.Struct(r); err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", domain.ErrInvalidRecord, i, err)
		}
		if r.ID == "" {
			r.ID = s.newID()
		}
		if _, dup := ids[r.ID]; dup {
			return nil, fmt.Errorf("%w: record %d: duplicate id %q", domain.ErrInvalidRecord, i, r.ID)
		}
		ids[r.ID] = struct{}{}
		r.Tags = nil
		out = append(out, r)
	}
	if err := s.store.SaveAdminList(ctx, out); err != nil {
		return nil, err
	}
	return out, nil
}

func stripTags(rs []domain.Restaurant) []domain.Restaurant {
	for i := range rs {
		rs[i].Tags = nil
	}
	return rs
}

package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"guide_paris/internal/app"
	"guide_paris/internal/domain"
	"guide_paris/internal/search"
)

var validate = validator.New()

// Handlers binds the services to routes. Admin and Auth are optional; the
// admin routes are only mounted when both are set. Without Photos the
// photo route answers 503.
type Handlers struct {
	Q      *app.QueryService
	Admin  *app.AdminService
	Auth   *Auth
	Photos domain.PhotoSource
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	s.mux.Route("/v1", func(r chi.Router) {
		r.Get("/restaurants", h.listRestaurants)
		r.Get("/restaurants/{slug}", h.getRestaurant)
		r.Get("/autocomplete", h.autocomplete)
		r.Get("/categories", h.categories)
		r.Get("/tags", h.tags)
		r.Get("/map", h.markers)
		r.Get("/routes", h.route)
		r.Get("/photos/{ref}", h.photo)

		if h.Admin == nil || h.Auth == nil {
			return
		}
		r.Post("/admin/token", h.Auth.issueToken)
		r.Group(func(r chi.Router) {
			r.Use(h.Auth.Require)
			r.Get("/admin/restaurants", h.listAdmin)
			r.Put("/admin/restaurants", h.replaceAdmin)
		})
	})
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

// writeCached writes v with a weak ETag, answering 304 when the client
// already holds the same representation.
func writeCached(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if body == nil {
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
		return
	}
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Str("path", r.URL.Path).Msg("failed to write body")
	}
}

type listQuery struct {
	Q    string   `validate:"max=200"`
	Tags []string `validate:"max=20,dive,required,max=64"`
}

// criteria reads ?q= and ?tag=; tags may be repeated or comma separated.
func criteria(r *http.Request) (search.Criteria, error) {
	qs := r.URL.Query()
	lq := listQuery{Q: qs.Get("q")}
	for _, raw := range qs["tag"] {
		for _, t := range strings.Split(raw, ",") {
			if t = strings.TrimSpace(t); t != "" {
				lq.Tags = append(lq.Tags, t)
			}
		}
	}
	if err := validate.Struct(lq); err != nil {
		return search.Criteria{}, err
	}
	return search.Criteria{Query: lq.Q, Tags: lq.Tags}, nil
}

func (h *Handlers) listRestaurants(w http.ResponseWriter, r *http.Request) {
	c, err := criteria(r)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid query", err.Error())
		return
	}
	writeCached(w, r, h.Q.List(r.Context(), c))
}

func (h *Handlers) getRestaurant(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	resp, err := h.Q.GetRestaurant(r.Context(), slug)
	if errors.Is(err, domain.ErrNotFound) {
		writeProblem(w, http.StatusNotFound, "Not Found", "restaurant not found")
		return
	}
	if err != nil {
		log.Error().Err(err).Str("slug", slug).Msg("get restaurant failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
		return
	}
	writeCached(w, r, resp)
}

func (h *Handlers) autocomplete(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if err := validate.Var(q, "max=200"); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid query", "q must be at most 200 characters")
		return
	}
	writeCached(w, r, h.Q.Autocomplete(q))
}

type categoriesResponse struct {
	Name        string                  `json:"name"`
	Restaurants []domain.RestaurantView `json:"restaurants"`
}

func (h *Handlers) categories(w http.ResponseWriter, r *http.Request) {
	c := h.Q.Categories()
	buckets := []struct {
		name string
		rs   []domain.Restaurant
	}{
		{search.BucketStarred, c.Starred},
		{search.BucketBibGourmand, c.BibGourmand},
		{search.BucketFrench, c.French},
		{search.BucketBistro, c.Bistro},
	}
	out := make([]categoriesResponse, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, categoriesResponse{Name: b.name, Restaurants: h.Q.Views(r.Context(), b.rs)})
	}
	writeCached(w, r, out)
}

func (h *Handlers) tags(w http.ResponseWriter, r *http.Request) {
	writeCached(w, r, h.Q.Tags())
}

func (h *Handlers) markers(w http.ResponseWriter, r *http.Request) {
	c, err := criteria(r)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid query", err.Error())
		return
	}
	writeCached(w, r, h.Q.Markers(r.Context(), c))
}

func (h *Handlers) route(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		writeProblem(w, http.StatusBadRequest, "Invalid query", "name is required")
		return
	}
	rt, err := h.Q.Route(name)
	if err != nil {
		writeProblem(w, http.StatusNotFound, "Not Found", "no route for this name")
		return
	}
	writeJSON(w, http.StatusOK, rt)
}

func (h *Handlers) photo(w http.ResponseWriter, r *http.Request) {
	if h.Photos == nil {
		writeProblem(w, http.StatusServiceUnavailable, "Service Unavailable", "photos are not configured")
		return
	}
	ref := chi.URLParam(r, "ref")
	if err := validate.Var(ref, "required,max=1024,printascii"); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid reference", "malformed photo reference")
		return
	}
	body, ct, err := h.Photos.OpenPhoto(r.Context(), ref)
	if errors.Is(err, domain.ErrUnavailable) {
		writeProblem(w, http.StatusNotFound, "Not Found", "photo not found")
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("open photo failed")
		writeProblem(w, http.StatusBadGateway, "Bad Gateway", "photo provider failed")
		return
	}
	defer body.Close()

	if ct == "" {
		ct = "application/octet-stream"
	}
	w.Header().Set("Content-Type", ct)
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, body); err != nil {
		log.Warn().Err(err).Msg("copy photo body failed")
	}
}

func (h *Handlers) listAdmin(w http.ResponseWriter, r *http.Request) {
	rs, err := h.Admin.List(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("load admin list failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
		return
	}
	writeJSON(w, http.StatusOK, rs)
}

func (h *Handlers) replaceAdmin(w http.ResponseWriter, r *http.Request) {
	var rs []domain.Restaurant
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&rs); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid body", "expected a JSON array of restaurants")
		return
	}
	out, err := h.Admin.Replace(r.Context(), rs)
	if errors.Is(err, domain.ErrInvalidRecord) {
		writeProblem(w, http.StatusUnprocessableEntity, "Invalid record", err.Error())
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("save admin list failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
		return
	}
	log.Info().Int("count", len(out)).Interface("by", r.Context().Value(subjectKey)).Msg("admin list replaced")
	writeJSON(w, http.StatusOK, out)
}

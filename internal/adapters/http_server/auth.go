package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

var ErrBadCredentials = errors.New("invalid username or password")

type ctxKey string

const subjectKey ctxKey = "admin"

// Auth issues and checks the HS256 tokens guarding the admin routes. There
// is a single admin account whose password is stored as a bcrypt hash.
type Auth struct {
	user     string
	passHash []byte
	secret   []byte
	ttl      time.Duration
	now      func() time.Time
}

func NewAuth(user, passHash, secret string, ttl time.Duration) *Auth {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Auth{
		user:     user,
		passHash: []byte(passHash),
		secret:   []byte(secret),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Issue returns a signed token for valid credentials.
func (a *Auth) Issue(user, pass string) (string, time.Time, error) {
	if user != a.user || bcrypt.CompareHashAndPassword(a.passHash, []byte(pass)) != nil {
		return "", time.Time{}, ErrBadCredentials
	}
	now := a.now()
	exp := now.Add(a.ttl)
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
		Id:        uuid.NewString(),
		Subject:   user,
		IssuedAt:  now.Unix(),
		ExpiresAt: exp.Unix(),
	})
	s, err := tok.SignedString(a.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return s, exp, nil
}

func (a *Auth) parse(raw string) (*jwt.StandardClaims, error) {
	claims := &jwt.StandardClaims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !tok.Valid || claims.Subject != a.user {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// Require rejects requests without a valid Bearer token.
func (a *Auth) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := r.Header.Get("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			w.Header().Set("WWW-Authenticate", `Bearer realm="admin"`)
			writeProblem(w, http.StatusUnauthorized, "Unauthorized", "bearer token required")
			return
		}
		claims, err := a.parse(strings.TrimPrefix(h, "Bearer "))
		if err != nil {
			log.Debug().Err(err).Msg("token rejected")
			w.Header().Set("WWW-Authenticate", `Bearer realm="admin", error="invalid_token"`)
			writeProblem(w, http.StatusUnauthorized, "Unauthorized", "invalid or expired token")
			return
		}
		ctx := context.WithValue(r.Context(), subjectKey, claims.Subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

type credentials struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=200"`
}

type tokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func (a *Auth) issueToken(w http.ResponseWriter, r *http.Request) {
	var c credentials
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 4<<10)).Decode(&c); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid body", "expected {\"username\", \"password\"}")
		return
	}
	if err := validate.Struct(c); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid body", err.Error())
		return
	}
	tok, exp, err := a.Issue(c.Username, c.Password)
	if errors.Is(err, ErrBadCredentials) {
		writeProblem(w, http.StatusUnauthorized, "Unauthorized", err.Error())
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("issue token failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
		return
	}
	writeJSON(w, http.StatusOK, tokenResponse{Token: tok, ExpiresAt: exp.UTC()})
}

package httpserver

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
)

func newTestAuth(t *testing.T) *Auth {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return NewAuth("admin", string(hash), "secret", time.Minute)
}

func TestIssue_RejectsBadCredentials(t *testing.T) {
	a := newTestAuth(t)
	if _, _, err := a.Issue("admin", "wrong"); err != ErrBadCredentials {
		t.Fatalf("expected ErrBadCredentials, got %v", err)
	}
	if _, _, err := a.Issue("root", "pw"); err != ErrBadCredentials {
		t.Fatalf("expected ErrBadCredentials, got %v", err)
	}
}

func TestRequire(t *testing.T) {
	a := newTestAuth(t)
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Context().Value(subjectKey) != "admin" {
			t.Errorf("subject not set on context")
		}
		w.WriteHeader(http.StatusNoContent)
	})
	h := a.Require(ok)

	valid, _, err := a.Issue("admin", "pw")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	// token signed with another secret
	other := NewAuth("admin", string(a.passHash), "other", time.Minute)
	forged, _, err := other.Issue("admin", "pw")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	// token already expired
	a.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, _, err := a.Issue("admin", "pw")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	a.now = time.Now

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"garbage", "Bearer abc", http.StatusUnauthorized},
		{"wrong secret", "Bearer " + forged, http.StatusUnauthorized},
		{"expired", "Bearer " + expired, http.StatusUnauthorized},
		{"valid", "Bearer " + valid, http.StatusNoContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/admin/restaurants", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			if rec.Code != tt.want {
				t.Fatalf("got %d want %d", rec.Code, tt.want)
			}
		})
	}
}

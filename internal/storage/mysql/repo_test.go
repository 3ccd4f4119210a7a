package mysql

import (
	"database/sql"
	"strings"
	"testing"
	"time"
	"unicode/utf8"
)

func TestTruncateChars(t *testing.T) {
	long := strings.Repeat("é", 300)
	got := truncateChars(long, reasonMaxChars)
	if !utf8.ValidString(got) {
		t.Fatalf("truncated reason is not valid UTF-8")
	}
	if n := utf8.RuneCountInString(got); n != reasonMaxChars {
		t.Fatalf("expected %d chars, got %d", reasonMaxChars, n)
	}

	if got := truncateChars("unavailable", reasonMaxChars); got != "unavailable" {
		t.Fatalf("short reason changed: %q", got)
	}
	if got := truncateChars("ab\xffc", 10); !utf8.ValidString(got) || got != "ab\uFFFDc" {
		t.Fatalf("invalid bytes not replaced: %q", got)
	}
}

// rowStub fills Scan destinations in enrichment column order.
type rowStub struct {
	id   string
	refs []byte
}

func (r rowStub) Scan(dest ...any) error {
	*dest[0].(*string) = r.id
	*dest[1].(*sql.NullFloat64) = sql.NullFloat64{Float64: 48.85, Valid: true}
	*dest[2].(*sql.NullFloat64) = sql.NullFloat64{Float64: 2.35, Valid: true}
	*dest[3].(*[]byte) = r.refs
	*dest[4].(*time.Time) = time.Unix(0, 0)
	return nil
}

func TestScanEnrichment_PhotoRefs(t *testing.T) {
	e, err := scanEnrichment(rowStub{id: "4", refs: []byte(`["r1","r2"]`)})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if e.Coordinates == nil || len(e.PhotoRefs) != 2 || e.PhotoRefs[1] != "r2" {
		t.Fatalf("unexpected enrichment: %+v", e)
	}
}

func TestScanEnrichment_CorruptRefsIsAnError(t *testing.T) {
	_, err := scanEnrichment(rowStub{id: "4", refs: []byte(`{"not":"a list"}`)})
	if err == nil {
		t.Fatalf("expected decode error")
	}
	if !strings.Contains(err.Error(), "4") {
		t.Fatalf("error should name the restaurant: %v", err)
	}
}

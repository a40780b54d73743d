package geoquery_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PetaKedai/PK-Backend/internal/db"
	"github.com/PetaKedai/PK-Backend/internal/geoquery"
)

// locate issues one GET /locate request against the handler directly. These
// tests exercise validation, which rejects requests before any database
// access.
func locate(t *testing.T, query string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/locate"+query, nil)
	rec := httptest.NewRecorder()
	geoquery.LocateHandler(rec, req)
	return rec
}

// TestLocateHandler_MissingParams verifies that lat and lng are both
// required.
func TestLocateHandler_MissingParams(t *testing.T) {
	cases := []struct {
		name  string
		query string
	}{
		{"no params", ""},
		{"lat only", "?lat=3.15"},
		{"lng only", "?lng=101.7"},
		{"blank lat", "?lat=%20&lng=101.7"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := locate(t, tc.query)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", rec.Code)
			}
		})
	}
}

// TestLocateHandler_UnparsableCoordinates verifies non-numeric coordinates
// are rejected.
func TestLocateHandler_UnparsableCoordinates(t *testing.T) {
	rec := locate(t, "?lat=three&lng=101.7")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for bad lat, got %d", rec.Code)
	}

	rec = locate(t, "?lat=3.15&lng=east")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for bad lng, got %d", rec.Code)
	}
}

// TestLocateHandler_OutOfRange verifies the coordinate bounds check.
func TestLocateHandler_OutOfRange(t *testing.T) {
	for _, query := range []string{
		"?lat=91&lng=101.7",
		"?lat=-91&lng=101.7",
		"?lat=3.15&lng=181",
		"?lat=3.15&lng=-181",
	} {
		rec := locate(t, query)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", query, rec.Code)
		}
	}
}

// TestLocateHandler_BadTypeFilter verifies an unknown entry in the types
// filter is rejected with the offending name in the message.
func TestLocateHandler_BadTypeFilter(t *testing.T) {
	rec := locate(t, "?lat=3.15&lng=101.7&types=district,postcode")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "postcode") {
		t.Errorf("expected the bad type named in the response, got %q", rec.Body.String())
	}
}

// TestLocateHandler_NoDatabase verifies valid requests fail with 503 when no
// database was connected at startup.
func TestLocateHandler_NoDatabase(t *testing.T) {
	if db.DB != nil {
		t.Skip("skipping: DATABASE_URL is configured, so the unconfigured path is unreachable")
	}

	rec := locate(t, "?lat=3.15&lng=101.7")
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", rec.Code)
	}

	rec = locate(t, "?lat=3.15&lng=101.7&types=parliament,dun")
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503 with a valid type filter, got %d", rec.Code)
	}
}

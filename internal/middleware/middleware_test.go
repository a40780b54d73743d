package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/PetaKedai/PK-Backend/internal/middleware"
	"github.com/PetaKedai/PK-Backend/internal/utils"
)

// callWithOrigin wraps a simple 200-OK inner handler in the provided middleware,
// optionally setting an Origin header on the request, and returns the recorded
// response.
func callWithOrigin(t *testing.T, mw func(http.Handler) http.Handler, method, origin string) *httptest.ResponseRecorder {
	t.Helper()

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	handler := mw(inner)
	req := httptest.NewRequest(method, "/test", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

// TestCORSMiddleware_AllowedOrigin verifies that a browser origin on the
// allow-list gets echoed back with the CORS headers.
func TestCORSMiddleware_AllowedOrigin(t *testing.T) {
	rec := callWithOrigin(t, middleware.CORSMiddleware, http.MethodGet, "https://map.petakedai.my")

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://map.petakedai.my" {
		t.Errorf("expected origin echoed back, got %q", got)
	}
	if got := rec.Header().Get("Vary"); got != "Origin" {
		t.Errorf("expected Vary: Origin, got %q", got)
	}
}

// TestCORSMiddleware_DisallowedOrigin verifies that an unknown origin gets no
// Access-Control-Allow-Origin header.
func TestCORSMiddleware_DisallowedOrigin(t *testing.T) {
	rec := callWithOrigin(t, middleware.CORSMiddleware, http.MethodGet, "https://evil.example.com")

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("expected no allow-origin header, got %q", got)
	}
}

// TestCORSMiddleware_Preflight verifies that OPTIONS requests short-circuit
// with 204 and never reach the inner handler.
func TestCORSMiddleware_Preflight(t *testing.T) {
	reached := false
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
	})

	handler := middleware.CORSMiddleware(inner)
	req := httptest.NewRequest(http.MethodOptions, "/boundaries/district", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}
	if reached {
		t.Error("expected preflight to short-circuit before the inner handler")
	}
}

// TestRequestIDMiddleware_GeneratesID verifies that a request without an
// inbound ID gets one, on the response header and in the request context.
func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	var ctxID string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok := utils.GetRequestIDFromContext(r.Context())
		if !ok {
			http.Error(w, "request ID not in context", http.StatusInternalServerError)
			return
		}
		ctxID = got
		w.WriteHeader(http.StatusOK)
	})

	handler := middleware.RequestIDMiddleware(inner)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d; body: %s", rec.Code, rec.Body.String())
	}
	headerID := rec.Header().Get("X-Request-ID")
	if headerID == "" {
		t.Fatal("expected a generated X-Request-ID header")
	}
	if ctxID != headerID {
		t.Errorf("context ID %q does not match header ID %q", ctxID, headerID)
	}
}

// TestRequestIDMiddleware_PreservesInboundID verifies that an ID supplied by
// the caller is reused instead of replaced.
func TestRequestIDMiddleware_PreservesInboundID(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	handler := middleware.RequestIDMiddleware(inner)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("X-Request-ID", "upstream-trace-42")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got != "upstream-trace-42" {
		t.Errorf("expected inbound ID preserved, got %q", got)
	}
}

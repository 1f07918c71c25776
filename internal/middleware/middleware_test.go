package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClientContext_HeaderAndDefault(t *testing.T) {
	var got string
	h := ClientContext("default")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = GetClientID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/pets", nil)
	req.Header.Set(ClientHeader, "  browser-7 ")
	h.ServeHTTP(httptest.NewRecorder(), req)
	if got != "browser-7" {
		t.Fatalf("expected browser-7, got %q", got)
	}

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/pets", nil))
	if got != "default" {
		t.Fatalf("expected default client, got %q", got)
	}
}

func TestRateLimit_BlocksAfterBurst(t *testing.T) {
	h := RateLimit(2, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/accommodations", nil)
		req.RemoteAddr = "10.0.0.1:5555"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
		t.Fatalf("expected first two requests allowed, got %v", codes)
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Fatalf("expected 429 on third request, got %d", codes[2])
	}

	// otra IP tiene su propio bucket
	req := httptest.NewRequest(http.MethodGet, "/accommodations", nil)
	req.RemoteAddr = "10.0.0.2:5555"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected other ip allowed, got %d", rec.Code)
	}
}

func TestRateLimit_DisabledWhenZero(t *testing.T) {
	h := RateLimit(0, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	for i := 0; i < 50; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		if rec.Code != http.StatusNoContent {
			t.Fatalf("request %d: expected 204, got %d", i, rec.Code)
		}
	}
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/desadigital/bumdeskas/internal/adapter/memory"
)

func TestIdempotencyMiddleware(t *testing.T) {
	newHandler := func(calls *int) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			*calls++
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"id":"01A"}`))
		})
	}

	t.Run("replays the cached response", func(t *testing.T) {
		var calls int
		mw := NewIdempotencyMiddleware(memory.NewIdempotencyStore(), time.Minute)
		h := mw.Wrap(newHandler(&calls))

		req := httptest.NewRequest(http.MethodPost, "/entries", nil)
		req.Header.Set(IdempotencyKeyHeader, "key-1")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if calls != 1 || rec.Code != http.StatusCreated {
			t.Fatalf("first request should hit the handler: calls=%d code=%d", calls, rec.Code)
		}

		req = httptest.NewRequest(http.MethodPost, "/entries", nil)
		req.Header.Set(IdempotencyKeyHeader, "key-1")
		rec = httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if calls != 1 {
			t.Fatalf("second request should be replayed, handler called %d times", calls)
		}
		if rec.Header().Get("X-Idempotency-Replay") != "true" {
			t.Fatal("expected replay header")
		}
		if rec.Body.String() != `{"id":"01A"}` {
			t.Fatalf("unexpected replayed body: %s", rec.Body.String())
		}
	})

	t.Run("different keys are independent", func(t *testing.T) {
		var calls int
		mw := NewIdempotencyMiddleware(memory.NewIdempotencyStore(), time.Minute)
		h := mw.Wrap(newHandler(&calls))

		for _, key := range []string{"key-a", "key-b"} {
			req := httptest.NewRequest(http.MethodPost, "/entries", nil)
			req.Header.Set(IdempotencyKeyHeader, key)
			h.ServeHTTP(httptest.NewRecorder(), req)
		}

		if calls != 2 {
			t.Fatalf("expected both keys to hit the handler, got %d calls", calls)
		}
	})

	t.Run("non mutating methods pass through", func(t *testing.T) {
		var calls int
		mw := NewIdempotencyMiddleware(memory.NewIdempotencyStore(), time.Minute)
		h := mw.Wrap(newHandler(&calls))

		for i := 0; i < 2; i++ {
			req := httptest.NewRequest(http.MethodGet, "/entries", nil)
			req.Header.Set(IdempotencyKeyHeader, "key-get")
			h.ServeHTTP(httptest.NewRecorder(), req)
		}

		if calls != 2 {
			t.Fatalf("GET requests must never be cached, got %d calls", calls)
		}
	})

	t.Run("missing key passes through", func(t *testing.T) {
		var calls int
		mw := NewIdempotencyMiddleware(memory.NewIdempotencyStore(), time.Minute)
		h := mw.Wrap(newHandler(&calls))

		for i := 0; i < 2; i++ {
			req := httptest.NewRequest(http.MethodPost, "/entries", nil)
			h.ServeHTTP(httptest.NewRecorder(), req)
		}

		if calls != 2 {
			t.Fatalf("requests without a key must not be cached, got %d calls", calls)
		}
	})

	t.Run("failed responses are not cached", func(t *testing.T) {
		var calls int
		mw := NewIdempotencyMiddleware(memory.NewIdempotencyStore(), time.Minute)
		h := mw.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			w.WriteHeader(http.StatusBadRequest)
		}))

		for i := 0; i < 2; i++ {
			req := httptest.NewRequest(http.MethodPost, "/entries", nil)
			req.Header.Set(IdempotencyKeyHeader, "key-err")
			h.ServeHTTP(httptest.NewRecorder(), req)
		}

		if calls != 2 {
			t.Fatalf("4xx responses must not be replayed, got %d calls", calls)
		}
	})
}

package handler_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SergeyBogomolovv/furniture-resale/internal/auth"
	"github.com/SergeyBogomolovv/furniture-resale/internal/entities"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

var (
	customer = &auth.Principal{UserID: "cust-1", Role: entities.RoleCustomer}
	dealer   = &auth.Principal{UserID: "dealer-1", Role: entities.RoleDealer}
	admin    = &auth.Principal{UserID: "admin-1", Role: entities.RoleAdmin}
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type initer interface {
	Init(r chi.Router)
}

// newRouter mounts h behind a stub that authenticates every request as p.
// A nil principal leaves requests anonymous.
func newRouter(h initer, p *auth.Principal) http.Handler {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if p != nil {
				r = r.WithContext(auth.WithPrincipal(r.Context(), *p))
			}
			next.ServeHTTP(w, r)
		})
	})
	h.Init(r)
	return r
}

func serve(t *testing.T, h http.Handler, method, target, body string) (int, string) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()

	h.ServeHTTP(rr, req)

	res := rr.Result()
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res.StatusCode, string(data)
}

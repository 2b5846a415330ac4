package catalog

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/kaletesis/stoktakip-backend/internal/httpx"
)

func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()
	svc, _ := newTestService(t)

	authenticate := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") == "" {
				httpx.Fail(w, http.StatusUnauthorized, "Oturum açmanız gerekiyor")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
	guard := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("X-Can-Add-Product") == "" {
				httpx.Fail(w, http.StatusForbidden, "Bu işlem için yetkiniz bulunmamaktadır")
				return
			}
			next.ServeHTTP(w, r)
		})
	}

	router := chi.NewRouter()
	NewHandler(svc).RegisterRoutes(router, authenticate, guard)
	return router
}

func TestRoutesRejectAnonymousRequests(t *testing.T) {
	router := newTestRouter(t)

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/v1/catalog/products"},
		{http.MethodGet, "/api/v1/catalog/categories"},
		{http.MethodPost, "/api/v1/catalog/products"},
		{http.MethodDelete, "/api/v1/catalog/products/00000000-0000-0000-0000-000000000000"},
	} {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", tc.method, tc.path)
	}
}

func TestReadsNeedOnlyAuthentication(t *testing.T) {
	router := newTestRouter(t)

	// Authenticated user without the add-product capability can still read.
	for _, path := range []string{"/api/v1/catalog/products", "/api/v1/catalog/categories"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("Authorization", "Bearer token")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}

	// Mutations still require the capability.
	req := httptest.NewRequest(http.MethodPost, "/api/v1/catalog/products", strings.NewReader(`{"name":"Domates","category":"KITCHEN"}`))
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/kaletesis/stoktakip-backend/internal/httpx"
	"github.com/kaletesis/stoktakip-backend/internal/modules/user"
)

type contextKey struct{}

// CurrentUser returns the authenticated user stored in the request context,
// or nil when the request is anonymous.
func CurrentUser(ctx context.Context) *user.User {
	u, _ := ctx.Value(contextKey{}).(*user.User)
	return u
}

// Middleware provides request authentication and capability gating.
type Middleware struct {
	service Service
}

func NewMiddleware(service Service) *Middleware {
	return &Middleware{service: service}
}

// Authenticate parses the bearer token, loads the user and stores it in the
// request context. Requests without a valid token are rejected.
func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token := strings.TrimPrefix(header, "Bearer ")
		if header == "" || token == header {
			httpx.Fail(w, http.StatusUnauthorized, "Oturum açmanız gerekiyor")
			return
		}

		u, err := m.service.UserFromToken(r.Context(), token)
		if err != nil {
			httpx.Fail(w, http.StatusUnauthorized, "Geçersiz oturum")
			return
		}

		ctx := context.WithValue(r.Context(), contextKey{}, u)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Require gates a route group behind a capability.
func (m *Middleware) Require(cap Capability) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u := CurrentUser(r.Context())
			if u == nil {
				httpx.Fail(w, http.StatusUnauthorized, "Oturum açmanız gerekiyor")
				return
			}
			if !HasCapability(u, cap) {
				httpx.Fail(w, http.StatusForbidden, "Bu işlem için yetkiniz bulunmamaktadır")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin gates a route group to administrators only.
func (m *Middleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u := CurrentUser(r.Context())
		if u == nil {
			httpx.Fail(w, http.StatusUnauthorized, "Oturum açmanız gerekiyor")
			return
		}
		if !u.IsAdmin {
			httpx.Fail(w, http.StatusForbidden, "Bu işlem için yetkiniz bulunmamaktadır")
			return
		}
		next.ServeHTTP(w, r)
	})
}

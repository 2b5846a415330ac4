package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/kaletesis/stoktakip-backend/internal/apperr"
	"github.com/kaletesis/stoktakip-backend/internal/modules/user"
)

type fakeUserRepo struct {
	users map[uuid.UUID]*user.User
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, u *user.User) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, apperr.NotFound("Kullanıcı bulunamadı")
	}
	return u, nil
}

func (f *fakeUserRepo) GetUserByUsername(ctx context.Context, username string) (*user.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, apperr.NotFound("Kullanıcı bulunamadı")
}

func (f *fakeUserRepo) ListUsers(ctx context.Context) ([]*user.User, error) { return nil, nil }
func (f *fakeUserRepo) UpdateUser(ctx context.Context, u *user.User) error  { return nil }
func (f *fakeUserRepo) DeleteUser(ctx context.Context, id uuid.UUID) error  { return nil }

func seedUser(t *testing.T, repo *fakeUserRepo, username, password string, mutate func(*user.User)) *user.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := &user.User{ID: uuid.New(), Username: username, PasswordHash: string(hash)}
	if mutate != nil {
		mutate(u)
	}
	repo.users[u.ID] = u
	return u
}

func newTestAuth(t *testing.T) (Service, *fakeUserRepo) {
	t.Helper()
	repo := &fakeUserRepo{users: make(map[uuid.UUID]*user.User)}
	return NewService(repo, "test-secret", zap.NewNop()), repo
}

func TestHasCapability(t *testing.T) {
	admin := &user.User{IsAdmin: true}
	staff := &user.User{CanManageInventory: true, CanViewReports: true}

	// Admin implies every capability regardless of stored flags.
	for _, cap := range []Capability{CapAddProduct, CapViewReports, CapManageInventory, CapManageUsers} {
		assert.True(t, HasCapability(admin, cap), string(cap))
	}

	// Non-admin gets exactly the stored flags.
	assert.True(t, HasCapability(staff, CapManageInventory))
	assert.True(t, HasCapability(staff, CapViewReports))
	assert.False(t, HasCapability(staff, CapAddProduct))
	assert.False(t, HasCapability(staff, CapManageUsers))

	// Nil user holds nothing.
	assert.False(t, HasCapability(nil, CapViewReports))
}

func TestLogin(t *testing.T) {
	svc, repo := newTestAuth(t)
	seedUser(t, repo, "admin", "1234", func(u *user.User) { u.IsAdmin = true })
	ctx := context.Background()

	token, u, err := svc.Login(ctx, "admin", "1234")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "admin", u.Username)

	// Token round-trips to the same user.
	loaded, err := svc.UserFromToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, loaded.ID)

	// Wrong password and unknown user fail the same way.
	_, _, err = svc.Login(ctx, "admin", "wrong")
	assert.Error(t, err)
	_, _, err = svc.Login(ctx, "yok", "1234")
	assert.Error(t, err)

	_, _, err = svc.Login(ctx, "", "")
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestUserFromTokenInvalid(t *testing.T) {
	svc, _ := newTestAuth(t)

	_, err := svc.UserFromToken(context.Background(), "not-a-token")
	assert.Error(t, err)
}

func TestCheckPermission(t *testing.T) {
	svc, repo := newTestAuth(t)
	staff := seedUser(t, repo, "barmen", "1234", func(u *user.User) { u.CanManageInventory = true })
	ctx := context.Background()

	assert.True(t, svc.CheckPermission(ctx, staff.ID, CapManageInventory))
	assert.False(t, svc.CheckPermission(ctx, staff.ID, CapViewReports))

	// Unknown user: default deny, never an error.
	assert.False(t, svc.CheckPermission(ctx, uuid.New(), CapManageInventory))
}

func TestMiddlewareGating(t *testing.T) {
	svc, repo := newTestAuth(t)
	seedUser(t, repo, "barmen", "1234", func(u *user.User) { u.CanManageInventory = true })
	mw := NewMiddleware(svc)

	var reached bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	})
	protected := mw.Authenticate(mw.Require(CapManageInventory)(next))
	reports := mw.Authenticate(mw.Require(CapViewReports)(next))

	// No token.
	w := httptest.NewRecorder()
	protected.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, reached)

	// Garbage token.
	w = httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", "Bearer bogus")
	protected.ServeHTTP(w, r)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token, _, err := svc.Login(context.Background(), "barmen", "1234")
	require.NoError(t, err)

	// Capability held: request passes through.
	w = httptest.NewRecorder()
	r = httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	protected.ServeHTTP(w, r)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, reached)

	// Capability missing: forbidden.
	reached = false
	w = httptest.NewRecorder()
	r = httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	reports.ServeHTTP(w, r)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, reached)
}

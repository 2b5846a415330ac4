package user

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/kaletesis/stoktakip-backend/internal/httpx"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the user management endpoints. The supplied guard
// restricts the whole group to administrators.
func (h *Handler) RegisterRoutes(router *chi.Mux, guard func(http.Handler) http.Handler) {
	router.Route("/api/v1/users", func(r chi.Router) {
		r.Use(guard)
		r.Get("/", h.listUsers)
		r.Post("/", h.createUser)
		r.Patch("/{id}", h.updateUser)
		r.Delete("/{id}", h.deleteUser)
	})
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Geçersiz istek gövdesi")
		return
	}

	u, err := h.service.CreateUser(r.Context(), req)
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.OK(w, http.StatusCreated, "Kullanıcı başarıyla eklendi", u)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.OK(w, http.StatusOK, "", users)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Geçersiz kullanıcı ID'si")
		return
	}

	var req UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Geçersiz istek gövdesi")
		return
	}

	u, err := h.service.UpdateUser(r.Context(), id, req)
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.OK(w, http.StatusOK, "Kullanıcı başarıyla güncellendi", u)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Geçersiz kullanıcı ID'si")
		return
	}

	if err := h.service.DeleteUser(r.Context(), id); err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.OK(w, http.StatusOK, "Kullanıcı başarıyla silindi", nil)
}

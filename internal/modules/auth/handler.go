package auth

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kaletesis/stoktakip-backend/internal/apperr"
	"github.com/kaletesis/stoktakip-backend/internal/httpx"
	"github.com/kaletesis/stoktakip-backend/internal/modules/user"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(router *chi.Mux) {
	router.Post("/api/v1/auth/login", h.login)
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string     `json:"token"`
	User  *user.User `json:"user"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Geçersiz istek gövdesi")
		return
	}

	token, u, err := h.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if apperr.IsKind(err, apperr.KindValidation) {
			httpx.Fail(w, http.StatusUnauthorized, apperr.MessageOf(err))
			return
		}
		httpx.Error(w, err)
		return
	}

	httpx.OK(w, http.StatusOK, "Giriş başarılı!", loginResponse{Token: token, User: u})
}

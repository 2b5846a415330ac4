package inventory

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/kaletesis/stoktakip-backend/internal/httpx"
	"github.com/kaletesis/stoktakip-backend/internal/modules/auth"
)

// Handler exposes inventory ledger HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

// RegisterRoutes mounts the ledger endpoints behind the supplied guard.
func (h *Handler) RegisterRoutes(router *chi.Mux, guard func(http.Handler) http.Handler) {
	router.Route("/api/v1/inventory", func(r chi.Router) {
		r.Use(guard)
		r.Post("/movements", h.recordMovement)
		r.Get("/movements", h.latestMovements)
		r.Delete("/movements/{id}", h.deleteMovement)
		r.Get("/stock/{productId}", h.productStock)
	})
}

func (h *Handler) recordMovement(w http.ResponseWriter, r *http.Request) {
	var req RecordMovementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Geçersiz istek gövdesi")
		return
	}

	// The acting user comes from the request context, not the body.
	u := auth.CurrentUser(r.Context())
	if u == nil {
		httpx.Fail(w, http.StatusUnauthorized, "Oturum açmanız gerekiyor")
		return
	}
	req.UserID = u.ID

	m, err := h.service.RecordMovement(r.Context(), req)
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.OK(w, http.StatusCreated, "Stok başarıyla güncellendi", m)
}

func (h *Handler) latestMovements(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	movements, err := h.service.LatestMovements(r.Context(), limit)
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.OK(w, http.StatusOK, "", movements)
}

func (h *Handler) deleteMovement(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Geçersiz hareket ID'si")
		return
	}

	if err := h.service.DeleteMovement(r.Context(), id); err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.OK(w, http.StatusOK, "Stok hareketi başarıyla silindi", nil)
}

func (h *Handler) productStock(w http.ResponseWriter, r *http.Request) {
	productID, err := uuid.Parse(chi.URLParam(r, "productId"))
	if err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Geçersiz ürün ID'si")
		return
	}

	stocks, err := h.service.ProductStock(r.Context(), productID)
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.OK(w, http.StatusOK, "", stocks)
}

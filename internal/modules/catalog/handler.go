package catalog

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/kaletesis/stoktakip-backend/internal/httpx"
)

// Handler exposes catalog HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

// RegisterRoutes mounts the catalog endpoints. The whole group requires an
// authenticated user; mutations additionally require the capability guard.
func (h *Handler) RegisterRoutes(router *chi.Mux, authenticate, guard func(http.Handler) http.Handler) {
	router.Route("/api/v1/catalog", func(r chi.Router) {
		r.Use(authenticate)
		r.Get("/products", h.listProducts)
		r.Get("/categories", h.listCategories)
		r.Group(func(r chi.Router) {
			r.Use(guard)
			r.Post("/products", h.createProduct)
			r.Delete("/products/{id}", h.deleteProduct)
		})
	})
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("grouped") == "true" {
		grouped, err := h.service.ListProductsByCategory(r.Context())
		if err != nil {
			httpx.Error(w, err)
			return
		}
		httpx.OK(w, http.StatusOK, "", grouped)
		return
	}

	products, err := h.service.ListProducts(r.Context())
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.OK(w, http.StatusOK, "", products)
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	httpx.OK(w, http.StatusOK, "", Categories)
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Geçersiz istek gövdesi")
		return
	}

	p, err := h.service.CreateProduct(r.Context(), req)
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.OK(w, http.StatusCreated, "Ürün başarıyla eklendi", p)
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Geçersiz ürün ID'si")
		return
	}

	if err := h.service.DeleteProduct(r.Context(), id); err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.OK(w, http.StatusOK, "Ürün başarıyla silindi", nil)
}

package report

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/kaletesis/stoktakip-backend/internal/httpx"
)

// Handler exposes reporting HTTP endpoints.
type Handler struct {
	service Service
	// export renders a table to a spreadsheet; injected so the report
	// module stays free of formatting concerns.
	export func(t *Table, start, end string) ([]byte, error)
}

func NewHandler(service Service, export func(t *Table, start, end string) ([]byte, error)) *Handler {
	return &Handler{service: service, export: export}
}

// RegisterRoutes mounts the report endpoints behind the supplied guard.
func (h *Handler) RegisterRoutes(router *chi.Mux, guard func(http.Handler) http.Handler) {
	router.Route("/api/v1/reports", func(r chi.Router) {
		r.Use(guard)
		r.Get("/detailed", h.detailedReport)
		r.Get("/summary", h.summaryReport)
	})
}

// Window boundaries arrive as literal local date-times, matching the
// reporting screens ("2006-01-02 15:04:05"); RFC 3339 is also accepted.
func parseWindow(r *http.Request) (time.Time, time.Time, bool) {
	start, ok1 := parseTimestamp(r.URL.Query().Get("start"))
	end, ok2 := parseTimestamp(r.URL.Query().Get("end"))
	return start, end, ok1 && ok2
}

func parseTimestamp(s string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.ParseInLocation("2006-01-02 15:04:05", s, time.Local); err == nil {
		return t, true
	}
	return time.Time{}, false
}

func (h *Handler) detailedReport(w http.ResponseWriter, r *http.Request) {
	start, end, ok := parseWindow(r)
	if !ok {
		httpx.Fail(w, http.StatusBadRequest, "Geçersiz tarih aralığı")
		return
	}

	rows, err := h.service.DetailedReport(r.Context(), start, end)
	if err != nil {
		httpx.Error(w, err)
		return
	}

	if r.URL.Query().Get("format") == "xlsx" {
		h.download(w, DetailedTable(rows), "detayli_stok_raporu", start, end)
		return
	}
	httpx.OK(w, http.StatusOK, "", DetailedTable(rows))
}

func (h *Handler) summaryReport(w http.ResponseWriter, r *http.Request) {
	start, end, ok := parseWindow(r)
	if !ok {
		httpx.Fail(w, http.StatusBadRequest, "Geçersiz tarih aralığı")
		return
	}

	rows, err := h.service.SummaryReport(r.Context(), start, end)
	if err != nil {
		httpx.Error(w, err)
		return
	}

	if r.URL.Query().Get("format") == "xlsx" {
		h.download(w, SummaryTable(rows), "ozet_stok_raporu", start, end)
		return
	}

	httpx.OK(w, http.StatusOK, "", struct {
		*Table
		TotalValue float64 `json:"total_value"`
	}{SummaryTable(rows), SummaryTotal(rows)})
}

func (h *Handler) download(w http.ResponseWriter, t *Table, prefix string, start, end time.Time) {
	data, err := h.export(t, start.Format("02.01.2006 15:04"), end.Format("02.01.2006 15:04"))
	if err != nil {
		httpx.Error(w, err)
		return
	}

	filename := prefix + "_" + start.Format("2006-01-02_15-04") + "_to_" + end.Format("2006-01-02_15-04") + ".xlsx"
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

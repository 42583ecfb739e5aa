package report

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bodyinsight/booking-platform/internal/httpx"
	"github.com/bodyinsight/booking-platform/internal/observability/metrics"
	"github.com/bodyinsight/booking-platform/pkg/logging"
)

// Handler serves scan reports and their derived chart geometry.
type Handler struct {
	store   *Store
	metrics *metrics.ReportMetrics
	logger  *logging.Logger
}

// NewHandler creates a report handler. metrics may be nil.
func NewHandler(store *Store, m *metrics.ReportMetrics, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{store: store, metrics: m, logger: logger}
}

// GetReport handles GET /reports/{id}.
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	rep, err := h.store.Get(id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound), errors.Is(err, ErrBadID):
			h.metrics.ObserveLoad("not_found")
			httpx.Message(w, http.StatusNotFound, "Report not found")
		default:
			h.metrics.ObserveLoad("error")
			h.logger.Error("failed to load report", "id", id, "error", err)
			httpx.Message(w, http.StatusInternalServerError, "Failed to load report")
		}
		return
	}
	h.metrics.ObserveLoad("ok")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rep)
}

// chartSeries maps a chart request to the right series inside a report.
type chartSeries struct {
	series         func(*Report) []float64
	unit           string
	decreaseIsGood bool
}

var chartSeriesByName = map[string]chartSeries{
	"bodyFat":  {func(r *Report) []float64 { return r.Trends.BodyFat }, "%", true},
	"leanMass": {func(r *Report) []float64 { return r.Trends.LeanMass }, " kg", false},
	"fatMass":  {func(r *Report) []float64 { return r.Trends.FatMass }, " kg", true},
	"visceral": {func(r *Report) []float64 { return r.VisceralFat.Trend }, " g", true},
	"tScore":   {func(r *Report) []float64 { return r.BoneHealth.TScoreTrend }, "", false},
	"bmd":      {func(r *Report) []float64 { return r.BoneHealth.BMDTrend }, "", false},
	"rmr":      {func(r *Report) []float64 { return r.Metabolism.Trend }, " kcal", false},
}

// GetChart handles GET /reports/{id}/charts/{series}: precomputed plot
// geometry for one trend series, so every client draws identical charts.
func (h *Handler) GetChart(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	series := chi.URLParam(r, "series")

	cs, ok := chartSeriesByName[series]
	if !ok {
		httpx.Message(w, http.StatusNotFound, "Unknown chart series")
		return
	}

	rep, err := h.store.Get(id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound), errors.Is(err, ErrBadID):
			httpx.Message(w, http.StatusNotFound, "Report not found")
		default:
			h.logger.Error("failed to load report", "id", id, "error", err)
			httpx.Message(w, http.StatusInternalServerError, "Failed to load report")
		}
		return
	}

	chart, err := BuildChart(cs.series(rep), rep.Trends.Dates, cs.unit, cs.decreaseIsGood)
	if err != nil {
		h.logger.Error("failed to build chart", "id", id, "series", series, "error", err)
		httpx.Message(w, http.StatusInternalServerError, "Failed to build chart")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(chart)
}

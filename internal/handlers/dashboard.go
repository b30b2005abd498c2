package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"supermind-backend/internal/models"
)

type analyticsSource interface {
	Overview() models.DashboardOverview
	Metrics() []models.MetricCard
	Charts() []models.Chart
	Chart(id string) (models.Chart, bool)
}

type DashboardHandler struct {
	analytics analyticsSource
}

func NewDashboardHandler(analytics analyticsSource) *DashboardHandler {
	return &DashboardHandler{analytics: analytics}
}

func (h *DashboardHandler) Overview(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.analytics.Overview())
}

func (h *DashboardHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"metrics": h.analytics.Metrics(),
	})
}

func (h *DashboardHandler) Charts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"charts": h.analytics.Charts(),
	})
}

func (h *DashboardHandler) Chart(w http.ResponseWriter, r *http.Request) {
	chart, ok := h.analytics.Chart(chi.URLParam(r, "id"))
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "Chart not found", r))
		return
	}
	writeJSON(w, http.StatusOK, chart)
}

package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/studyshelf/backend/internal/models"
	"go.uber.org/zap"
)

// ProgressService is the interface that wraps methods for dashboard and progress statistics.
type ProgressService interface {
	// Method GetDashboard returns totals, active courses, recent activity and the streak.
	GetDashboard(ctx context.Context) (*models.Dashboard, error)
	// Method GetStreak returns the current streak and today's completed lessons.
	GetStreak(ctx context.Context) (*models.StreakResponse, error)
	// Method GetDaily returns the latest "days" day records; zero selects the default.
	GetDaily(ctx context.Context, days int) ([]models.DailyStreak, error)
	// Method GetMonthly returns twelve monthly records of "year"; zero selects the current year.
	GetMonthly(ctx context.Context, year int) ([]models.MonthlyProgress, error)
}

// ProgressHandler handles HTTP requests for the dashboard and progress statistics
type ProgressHandler struct {
	BaseHandler
	service ProgressService
}

// NewProgressHandler creates a new progress handler
func NewProgressHandler(svc ProgressService, logger *zap.Logger) *ProgressHandler {
	return &ProgressHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers all progress handler routes
func (h *ProgressHandler) RegisterRoutes(r chi.Router) {
	r.Get("/dashboard", h.GetDashboard)
	r.Route("/progress", func(r chi.Router) {
		r.Get("/streak", h.GetStreak)
		r.Get("/daily", h.GetDaily)
		r.Get("/monthly", h.GetMonthly)
	})
}

// GetDashboard handles GET /api/v1/dashboard
// @Summary Dashboard
// @Tags progress
// @Produce json
// @Success 200 {object} models.Dashboard
// @Failure 500 {object} map[string]string
// @Router /api/v1/dashboard [get]
func (h *ProgressHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.service.GetDashboard(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "failed to get dashboard")
		return
	}

	h.respondJSON(w, http.StatusOK, dashboard)
}

// GetStreak handles GET /api/v1/progress/streak
// @Summary Current streak
// @Tags progress
// @Produce json
// @Success 200 {object} models.StreakResponse
// @Failure 500 {object} map[string]string
// @Router /api/v1/progress/streak [get]
func (h *ProgressHandler) GetStreak(w http.ResponseWriter, r *http.Request) {
	streak, err := h.service.GetStreak(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "failed to get streak")
		return
	}

	h.respondJSON(w, http.StatusOK, streak)
}

// GetDaily handles GET /api/v1/progress/daily
// @Summary Daily completions
// @Tags progress
// @Produce json
// @Param days query int false "Number of latest days, 1-365, default 30"
// @Success 200 {array} models.DailyStreak
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/progress/daily [get]
func (h *ProgressHandler) GetDaily(w http.ResponseWriter, r *http.Request) {
	days, ok := h.queryInt(w, r, "days")
	if !ok {
		return
	}

	records, err := h.service.GetDaily(r.Context(), days)
	if err != nil {
		h.handleServiceError(w, err, "failed to get daily progress")
		return
	}

	h.respondJSON(w, http.StatusOK, records)
}

// GetMonthly handles GET /api/v1/progress/monthly
// @Summary Monthly progress
// @Description Twelve months of a year, months without activity filled with zeros
// @Tags progress
// @Produce json
// @Param year query int false "Year, default current"
// @Success 200 {array} models.MonthlyProgress
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/progress/monthly [get]
func (h *ProgressHandler) GetMonthly(w http.ResponseWriter, r *http.Request) {
	year, ok := h.queryInt(w, r, "year")
	if !ok {
		return
	}

	months, err := h.service.GetMonthly(r.Context(), year)
	if err != nil {
		h.handleServiceError(w, err, "failed to get monthly progress")
		return
	}

	h.respondJSON(w, http.StatusOK, months)
}

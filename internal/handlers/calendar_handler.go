package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/studyshelf/backend/internal/models"
	"go.uber.org/zap"
)

// CalendarService is the interface that wraps methods for calendar business logic.
type CalendarService interface {
	// Method GetMonth builds the month grid with blocks, completed lessons and the current streak.
	//
	// Zero "year" and "month" select the current month.
	// If the month is out of range, a services.ValidationError will be returned.
	GetMonth(ctx context.Context, year, month int) (*models.CalendarMonth, error)
	// Method GetBlocks retrieve blocks between two "YYYY-MM-DD" dates inclusive.
	GetBlocks(ctx context.Context, from, to string) ([]models.CalendarBlock, error)
	// Method CreateBlocks creates one block, or a series of blocks when a recurrence is given.
	CreateBlocks(ctx context.Context, req *models.CalendarBlockRequest) (*models.CreateBlocksResponse, error)
	// Method UpdateBlock replaces the fields of a block.
	//
	// If the block does not exist, the "calendar block not found" error will be returned.
	UpdateBlock(ctx context.Context, id int, req *models.CalendarBlockRequest) error
	// Method DeleteBlock deletes a block.
	DeleteBlock(ctx context.Context, id int) error
}

// CalendarHandler handles HTTP requests for the study calendar
type CalendarHandler struct {
	BaseHandler
	service CalendarService
}

// NewCalendarHandler creates a new calendar handler
func NewCalendarHandler(svc CalendarService, logger *zap.Logger) *CalendarHandler {
	return &CalendarHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers all calendar handler routes
func (h *CalendarHandler) RegisterRoutes(r chi.Router) {
	r.Route("/calendar", func(r chi.Router) {
		r.Get("/", h.GetMonth)
		r.Get("/blocks", h.GetBlocks)
		r.Post("/blocks", h.CreateBlocks)
		r.Put("/blocks/{id}", h.UpdateBlock)
		r.Delete("/blocks/{id}", h.DeleteBlock)
	})
}

// GetMonth handles GET /api/v1/calendar
// @Summary Month view
// @Description Days of a month with their study blocks and completed lessons. Defaults to the current month.
// @Tags calendar
// @Produce json
// @Param year query int false "Year"
// @Param month query int false "Month, 1-12"
// @Success 200 {object} models.CalendarMonth
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/calendar [get]
func (h *CalendarHandler) GetMonth(w http.ResponseWriter, r *http.Request) {
	year, ok := h.queryInt(w, r, "year")
	if !ok {
		return
	}
	month, ok := h.queryInt(w, r, "month")
	if !ok {
		return
	}

	calendar, err := h.service.GetMonth(r.Context(), year, month)
	if err != nil {
		h.handleServiceError(w, err, "failed to get calendar")
		return
	}

	h.respondJSON(w, http.StatusOK, calendar)
}

// GetBlocks handles GET /api/v1/calendar/blocks
// @Summary List study blocks
// @Tags calendar
// @Produce json
// @Param from query string true "First date, YYYY-MM-DD"
// @Param to query string true "Last date, YYYY-MM-DD"
// @Success 200 {array} models.CalendarBlock
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/calendar/blocks [get]
func (h *CalendarHandler) GetBlocks(w http.ResponseWriter, r *http.Request) {
	blocks, err := h.service.GetBlocks(r.Context(), r.URL.Query().Get("from"), r.URL.Query().Get("to"))
	if err != nil {
		h.handleServiceError(w, err, "failed to get calendar blocks")
		return
	}

	h.respondJSON(w, http.StatusOK, blocks)
}

// CreateBlocks handles POST /api/v1/calendar/blocks
// @Summary Create study blocks
// @Description Create one block, or repeat it daily, on business days or on chosen weekdays for a number of weeks
// @Tags calendar
// @Accept json
// @Produce json
// @Param request body models.CalendarBlockRequest true "Block"
// @Success 201 {object} models.CreateBlocksResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/calendar/blocks [post]
func (h *CalendarHandler) CreateBlocks(w http.ResponseWriter, r *http.Request) {
	var req models.CalendarBlockRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	result, err := h.service.CreateBlocks(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "failed to create calendar blocks")
		return
	}

	h.respondJSON(w, http.StatusCreated, result)
}

// UpdateBlock handles PUT /api/v1/calendar/blocks/{id}
// @Summary Update a study block
// @Tags calendar
// @Accept json
// @Param id path int true "Block ID"
// @Param request body models.CalendarBlockRequest true "Block, without recurrence"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/calendar/blocks/{id} [put]
func (h *CalendarHandler) UpdateBlock(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r, "id")
	if !ok {
		return
	}

	var req models.CalendarBlockRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	if err := h.service.UpdateBlock(r.Context(), id, &req); err != nil {
		h.handleServiceError(w, err, "failed to update calendar block", zap.Int("id", id))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteBlock handles DELETE /api/v1/calendar/blocks/{id}
// @Summary Delete a study block
// @Tags calendar
// @Param id path int true "Block ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/calendar/blocks/{id} [delete]
func (h *CalendarHandler) DeleteBlock(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteBlock(r.Context(), id); err != nil {
		h.handleServiceError(w, err, "failed to delete calendar block", zap.Int("id", id))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

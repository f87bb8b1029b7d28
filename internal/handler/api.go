package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/arvindkinja/date-day-count/internal/domain"
	"github.com/arvindkinja/date-day-count/internal/repository"
	"github.com/arvindkinja/date-day-count/internal/service"
	"github.com/google/uuid"
)

// countDays godoc
// @Summary Count the days between two dates
// @Tags day-count
// @Accept json
// @Produce json
// @Param request body domain.DayCountRequest true "dates in YYYY-MM-DD form"
// @Success 201 {object} domain.Calculation
// @Failure 400 {object} errorResponse
// @Router /api/day-count [post]
func (h *HandlerDayCount) countDays(w http.ResponseWriter, r *http.Request) {
	var input domain.DayCountRequest

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.log.Error("failed to decode request body", slog.String("error", err.Error()))
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	calc, err := h.services.Count(r.Context(), input.StartDate, input.EndDate)
	if err != nil {
		var fe *service.FieldError
		if errors.As(err, &fe) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: fe.Message(), Field: fe.Field})
			return
		}
		h.log.Error("failed to count days", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, calc)
}

// getCalculation godoc
// @Summary Get a stored calculation
// @Tags calculations
// @Produce json
// @Param id path string true "calculation id"
// @Success 200 {object} domain.Calculation
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /api/calculations/{id} [get]
func (h *HandlerDayCount) getCalculation(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		h.log.Error("invalid id parameter", slog.String("id", idStr))
		writeError(w, http.StatusBadRequest, "invalid id (UUID expected)")
		return
	}

	calc, err := h.services.GetByID(r.Context(), id)
	if err != nil {
		h.writeHistoryError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, calc)
}

// listCalculations godoc
// @Summary List stored calculations, newest first
// @Tags calculations
// @Produce json
// @Param limit query int false "page size (max 100)"
// @Param offset query int false "rows to skip"
// @Success 200 {array} domain.Calculation
// @Failure 501 {object} errorResponse
// @Router /api/calculations [get]
func (h *HandlerDayCount) listCalculations(w http.ResponseWriter, r *http.Request) {
	filter := domain.CalculationFilter{
		Limit:  queryInt(r, "limit", 10, 1),
		Offset: queryInt(r, "offset", 0, 0),
	}

	calcs, err := h.services.List(r.Context(), filter)
	if err != nil {
		h.writeHistoryError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, calcs)
}

func (h *HandlerDayCount) writeHistoryError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "calculation not found")
	case errors.Is(err, service.ErrHistoryDisabled):
		writeError(w, http.StatusNotImplemented, "calculation history is disabled")
	default:
		h.log.Error("failed to read history", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

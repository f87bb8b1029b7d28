package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/arvindkinja/date-day-count/internal/service"
)

type formView struct {
	StartDate string
	EndDate   string
	Errors    map[string]string
	Message   string
	Error     string
}

func (h *HandlerDayCount) showForm(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, http.StatusOK, formView{})
}

func (h *HandlerDayCount) submitForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderForm(w, http.StatusBadRequest, formView{Error: "invalid form submission"})
		return
	}

	view := formView{
		StartDate: r.PostFormValue(service.FieldStartDate),
		EndDate:   r.PostFormValue(service.FieldEndDate),
	}

	calc, err := h.services.Count(r.Context(), view.StartDate, view.EndDate)
	if err != nil {
		var fe *service.FieldError
		if errors.As(err, &fe) {
			view.Errors = map[string]string{fe.Field: fe.Message()}
			h.renderForm(w, http.StatusBadRequest, view)
			return
		}

		h.log.Error("failed to count days", slog.String("error", err.Error()))
		view.Error = "internal error"
		h.renderForm(w, http.StatusInternalServerError, view)
		return
	}

	view.Message = calc.Message()
	h.renderForm(w, http.StatusOK, view)
}

func (h *HandlerDayCount) renderForm(w http.ResponseWriter, status int, view formView) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := formTemplate.Execute(w, view); err != nil {
		h.log.Error("failed to render form", slog.String("error", err.Error()))
	}
}

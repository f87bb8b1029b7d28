package handler

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	_ "github.com/arvindkinja/date-day-count/docs"
	"github.com/arvindkinja/date-day-count/internal/middleware"
	"github.com/arvindkinja/date-day-count/internal/service"
	httpSwagger "github.com/swaggo/http-swagger"
)

//go:embed templates/*.html
var templatesFS embed.FS

var formTemplate = template.Must(template.ParseFS(templatesFS, "templates/form.html"))

type HandlerDayCount struct {
	services service.DayCountServiceInterface
	log      *slog.Logger
}

func NewHandlerDayCount(services service.DayCountServiceInterface, log *slog.Logger) *HandlerDayCount {
	return &HandlerDayCount{
		services: services,
		log:      log.With(slog.String("component", "delivery/http")),
	}
}

func (h *HandlerDayCount) SetupRouter() http.Handler {
	mux := http.NewServeMux()

	// html form
	mux.HandleFunc("GET /{$}", h.showForm)
	mux.HandleFunc("POST /{$}", h.submitForm)

	// json api
	mux.Handle("POST /api/day-count", middleware.JSONMiddleware(http.HandlerFunc(h.countDays)))
	mux.Handle("GET /api/calculations", middleware.JSONMiddleware(http.HandlerFunc(h.listCalculations)))
	mux.Handle("GET /api/calculations/{id}", middleware.JSONMiddleware(http.HandlerFunc(h.getCalculation)))
	mux.Handle("GET /healthz", middleware.JSONMiddleware(http.HandlerFunc(h.health)))

	mux.Handle("GET /swagger/", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	return middleware.Chain(mux,
		middleware.RecoverMiddleware(h.log),
		middleware.LoggingMiddleware(h.log),
	)
}

func (h *HandlerDayCount) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Package metrics реализует HTTP-обработчик лёгкого среза показателей дашборда.
package metrics

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/ayoubmdl/membership-backoffice/internal/http/response"
	"github.com/ayoubmdl/membership-backoffice/internal/lib/sl"
	"github.com/ayoubmdl/membership-backoffice/internal/models"
)

// Handler управляет HTTP-запросами на получение среза показателей.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики среза показателей.
type Service interface {
	Metrics(ctx context.Context) (*models.DashboardMetrics, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получить срез показателей дашборда
// @Description Возвращает лёгкий срез показателей для периодического опроса. Результат кешируется на короткое время.
// @Tags Dashboard
// @Produce  json
// @Success 200 {object} map[string]any "Срез показателей"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при получении показателей"
// @Router /dashboard/metrics [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.dashboard.metrics"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	metrics, err := h.service.Metrics(r.Context())
	if err != nil {
		log.Error("failed to collect metrics", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not collect metrics"))
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"metrics": metrics,
	}))
}

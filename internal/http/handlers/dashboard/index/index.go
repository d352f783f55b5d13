// Package index реализует HTTP-обработчик дашборда.
package index

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

// Handler управляет HTTP-запросами на получение данных дашборда.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики дашборда.
type Service interface {
	Build(ctx context.Context) (*models.Dashboard, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получить данные дашборда
// @Description Возвращает общие счётчики, помесячные графики, распределение по тарифам, последние членства и показатели роста.
// @Tags Dashboard
// @Produce  json
// @Success 200 {object} map[string]any "Данные дашборда"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при сборке дашборда"
// @Router /dashboard [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.dashboard.index"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	dashboard, err := h.service.Build(r.Context())
	if err != nil {
		log.Error("failed to build dashboard", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not build dashboard"))
		return
	}

	log.Info("success to build dashboard")
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"dashboard": dashboard,
	}))
}

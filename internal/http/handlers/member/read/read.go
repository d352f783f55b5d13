// Package read реализует HTTP-обработчик для получения члена организации по ID.
package read

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/ayoubmdl/membership-backoffice/internal/http/response"
	"github.com/ayoubmdl/membership-backoffice/internal/lib/sl"
	"github.com/ayoubmdl/membership-backoffice/internal/models"
)

// Handler обрабатывает запросы на получение члена по уникальному идентификатору.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики чтения члена.
type Service interface {
	Read(ctx context.Context, id int) (*models.Member, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получить члена по ID
// @Tags Members
// @Produce  json
// @Param id path int true "ID члена"
// @Success 200 {object} map[string]any "Данные члена"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при чтении"
// @Router /members/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.member.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		log.Error("failed to decode id from url", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("failed to decode id from url"))
		return
	}

	res, err := h.service.Read(r.Context(), id)
	if err != nil {
		log.Error("failed to read member", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not read member"))
		return
	}

	log.Info("success to read member", slog.Int("id", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"member": res,
	}))
}

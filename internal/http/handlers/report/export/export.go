// Package export реализует HTTP-обработчик выгрузки отчёта.
//
// Handler строит тот же отчёт, что и основной обработчик отчётов, но
// возвращает документ выгрузки с отметкой времени генерации и периодом.
package export

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

// Handler управляет HTTP-запросами на выгрузку отчёта.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики выгрузки отчёта
}

// Service описывает интерфейс бизнес-логики выгрузки отчёта.
type Service interface {
	BuildExport(ctx context.Context, req models.DummyReportFilter) (*models.ReportExport, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Выгрузить отчёт о членствах
// @Description Возвращает документ выгрузки отчёта за период с отметкой времени генерации.
// @Tags Reports
// @Produce  json
// @Param start_date query string false "Дата начала периода в формате 2006-01-02"
// @Param end_date query string false "Дата окончания периода в формате 2006-01-02"
// @Success 200 {object} map[string]any "Документ выгрузки"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при выгрузке отчёта"
// @Router /reports/export [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.report.export"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	req := models.DummyReportFilter{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}

	export, err := h.service.BuildExport(r.Context(), req)
	if err != nil {
		log.Error("failed to build report export", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not export report"))
		return
	}

	log.Info("success to build report export", slog.String("generated_at", export.GeneratedAt))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"export": export,
	}))
}

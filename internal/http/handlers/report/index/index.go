// Package index реализует HTTP-обработчик для построения отчёта о членствах.
//
// Handler читает опциональные даты периода из query-строки, вызывает
// бизнес-логику построения отчёта и возвращает готовый отчёт в JSON-формате.
// Некорректные даты не считаются ошибкой: сервис молча заменяет их значениями
// по умолчанию.
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

// Handler управляет HTTP-запросами на построение отчёта.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики построения отчёта
}

// Service описывает интерфейс бизнес-логики построения отчёта.
type Service interface {
	BuildReport(ctx context.Context, req models.DummyReportFilter) (*models.Report, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Построить отчёт о членствах
// @Description Возвращает сводные показатели, ежедневный график, разбивку по тарифам, последние и истекающие членства за период. Некорректные даты заменяются значениями по умолчанию.
// @Tags Reports
// @Produce  json
// @Param start_date query string false "Дата начала периода в формате 2006-01-02"
// @Param end_date query string false "Дата окончания периода в формате 2006-01-02"
// @Success 200 {object} map[string]any "Отчёт за период"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при построении отчёта"
// @Router /reports [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.report.index"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	req := models.DummyReportFilter{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}
	log.Info("report requested", slog.Any("filter", req))

	report, err := h.service.BuildReport(r.Context(), req)
	if err != nil {
		log.Error("failed to build report", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not build report"))
		return
	}

	log.Info("success to build report",
		slog.String("start_date", report.Filters.StartDate),
		slog.String("end_date", report.Filters.EndDate))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"report": report,
	}))
}

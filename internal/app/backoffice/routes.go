// Package backoffice предоставляет сборку и маршруты основного приложения.
package backoffice

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	dashboardindex "github.com/ayoubmdl/membership-backoffice/internal/http/handlers/dashboard/index"
	dashboardmetrics "github.com/ayoubmdl/membership-backoffice/internal/http/handlers/dashboard/metrics"
	"github.com/ayoubmdl/membership-backoffice/internal/http/handlers/health"
	membercreate "github.com/ayoubmdl/membership-backoffice/internal/http/handlers/member/create"
	memberlist "github.com/ayoubmdl/membership-backoffice/internal/http/handlers/member/list"
	memberread "github.com/ayoubmdl/membership-backoffice/internal/http/handlers/member/read"
	memberremove "github.com/ayoubmdl/membership-backoffice/internal/http/handlers/member/remove"
	memberupdate "github.com/ayoubmdl/membership-backoffice/internal/http/handlers/member/update"
	membershipcreate "github.com/ayoubmdl/membership-backoffice/internal/http/handlers/membership/create"
	membershiplist "github.com/ayoubmdl/membership-backoffice/internal/http/handlers/membership/list"
	membershipread "github.com/ayoubmdl/membership-backoffice/internal/http/handlers/membership/read"
	membershipremove "github.com/ayoubmdl/membership-backoffice/internal/http/handlers/membership/remove"
	membershipupdate "github.com/ayoubmdl/membership-backoffice/internal/http/handlers/membership/update"
	typecreate "github.com/ayoubmdl/membership-backoffice/internal/http/handlers/membershiptype/create"
	typelist "github.com/ayoubmdl/membership-backoffice/internal/http/handlers/membershiptype/list"
	typeread "github.com/ayoubmdl/membership-backoffice/internal/http/handlers/membershiptype/read"
	typeremove "github.com/ayoubmdl/membership-backoffice/internal/http/handlers/membershiptype/remove"
	typeupdate "github.com/ayoubmdl/membership-backoffice/internal/http/handlers/membershiptype/update"
	reportexport "github.com/ayoubmdl/membership-backoffice/internal/http/handlers/report/export"
	reportindex "github.com/ayoubmdl/membership-backoffice/internal/http/handlers/report/index"
	"github.com/ayoubmdl/membership-backoffice/internal/http/middlewarectx"
	dashboardservice "github.com/ayoubmdl/membership-backoffice/internal/services/dashboard"
	memberservice "github.com/ayoubmdl/membership-backoffice/internal/services/member"
	membershipservice "github.com/ayoubmdl/membership-backoffice/internal/services/membership"
	typeservice "github.com/ayoubmdl/membership-backoffice/internal/services/membershiptype"
	reportservice "github.com/ayoubmdl/membership-backoffice/internal/services/report"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger,
	reportService *reportservice.ReportService,
	dashboardService *dashboardservice.DashboardService,
	memberService *memberservice.MemberService,
	membershipService *membershipservice.MembershipService,
	typeService *typeservice.MembershipTypeService,
) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", health.New(logger).ServeHTTP)

		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.RateLimitMiddleware(logger))

			r.Get("/reports", reportindex.New(logger, reportService).ServeHTTP)
			r.Get("/reports/export", reportexport.New(logger, reportService).ServeHTTP)

			r.Get("/dashboard", dashboardindex.New(logger, dashboardService).ServeHTTP)
			r.Get("/dashboard/metrics", dashboardmetrics.New(logger, dashboardService).ServeHTTP)

			r.Post("/members", membercreate.New(logger, memberService).ServeHTTP)
			r.Get("/members", memberlist.New(logger, memberService).ServeHTTP)
			r.Get("/members/{id}", memberread.New(logger, memberService).ServeHTTP)
			r.Put("/members/{id}", memberupdate.New(logger, memberService).ServeHTTP)
			r.Delete("/members/{id}", memberremove.New(logger, memberService).ServeHTTP)

			r.Post("/memberships", membershipcreate.New(logger, membershipService).ServeHTTP)
			r.Get("/memberships", membershiplist.New(logger, membershipService).ServeHTTP)
			r.Get("/memberships/{id}", membershipread.New(logger, membershipService).ServeHTTP)
			r.Put("/memberships/{id}", membershipupdate.New(logger, membershipService).ServeHTTP)
			r.Delete("/memberships/{id}", membershipremove.New(logger, membershipService).ServeHTTP)

			r.Post("/membership-types", typecreate.New(logger, typeService).ServeHTTP)
			r.Get("/membership-types", typelist.New(logger, typeService).ServeHTTP)
			r.Get("/membership-types/{id}", typeread.New(logger, typeService).ServeHTTP)
			r.Put("/membership-types/{id}", typeupdate.New(logger, typeService).ServeHTTP)
			r.Delete("/membership-types/{id}", typeremove.New(logger, typeService).ServeHTTP)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}

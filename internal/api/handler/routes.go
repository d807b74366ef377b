package handler

import (
	"net/http"

	"github.com/comexflow/import-dashboard-api/internal/api/handler/router"
	"github.com/comexflow/import-dashboard-api/internal/usecases/columns"
	"github.com/comexflow/import-dashboard-api/internal/usecases/documents"
	"github.com/comexflow/import-dashboard-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Dashboard(services DashboardServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dashboard",
			Method:      http.MethodGet,
			Handler:     GetDashboard(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboard/bootstrap",
			Method:      http.MethodGet,
			Handler:     DashboardBootstrap(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboard/kpis",
			Method:      http.MethodGet,
			Handler:     GetDashboardKPIs(services.Dashboard),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboard/charts",
			Method:      http.MethodGet,
			Handler:     GetDashboardCharts(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboard/charts/monthly",
			Method:      http.MethodGet,
			Handler:     GetMonthlyChart(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboard/charts/countries",
			Method:      http.MethodGet,
			Handler:     GetCountriesChart(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboard/operations",
			Method:      http.MethodGet,
			Handler:     GetOperations(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboard/operations/:ref",
			Method:      http.MethodGet,
			Handler:     GetOperationDetail(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboard/filter-options",
			Method:      http.MethodGet,
			Handler:     GetFilterOptions(services.Dashboard),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboard/refresh",
			Method:      http.MethodPost,
			Handler:     RefreshDashboard(services.Dashboard),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func ColumnSettings(service columns.Configurator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/me/columns",
			Method:      http.MethodGet,
			Handler:     GetColumnSettings(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me/columns",
			Method:      http.MethodPut,
			Handler:     SaveColumnConfig(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me/columns",
			Method:      http.MethodDelete,
			Handler:     ResetColumnConfig(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

// ProcessDocuments retorna as rotas de anexos de processo, todas restritas
// a usuários com a permissão de materiais
func ProcessDocuments(service documents.Manager) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/processes/:ref/documents",
			Method:      http.MethodGet,
			Handler:     ListProcessDocuments(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireMaterialsAccess()},
		},
		{
			Path:        "/v1/processes/:ref/documents",
			Method:      http.MethodPost,
			Handler:     UploadProcessDocument(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireMaterialsAccess()},
		},
		{
			Path:        "/v1/processes/:ref/documents/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteProcessDocument(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireMaterialsAccess()},
		},
		{
			Path:        "/v1/processes/:ref/documents/download",
			Method:      http.MethodGet,
			Handler:     DownloadProcessDocuments(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireMaterialsAccess()},
		},
		{
			Path:        "/v1/documents/rules",
			Method:      http.MethodGet,
			Handler:     GetDocumentRules(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrAnalyst()},
		},
	}
}

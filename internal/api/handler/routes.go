package handler

import (
	"net/http"

	"github.com/vfg2006/competitor-radar-api/infrastructure/repository"
	"github.com/vfg2006/competitor-radar-api/internal/api/handler/router"
	"github.com/vfg2006/competitor-radar-api/internal/usecases/analyzing"
	"github.com/vfg2006/competitor-radar-api/internal/usecases/discovering"
	"github.com/vfg2006/competitor-radar-api/internal/usecases/pricing"
	"github.com/vfg2006/competitor-radar-api/pkg/middleware"
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

func Competitors(
	discoverer discovering.Discoverer,
	analyzer analyzing.Analyzer,
	runRepo repository.AnalysisRunRepository,
) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/competitors/search",
			Method:      http.MethodPost,
			Handler:     SearchCompetitors(discoverer),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/competitors/analyze",
			Method:      http.MethodPost,
			Handler:     AnalyzeCompetitors(analyzer, runRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Margin(calculator pricing.Calculator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/margin/calculate",
			Method:      http.MethodPost,
			Handler:     CalculateMargin(calculator),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Analyses(runRepo repository.AnalysisRunRepository) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/analyses",
			Method:      http.MethodGet,
			Handler:     ListAnalysisRuns(runRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/analyses/:id",
			Method:      http.MethodGet,
			Handler:     GetAnalysisRun(runRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Searches(searchRepo repository.TrackedSearchRepository) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/searches/track",
			Method:      http.MethodPost,
			Handler:     TrackSearch(searchRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/searches",
			Method:      http.MethodGet,
			Handler:     ListTrackedSearches(searchRepo),
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
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

package handler

import (
	"net/http"

	"github.com/vfg2006/outlet-analytics-api/internal/api/handler/router"
	"github.com/vfg2006/outlet-analytics-api/internal/usecases/aggregating"
)

func Healthcheck(service aggregating.Aggregator) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(service),
		},
	}
}

func Dashboard(service aggregating.Aggregator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard/kpis",
			Method:  http.MethodGet,
			Handler: GetKPIs(service),
		},
	}
}

func Sales(service aggregating.Aggregator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sales/summary",
			Method:  http.MethodGet,
			Handler: GetSalesSummary(service),
		},
		{
			Path:    "/v1/sales/trend",
			Method:  http.MethodGet,
			Handler: GetSalesTrend(service),
		},
		{
			Path:    "/v1/sales/year-over-year",
			Method:  http.MethodGet,
			Handler: GetYearOverYear(service),
		},
		{
			Path:    "/v1/sales/distribution",
			Method:  http.MethodGet,
			Handler: GetBranchDistribution(service),
		},
	}
}

func Branches(service aggregating.Aggregator, branchTopN int) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/branches",
			Method:  http.MethodGet,
			Handler: GetBranches(service, branchTopN),
		},
		{
			Path:    "/v1/branches/regions",
			Method:  http.MethodGet,
			Handler: GetRegions(service),
		},
		{
			Path:    "/v1/reports/branches.xlsx",
			Method:  http.MethodGet,
			Handler: ExportBranches(service),
		},
	}
}

func Analytics(service aggregating.Aggregator, managerTopN int) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/analytics/managers",
			Method:  http.MethodGet,
			Handler: GetManagers(service, managerTopN),
		},
		{
			Path:    "/v1/analytics/daily-trends",
			Method:  http.MethodGet,
			Handler: GetDailyTrends(service),
		},
		{
			Path:    "/v1/analytics/correlation",
			Method:  http.MethodGet,
			Handler: GetCorrelation(service),
		},
		{
			Path:    "/v1/outlets",
			Method:  http.MethodGet,
			Handler: GetOutlets(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}

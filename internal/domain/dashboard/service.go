package dashboard

import "context"

type DashboardService interface {
	GetDashboard(ctx context.Context) (DashboardResponse, error)
	GetMonthly(ctx context.Context, year, month int) (MonthlyResponse, error)
}

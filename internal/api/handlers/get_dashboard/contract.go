package get_dashboard

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/service/dashboard"
)

type DashboardService interface {
	Daily(ctx context.Context, date string) (*dashboard.Report, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

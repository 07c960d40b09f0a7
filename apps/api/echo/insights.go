package echoapi

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trezcool/attendo/core"
	"github.com/trezcool/attendo/core/attendance"
)

// maxMonthlyDays bounds the span of a calendar heat-map request.
const maxMonthlyDays = 366

type insightsApi struct {
	insights attendance.Insights
}

func registerInsightsAPI(g *echo.Group, insights attendance.Insights) {
	api := insightsApi{insights: insights}

	ig := g.Group("/attendance")
	ig.GET("/monthly", api.monthly)
	ig.GET("/analytics", api.analytics)
	ig.GET("/reports", api.reports)
}

// monthly returns the calendar heat-map of [start, end], at most maxMonthlyDays apart.
func (api *insightsApi) monthly(ctx echo.Context) error {
	start, err := queryDate(ctx, "start")
	if err != nil {
		return err
	}
	end, err := queryDate(ctx, "end")
	if err != nil {
		return err
	}
	if end.After(start.AddDate(0, 0, maxMonthlyDays)) {
		return core.NewValidationError(nil, core.FieldError{
			Field: "end",
			Error: fmt.Sprintf("end must be at most %d days after start", maxMonthlyDays),
		})
	}
	return ctx.JSON(http.StatusOK, api.insights.MonthlyAttendance(start, end))
}

func (api *insightsApi) analytics(ctx echo.Context) error {
	tr := attendance.TimeRange(core.CleanString(ctx.QueryParam("range"), true /* lower */))
	if tr == "" {
		tr = attendance.RangeMonth
	}
	if !tr.IsValid() {
		return core.NewValidationError(nil, core.FieldError{Field: "range", Error: "range must be one of week, month, quarter, year"})
	}
	return ctx.JSON(http.StatusOK, api.insights.Analytics(tr))
}

func (api *insightsApi) reports(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.insights.Reports())
}

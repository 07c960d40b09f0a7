package echoapi

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/attendo/core/attendance"
	"github.com/trezcool/attendo/core/student"
)

const objectKey = "object"

// studentObjectMiddleware loads the Student of the `:id` path param into the context.
func studentObjectMiddleware(svc *student.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			id, err := paramID(ctx)
			if err != nil {
				return err
			}
			std, err := svc.GetByID(id)
			if err != nil {
				return errors.Wrap(err, "finding student by ID")
			}
			ctx.Set(objectKey, std)
			return next(ctx)
		}
	}
}

// recordObjectMiddleware loads the attendance Record of the `:id` path param into the context.
func recordObjectMiddleware(svc *attendance.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			id, err := paramID(ctx)
			if err != nil {
				return err
			}
			rec, err := svc.GetByID(id)
			if err != nil {
				return errors.Wrap(err, "finding attendance record by ID")
			}
			ctx.Set(objectKey, rec)
			return next(ctx)
		}
	}
}

// latencyMiddleware delays every request by `d` to mimic a remote backend. Disabled when d <= 0.
func latencyMiddleware(d time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if d <= 0 {
			return next
		}
		return func(ctx echo.Context) error {
			timer := time.NewTimer(d)
			defer timer.Stop()
			select {
			case <-timer.C:
			case <-ctx.Request().Context().Done():
			}
			return next(ctx)
		}
	}
}

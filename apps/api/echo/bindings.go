package echoapi

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/trezcool/attendo/core"
)

var orderingParam = "ordering"

type Ordering struct {
	Orderings []core.Ordering
}

func (ord *Ordering) Bind(ctx echo.Context) {
	data := ctx.QueryParams()
	if len(data) == 0 {
		return
	}
	val, ok := data[orderingParam]
	if !ok || len(val) == 0 || val[0] == "" {
		return
	}

	ord.Orderings = core.ParseOrderings(val[0])
}

// paramID parses the `:id` path param; anything but a positive integer is not found.
func paramID(ctx echo.Context) (int, error) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil || id <= 0 {
		return 0, errHttpNotFound
	}
	return id, nil
}

// queryDate parses an ISO date query param.
func queryDate(ctx echo.Context, name string) (time.Time, error) {
	val := core.CleanString(ctx.QueryParam(name))
	if val == "" {
		return time.Time{}, core.NewValidationError(nil, core.FieldError{Field: name, Error: "this field is required"})
	}
	t, err := core.ParseDate(val)
	if err != nil {
		return time.Time{}, core.NewValidationError(err, core.FieldError{Field: name, Error: name + " must be a date formatted as YYYY-MM-DD"})
	}
	return t, nil
}

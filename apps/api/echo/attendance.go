package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/attendo/core"
	"github.com/trezcool/attendo/core/attendance"
	"github.com/trezcool/attendo/core/student"
)

var errRecNotFoundInCtx = errors.New("attendance record object not found in echo.Context")

type attendanceApi struct {
	svc      *attendance.Service
	stdSvc   *student.Service
	validate *validator.Validate
	metrics  *metrics
}

func registerAttendanceAPI(
	g *echo.Group,
	svc *attendance.Service,
	stdSvc *student.Service,
	validate *validator.Validate,
	m *metrics,
) {
	api := attendanceApi{
		svc:      svc,
		stdSvc:   stdSvc,
		validate: validate,
		metrics:  m,
	}

	ag := g.Group("/attendance")
	ag.GET("", api.query)
	ag.POST("", api.create)
	ag.GET("/today", api.today)
	ag.GET("/today/summary", api.todaySummary)
	ag.POST("/mark", api.mark)
	ag.GET("/lookup", api.lookup)
	ag.GET("/stats", api.stats)

	// detail endpoints
	dg := ag.Group("/:id", recordObjectMiddleware(api.svc))
	dg.GET("", api.retrieve)
	dg.PUT("", api.update)
	dg.PATCH("", api.update)
	dg.DELETE("", api.destroy)
}

// Handlers

func (api *attendanceApi) query(ctx echo.Context) error {
	filter := new(attendance.QueryFilter)
	if err := ctx.Bind(filter); err != nil {
		return ctx.JSON(http.StatusOK, []attendance.Record{})
	}
	filter.Clean()

	recs, err := api.svc.Query(*filter)
	if err != nil {
		return errors.Wrap(err, "querying attendance records")
	}
	return ctx.JSON(http.StatusOK, recs)
}

func (api *attendanceApi) create(ctx echo.Context) error {
	var data attendance.NewRecord
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewRecord")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	rec, err := api.svc.Create(data)
	if err != nil {
		return errors.Wrap(err, "creating attendance record")
	}
	return ctx.JSON(http.StatusCreated, rec)
}

func (api *attendanceApi) retrieve(ctx echo.Context) error {
	rec, ok := ctx.Get(objectKey).(attendance.Record)
	if !ok {
		return errors.Wrap(errRecNotFoundInCtx, "retrieving object from context")
	}
	return ctx.JSON(http.StatusOK, rec)
}

func (api *attendanceApi) update(ctx echo.Context) error {
	rec, ok := ctx.Get(objectKey).(attendance.Record)
	if !ok {
		return errors.Wrap(errRecNotFoundInCtx, "retrieving object from context")
	}

	var data attendance.UpdateRecord
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateRecord")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	rec, err := api.svc.Update(rec.ID, data)
	if err != nil {
		return errors.Wrap(err, "updating attendance record")
	}
	return ctx.JSON(http.StatusOK, rec)
}

func (api *attendanceApi) destroy(ctx echo.Context) error {
	rec, ok := ctx.Get(objectKey).(attendance.Record)
	if !ok {
		return errors.Wrap(errRecNotFoundInCtx, "retrieving object from context")
	}
	if err := api.svc.Delete(rec.ID); err != nil {
		return errors.Wrap(err, "deleting attendance record")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *attendanceApi) today(ctx echo.Context) error {
	recs, err := api.svc.Today()
	if err != nil {
		return errors.Wrap(err, "querying today's attendance")
	}
	return ctx.JSON(http.StatusOK, recs)
}

func (api *attendanceApi) todaySummary(ctx echo.Context) error {
	students, err := api.stdSvc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying students")
	}
	summary, err := api.svc.TodaySummary(len(students))
	if err != nil {
		return errors.Wrap(err, "summarizing today's attendance")
	}
	return ctx.JSON(http.StatusOK, summary)
}

type MarkResponse struct {
	Record  attendance.Record `json:"record"`
	Created bool              `json:"created"`
}

func (api *attendanceApi) mark(ctx echo.Context) error {
	var data attendance.MarkRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to MarkRequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	rec, created, err := api.svc.Mark(data)
	if err != nil {
		return errors.Wrap(err, "marking attendance")
	}
	api.metrics.markRecorded(rec.Status)

	code := http.StatusOK
	if created {
		code = http.StatusCreated
	}
	return ctx.JSON(code, MarkResponse{Record: rec, Created: created})
}

type LookupRequest struct {
	StudentID int    `query:"studentId" json:"studentId" validate:"required,gt=0"`
	Date      string `query:"date" json:"date" validate:"required,isodate"`
}

// lookup finds the first record of a Student on a date, the check to run before choosing create or update.
func (api *attendanceApi) lookup(ctx echo.Context) error {
	var data LookupRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to LookupRequest")
	}
	data.Date = core.CleanString(data.Date)
	if err := api.validate.Struct(data); err != nil {
		return err
	}

	rec, err := api.svc.FindForStudentOnDate(data.StudentID, data.Date)
	if err != nil {
		return errors.Wrap(err, "looking up attendance record")
	}
	return ctx.JSON(http.StatusOK, rec)
}

func (api *attendanceApi) stats(ctx echo.Context) error {
	stats, err := api.svc.Stats()
	if err != nil {
		return errors.Wrap(err, "computing attendance stats")
	}
	return ctx.JSON(http.StatusOK, stats)
}

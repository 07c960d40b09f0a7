package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/attendo/core/attendance"
	"github.com/trezcool/attendo/core/student"
)

// RosterEntry is a Student with their attendance stats and standing.
type RosterEntry struct {
	student.Student
	Stats    attendance.Stats    `json:"stats"`
	Rate     float64             `json:"attendanceRate"`
	Standing attendance.Standing `json:"standing"`
}

type rosterApi struct {
	stdSvc    *student.Service
	attendSvc *attendance.Service
}

func registerRosterAPI(g *echo.Group, stdSvc *student.Service, attendSvc *attendance.Service) {
	api := rosterApi{stdSvc: stdSvc, attendSvc: attendSvc}
	g.GET("/roster", api.query)
}

func (api *rosterApi) query(ctx echo.Context) error {
	filter := new(student.QueryFilter)
	if err := ctx.Bind(filter); err != nil {
		return ctx.JSON(http.StatusOK, []RosterEntry{})
	}
	filter.Clean()
	ordering := new(Ordering)
	ordering.Bind(ctx)

	students, err := api.stdSvc.Query(*filter, ordering.Orderings)
	if err != nil {
		return errors.Wrap(err, "querying students")
	}
	stats, err := api.attendSvc.Stats()
	if err != nil {
		return errors.Wrap(err, "computing attendance stats")
	}

	roster := make([]RosterEntry, 0, len(students))
	for _, std := range students {
		st := stats[std.ID]
		roster = append(roster, RosterEntry{
			Student:  std,
			Stats:    st,
			Rate:     st.Rate(),
			Standing: st.Standing(),
		})
	}
	return ctx.JSON(http.StatusOK, roster)
}

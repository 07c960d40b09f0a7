package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/trezcool/attendo/core"
	"github.com/trezcool/attendo/core/attendance"
	"github.com/trezcool/attendo/core/student"
	dummydb "github.com/trezcool/attendo/storage/database/dummy"
	"github.com/trezcool/attendo/storage/fixtures"
)

// checkFixtures reports every invalid entry of the fixtures.
func (cli *commandLine) checkFixtures(studentsPath, attendancePath string) error {
	students, records, err := fixtures.Load(core.FixturesConfig{StudentsPath: studentsPath, AttendancePath: attendancePath})
	if err != nil {
		return err
	}

	problems := fixtures.Check(cli.validate, cli.translator, students, records)
	for _, p := range problems {
		fmt.Fprintln(cli.out, p)
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %d problem(s)", errInvalidFixtures, len(problems))
	}
	fmt.Fprintf(cli.out, "ok: %d students, %d attendance records\n", len(students), len(records))
	return nil
}

// roster prints the students with their attendance stats and standing.
func (cli *commandLine) roster(studentsPath, attendancePath, search, ordering string) error {
	students, records, err := fixtures.Load(core.FixturesConfig{StudentsPath: studentsPath, AttendancePath: attendancePath})
	if err != nil {
		return err
	}
	db, err := dummydb.Open(students, records)
	if err != nil {
		return err
	}
	stdSvc := student.NewService(dummydb.NewStudentRepository(db))
	attendSvc := attendance.NewService(dummydb.NewAttendanceRepository(db))

	filter := student.QueryFilter{Search: search}
	filter.Clean()
	found, err := stdSvc.Query(filter, core.ParseOrderings(ordering))
	if err != nil {
		return err
	}
	stats, err := attendSvc.Stats()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cli.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCODE\tNAME\tPRESENT\tABSENT\tTARDY\tEXCUSED\tRATE\tSTANDING")
	for _, std := range found {
		st := stats[std.ID]
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\t%d\t%d\t%.0f%%\t%s\n",
			std.ID, std.StudentID, std.Name, st.Present, st.Absent, st.Tardy, st.Excused, st.Rate(), st.Standing())
	}
	return w.Flush()
}

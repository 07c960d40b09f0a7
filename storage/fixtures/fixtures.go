// Package fixtures loads the seed datasets of the in-memory stores.
package fixtures

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/trezcool/attendo/core"
	"github.com/trezcool/attendo/core/attendance"
	"github.com/trezcool/attendo/core/student"
)

const (
	studentsFile   = "students.json"
	attendanceFile = "attendance.json"
)

//go:embed students.json attendance.json
var embedded embed.FS

func read(path, fallback string) ([]byte, error) {
	if path == "" {
		return fs.ReadFile(embedded, fallback)
	}
	return os.ReadFile(path)
}

// LoadStudents decodes the students fixture at `path`, or the embedded one when `path` is empty.
func LoadStudents(path string) ([]student.Student, error) {
	data, err := read(path, studentsFile)
	if err != nil {
		return nil, errors.Wrap(err, "reading students fixture")
	}
	var students []student.Student
	if err = json.Unmarshal(data, &students); err != nil {
		return nil, errors.Wrap(err, "decoding students fixture")
	}
	return students, nil
}

// LoadAttendance decodes the attendance fixture at `path`, or the embedded one when `path` is empty.
func LoadAttendance(path string) ([]attendance.Record, error) {
	data, err := read(path, attendanceFile)
	if err != nil {
		return nil, errors.Wrap(err, "reading attendance fixture")
	}
	var records []attendance.Record
	if err = json.Unmarshal(data, &records); err != nil {
		return nil, errors.Wrap(err, "decoding attendance fixture")
	}
	return records, nil
}

func Load(conf core.FixturesConfig) ([]student.Student, []attendance.Record, error) {
	students, err := LoadStudents(conf.StudentsPath)
	if err != nil {
		return nil, nil, err
	}
	records, err := LoadAttendance(conf.AttendancePath)
	if err != nil {
		return nil, nil, err
	}
	return students, records, nil
}

// Problem is a single invalid field (or ID) found in a fixture.
type Problem struct {
	Fixture string
	Index   int
	ID      int
	Field   string
	Error   string
}

func (p Problem) String() string {
	return fmt.Sprintf("%s[%d] (id %d): %s: %s", p.Fixture, p.Index, p.ID, p.Field, p.Error)
}

// Check validates every fixture entry against the rules applied to API payloads.
func Check(
	validate *validator.Validate,
	translator ut.Translator,
	students []student.Student,
	records []attendance.Record,
) []Problem {
	var problems []Problem
	report := func(fixture string, idx, id int, err error) {
		var vErrs validator.ValidationErrors
		if !errors.As(err, &vErrs) {
			problems = append(problems, Problem{Fixture: fixture, Index: idx, ID: id, Field: "-", Error: err.Error()})
			return
		}
		for _, vErr := range vErrs {
			problems = append(problems, Problem{
				Fixture: fixture,
				Index:   idx,
				ID:      id,
				Field:   vErr.Field(),
				Error:   vErr.Translate(translator),
			})
		}
	}

	seen := make(map[int]bool, len(students))
	for i, s := range students {
		if s.ID <= 0 || seen[s.ID] {
			problems = append(problems, Problem{Fixture: studentsFile, Index: i, ID: s.ID, Field: "id", Error: "id must be positive and unique"})
		}
		seen[s.ID] = true
		ns := student.NewStudent{
			Name:        s.Name,
			StudentID:   s.StudentID,
			Email:       s.Email,
			Phone:       s.Phone,
			Address:     s.Address,
			DateOfBirth: s.DateOfBirth,
			ParentName:  s.ParentName,
			ParentPhone: s.ParentPhone,
			ParentEmail: s.ParentEmail,
		}
		if err := ns.Validate(validate); err != nil {
			report(studentsFile, i, s.ID, err)
		}
	}

	seen = make(map[int]bool, len(records))
	for i, r := range records {
		if r.ID <= 0 || seen[r.ID] {
			problems = append(problems, Problem{Fixture: attendanceFile, Index: i, ID: r.ID, Field: "id", Error: "id must be positive and unique"})
		}
		seen[r.ID] = true
		nr := attendance.NewRecord{
			StudentID:   r.StudentID,
			Date:        r.Date,
			Status:      r.Status,
			CheckInTime: r.CheckInTime,
			Note:        r.Note,
		}
		if err := nr.Validate(validate); err != nil {
			report(attendanceFile, i, r.ID, err)
		}
	}
	return problems
}

package dummydb

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/trezcool/attendo/core/attendance"
	"github.com/trezcool/attendo/core/student"
)

type (
	// DB keeps every table in process memory. Rows are kept in insertion order.
	DB struct {
		student    *studentTable
		attendance *attendanceTable
	}

	studentTable struct {
		sync.RWMutex
		table []*student.Student
	}

	attendanceTable struct {
		sync.RWMutex
		table []*attendance.Record
	}
)

// Open returns a DB seeded with copies of `students` and `records`. IDs must be unique per table.
func Open(students []student.Student, records []attendance.Record) (*DB, error) {
	db := &DB{
		student:    &studentTable{table: make([]*student.Student, 0, len(students))},
		attendance: &attendanceTable{table: make([]*attendance.Record, 0, len(records))},
	}
	seen := make(map[int]bool, len(students))
	for i := range students {
		std := students[i]
		if seen[std.ID] {
			return nil, errors.Errorf("duplicate student ID %d", std.ID)
		}
		seen[std.ID] = true
		db.student.table = append(db.student.table, &std)
	}
	seen = make(map[int]bool, len(records))
	for i := range records {
		rec := copyRecord(records[i])
		if seen[rec.ID] {
			return nil, errors.Errorf("duplicate attendance record ID %d", rec.ID)
		}
		seen[rec.ID] = true
		db.attendance.table = append(db.attendance.table, &rec)
	}
	return db, nil
}

// copyRecord detaches the CheckInTime pointer so callers never share state with the table.
func copyRecord(rec attendance.Record) attendance.Record {
	if rec.CheckInTime != nil {
		t := *rec.CheckInTime
		rec.CheckInTime = &t
	}
	return rec
}

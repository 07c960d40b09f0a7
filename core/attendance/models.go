package attendance

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/attendo/core"
)

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusTardy   Status = "tardy"
	StatusExcused Status = "excused"
)

var Statuses = []Status{StatusPresent, StatusAbsent, StatusTardy, StatusExcused}

func (s Status) IsValid() bool {
	for _, st := range Statuses {
		if s == st {
			return true
		}
	}
	return false
}

type Record struct {
	ID          int        `json:"id"`
	StudentID   int        `json:"studentId"` // not checked against the student store
	Date        string     `json:"date"`      // YYYY-MM-DD
	Status      Status     `json:"status"`
	CheckInTime *time.Time `json:"checkInTime,omitempty"`
	Note        string     `json:"note,omitempty"`
}

// NewRecord contains information needed to create a new Record.
type NewRecord struct {
	StudentID   int        `json:"studentId" validate:"required,gt=0"`
	Date        string     `json:"date" validate:"required,isodate"`
	Status      Status     `json:"status" validate:"required,oneof=present absent tardy excused"`
	CheckInTime *time.Time `json:"checkInTime"`
	Note        string     `json:"note"`
}

func (nr *NewRecord) Validate(validate *validator.Validate) error {
	nr.Date = core.CleanString(nr.Date)
	nr.Status = Status(core.CleanString(string(nr.Status), true /* lower */))
	nr.Note = core.CleanString(nr.Note)
	return validate.Struct(nr)
}

// UpdateRecord defines what information may be provided to modify an existing Record.
// Nil fields are left untouched.
type UpdateRecord struct {
	StudentID   *int       `json:"studentId" validate:"omitnil,gt=0"`
	Date        *string    `json:"date" validate:"omitnil,notblank,isodate"`
	Status      *Status    `json:"status" validate:"omitnil,oneof=present absent tardy excused"`
	CheckInTime *time.Time `json:"checkInTime"`
	Note        *string    `json:"note"`
}

func (ur *UpdateRecord) Validate(validate *validator.Validate) error {
	if ur.Date != nil {
		*ur.Date = core.CleanString(*ur.Date)
	}
	if ur.Status != nil {
		*ur.Status = Status(core.CleanString(string(*ur.Status), true /* lower */))
	}
	if ur.Note != nil {
		*ur.Note = core.CleanString(*ur.Note)
	}
	return validate.Struct(ur)
}

// Merge returns a copy of `rec` with every set field of `ur` applied (shallow merge).
func (ur UpdateRecord) Merge(rec Record) Record {
	if ur.StudentID != nil {
		rec.StudentID = *ur.StudentID
	}
	if ur.Date != nil {
		rec.Date = *ur.Date
	}
	if ur.Status != nil {
		rec.Status = *ur.Status
	}
	if ur.CheckInTime != nil {
		t := *ur.CheckInTime
		rec.CheckInTime = &t
	}
	if ur.Note != nil {
		rec.Note = *ur.Note
	}
	return rec
}

// MarkRequest records a Status for a Student on the current day.
type MarkRequest struct {
	StudentID int    `json:"studentId" validate:"required,gt=0"`
	Status    Status `json:"status" validate:"required,oneof=present absent tardy excused"`
	Note      string `json:"note"`
}

func (mr *MarkRequest) Validate(validate *validator.Validate) error {
	mr.Status = Status(core.CleanString(string(mr.Status), true /* lower */))
	mr.Note = core.CleanString(mr.Note)
	return validate.Struct(mr)
}

// Stats counts a Student's records per Status.
type Stats struct {
	Present int `json:"present"`
	Absent  int `json:"absent"`
	Tardy   int `json:"tardy"`
	Excused int `json:"excused"`
	Total   int `json:"total"`
}

func (st *Stats) add(status Status) {
	switch status {
	case StatusPresent:
		st.Present++
	case StatusAbsent:
		st.Absent++
	case StatusTardy:
		st.Tardy++
	case StatusExcused:
		st.Excused++
	default:
		return
	}
	st.Total++
}

// Standing classifies a Student by attendance rate.
type Standing string

const (
	StandingExcellent Standing = "excellent"
	StandingGood      Standing = "good"
	StandingWarning   Standing = "warning"
	StandingAtRisk    Standing = "at-risk"
	StandingUnknown   Standing = "unknown"
)

// Rate returns the percentage of present records, 0 without records.
func (st Stats) Rate() float64 {
	if st.Total == 0 {
		return 0
	}
	return float64(st.Present) / float64(st.Total) * 100
}

func (st Stats) Standing() Standing {
	if st.Total == 0 {
		return StandingUnknown
	}
	switch rate := st.Rate(); {
	case rate >= 90:
		return StandingExcellent
	case rate >= 80:
		return StandingGood
	case rate >= 70:
		return StandingWarning
	default:
		return StandingAtRisk
	}
}

// DaySummary is the status breakdown of a single day.
type DaySummary struct {
	Date     string `json:"date"`
	Students int    `json:"students"` // class size
	Marked   int    `json:"marked"`
	Present  int    `json:"present"`
	Absent   int    `json:"absent"`
	Tardy    int    `json:"tardy"`
	Excused  int    `json:"excused"`
}

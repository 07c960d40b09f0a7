package attendance

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/trezcool/attendo/core"
)

var (
	// errors
	ErrNotFound = core.NewNotFoundError("attendance record")
)

type (
	Repository interface {
		// CreateRecord assigns the next ID (max existing ID + 1) and appends the Record.
		// Several records may exist for the same (StudentID, Date).
		CreateRecord(rec Record) (Record, error)
		QueryAllRecords() ([]Record, error)
		GetRecordByID(id int) (Record, error)
		// FilterRecords applies AND operation on set QueryFilter fields; insertion order is kept.
		FilterRecords(filter QueryFilter) ([]Record, error)
		UpdateRecord(id int, data UpdateRecord) (Record, error)
		DeleteRecordByID(id int) error
	}

	Service struct {
		repo Repository
	}

	QueryFilter struct {
		StudentID int    `query:"studentId"`
		Date      string `query:"date"`
	}
)

func (qf *QueryFilter) IsEmpty() bool {
	return qf.StudentID == 0 && qf.Date == ""
}

func (qf *QueryFilter) Clean() {
	qf.Date = core.CleanString(qf.Date)
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create stores a new Record. Fields are not validated here: see NewRecord.Validate.
func (svc *Service) Create(nr NewRecord) (Record, error) {
	rec := Record{
		StudentID: nr.StudentID,
		Date:      nr.Date,
		Status:    nr.Status,
		Note:      nr.Note,
	}
	if nr.CheckInTime != nil {
		t := *nr.CheckInTime
		rec.CheckInTime = &t
	}
	return svc.repo.CreateRecord(rec)
}

func (svc *Service) QueryAll() ([]Record, error) {
	return svc.repo.QueryAllRecords()
}

func (svc *Service) Query(filter QueryFilter) ([]Record, error) {
	if filter.IsEmpty() {
		return svc.repo.QueryAllRecords()
	}
	return svc.repo.FilterRecords(filter)
}

func (svc *Service) GetByID(id int) (Record, error) {
	return svc.repo.GetRecordByID(id)
}

func (svc *Service) Update(id int, ur UpdateRecord) (Record, error) {
	return svc.repo.UpdateRecord(id, ur)
}

func (svc *Service) Delete(id int) error {
	return svc.repo.DeleteRecordByID(id)
}

// Today returns the records dated on the current local calendar day.
func (svc *Service) Today() ([]Record, error) {
	return svc.repo.FilterRecords(QueryFilter{Date: core.Today()})
}

// ForStudent returns a Student's records, most recent first. Records sharing a date keep their insertion order.
func (svc *Service) ForStudent(studentID int) ([]Record, error) {
	recs, err := svc.repo.FilterRecords(QueryFilter{StudentID: studentID})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(recs, func(i, j int) bool { return recs[i].Date > recs[j].Date })
	return recs, nil
}

// Stats groups all records by StudentID.
func (svc *Service) Stats() (map[int]Stats, error) {
	recs, err := svc.repo.QueryAllRecords()
	if err != nil {
		return nil, err
	}
	stats := make(map[int]Stats)
	for _, rec := range recs {
		st := stats[rec.StudentID]
		st.add(rec.Status)
		stats[rec.StudentID] = st
	}
	return stats, nil
}

// FindForStudentOnDate returns the first record (in insertion order) of a Student on `date`.
// Callers use it to decide between Create and Update: nothing prevents duplicates otherwise.
func (svc *Service) FindForStudentOnDate(studentID int, date string) (Record, error) {
	recs, err := svc.repo.FilterRecords(QueryFilter{StudentID: studentID, Date: date})
	if err != nil {
		return Record{}, err
	}
	if len(recs) == 0 {
		return Record{}, ErrNotFound
	}
	return recs[0], nil
}

// Mark sets a Student's Status for today, updating today's record if there is one.
// An empty note leaves the note of an existing record untouched.
// It reports whether a new record was created.
func (svc *Service) Mark(mr MarkRequest) (Record, bool, error) {
	now := core.Now()
	today := core.FormatDate(now)

	existing, err := svc.FindForStudentOnDate(mr.StudentID, today)
	switch {
	case err == nil:
		status := mr.Status
		data := UpdateRecord{Status: &status, CheckInTime: &now}
		if mr.Note != "" { // an empty note keeps the current one
			data.Note = &mr.Note
		}
		rec, err := svc.repo.UpdateRecord(existing.ID, data)
		if err != nil {
			return Record{}, false, errors.Wrap(err, "updating today's record")
		}
		return rec, false, nil
	case errors.Cause(err) == ErrNotFound:
		rec, err := svc.Create(NewRecord{
			StudentID:   mr.StudentID,
			Date:        today,
			Status:      mr.Status,
			CheckInTime: &now,
			Note:        mr.Note,
		})
		if err != nil {
			return Record{}, false, errors.Wrap(err, "creating today's record")
		}
		return rec, true, nil
	default:
		return Record{}, false, errors.Wrap(err, "finding today's record")
	}
}

// TodaySummary counts today's records per Status for a class of `students`.
func (svc *Service) TodaySummary(students int) (DaySummary, error) {
	recs, err := svc.Today()
	if err != nil {
		return DaySummary{}, err
	}
	summary := DaySummary{Date: core.Today(), Students: students, Marked: len(recs)}
	for _, rec := range recs {
		switch rec.Status {
		case StatusPresent:
			summary.Present++
		case StatusAbsent:
			summary.Absent++
		case StatusTardy:
			summary.Tardy++
		case StatusExcused:
			summary.Excused++
		}
	}
	return summary, nil
}

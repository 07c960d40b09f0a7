package attendance_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/attendo/core"
	"github.com/trezcool/attendo/core/attendance"
	dummydb "github.com/trezcool/attendo/storage/database/dummy"
)

var testNow = time.Date(2024, 9, 16, 8, 5, 0, 0, time.Local) // a Monday

func setup(t *testing.T, seed ...attendance.Record) *attendance.Service {
	db, err := dummydb.Open(nil, seed)
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	return attendance.NewService(dummydb.NewAttendanceRepository(db))
}

func fixedNow(t *testing.T) {
	t.Cleanup(core.SetNowFunc(func() time.Time { return testNow }))
}

func ids(recs []attendance.Record) []int {
	out := make([]int, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.ID)
	}
	return out
}

func TestService_CRUD(t *testing.T) {
	svc := setup(t, attendance.Record{ID: 5, StudentID: 1, Date: "2024-09-02", Status: attendance.StatusPresent})

	rec, err := svc.Create(attendance.NewRecord{StudentID: 2, Date: "2024-09-02", Status: attendance.StatusTardy, Note: "bus"})
	require.NoError(t, err)
	assert.Equal(t, attendance.Record{ID: 6, StudentID: 2, Date: "2024-09-02", Status: attendance.StatusTardy, Note: "bus"}, rec)

	excused := attendance.StatusExcused
	rec, err = svc.Update(6, attendance.UpdateRecord{Status: &excused})
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusExcused, rec.Status)
	assert.Equal(t, "bus", rec.Note)

	got, err := svc.GetByID(6)
	require.NoError(t, err)
	assert.Equal(t, rec, got)

	require.NoError(t, svc.Delete(5))
	all, err := svc.QueryAll()
	require.NoError(t, err)
	assert.Equal(t, []int{6}, ids(all))
}

func TestService_notFound(t *testing.T) {
	svc := setup(t)
	note := "x"

	tests := []struct {
		name string
		call func() error
	}{
		{name: "GetByID", call: func() error { _, err := svc.GetByID(1); return err }},
		{name: "Update", call: func() error { _, err := svc.Update(1, attendance.UpdateRecord{Note: &note}); return err }},
		{name: "Delete", call: func() error { return svc.Delete(1) }},
		{name: "FindForStudentOnDate", call: func() error { _, err := svc.FindForStudentOnDate(1, "2024-09-02"); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			assert.Equal(t, attendance.ErrNotFound, err)
			assert.True(t, core.IsNotFound(err))
			assert.EqualError(t, err, "attendance record not found")
		})
	}
}

func TestService_Stats(t *testing.T) {
	svc := setup(t,
		attendance.Record{ID: 1, StudentID: 7, Date: "2024-01-01", Status: attendance.StatusPresent},
		attendance.Record{ID: 2, StudentID: 7, Date: "2024-01-02", Status: attendance.StatusPresent},
		attendance.Record{ID: 3, StudentID: 8, Date: "2024-01-02", Status: attendance.StatusTardy},
		attendance.Record{ID: 4, StudentID: 7, Date: "2024-01-03", Status: attendance.StatusAbsent},
		attendance.Record{ID: 5, StudentID: 7, Date: "2024-01-04", Status: attendance.StatusPresent},
		attendance.Record{ID: 6, StudentID: 8, Date: "2024-01-03", Status: attendance.StatusExcused},
	)

	stats, err := svc.Stats()
	require.NoError(t, err)
	assert.Equal(t, map[int]attendance.Stats{
		7: {Present: 3, Absent: 1, Tardy: 0, Excused: 0, Total: 4},
		8: {Tardy: 1, Excused: 1, Total: 2},
	}, stats)

	t.Run("empty store", func(t *testing.T) {
		stats, err := setup(t).Stats()
		require.NoError(t, err)
		assert.Empty(t, stats)
	})
}

func TestService_ForStudent(t *testing.T) {
	svc := setup(t,
		attendance.Record{ID: 1, StudentID: 3, Date: "2024-01-01", Status: attendance.StatusPresent},
		attendance.Record{ID: 2, StudentID: 3, Date: "2024-01-15", Status: attendance.StatusAbsent},
		attendance.Record{ID: 3, StudentID: 4, Date: "2024-01-20", Status: attendance.StatusPresent},
		attendance.Record{ID: 4, StudentID: 3, Date: "2024-01-08", Status: attendance.StatusTardy},
		attendance.Record{ID: 5, StudentID: 3, Date: "2024-01-15", Status: attendance.StatusExcused},
	)

	tests := []struct {
		name      string
		studentID int
		wantIDs   []int
	}{
		{name: "most recent first, ties in insertion order", studentID: 3, wantIDs: []int{2, 5, 4, 1}},
		{name: "single record", studentID: 4, wantIDs: []int{3}},
		{name: "no records", studentID: 99, wantIDs: []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs, err := svc.ForStudent(tt.studentID)
			require.NoError(t, err)
			assert.Equal(t, tt.wantIDs, ids(recs))
		})
	}
}

func TestService_Today(t *testing.T) {
	fixedNow(t)
	svc := setup(t,
		attendance.Record{ID: 1, StudentID: 1, Date: "2024-09-13", Status: attendance.StatusPresent},
		attendance.Record{ID: 2, StudentID: 1, Date: "2024-09-16", Status: attendance.StatusPresent},
		attendance.Record{ID: 3, StudentID: 2, Date: "2024-09-16", Status: attendance.StatusAbsent},
		attendance.Record{ID: 4, StudentID: 3, Date: "2024-09-16", Status: attendance.StatusTardy},
	)

	recs, err := svc.Today()
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 4}, ids(recs))

	summary, err := svc.TodaySummary(12)
	require.NoError(t, err)
	assert.Equal(t, attendance.DaySummary{
		Date:     "2024-09-16",
		Students: 12,
		Marked:   3,
		Present:  1,
		Absent:   1,
		Tardy:    1,
	}, summary)
}

func TestService_FindForStudentOnDate_duplicates(t *testing.T) {
	svc := setup(t,
		attendance.Record{ID: 1, StudentID: 2, Date: "2024-09-02", Status: attendance.StatusPresent},
	)

	// nothing prevents a second record for the same student and date
	dup, err := svc.Create(attendance.NewRecord{StudentID: 2, Date: "2024-09-02", Status: attendance.StatusAbsent})
	require.NoError(t, err)
	assert.Equal(t, 2, dup.ID)

	all, err := svc.QueryAll()
	require.NoError(t, err)
	assert.Len(t, all, 2)

	// the lookup returns the first one in insertion order
	rec, err := svc.FindForStudentOnDate(2, "2024-09-02")
	require.NoError(t, err)
	assert.Equal(t, 1, rec.ID)
	assert.Equal(t, attendance.StatusPresent, rec.Status)
}

func TestService_Mark(t *testing.T) {
	fixedNow(t)
	svc := setup(t,
		attendance.Record{ID: 1, StudentID: 2, Date: "2024-09-13", Status: attendance.StatusPresent},
	)

	rec, created, err := svc.Mark(attendance.MarkRequest{StudentID: 2, Status: attendance.StatusTardy, Note: "late bus"})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, 2, rec.ID)
	assert.Equal(t, "2024-09-16", rec.Date)
	assert.Equal(t, attendance.StatusTardy, rec.Status)
	assert.Equal(t, "late bus", rec.Note)
	require.NotNil(t, rec.CheckInTime)
	assert.True(t, rec.CheckInTime.Equal(testNow))

	rec, created, err = svc.Mark(attendance.MarkRequest{StudentID: 2, Status: attendance.StatusPresent})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, 2, rec.ID)
	assert.Equal(t, attendance.StatusPresent, rec.Status)
	assert.Equal(t, "late bus", rec.Note) // kept without a new note

	rec, created, err = svc.Mark(attendance.MarkRequest{StudentID: 2, Status: attendance.StatusExcused, Note: "doctor appointment"})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, attendance.StatusExcused, rec.Status)
	assert.Equal(t, "doctor appointment", rec.Note)

	recs, err := svc.ForStudent(2)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1}, ids(recs))
}

package dummydb

import (
	"github.com/trezcool/attendo/core/attendance"
)

type attendanceRepository struct {
	db *attendanceTable
}

var _ attendance.Repository = (*attendanceRepository)(nil) // interface compliance check

func NewAttendanceRepository(db *DB) attendance.Repository {
	return &attendanceRepository{db: db.attendance}
}

func (repo *attendanceRepository) query() []attendance.Record {
	records := make([]attendance.Record, 0, len(repo.db.table))
	for _, r := range repo.db.table {
		records = append(records, copyRecord(*r))
	}
	return records
}

func (repo *attendanceRepository) index(id int) int {
	for i, r := range repo.db.table {
		if r.ID == id {
			return i
		}
	}
	return -1
}

func (repo *attendanceRepository) nextID() int {
	var max int
	for _, r := range repo.db.table {
		if r.ID > max {
			max = r.ID
		}
	}
	return max + 1
}

func (repo *attendanceRepository) CreateRecord(rec attendance.Record) (attendance.Record, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	rec = copyRecord(rec)
	rec.ID = repo.nextID()
	repo.db.table = append(repo.db.table, &rec)
	return copyRecord(rec), nil
}

func (repo *attendanceRepository) QueryAllRecords() ([]attendance.Record, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.query(), nil
}

func (repo *attendanceRepository) GetRecordByID(id int) (attendance.Record, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if i := repo.index(id); i >= 0 {
		return copyRecord(*repo.db.table[i]), nil
	}
	return attendance.Record{}, attendance.ErrNotFound
}

func (repo *attendanceRepository) FilterRecords(filter attendance.QueryFilter) ([]attendance.Record, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	records := make([]attendance.Record, 0)
	for _, r := range repo.db.table {
		if filter.StudentID != 0 && r.StudentID != filter.StudentID {
			continue
		}
		if filter.Date != "" && r.Date != filter.Date {
			continue
		}
		records = append(records, copyRecord(*r))
	}
	return records, nil
}

func (repo *attendanceRepository) UpdateRecord(id int, data attendance.UpdateRecord) (attendance.Record, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	// only save set fields
	i := repo.index(id)
	if i < 0 {
		return attendance.Record{}, attendance.ErrNotFound
	}
	rec := data.Merge(*repo.db.table[i])
	repo.db.table[i] = &rec
	return copyRecord(rec), nil
}

func (repo *attendanceRepository) DeleteRecordByID(id int) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	i := repo.index(id)
	if i < 0 {
		return attendance.ErrNotFound
	}
	repo.db.table = append(repo.db.table[:i], repo.db.table[i+1:]...)
	return nil
}

package dummydb

import (
	"sort"
	"strings"

	"github.com/trezcool/attendo/core"
	"github.com/trezcool/attendo/core/student"
)

type studentRepository struct {
	db *studentTable
}

var _ student.Repository = (*studentRepository)(nil) // interface compliance check

func NewStudentRepository(db *DB) student.Repository {
	return &studentRepository{db: db.student}
}

func (repo *studentRepository) query() []student.Student {
	students := make([]student.Student, 0, len(repo.db.table))
	for _, s := range repo.db.table {
		students = append(students, *s)
	}
	return students
}

func (repo *studentRepository) index(id int) int {
	for i, s := range repo.db.table {
		if s.ID == id {
			return i
		}
	}
	return -1
}

func (repo *studentRepository) nextID() int {
	var max int
	for _, s := range repo.db.table {
		if s.ID > max {
			max = s.ID
		}
	}
	return max + 1
}

func (repo *studentRepository) CreateStudent(std student.Student) (student.Student, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	std.ID = repo.nextID()
	repo.db.table = append(repo.db.table, &std)
	return std, nil
}

func (repo *studentRepository) QueryAllStudents() ([]student.Student, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.query(), nil
}

func (repo *studentRepository) GetStudentByID(id int) (student.Student, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if i := repo.index(id); i >= 0 {
		return *repo.db.table[i], nil
	}
	return student.Student{}, student.ErrNotFound
}

func (repo *studentRepository) FilterStudents(filter student.QueryFilter, orderings ...core.Ordering) ([]student.Student, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	students := repo.query()

	// students with search keyword matching any Name, StudentID or Email ?
	if filter.Search != "" {
		filtered := make([]student.Student, 0, len(students))
		for _, s := range students {
			if s.Matches(filter.Search) {
				filtered = append(filtered, s)
			}
		}
		students = filtered
	}
	if len(orderings) > 0 {
		sort.SliceStable(students, func(i, j int) bool {
			return lessStudent(students[i], students[j], orderings)
		})
	}
	return students, nil
}

func (repo *studentRepository) UpdateStudent(id int, data student.UpdateStudent) (student.Student, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	// only save set fields
	i := repo.index(id)
	if i < 0 {
		return student.Student{}, student.ErrNotFound
	}
	std := data.Merge(*repo.db.table[i])
	repo.db.table[i] = &std
	return std, nil
}

func (repo *studentRepository) DeleteStudentByID(id int) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	i := repo.index(id)
	if i < 0 {
		return student.ErrNotFound
	}
	repo.db.table = append(repo.db.table[:i], repo.db.table[i+1:]...)
	return nil
}

// lessStudent compares two students on each ordering in turn. Unknown fields are ignored.
func lessStudent(a, b student.Student, orderings []core.Ordering) bool {
	for _, ord := range orderings {
		var cmp int
		switch ord.Field {
		case "id":
			cmp = a.ID - b.ID
		case "name":
			cmp = strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		case "studentId":
			cmp = strings.Compare(a.StudentID, b.StudentID)
		case "email":
			cmp = strings.Compare(a.Email, b.Email)
		case "enrollmentDate":
			switch {
			case a.EnrollmentDate.Before(b.EnrollmentDate):
				cmp = -1
			case a.EnrollmentDate.After(b.EnrollmentDate):
				cmp = 1
			}
		}
		if cmp == 0 {
			continue
		}
		if ord.Ascending {
			return cmp < 0
		}
		return cmp > 0
	}
	return false
}

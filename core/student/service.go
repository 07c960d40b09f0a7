package student

import (
	"github.com/trezcool/attendo/core"
)

var (
	// errors
	ErrNotFound = core.NewNotFoundError("student")
)

type (
	Repository interface {
		// CreateStudent assigns the next ID (max existing ID + 1) and appends the Student.
		CreateStudent(std Student) (Student, error)
		QueryAllStudents() ([]Student, error)
		GetStudentByID(id int) (Student, error)
		// FilterStudents does a case-insensitive match of QueryFilter.Search on one of
		// Student.Name, Student.StudentID or Student.Email, then sorts by `orderings`.
		FilterStudents(filter QueryFilter, orderings ...core.Ordering) ([]Student, error)
		UpdateStudent(id int, data UpdateStudent) (Student, error)
		DeleteStudentByID(id int) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create stores a new Student. Fields are not validated here: see NewStudent.Validate.
func (svc *Service) Create(ns NewStudent) (Student, error) {
	std := Student{
		Name:           ns.Name,
		StudentID:      ns.StudentID,
		Email:          ns.Email,
		Phone:          ns.Phone,
		Address:        ns.Address,
		DateOfBirth:    ns.DateOfBirth,
		EnrollmentDate: core.Now(),
		ParentName:     ns.ParentName,
		ParentPhone:    ns.ParentPhone,
		ParentEmail:    ns.ParentEmail,
	}
	return svc.repo.CreateStudent(std)
}

func (svc *Service) QueryAll() ([]Student, error) {
	return svc.repo.QueryAllStudents()
}

func (svc *Service) GetByID(id int) (Student, error) {
	return svc.repo.GetStudentByID(id)
}

func (svc *Service) Query(filter QueryFilter, orderings []core.Ordering) ([]Student, error) {
	if filter.IsEmpty() && len(orderings) == 0 {
		return svc.repo.QueryAllStudents()
	}
	return svc.repo.FilterStudents(filter, orderings...)
}

func (svc *Service) Update(id int, us UpdateStudent) (Student, error) {
	return svc.repo.UpdateStudent(id, us)
}

func (svc *Service) Delete(id int) error {
	return svc.repo.DeleteStudentByID(id)
}

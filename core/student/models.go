package student

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/attendo/core"
)

type Student struct {
	ID             int       `json:"id"`
	Name           string    `json:"name"`
	StudentID      string    `json:"studentId"` // display code, e.g. STU001
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Address        string    `json:"address"`
	DateOfBirth    string    `json:"dateOfBirth"`    // YYYY-MM-DD
	EnrollmentDate time.Time `json:"enrollmentDate"` // stamped on creation
	ParentName     string    `json:"parentName,omitempty"`
	ParentPhone    string    `json:"parentPhone,omitempty"`
	ParentEmail    string    `json:"parentEmail,omitempty"`
}

// Matches reports whether `search` is contained in the Student's name, code or email (case-insensitive).
func (s Student) Matches(search string) bool {
	search = strings.ToLower(search)
	return strings.Contains(strings.ToLower(s.Name), search) ||
		strings.Contains(strings.ToLower(s.StudentID), search) ||
		strings.Contains(strings.ToLower(s.Email), search)
}

// NewStudent contains information needed to create a new Student.
type NewStudent struct {
	Name        string `json:"name" validate:"required"`
	StudentID   string `json:"studentId" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"required"`
	Address     string `json:"address"`
	DateOfBirth string `json:"dateOfBirth" validate:"required,isodate"`
	ParentName  string `json:"parentName"`
	ParentPhone string `json:"parentPhone"`
	ParentEmail string `json:"parentEmail" validate:"omitempty,email"`
}

func (ns *NewStudent) Validate(validate *validator.Validate) error {
	ns.Name = core.CleanString(ns.Name)
	ns.StudentID = core.CleanString(ns.StudentID)
	ns.Email = core.CleanString(ns.Email, true /* lower */)
	ns.Phone = core.CleanString(ns.Phone)
	ns.Address = core.CleanString(ns.Address)
	ns.DateOfBirth = core.CleanString(ns.DateOfBirth)
	ns.ParentName = core.CleanString(ns.ParentName)
	ns.ParentPhone = core.CleanString(ns.ParentPhone)
	ns.ParentEmail = core.CleanString(ns.ParentEmail, true /* lower */)
	return validate.Struct(ns)
}

// UpdateStudent defines what information may be provided to modify an existing Student.
// Nil fields are left untouched.
type UpdateStudent struct {
	Name        *string `json:"name" validate:"omitnil,notblank"`
	StudentID   *string `json:"studentId" validate:"omitnil,notblank"`
	Email       *string `json:"email" validate:"omitnil,notblank,email"`
	Phone       *string `json:"phone" validate:"omitnil,notblank"`
	Address     *string `json:"address"`
	DateOfBirth *string `json:"dateOfBirth" validate:"omitnil,notblank,isodate"`
	ParentName  *string `json:"parentName"`
	ParentPhone *string `json:"parentPhone"`
	ParentEmail *string `json:"parentEmail" validate:"omitnil,email_or_empty"`
}

func (us *UpdateStudent) Validate(validate *validator.Validate) error {
	clean := func(s *string, lower ...bool) {
		if s != nil {
			*s = core.CleanString(*s, lower...)
		}
	}
	clean(us.Name)
	clean(us.StudentID)
	clean(us.Email, true /* lower */)
	clean(us.Phone)
	clean(us.Address)
	clean(us.DateOfBirth)
	clean(us.ParentName)
	clean(us.ParentPhone)
	clean(us.ParentEmail, true /* lower */)
	return validate.Struct(us)
}

// Merge returns a copy of `std` with every set field of `us` applied (shallow merge).
func (us UpdateStudent) Merge(std Student) Student {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&std.Name, us.Name)
	set(&std.StudentID, us.StudentID)
	set(&std.Email, us.Email)
	set(&std.Phone, us.Phone)
	set(&std.Address, us.Address)
	set(&std.DateOfBirth, us.DateOfBirth)
	set(&std.ParentName, us.ParentName)
	set(&std.ParentPhone, us.ParentPhone)
	set(&std.ParentEmail, us.ParentEmail)
	return std
}

type QueryFilter struct {
	Search string `query:"search"`
}

func (qf *QueryFilter) IsEmpty() bool {
	return qf.Search == ""
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
}

package models

import "gorm.io/datatypes"

// Role discriminates the three account variants stored in the users table.
type Role string

const (
	// RoleStudent is an undergraduate looking for a placement.
	RoleStudent Role = "student"
	// RoleCompanyRep is a company representative posting internships.
	RoleCompanyRep Role = "company_rep"
	// RoleCareerStaff is a career-center administrator.
	RoleCareerStaff Role = "career_staff"
)

// MaxActiveApplications caps how many applications a student may hold at once.
const MaxActiveApplications = 3

// MaxOwnedInternships caps how many internships a representative may create.
const MaxOwnedInternships = 5

// User is a single account record covering all three roles. Role-specific
// columns are zero-valued for the roles that do not use them; dispatch is by
// switching on Role rather than by subtype.
type User struct {
	ID       string `gorm:"primaryKey;size:255" json:"id"`
	Name     string `gorm:"size:255;not null" json:"name"`
	Password string `gorm:"size:255;not null" json:"-"`
	Role     Role   `gorm:"size:32;not null" json:"role"`

	// Student fields.
	YearOfStudy           int                         `json:"year_of_study,omitempty"`
	Major                 string                      `gorm:"size:32" json:"major,omitempty"`
	ApplicationIDs        datatypes.JSONSlice[string] `json:"application_ids,omitempty"`
	ConfirmedInternshipID string                      `gorm:"size:32" json:"confirmed_internship_id,omitempty"`

	// Company representative fields.
	CompanyName   string                      `gorm:"size:255" json:"company_name,omitempty"`
	Position      string                      `gorm:"size:255" json:"position,omitempty"`
	Approved      bool                        `json:"approved,omitempty"`
	InternshipIDs datatypes.JSONSlice[string] `json:"internship_ids,omitempty"`

	// Department is set for both representatives and career staff.
	Department string `gorm:"size:255" json:"department,omitempty"`
}

// NewStudent builds a student account.
func NewStudent(id, name, password string, yearOfStudy int, major string) *User {
	return &User{
		ID:          id,
		Name:        name,
		Password:    password,
		Role:        RoleStudent,
		YearOfStudy: yearOfStudy,
		Major:       major,
	}
}

// NewCompanyRep builds an unapproved company representative account.
func NewCompanyRep(id, name, password, companyName, department, position string) *User {
	return &User{
		ID:          id,
		Name:        name,
		Password:    password,
		Role:        RoleCompanyRep,
		CompanyName: companyName,
		Department:  department,
		Position:    position,
	}
}

// NewCareerStaff builds a career-center staff account.
func NewCareerStaff(id, name, password, department string) *User {
	return &User{
		ID:         id,
		Name:       name,
		Password:   password,
		Role:       RoleCareerStaff,
		Department: department,
	}
}

// HasConfirmedInternship reports whether the student locked in a placement.
func (u *User) HasConfirmedInternship() bool {
	return u.ConfirmedInternshipID != ""
}

// AtApplicationLimit reports whether the student holds the maximum number of
// active applications.
func (u *User) AtApplicationLimit() bool {
	return len(u.ApplicationIDs) >= MaxActiveApplications
}

// AddApplication appends an application to the student's active list. It
// refuses duplicates and additions past the limit.
func (u *User) AddApplication(applicationID string) bool {
	if u.AtApplicationLimit() || containsID(u.ApplicationIDs, applicationID) {
		return false
	}
	u.ApplicationIDs = append(u.ApplicationIDs, applicationID)
	return true
}

// RemoveApplication drops an application from the student's active list.
func (u *User) RemoveApplication(applicationID string) bool {
	next, removed := removeID(u.ApplicationIDs, applicationID)
	u.ApplicationIDs = next
	return removed
}

// AtInternshipLimit reports whether the representative owns the maximum number
// of internships.
func (u *User) AtInternshipLimit() bool {
	return len(u.InternshipIDs) >= MaxOwnedInternships
}

// AddInternship appends an internship to the representative's owned list. It
// refuses duplicates and additions past the limit.
func (u *User) AddInternship(internshipID string) bool {
	if u.AtInternshipLimit() || containsID(u.InternshipIDs, internshipID) {
		return false
	}
	u.InternshipIDs = append(u.InternshipIDs, internshipID)
	return true
}

// RemoveInternship drops an internship from the representative's owned list.
func (u *User) RemoveInternship(internshipID string) bool {
	next, removed := removeID(u.InternshipIDs, internshipID)
	u.InternshipIDs = next
	return removed
}

func containsID(ids []string, id string) bool {
	for _, existing := range ids {
		if existing == id {
			return true
		}
	}
	return false
}

func removeID(ids []string, id string) ([]string, bool) {
	for i, existing := range ids {
		if existing == id {
			return append(ids[:i], ids[i+1:]...), true
		}
	}
	return ids, false
}

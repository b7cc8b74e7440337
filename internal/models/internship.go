package models

import (
	"strings"
	"time"

	"gorm.io/datatypes"
)

const (
	// InternshipStatusPending indicates the posting awaits staff review.
	InternshipStatusPending = "pending"
	// InternshipStatusApproved indicates the posting is open to students.
	InternshipStatusApproved = "approved"
	// InternshipStatusRejected indicates staff declined the posting.
	InternshipStatusRejected = "rejected"
	// InternshipStatusFilled indicates every slot has a confirmed student.
	InternshipStatusFilled = "filled"
)

const (
	// LevelBasic is open to all years of study.
	LevelBasic = "basic"
	// LevelIntermediate requires year 3 or above.
	LevelIntermediate = "intermediate"
	// LevelAdvanced requires year 3 or above.
	LevelAdvanced = "advanced"
)

// MajorAny is the wildcard preferred major accepting every student.
const MajorAny = "ANY"

// MaxTotalSlots is the capacity ceiling for a single internship.
const MaxTotalSlots = 10

// Internship is a company posting with slot accounting. AvailableSlots always
// equals TotalSlots minus the number of confirmed students.
type Internship struct {
	ID                  string                      `gorm:"primaryKey;size:32" json:"id"`
	Title               string                      `gorm:"size:255;not null" json:"title"`
	Description         string                      `gorm:"type:text" json:"description"`
	Level               string                      `gorm:"size:32;not null" json:"level"`
	PreferredMajor      string                      `gorm:"size:32;not null" json:"preferred_major"`
	OpeningDate         time.Time                   `json:"opening_date"`
	ClosingDate         time.Time                   `json:"closing_date"`
	Status              string                      `gorm:"size:32;not null" json:"status"`
	CompanyName         string                      `gorm:"size:255;not null" json:"company_name"`
	CompanyRepID        string                      `gorm:"size:255;not null" json:"company_rep_id"`
	TotalSlots          int                         `json:"total_slots"`
	AvailableSlots      int                         `json:"available_slots"`
	Visible             bool                        `json:"visible"`
	ApplicationIDs      datatypes.JSONSlice[string] `json:"application_ids"`
	ConfirmedStudentIDs datatypes.JSONSlice[string] `json:"confirmed_student_ids"`
}

// NewInternship builds a pending, visible internship. Slot counts above the
// ceiling are clamped to MaxTotalSlots.
func NewInternship(id, title, description, level, preferredMajor string, openingDate, closingDate time.Time, companyName, companyRepID string, totalSlots int) *Internship {
	if totalSlots > MaxTotalSlots {
		totalSlots = MaxTotalSlots
	}
	return &Internship{
		ID:             id,
		Title:          title,
		Description:    description,
		Level:          level,
		PreferredMajor: preferredMajor,
		OpeningDate:    openingDate,
		ClosingDate:    closingDate,
		Status:         InternshipStatusPending,
		CompanyName:    companyName,
		CompanyRepID:   companyRepID,
		TotalSlots:     totalSlots,
		AvailableSlots: totalSlots,
		Visible:        true,
	}
}

// AddApplication links an application to the internship, ignoring duplicates.
func (i *Internship) AddApplication(applicationID string) {
	if !containsID(i.ApplicationIDs, applicationID) {
		i.ApplicationIDs = append(i.ApplicationIDs, applicationID)
	}
}

// RemoveApplication unlinks an application from the internship.
func (i *Internship) RemoveApplication(applicationID string) {
	i.ApplicationIDs, _ = removeID(i.ApplicationIDs, applicationID)
}

// ConfirmStudent consumes one slot for the given student. The internship
// becomes filled when the last slot goes.
func (i *Internship) ConfirmStudent(studentID string) bool {
	if i.AvailableSlots <= 0 || containsID(i.ConfirmedStudentIDs, studentID) {
		return false
	}
	i.ConfirmedStudentIDs = append(i.ConfirmedStudentIDs, studentID)
	i.AvailableSlots--
	if i.AvailableSlots == 0 {
		i.Status = InternshipStatusFilled
	}
	return true
}

// RemoveConfirmedStudent frees the slot held by the given student and reopens
// a filled internship.
func (i *Internship) RemoveConfirmedStudent(studentID string) bool {
	next, removed := removeID(i.ConfirmedStudentIDs, studentID)
	if !removed {
		return false
	}
	i.ConfirmedStudentIDs = next
	i.AvailableSlots++
	if i.Status == InternshipStatusFilled {
		i.Status = InternshipStatusApproved
	}
	return true
}

// AcceptingApplications reports whether the internship takes new applications
// on the given date.
func (i *Internship) AcceptingApplications(today time.Time) bool {
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return i.Status == InternshipStatusApproved &&
		i.Visible &&
		!day.Before(i.OpeningDate) &&
		!day.After(i.ClosingDate) &&
		i.AvailableSlots > 0
}

// EligibleFor reports whether a student with the given year and major may view
// or apply. Years 1 and 2 are restricted to basic-level postings.
func (i *Internship) EligibleFor(yearOfStudy int, major string) bool {
	if !strings.EqualFold(i.PreferredMajor, major) && !strings.EqualFold(i.PreferredMajor, MajorAny) {
		return false
	}
	if yearOfStudy <= 2 && i.Level != LevelBasic {
		return false
	}
	return true
}

package models

import "time"

const (
	// ApplicationStatusPending indicates the company has not decided yet.
	ApplicationStatusPending = "pending"
	// ApplicationStatusSuccessful indicates the company approved the application.
	ApplicationStatusSuccessful = "successful"
	// ApplicationStatusUnsuccessful indicates the company rejected the application.
	ApplicationStatusUnsuccessful = "unsuccessful"
	// ApplicationStatusWithdrawn indicates the application was withdrawn.
	ApplicationStatusWithdrawn = "withdrawn"
)

// Application ties a student to an internship they applied for.
type Application struct {
	ID                 string    `gorm:"primaryKey;size:32" json:"id"`
	StudentID          string    `gorm:"size:255;not null" json:"student_id"`
	InternshipID       string    `gorm:"size:32;not null" json:"internship_id"`
	Status             string    `gorm:"size:32;not null" json:"status"`
	AppliedAt          time.Time `json:"applied_at"`
	PlacementConfirmed bool      `json:"placement_confirmed"`
}

// NewApplication builds a pending application stamped with the current time.
func NewApplication(id, studentID, internshipID string) *Application {
	return &Application{
		ID:           id,
		StudentID:    studentID,
		InternshipID: internshipID,
		Status:       ApplicationStatusPending,
		AppliedAt:    time.Now(),
	}
}

// Active reports whether the application still counts against the student's
// application limit.
func (a *Application) Active() bool {
	return a.Status == ApplicationStatusPending || a.Status == ApplicationStatusSuccessful
}

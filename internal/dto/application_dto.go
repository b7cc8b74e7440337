package dto

import "time"

// ApplicationRow is an application joined with its internship for display.
type ApplicationRow struct {
	ApplicationID      string
	InternshipID       string
	InternshipTitle    string
	CompanyName        string
	Status             string
	AppliedAt          time.Time
	PlacementConfirmed bool
}

// ApplicantRow is an application joined with its student for the company view.
type ApplicantRow struct {
	ApplicationID string
	StudentID     string
	StudentName   string
	YearOfStudy   int
	Major         string
	Status        string
	AppliedAt     time.Time
}

// WithdrawalRequestInput carries a student's withdrawal request.
type WithdrawalRequestInput struct {
	ApplicationID string `validate:"required"`
	Reason        string `validate:"required,min=1"`
}

// WithdrawalRow is a withdrawal request joined with its application, student
// and internship for the staff review view.
type WithdrawalRow struct {
	RequestID         string
	ApplicationID     string
	StudentID         string
	StudentName       string
	InternshipTitle   string
	Reason            string
	Status            string
	RequestedAt       time.Time
	AfterConfirmation bool
}

// PendingRepRow is an unapproved company representative awaiting staff review.
type PendingRepRow struct {
	Email       string
	Name        string
	CompanyName string
	Department  string
	Position    string
}

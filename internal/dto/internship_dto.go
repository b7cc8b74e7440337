package dto

import "time"

// CreateInternshipInput carries the fields required to post an internship.
// Dates use the yyyy-MM-dd console format.
type CreateInternshipInput struct {
	Title          string `validate:"required,min=1"`
	Description    string `validate:"required,min=1"`
	Level          string `validate:"required,oneof=basic intermediate advanced"`
	PreferredMajor string `validate:"required,min=1"`
	OpeningDate    string `validate:"required,datetime=2006-01-02"`
	ClosingDate    string `validate:"required,datetime=2006-01-02"`
	TotalSlots     int    `validate:"required,min=1,max=10"`
}

// UpdateInternshipInput carries the edit flow's mutable fields. Empty values
// keep the current ones.
type UpdateInternshipInput struct {
	Title       string `validate:"omitempty,min=1"`
	Description string `validate:"omitempty,min=1"`
}

// InternshipView is the display projection of an internship.
type InternshipView struct {
	ID             string
	Title          string
	Description    string
	Level          string
	PreferredMajor string
	OpeningDate    time.Time
	ClosingDate    time.Time
	Status         string
	CompanyName    string
	TotalSlots     int
	AvailableSlots int
	Visible        bool
	Applications   int
	Confirmed      int
}

package dto

// ReportFilter narrows the staff internship report. Zero values mean no
// filtering on that dimension; Company matches as a case-insensitive
// substring.
type ReportFilter struct {
	Status  string `validate:"omitempty,oneof=pending approved rejected filled"`
	Major   string `validate:"omitempty,min=1"`
	Level   string `validate:"omitempty,oneof=basic intermediate advanced"`
	Company string `validate:"omitempty,min=1"`
}

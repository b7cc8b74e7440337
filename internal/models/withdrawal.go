package models

import "time"

const (
	// WithdrawalStatusPending indicates the request awaits staff review.
	WithdrawalStatusPending = "pending"
	// WithdrawalStatusApproved indicates staff granted the withdrawal.
	WithdrawalStatusApproved = "approved"
	// WithdrawalStatusRejected indicates staff declined the withdrawal.
	WithdrawalStatusRejected = "rejected"
)

// WithdrawalRequest is a staff-reviewed request to cancel an application.
// AfterConfirmation marks requests filed after the placement was locked in,
// since approving those must also free the internship slot.
type WithdrawalRequest struct {
	ID                string    `gorm:"primaryKey;size:32" json:"id"`
	ApplicationID     string    `gorm:"size:32;not null" json:"application_id"`
	StudentID         string    `gorm:"size:255;not null" json:"student_id"`
	Reason            string    `gorm:"type:text;not null" json:"reason"`
	Status            string    `gorm:"size:32;not null" json:"status"`
	RequestedAt       time.Time `json:"requested_at"`
	AfterConfirmation bool      `json:"after_confirmation"`
}

// NewWithdrawalRequest builds a pending request stamped with the current time.
func NewWithdrawalRequest(id, applicationID, studentID, reason string, afterConfirmation bool) *WithdrawalRequest {
	return &WithdrawalRequest{
		ID:                id,
		ApplicationID:     applicationID,
		StudentID:         studentID,
		Reason:            reason,
		Status:            WithdrawalStatusPending,
		RequestedAt:       time.Now(),
		AfterConfirmation: afterConfirmation,
	}
}

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestInternship(t *testing.T, totalSlots int) *Internship {
	t.Helper()
	opening := time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)
	closing := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	return NewInternship("INT0001", "Backend Intern", "Go services", LevelBasic, "CSC", opening, closing, "Acme", "rep@acme.com", totalSlots)
}

func TestNewInternshipClampsSlots(t *testing.T) {
	internship := newTestInternship(t, 12)
	require.Equal(t, MaxTotalSlots, internship.TotalSlots)
	require.Equal(t, MaxTotalSlots, internship.AvailableSlots)
	require.Equal(t, InternshipStatusPending, internship.Status)
	require.True(t, internship.Visible)
}

func TestConfirmStudentSlotAccounting(t *testing.T) {
	internship := newTestInternship(t, 2)
	internship.Status = InternshipStatusApproved

	require.True(t, internship.ConfirmStudent("U2345123F"))
	require.Equal(t, 1, internship.AvailableSlots)
	require.Equal(t, InternshipStatusApproved, internship.Status)

	// Same student cannot consume a second slot.
	require.False(t, internship.ConfirmStudent("U2345123F"))

	require.True(t, internship.ConfirmStudent("U2345124G"))
	require.Equal(t, 0, internship.AvailableSlots)
	require.Equal(t, InternshipStatusFilled, internship.Status)

	require.False(t, internship.ConfirmStudent("U2345125H"))

	require.Equal(t, internship.TotalSlots-len(internship.ConfirmedStudentIDs), internship.AvailableSlots)
}

func TestRemoveConfirmedStudentReopensFilled(t *testing.T) {
	internship := newTestInternship(t, 1)
	internship.Status = InternshipStatusApproved
	require.True(t, internship.ConfirmStudent("U2345123F"))
	require.Equal(t, InternshipStatusFilled, internship.Status)

	require.True(t, internship.RemoveConfirmedStudent("U2345123F"))
	require.Equal(t, 1, internship.AvailableSlots)
	require.Equal(t, InternshipStatusApproved, internship.Status)

	require.False(t, internship.RemoveConfirmedStudent("U2345123F"))
}

func TestAcceptingApplicationsWindow(t *testing.T) {
	internship := newTestInternship(t, 3)
	internship.Status = InternshipStatusApproved

	inside := time.Date(2025, 11, 15, 13, 30, 0, 0, time.UTC)
	require.True(t, internship.AcceptingApplications(inside))

	require.False(t, internship.AcceptingApplications(time.Date(2025, 10, 31, 0, 0, 0, 0, time.UTC)))
	require.False(t, internship.AcceptingApplications(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)))

	// Boundary days are open.
	require.True(t, internship.AcceptingApplications(time.Date(2025, 11, 1, 9, 0, 0, 0, time.UTC)))
	require.True(t, internship.AcceptingApplications(time.Date(2025, 12, 31, 23, 0, 0, 0, time.UTC)))

	internship.Visible = false
	require.False(t, internship.AcceptingApplications(inside))
	internship.Visible = true

	internship.AvailableSlots = 0
	require.False(t, internship.AcceptingApplications(inside))
}

func TestEligibleForYearAndMajor(t *testing.T) {
	internship := newTestInternship(t, 3)

	require.True(t, internship.EligibleFor(1, "CSC"))
	require.True(t, internship.EligibleFor(4, "csc"))
	require.False(t, internship.EligibleFor(3, "EEE"))

	internship.PreferredMajor = MajorAny
	require.True(t, internship.EligibleFor(3, "EEE"))

	// Years 1 and 2 only see basic-level postings.
	internship.Level = LevelIntermediate
	require.False(t, internship.EligibleFor(2, "EEE"))
	require.True(t, internship.EligibleFor(3, "EEE"))
}

package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/careerdesk/careerdesk/internal/models"
	"github.com/careerdesk/careerdesk/internal/store"
)

func TestReviewCompanyRep(t *testing.T) {
	st := store.New()
	svc := NewStaffService(st, testLogger())

	rep := models.NewCompanyRep("rep@acme.com", "Jane Doe", "password", "Acme", "HR", "Manager")
	st.AddUser(rep)

	rows := svc.PendingCompanyReps()
	require.Len(t, rows, 1)
	require.Equal(t, "rep@acme.com", rows[0].Email)

	require.NoError(t, svc.ReviewCompanyRep("rep@acme.com", true))
	require.True(t, rep.Approved)
	require.Empty(t, svc.PendingCompanyReps())

	// Approving twice is not a pending registration anymore.
	require.ErrorIs(t, svc.ReviewCompanyRep("rep@acme.com", true), ErrRepNotFound)
}

func TestReviewCompanyRepRejectionRemovesAccount(t *testing.T) {
	st := store.New()
	svc := NewStaffService(st, testLogger())

	rep := models.NewCompanyRep("rep@acme.com", "Jane Doe", "password", "Acme", "HR", "Manager")
	st.AddUser(rep)

	require.NoError(t, svc.ReviewCompanyRep("rep@acme.com", false))
	_, ok := st.UserByID("rep@acme.com")
	require.False(t, ok)

	require.ErrorIs(t, svc.ReviewCompanyRep("rep@acme.com", false), ErrRepNotFound)
	require.ErrorIs(t, svc.ReviewCompanyRep("U2345123F", true), ErrRepNotFound)
}

func TestReviewInternship(t *testing.T) {
	st := store.New()
	rep := testRep(st)
	company := NewCompanyService(st, testValidator(), testLogger())
	svc := NewStaffService(st, testLogger())

	approved, err := company.CreateInternship(rep, createInput("Backend Intern"))
	require.NoError(t, err)
	rejected, err := company.CreateInternship(rep, createInput("Audit Intern"))
	require.NoError(t, err)

	pending := svc.PendingInternships()
	require.Len(t, pending, 2)
	require.Equal(t, "Audit Intern", pending[0].Title)
	require.Equal(t, "Backend Intern", pending[1].Title)

	require.NoError(t, svc.ReviewInternship(approved.ID, true))
	require.Equal(t, models.InternshipStatusApproved, approved.Status)

	require.NoError(t, svc.ReviewInternship(rejected.ID, false))
	require.Equal(t, models.InternshipStatusRejected, rejected.Status)

	require.Empty(t, svc.PendingInternships())

	// A second decision leaves the outcome untouched.
	require.ErrorIs(t, svc.ReviewInternship(approved.ID, false), ErrNotPending)
	require.Equal(t, models.InternshipStatusApproved, approved.Status)

	require.ErrorIs(t, svc.ReviewInternship("INT9999", true), ErrInternshipNotFound)
}

func TestReviewWithdrawalBeforeConfirmation(t *testing.T) {
	st := store.New()
	rep := testRep(st)
	student := testStudent(st)
	svc := NewStaffService(st, testLogger())

	internship := openInternship(t, st, rep, "Backend Intern", 2)
	application := models.NewApplication(st.NextApplicationID(), student.ID, internship.ID)
	st.AddApplication(application)
	require.True(t, student.AddApplication(application.ID))

	request := models.NewWithdrawalRequest(st.NextWithdrawalID(), application.ID, student.ID, "changed plans", false)
	st.AddWithdrawal(request)

	rows := svc.PendingWithdrawals()
	require.Len(t, rows, 1)
	require.Equal(t, "Backend Intern", rows[0].InternshipTitle)
	require.Equal(t, "John Tan", rows[0].StudentName)
	require.False(t, rows[0].AfterConfirmation)

	require.NoError(t, svc.ReviewWithdrawal(request.ID, true))
	require.Equal(t, models.WithdrawalStatusApproved, request.Status)
	require.Equal(t, models.ApplicationStatusWithdrawn, application.Status)
	require.NotContains(t, []string(student.ApplicationIDs), application.ID)
	require.Equal(t, 2, internship.AvailableSlots, "slots untouched for unconfirmed placements")

	require.ErrorIs(t, svc.ReviewWithdrawal(request.ID, true), ErrNotPending)
}

func TestReviewWithdrawalAfterConfirmationFreesSlot(t *testing.T) {
	st := store.New()
	rep := testRep(st)
	student := testStudent(st)
	svc := NewStaffService(st, testLogger())

	internship := openInternship(t, st, rep, "Backend Intern", 1)
	application := models.NewApplication(st.NextApplicationID(), student.ID, internship.ID)
	application.Status = models.ApplicationStatusSuccessful
	st.AddApplication(application)
	require.True(t, student.AddApplication(application.ID))

	require.True(t, internship.ConfirmStudent(student.ID))
	application.PlacementConfirmed = true
	student.ConfirmedInternshipID = internship.ID
	require.Equal(t, models.InternshipStatusFilled, internship.Status)

	request := models.NewWithdrawalRequest(st.NextWithdrawalID(), application.ID, student.ID, "relocating", true)
	st.AddWithdrawal(request)

	require.NoError(t, svc.ReviewWithdrawal(request.ID, true))

	require.Equal(t, models.ApplicationStatusWithdrawn, application.Status)
	require.False(t, application.PlacementConfirmed)
	require.Equal(t, "", student.ConfirmedInternshipID)
	require.Equal(t, 1, internship.AvailableSlots)
	require.Equal(t, models.InternshipStatusApproved, internship.Status, "filled internship reopens")
	require.NotContains(t, []string(internship.ConfirmedStudentIDs), student.ID)
}

func TestReviewWithdrawalRejection(t *testing.T) {
	st := store.New()
	rep := testRep(st)
	student := testStudent(st)
	svc := NewStaffService(st, testLogger())

	internship := openInternship(t, st, rep, "Backend Intern", 2)
	application := models.NewApplication(st.NextApplicationID(), student.ID, internship.ID)
	st.AddApplication(application)
	require.True(t, student.AddApplication(application.ID))

	request := models.NewWithdrawalRequest(st.NextWithdrawalID(), application.ID, student.ID, "changed plans", false)
	st.AddWithdrawal(request)

	require.NoError(t, svc.ReviewWithdrawal(request.ID, false))
	require.Equal(t, models.WithdrawalStatusRejected, request.Status)
	require.Equal(t, models.ApplicationStatusPending, application.Status)
	require.Contains(t, []string(student.ApplicationIDs), application.ID)

	require.ErrorIs(t, svc.ReviewWithdrawal("WDR9999", true), ErrWithdrawalNotFound)
}

func TestAllInternshipsSortedByTitle(t *testing.T) {
	st := store.New()
	rep := testRep(st)
	svc := NewStaffService(st, testLogger())

	openInternship(t, st, rep, "Zeta Intern", 1)
	openInternship(t, st, rep, "Alpha Intern", 1)

	views := svc.AllInternships()
	require.Len(t, views, 2)
	require.Equal(t, "Alpha Intern", views[0].Title)
	require.Equal(t, "Zeta Intern", views[1].Title)
}

package service

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/careerdesk/careerdesk/internal/models"
	"github.com/careerdesk/careerdesk/internal/store"
)

func testValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

// openInternship stores an approved, visible internship whose application
// window spans the current date.
func openInternship(t *testing.T, st *store.Store, rep *models.User, title string, slots int) *models.Internship {
	t.Helper()
	internship := models.NewInternship(
		st.NextInternshipID(),
		title,
		"description",
		models.LevelBasic,
		"CSC",
		time.Now().AddDate(0, 0, -1),
		time.Now().AddDate(0, 0, 30),
		rep.CompanyName,
		rep.ID,
		slots,
	)
	internship.Status = models.InternshipStatusApproved
	st.AddInternship(internship)
	require.True(t, rep.AddInternship(internship.ID))
	return internship
}

func testStudent(st *store.Store) *models.User {
	student := models.NewStudent("U2345123F", "John Tan", "password", 3, "CSC")
	st.AddUser(student)
	return student
}

func testRep(st *store.Store) *models.User {
	rep := models.NewCompanyRep("rep@acme.com", "Jane Doe", "password", "Acme", "HR", "Manager")
	rep.Approved = true
	st.AddUser(rep)
	return rep
}

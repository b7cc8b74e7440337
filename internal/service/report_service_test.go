package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/careerdesk/careerdesk/internal/dto"
	"github.com/careerdesk/careerdesk/internal/models"
	"github.com/careerdesk/careerdesk/internal/store"
)

func reportFixture(t *testing.T) (*store.Store, ReportService) {
	t.Helper()
	st := store.New()

	acme := models.NewCompanyRep("rep@acme.com", "Jane Doe", "password", "Acme Robotics", "HR", "Manager")
	acme.Approved = true
	st.AddUser(acme)
	globex := models.NewCompanyRep("rep@globex.com", "Sam Lee", "password", "Globex", "IT", "Lead")
	globex.Approved = true
	st.AddUser(globex)

	add := func(title, level, major, company, repID, status string) {
		internship := models.NewInternship(
			st.NextInternshipID(),
			title,
			"description",
			level,
			major,
			time.Now().AddDate(0, 0, -1),
			time.Now().AddDate(0, 0, 30),
			company,
			repID,
			2,
		)
		internship.Status = status
		st.AddInternship(internship)
	}

	add("Robotics Intern", models.LevelAdvanced, "MAE", "Acme Robotics", acme.ID, models.InternshipStatusApproved)
	add("Backend Intern", models.LevelBasic, "CSC", "Acme Robotics", acme.ID, models.InternshipStatusApproved)
	add("Network Intern", models.LevelIntermediate, "csc", "Globex", globex.ID, models.InternshipStatusPending)
	add("Audit Intern", models.LevelBasic, "ANY", "Globex", globex.ID, models.InternshipStatusFilled)

	return st, NewReportService(st, testValidator(), testLogger())
}

func TestReportZeroFilterReturnsAllSorted(t *testing.T) {
	_, svc := reportFixture(t)

	views, err := svc.Internships(dto.ReportFilter{})
	require.NoError(t, err)
	require.Len(t, views, 4)
	require.Equal(t, "Audit Intern", views[0].Title)
	require.Equal(t, "Backend Intern", views[1].Title)
	require.Equal(t, "Network Intern", views[2].Title)
	require.Equal(t, "Robotics Intern", views[3].Title)
}

func TestReportFilterDimensions(t *testing.T) {
	_, svc := reportFixture(t)

	views, err := svc.Internships(dto.ReportFilter{Status: models.InternshipStatusApproved})
	require.NoError(t, err)
	require.Len(t, views, 2)

	// Major matching ignores case.
	views, err = svc.Internships(dto.ReportFilter{Major: "CSC"})
	require.NoError(t, err)
	require.Len(t, views, 2)
	require.Equal(t, "Backend Intern", views[0].Title)
	require.Equal(t, "Network Intern", views[1].Title)

	views, err = svc.Internships(dto.ReportFilter{Level: models.LevelBasic})
	require.NoError(t, err)
	require.Len(t, views, 2)

	// Company matching is a case-insensitive substring.
	views, err = svc.Internships(dto.ReportFilter{Company: "acme"})
	require.NoError(t, err)
	require.Len(t, views, 2)

	views, err = svc.Internships(dto.ReportFilter{Company: "globex", Level: models.LevelBasic})
	require.NoError(t, err)
	require.Len(t, views, 1)
	require.Equal(t, "Audit Intern", views[0].Title)
}

func TestReportFilterValidation(t *testing.T) {
	_, svc := reportFixture(t)

	_, err := svc.Internships(dto.ReportFilter{Status: "archived"})
	require.Error(t, err)

	_, err = svc.Internships(dto.ReportFilter{Level: "expert"})
	require.Error(t, err)
}

func TestReportNoMatches(t *testing.T) {
	_, svc := reportFixture(t)

	views, err := svc.Internships(dto.ReportFilter{Company: "initech"})
	require.NoError(t, err)
	require.Empty(t, views)
}

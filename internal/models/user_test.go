package models

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStudentApplicationLimit(t *testing.T) {
	student := NewStudent("U2345123F", "John Tan", "password", 3, "CSC")

	for i := 1; i <= MaxActiveApplications; i++ {
		require.True(t, student.AddApplication(fmt.Sprintf("APP%04d", i)))
	}
	require.True(t, student.AtApplicationLimit())
	require.False(t, student.AddApplication("APP0004"))

	require.True(t, student.RemoveApplication("APP0002"))
	require.False(t, student.AtApplicationLimit())
	require.False(t, student.RemoveApplication("APP0002"))

	// No duplicates.
	require.False(t, student.AddApplication("APP0001"))
}

func TestStudentConfirmedInternship(t *testing.T) {
	student := NewStudent("U2345123F", "John Tan", "password", 3, "CSC")
	require.False(t, student.HasConfirmedInternship())

	student.ConfirmedInternshipID = "INT0001"
	require.True(t, student.HasConfirmedInternship())
}

func TestCompanyRepInternshipLimit(t *testing.T) {
	rep := NewCompanyRep("rep@acme.com", "Jane Doe", "password", "Acme", "HR", "Manager")
	require.False(t, rep.Approved)

	for i := 1; i <= MaxOwnedInternships; i++ {
		require.True(t, rep.AddInternship(fmt.Sprintf("INT%04d", i)))
	}
	require.True(t, rep.AtInternshipLimit())
	require.False(t, rep.AddInternship("INT0006"))

	require.True(t, rep.RemoveInternship("INT0003"))
	require.True(t, rep.AddInternship("INT0006"))
}

package persist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/careerdesk/careerdesk/internal/models"
)

func TestLoadUsersTextParsesAllRoles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.txt")
	content := "U2345123F|John Tan|password|STUDENT|3|CSC\n" +
		"rep@acme.com|Jane Doe|secret|COMPANY_REP|Acme|HR|Manager\n" +
		"staff001|Admin User|password|CAREER_STAFF|Career Services\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	users, err := LoadUsersText(path)
	require.NoError(t, err)
	require.Len(t, users, 3)

	require.Equal(t, models.RoleStudent, users[0].Role)
	require.Equal(t, 3, users[0].YearOfStudy)
	require.Equal(t, "CSC", users[0].Major)

	require.Equal(t, models.RoleCompanyRep, users[1].Role)
	require.Equal(t, "Acme", users[1].CompanyName)
	require.Equal(t, "Manager", users[1].Position)
	require.False(t, users[1].Approved)

	require.Equal(t, models.RoleCareerStaff, users[2].Role)
	require.Equal(t, "Career Services", users[2].Department)
}

func TestLoadUsersTextSkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.txt")
	content := "short|line\n" +
		"U2345123F|John Tan|password|STUDENT|notanumber|CSC\n" +
		"U2345124G|Mary Lim|password|STUDENT|2\n" +
		"x|y|z|UNKNOWN_TYPE|a\n" +
		"U2345125H|David Wong|password|STUDENT|4|MAE\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	users, err := LoadUsersText(path)
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.Equal(t, "U2345125H", users[0].ID)
}

func TestUsersTextRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.txt")
	original := []*models.User{
		models.NewStudent("U2345123F", "John Tan", "password", 3, "CSC"),
		models.NewCompanyRep("rep@acme.com", "Jane Doe", "secret", "Acme", "HR", "Manager"),
		models.NewCareerStaff("staff001", "Admin User", "password", "Career Services"),
	}

	require.NoError(t, WriteUsersText(path, original))

	users, err := LoadUsersText(path)
	require.NoError(t, err)
	require.Len(t, users, len(original))
	for i := range original {
		require.Equal(t, original[i].ID, users[i].ID)
		require.Equal(t, original[i].Role, users[i].Role)
		require.Equal(t, original[i].Name, users[i].Name)
		require.Equal(t, original[i].Password, users[i].Password)
	}
}

func TestLoadUsersTextMissingFile(t *testing.T) {
	users, err := LoadUsersText(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	require.Empty(t, users)
}

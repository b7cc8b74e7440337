package persist

import "github.com/careerdesk/careerdesk/internal/models"

// SampleUsers returns the accounts seeded when no persisted user data exists.
func SampleUsers() []*models.User {
	return []*models.User{
		models.NewStudent("U2345123F", "John Tan", "password", 3, "CSC"),
		models.NewStudent("U2345124G", "Mary Lim", "password", 2, "EEE"),
		models.NewStudent("U2345125H", "David Wong", "password", 4, "MAE"),
		models.NewCareerStaff("staff001", "Admin User", "password", "Career Services"),
	}
}

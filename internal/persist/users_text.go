package persist

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/careerdesk/careerdesk/internal/models"
)

// Type tags used by the pipe-delimited users interchange format:
// id|name|password|TYPE|...type-specific fields.
const (
	userTypeStudent     = "STUDENT"
	userTypeCompanyRep  = "COMPANY_REP"
	userTypeCareerStaff = "CAREER_STAFF"
)

// LoadUsersText parses user accounts from the pipe-delimited text format.
// Malformed or short lines are skipped.
func LoadUsersText(path string) ([]*models.User, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var users []*models.User
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if user := parseUserLine(scanner.Text()); user != nil {
			users = append(users, user)
		}
	}
	if err := scanner.Err(); err != nil {
		return users, err
	}
	return users, nil
}

func parseUserLine(line string) *models.User {
	parts := strings.Split(line, "|")
	if len(parts) < 4 {
		return nil
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	id, name, password, userType := parts[0], parts[1], parts[2], parts[3]

	switch {
	case userType == userTypeStudent && len(parts) >= 6:
		year, err := strconv.Atoi(parts[4])
		if err != nil {
			return nil
		}
		return models.NewStudent(id, name, password, year, parts[5])
	case userType == userTypeCompanyRep && len(parts) >= 7:
		return models.NewCompanyRep(id, name, password, parts[4], parts[5], parts[6])
	case userType == userTypeCareerStaff && len(parts) >= 5:
		return models.NewCareerStaff(id, name, password, parts[4])
	default:
		return nil
	}
}

// WriteUsersText exports user accounts in the pipe-delimited text format.
func WriteUsersText(path string, users []*models.User) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	for _, user := range users {
		if _, err := w.WriteString(formatUserLine(user) + "\n"); err != nil {
			return err
		}
	}
	return w.Flush()
}

func formatUserLine(user *models.User) string {
	switch user.Role {
	case models.RoleStudent:
		return fmt.Sprintf("%s|%s|%s|%s|%d|%s", user.ID, user.Name, user.Password, userTypeStudent, user.YearOfStudy, user.Major)
	case models.RoleCompanyRep:
		return fmt.Sprintf("%s|%s|%s|%s|%s|%s|%s", user.ID, user.Name, user.Password, userTypeCompanyRep, user.CompanyName, user.Department, user.Position)
	default:
		return fmt.Sprintf("%s|%s|%s|%s|%s", user.ID, user.Name, user.Password, userTypeCareerStaff, user.Department)
	}
}

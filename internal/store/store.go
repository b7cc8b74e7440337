// Package store holds the in-memory object graph the whole application works
// against. A single Store instance is constructed at startup, handed to every
// service, and flushed to disk at shutdown. The process is single-threaded so
// no locking is needed.
package store

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/careerdesk/careerdesk/internal/models"
)

const (
	internshipIDPrefix  = "INT"
	applicationIDPrefix = "APP"
	withdrawalIDPrefix  = "WDR"
)

// Store is the registry of every entity, keyed by identifier, plus the
// monotonic counters behind the generated identifiers. User identifiers come
// from registration input and are not generated.
type Store struct {
	users        map[string]*models.User
	internships  map[string]*models.Internship
	applications map[string]*models.Application
	withdrawals  map[string]*models.WithdrawalRequest

	nextInternshipID  int
	nextApplicationID int
	nextWithdrawalID  int
}

// New returns an empty store with counters starting at 1.
func New() *Store {
	return &Store{
		users:             make(map[string]*models.User),
		internships:       make(map[string]*models.Internship),
		applications:      make(map[string]*models.Application),
		withdrawals:       make(map[string]*models.WithdrawalRequest),
		nextInternshipID:  1,
		nextApplicationID: 1,
		nextWithdrawalID:  1,
	}
}

// AddUser registers a user under its identifier.
func (s *Store) AddUser(user *models.User) {
	s.users[user.ID] = user
}

// UserByID looks up a user, reporting a miss through the second return.
func (s *Store) UserByID(id string) (*models.User, bool) {
	user, ok := s.users[id]
	return user, ok
}

// RemoveUser deletes a user, reporting whether it existed.
func (s *Store) RemoveUser(id string) bool {
	if _, ok := s.users[id]; !ok {
		return false
	}
	delete(s.users, id)
	return true
}

// Users returns a snapshot of every user.
func (s *Store) Users() []*models.User {
	return s.usersByRole("")
}

// Students returns a snapshot of every student account.
func (s *Store) Students() []*models.User {
	return s.usersByRole(models.RoleStudent)
}

// CompanyReps returns a snapshot of every company representative account.
func (s *Store) CompanyReps() []*models.User {
	return s.usersByRole(models.RoleCompanyRep)
}

// CareerStaff returns a snapshot of every staff account.
func (s *Store) CareerStaff() []*models.User {
	return s.usersByRole(models.RoleCareerStaff)
}

func (s *Store) usersByRole(role models.Role) []*models.User {
	users := make([]*models.User, 0, len(s.users))
	for _, user := range s.users {
		if role == "" || user.Role == role {
			users = append(users, user)
		}
	}
	return users
}

// AddInternship registers an internship under its identifier.
func (s *Store) AddInternship(internship *models.Internship) {
	s.internships[internship.ID] = internship
}

// InternshipByID looks up an internship, reporting a miss through the second
// return.
func (s *Store) InternshipByID(id string) (*models.Internship, bool) {
	internship, ok := s.internships[id]
	return internship, ok
}

// RemoveInternship deletes an internship, reporting whether it existed.
func (s *Store) RemoveInternship(id string) bool {
	if _, ok := s.internships[id]; !ok {
		return false
	}
	delete(s.internships, id)
	return true
}

// Internships returns a snapshot of every internship.
func (s *Store) Internships() []*models.Internship {
	internships := make([]*models.Internship, 0, len(s.internships))
	for _, internship := range s.internships {
		internships = append(internships, internship)
	}
	return internships
}

// NextInternshipID mints the next INT-prefixed identifier.
func (s *Store) NextInternshipID() string {
	id := fmt.Sprintf("%s%04d", internshipIDPrefix, s.nextInternshipID)
	s.nextInternshipID++
	return id
}

// AddApplication registers an application under its identifier.
func (s *Store) AddApplication(application *models.Application) {
	s.applications[application.ID] = application
}

// ApplicationByID looks up an application, reporting a miss through the second
// return.
func (s *Store) ApplicationByID(id string) (*models.Application, bool) {
	application, ok := s.applications[id]
	return application, ok
}

// RemoveApplication deletes an application, reporting whether it existed.
func (s *Store) RemoveApplication(id string) bool {
	if _, ok := s.applications[id]; !ok {
		return false
	}
	delete(s.applications, id)
	return true
}

// Applications returns a snapshot of every application.
func (s *Store) Applications() []*models.Application {
	applications := make([]*models.Application, 0, len(s.applications))
	for _, application := range s.applications {
		applications = append(applications, application)
	}
	return applications
}

// ApplicationsByStudent returns every application filed by the given student.
func (s *Store) ApplicationsByStudent(studentID string) []*models.Application {
	var applications []*models.Application
	for _, application := range s.applications {
		if application.StudentID == studentID {
			applications = append(applications, application)
		}
	}
	return applications
}

// ApplicationsByInternship returns every application filed against the given
// internship.
func (s *Store) ApplicationsByInternship(internshipID string) []*models.Application {
	var applications []*models.Application
	for _, application := range s.applications {
		if application.InternshipID == internshipID {
			applications = append(applications, application)
		}
	}
	return applications
}

// NextApplicationID mints the next APP-prefixed identifier.
func (s *Store) NextApplicationID() string {
	id := fmt.Sprintf("%s%04d", applicationIDPrefix, s.nextApplicationID)
	s.nextApplicationID++
	return id
}

// AddWithdrawal registers a withdrawal request under its identifier.
func (s *Store) AddWithdrawal(request *models.WithdrawalRequest) {
	s.withdrawals[request.ID] = request
}

// WithdrawalByID looks up a withdrawal request, reporting a miss through the
// second return.
func (s *Store) WithdrawalByID(id string) (*models.WithdrawalRequest, bool) {
	request, ok := s.withdrawals[id]
	return request, ok
}

// RemoveWithdrawal deletes a withdrawal request, reporting whether it existed.
func (s *Store) RemoveWithdrawal(id string) bool {
	if _, ok := s.withdrawals[id]; !ok {
		return false
	}
	delete(s.withdrawals, id)
	return true
}

// Withdrawals returns a snapshot of every withdrawal request.
func (s *Store) Withdrawals() []*models.WithdrawalRequest {
	withdrawals := make([]*models.WithdrawalRequest, 0, len(s.withdrawals))
	for _, request := range s.withdrawals {
		withdrawals = append(withdrawals, request)
	}
	return withdrawals
}

// NextWithdrawalID mints the next WDR-prefixed identifier.
func (s *Store) NextWithdrawalID() string {
	id := fmt.Sprintf("%s%04d", withdrawalIDPrefix, s.nextWithdrawalID)
	s.nextWithdrawalID++
	return id
}

// RestoreCounters advances each identifier counter past the highest suffix
// already present, so identifiers minted after a reload never collide with
// persisted ones even when earlier records were deleted.
func (s *Store) RestoreCounters() {
	for id := range s.internships {
		bumpCounter(&s.nextInternshipID, id, internshipIDPrefix)
	}
	for id := range s.applications {
		bumpCounter(&s.nextApplicationID, id, applicationIDPrefix)
	}
	for id := range s.withdrawals {
		bumpCounter(&s.nextWithdrawalID, id, withdrawalIDPrefix)
	}
}

func bumpCounter(counter *int, id, prefix string) {
	suffix, ok := strings.CutPrefix(id, prefix)
	if !ok {
		return
	}
	n, err := strconv.Atoi(suffix)
	if err != nil {
		return
	}
	if n >= *counter {
		*counter = n + 1
	}
}

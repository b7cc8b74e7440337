package service

import (
	"errors"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/careerdesk/careerdesk/internal/dto"
	"github.com/careerdesk/careerdesk/internal/models"
	"github.com/careerdesk/careerdesk/internal/store"
)

var (
	// ErrPlacementConfirmed indicates the student already locked in a placement.
	ErrPlacementConfirmed = errors.New("placement already confirmed")
	// ErrApplicationLimit indicates the student holds the maximum of active applications.
	ErrApplicationLimit = errors.New("application limit reached")
	// ErrInternshipNotFound indicates an unknown internship identifier.
	ErrInternshipNotFound = errors.New("internship not found")
	// ErrNotAccepting indicates the internship is closed to new applications.
	ErrNotAccepting = errors.New("internship is not accepting applications")
	// ErrNotEligible indicates the student fails the major or year/level rule.
	ErrNotEligible = errors.New("not eligible for this internship")
	// ErrAlreadyApplied indicates a duplicate application to the same internship.
	ErrAlreadyApplied = errors.New("already applied to this internship")
	// ErrApplicationNotFound indicates an unknown application identifier or one
	// belonging to another student.
	ErrApplicationNotFound = errors.New("application not found")
	// ErrApplicationNotSuccessful indicates a placement acceptance on an
	// application the company has not approved.
	ErrApplicationNotSuccessful = errors.New("application is not successful")
	// ErrApplicationNotActive indicates a withdrawal request against an
	// application that is no longer pending or successful.
	ErrApplicationNotActive = errors.New("application is not active")
)

// StudentService exposes the student workflow.
type StudentService interface {
	AvailableInternships(student *models.User) []dto.InternshipView
	Apply(student *models.User, internshipID string) (*models.Application, error)
	Applications(student *models.User) []dto.ApplicationRow
	SuccessfulApplications(student *models.User) []dto.ApplicationRow
	AcceptPlacement(student *models.User, applicationID string) error
	RequestWithdrawal(student *models.User, input dto.WithdrawalRequestInput) (*models.WithdrawalRequest, error)
}

type studentService struct {
	store     *store.Store
	validator *validator.Validate
	logger    zerolog.Logger
	now       func() time.Time
}

// NewStudentService constructs the student workflow service.
func NewStudentService(st *store.Store, validate *validator.Validate, logger zerolog.Logger) StudentService {
	return &studentService{
		store:     st,
		validator: validate,
		logger:    logger.With().Str("component", "student_service").Logger(),
		now:       time.Now,
	}
}

// AvailableInternships lists visible, approved internships the student is
// eligible for, sorted by title.
func (s *studentService) AvailableInternships(student *models.User) []dto.InternshipView {
	var matches []*models.Internship
	for _, internship := range s.store.Internships() {
		if internship.Visible &&
			internship.Status == models.InternshipStatusApproved &&
			internship.EligibleFor(student.YearOfStudy, student.Major) {
			matches = append(matches, internship)
		}
	}
	sortInternshipsByTitle(matches)
	return toInternshipViews(matches)
}

// Apply files a pending application after the full precondition chain: no
// confirmed placement, under the application limit, internship open and
// eligible, no prior application to it.
func (s *studentService) Apply(student *models.User, internshipID string) (*models.Application, error) {
	if student.HasConfirmedInternship() {
		return nil, ErrPlacementConfirmed
	}
	if student.AtApplicationLimit() {
		return nil, ErrApplicationLimit
	}

	internship, ok := s.store.InternshipByID(internshipID)
	if !ok {
		return nil, ErrInternshipNotFound
	}
	if !internship.AcceptingApplications(s.now()) {
		return nil, ErrNotAccepting
	}
	if !internship.EligibleFor(student.YearOfStudy, student.Major) {
		return nil, ErrNotEligible
	}
	for _, existing := range s.store.ApplicationsByStudent(student.ID) {
		if existing.InternshipID == internshipID {
			return nil, ErrAlreadyApplied
		}
	}

	application := models.NewApplication(s.store.NextApplicationID(), student.ID, internshipID)
	s.store.AddApplication(application)
	student.AddApplication(application.ID)
	internship.AddApplication(application.ID)

	s.logger.Info().
		Str("application_id", application.ID).
		Str("student_id", student.ID).
		Str("internship_id", internshipID).
		Msg("application submitted")
	return application, nil
}

// Applications lists the student's applications joined with internship details.
func (s *studentService) Applications(student *models.User) []dto.ApplicationRow {
	return s.applicationRows(student, func(*models.Application) bool { return true })
}

// SuccessfulApplications lists the student's applications approved by the
// company and awaiting acceptance.
func (s *studentService) SuccessfulApplications(student *models.User) []dto.ApplicationRow {
	return s.applicationRows(student, func(a *models.Application) bool {
		return a.Status == models.ApplicationStatusSuccessful
	})
}

func (s *studentService) applicationRows(student *models.User, keep func(*models.Application) bool) []dto.ApplicationRow {
	applications := s.store.ApplicationsByStudent(student.ID)
	sort.Slice(applications, func(a, b int) bool {
		return applications[a].ID < applications[b].ID
	})

	var rows []dto.ApplicationRow
	for _, application := range applications {
		if !keep(application) {
			continue
		}
		row := dto.ApplicationRow{
			ApplicationID:      application.ID,
			InternshipID:       application.InternshipID,
			InternshipTitle:    "N/A",
			CompanyName:        "N/A",
			Status:             application.Status,
			AppliedAt:          application.AppliedAt,
			PlacementConfirmed: application.PlacementConfirmed,
		}
		if internship, ok := s.store.InternshipByID(application.InternshipID); ok {
			row.InternshipTitle = internship.Title
			row.CompanyName = internship.CompanyName
		}
		rows = append(rows, row)
	}
	return rows
}

// AcceptPlacement locks in a successful application as the student's final
// placement, consumes one internship slot and withdraws every other active
// application.
func (s *studentService) AcceptPlacement(student *models.User, applicationID string) error {
	if student.HasConfirmedInternship() {
		return ErrPlacementConfirmed
	}

	application, ok := s.store.ApplicationByID(applicationID)
	if !ok || application.StudentID != student.ID {
		return ErrApplicationNotFound
	}
	if application.Status != models.ApplicationStatusSuccessful {
		return ErrApplicationNotSuccessful
	}
	internship, ok := s.store.InternshipByID(application.InternshipID)
	if !ok {
		return ErrInternshipNotFound
	}

	application.PlacementConfirmed = true
	student.ConfirmedInternshipID = internship.ID
	internship.ConfirmStudent(student.ID)

	for _, other := range s.store.ApplicationsByStudent(student.ID) {
		if other.ID == application.ID {
			continue
		}
		if other.Active() {
			other.Status = models.ApplicationStatusWithdrawn
		}
		student.RemoveApplication(other.ID)
	}

	s.logger.Info().
		Str("application_id", application.ID).
		Str("student_id", student.ID).
		Str("internship_id", internship.ID).
		Msg("placement confirmed")
	return nil
}

// RequestWithdrawal files a staff-reviewed request to cancel an active
// application, recording whether the placement was already confirmed.
func (s *studentService) RequestWithdrawal(student *models.User, input dto.WithdrawalRequestInput) (*models.WithdrawalRequest, error) {
	if err := s.validator.Struct(input); err != nil {
		return nil, err
	}

	application, ok := s.store.ApplicationByID(input.ApplicationID)
	if !ok || application.StudentID != student.ID {
		return nil, ErrApplicationNotFound
	}
	if !application.Active() {
		return nil, ErrApplicationNotActive
	}

	request := models.NewWithdrawalRequest(
		s.store.NextWithdrawalID(),
		application.ID,
		student.ID,
		input.Reason,
		application.PlacementConfirmed,
	)
	s.store.AddWithdrawal(request)

	s.logger.Info().
		Str("request_id", request.ID).
		Str("application_id", application.ID).
		Bool("after_confirmation", request.AfterConfirmation).
		Msg("withdrawal requested")
	return request, nil
}

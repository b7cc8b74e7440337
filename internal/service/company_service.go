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
	// ErrInternshipLimit indicates the representative owns the maximum of internships.
	ErrInternshipLimit = errors.New("internship limit reached")
	// ErrNotOwner indicates the internship does not exist or belongs to another
	// representative. The two cases are reported identically to the caller.
	ErrNotOwner = errors.New("internship not found or not owned by caller")
	// ErrInternshipLocked indicates an edit or delete after staff approval.
	ErrInternshipLocked = errors.New("internship can no longer be modified")
	// ErrInvalidDateRange indicates a closing date before the opening date.
	ErrInvalidDateRange = errors.New("closing date is before opening date")
	// ErrAlreadyProcessed indicates a decision on an application that is not pending.
	ErrAlreadyProcessed = errors.New("application already processed")
)

const dateLayout = "2006-01-02"

// CompanyService exposes the company representative workflow.
type CompanyService interface {
	CreateInternship(rep *models.User, input dto.CreateInternshipInput) (*models.Internship, error)
	OwnedInternships(rep *models.User) []dto.InternshipView
	UpdateInternship(rep *models.User, internshipID string, input dto.UpdateInternshipInput) error
	DeleteInternship(rep *models.User, internshipID string) error
	ApplicationsFor(rep *models.User, internshipID string) ([]dto.ApplicantRow, error)
	ProcessApplication(rep *models.User, applicationID string, approve bool) error
	ToggleVisibility(rep *models.User, internshipID string) (bool, error)
}

type companyService struct {
	store     *store.Store
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewCompanyService constructs the company representative workflow service.
func NewCompanyService(st *store.Store, validate *validator.Validate, logger zerolog.Logger) CompanyService {
	return &companyService{
		store:     st,
		validator: validate,
		logger:    logger.With().Str("component", "company_service").Logger(),
	}
}

// CreateInternship posts a new internship in pending status. Representatives
// own at most five postings; slot counts are capped at ten.
func (s *companyService) CreateInternship(rep *models.User, input dto.CreateInternshipInput) (*models.Internship, error) {
	if rep.AtInternshipLimit() {
		return nil, ErrInternshipLimit
	}
	if err := s.validator.Struct(input); err != nil {
		return nil, err
	}

	openingDate, err := time.Parse(dateLayout, input.OpeningDate)
	if err != nil {
		return nil, err
	}
	closingDate, err := time.Parse(dateLayout, input.ClosingDate)
	if err != nil {
		return nil, err
	}
	if closingDate.Before(openingDate) {
		return nil, ErrInvalidDateRange
	}

	internship := models.NewInternship(
		s.store.NextInternshipID(),
		input.Title,
		input.Description,
		input.Level,
		input.PreferredMajor,
		openingDate,
		closingDate,
		rep.CompanyName,
		rep.ID,
		input.TotalSlots,
	)
	s.store.AddInternship(internship)
	rep.AddInternship(internship.ID)

	s.logger.Info().
		Str("internship_id", internship.ID).
		Str("company_rep_id", rep.ID).
		Int("total_slots", internship.TotalSlots).
		Msg("internship created")
	return internship, nil
}

// OwnedInternships lists the representative's postings in creation order.
func (s *companyService) OwnedInternships(rep *models.User) []dto.InternshipView {
	var views []dto.InternshipView
	for _, id := range rep.InternshipIDs {
		if internship, ok := s.store.InternshipByID(id); ok {
			views = append(views, toInternshipView(internship))
		}
	}
	return views
}

// UpdateInternship edits title and description of an owned posting while it is
// still pending or rejected.
func (s *companyService) UpdateInternship(rep *models.User, internshipID string, input dto.UpdateInternshipInput) error {
	internship, err := s.ownedMutable(rep, internshipID)
	if err != nil {
		return err
	}
	if err := s.validator.Struct(input); err != nil {
		return err
	}

	if input.Title != "" {
		internship.Title = input.Title
	}
	if input.Description != "" {
		internship.Description = input.Description
	}

	s.logger.Info().Str("internship_id", internship.ID).Msg("internship updated")
	return nil
}

// DeleteInternship removes an owned posting while it is still pending or
// rejected.
func (s *companyService) DeleteInternship(rep *models.User, internshipID string) error {
	internship, err := s.ownedMutable(rep, internshipID)
	if err != nil {
		return err
	}

	s.store.RemoveInternship(internship.ID)
	rep.RemoveInternship(internship.ID)

	s.logger.Info().Str("internship_id", internship.ID).Msg("internship deleted")
	return nil
}

func (s *companyService) ownedMutable(rep *models.User, internshipID string) (*models.Internship, error) {
	internship, err := s.owned(rep, internshipID)
	if err != nil {
		return nil, err
	}
	if internship.Status == models.InternshipStatusApproved || internship.Status == models.InternshipStatusFilled {
		return nil, ErrInternshipLocked
	}
	return internship, nil
}

func (s *companyService) owned(rep *models.User, internshipID string) (*models.Internship, error) {
	internship, ok := s.store.InternshipByID(internshipID)
	if !ok || internship.CompanyRepID != rep.ID {
		return nil, ErrNotOwner
	}
	return internship, nil
}

// ApplicationsFor lists the applications filed against an owned posting, joined
// with student details.
func (s *companyService) ApplicationsFor(rep *models.User, internshipID string) ([]dto.ApplicantRow, error) {
	if _, err := s.owned(rep, internshipID); err != nil {
		return nil, err
	}

	applications := s.store.ApplicationsByInternship(internshipID)
	sort.Slice(applications, func(a, b int) bool {
		return applications[a].ID < applications[b].ID
	})

	rows := make([]dto.ApplicantRow, 0, len(applications))
	for _, application := range applications {
		row := dto.ApplicantRow{
			ApplicationID: application.ID,
			StudentID:     application.StudentID,
			StudentName:   "N/A",
			Status:        application.Status,
			AppliedAt:     application.AppliedAt,
		}
		if student, ok := s.store.UserByID(application.StudentID); ok {
			row.StudentName = student.Name
			row.YearOfStudy = student.YearOfStudy
			row.Major = student.Major
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ProcessApplication decides a pending application on an owned posting:
// approve marks it successful, reject marks it unsuccessful.
func (s *companyService) ProcessApplication(rep *models.User, applicationID string, approve bool) error {
	application, ok := s.store.ApplicationByID(applicationID)
	if !ok {
		return ErrApplicationNotFound
	}
	if _, err := s.owned(rep, application.InternshipID); err != nil {
		return err
	}
	if application.Status != models.ApplicationStatusPending {
		return ErrAlreadyProcessed
	}

	if approve {
		application.Status = models.ApplicationStatusSuccessful
	} else {
		application.Status = models.ApplicationStatusUnsuccessful
	}

	s.logger.Info().
		Str("application_id", application.ID).
		Str("status", application.Status).
		Msg("application processed")
	return nil
}

// ToggleVisibility flips the visibility flag on an owned posting and returns
// the new value. Allowed in any status.
func (s *companyService) ToggleVisibility(rep *models.User, internshipID string) (bool, error) {
	internship, err := s.owned(rep, internshipID)
	if err != nil {
		return false, err
	}
	internship.Visible = !internship.Visible

	s.logger.Info().Str("internship_id", internship.ID).Bool("visible", internship.Visible).Msg("visibility toggled")
	return internship.Visible, nil
}

package service

import (
	"errors"
	"sort"

	"github.com/rs/zerolog"

	"github.com/careerdesk/careerdesk/internal/dto"
	"github.com/careerdesk/careerdesk/internal/models"
	"github.com/careerdesk/careerdesk/internal/store"
)

var (
	// ErrRepNotFound indicates an unknown or already processed registration.
	ErrRepNotFound = errors.New("pending registration not found")
	// ErrNotPending indicates a decision on an item that already left pending
	// status; deciding twice is an error, not a crash.
	ErrNotPending = errors.New("item is not pending review")
	// ErrWithdrawalNotFound indicates an unknown withdrawal request identifier.
	ErrWithdrawalNotFound = errors.New("withdrawal request not found")
)

// StaffService exposes the career-center administrative workflow.
type StaffService interface {
	PendingCompanyReps() []dto.PendingRepRow
	ReviewCompanyRep(email string, approve bool) error
	PendingInternships() []dto.InternshipView
	ReviewInternship(internshipID string, approve bool) error
	PendingWithdrawals() []dto.WithdrawalRow
	ReviewWithdrawal(requestID string, approve bool) error
	AllInternships() []dto.InternshipView
}

type staffService struct {
	store  *store.Store
	logger zerolog.Logger
}

// NewStaffService constructs the administrative workflow service.
func NewStaffService(st *store.Store, logger zerolog.Logger) StaffService {
	return &staffService{
		store:  st,
		logger: logger.With().Str("component", "staff_service").Logger(),
	}
}

// PendingCompanyReps lists unapproved representative registrations.
func (s *staffService) PendingCompanyReps() []dto.PendingRepRow {
	reps := s.store.CompanyReps()
	sort.Slice(reps, func(a, b int) bool { return reps[a].ID < reps[b].ID })

	var rows []dto.PendingRepRow
	for _, rep := range reps {
		if rep.Approved {
			continue
		}
		rows = append(rows, dto.PendingRepRow{
			Email:       rep.ID,
			Name:        rep.Name,
			CompanyName: rep.CompanyName,
			Department:  rep.Department,
			Position:    rep.Position,
		})
	}
	return rows
}

// ReviewCompanyRep decides a pending registration: approval unlocks login,
// rejection removes the account entirely.
func (s *staffService) ReviewCompanyRep(email string, approve bool) error {
	rep, ok := s.store.UserByID(email)
	if !ok || rep.Role != models.RoleCompanyRep || rep.Approved {
		return ErrRepNotFound
	}

	if approve {
		rep.Approved = true
		s.logger.Info().Str("user_id", rep.ID).Msg("company representative approved")
		return nil
	}

	s.store.RemoveUser(rep.ID)
	s.logger.Info().Str("user_id", rep.ID).Msg("company representative rejected and removed")
	return nil
}

// PendingInternships lists postings awaiting review, sorted by title.
func (s *staffService) PendingInternships() []dto.InternshipView {
	var pending []*models.Internship
	for _, internship := range s.store.Internships() {
		if internship.Status == models.InternshipStatusPending {
			pending = append(pending, internship)
		}
	}
	sortInternshipsByTitle(pending)
	return toInternshipViews(pending)
}

// ReviewInternship decides a pending posting. The fields are not re-checked;
// only the status transitions.
func (s *staffService) ReviewInternship(internshipID string, approve bool) error {
	internship, ok := s.store.InternshipByID(internshipID)
	if !ok {
		return ErrInternshipNotFound
	}
	if internship.Status != models.InternshipStatusPending {
		return ErrNotPending
	}

	if approve {
		internship.Status = models.InternshipStatusApproved
	} else {
		internship.Status = models.InternshipStatusRejected
	}

	s.logger.Info().Str("internship_id", internship.ID).Str("status", internship.Status).Msg("internship reviewed")
	return nil
}

// PendingWithdrawals lists withdrawal requests awaiting review, joined with
// student and internship details.
func (s *staffService) PendingWithdrawals() []dto.WithdrawalRow {
	requests := s.store.Withdrawals()
	sort.Slice(requests, func(a, b int) bool { return requests[a].ID < requests[b].ID })

	var rows []dto.WithdrawalRow
	for _, request := range requests {
		if request.Status != models.WithdrawalStatusPending {
			continue
		}
		row := dto.WithdrawalRow{
			RequestID:         request.ID,
			ApplicationID:     request.ApplicationID,
			StudentID:         request.StudentID,
			StudentName:       "N/A",
			InternshipTitle:   "N/A",
			Reason:            request.Reason,
			Status:            request.Status,
			RequestedAt:       request.RequestedAt,
			AfterConfirmation: request.AfterConfirmation,
		}
		if student, ok := s.store.UserByID(request.StudentID); ok {
			row.StudentName = student.Name
		}
		if application, ok := s.store.ApplicationByID(request.ApplicationID); ok {
			if internship, ok := s.store.InternshipByID(application.InternshipID); ok {
				row.InternshipTitle = internship.Title
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// ReviewWithdrawal decides a pending withdrawal request. Approval withdraws
// the application; if the placement was confirmed it also frees the internship
// slot, reopens a filled internship and clears the student's confirmation.
func (s *staffService) ReviewWithdrawal(requestID string, approve bool) error {
	request, ok := s.store.WithdrawalByID(requestID)
	if !ok {
		return ErrWithdrawalNotFound
	}
	if request.Status != models.WithdrawalStatusPending {
		return ErrNotPending
	}

	if !approve {
		request.Status = models.WithdrawalStatusRejected
		s.logger.Info().Str("request_id", request.ID).Msg("withdrawal rejected")
		return nil
	}

	request.Status = models.WithdrawalStatusApproved

	application, ok := s.store.ApplicationByID(request.ApplicationID)
	if !ok {
		s.logger.Warn().Str("request_id", request.ID).Msg("approved withdrawal references missing application")
		return nil
	}
	application.Status = models.ApplicationStatusWithdrawn

	student, hasStudent := s.store.UserByID(request.StudentID)

	if application.PlacementConfirmed {
		if internship, ok := s.store.InternshipByID(application.InternshipID); ok {
			internship.RemoveConfirmedStudent(request.StudentID)
			if hasStudent {
				student.ConfirmedInternshipID = ""
			}
		}
		application.PlacementConfirmed = false
	}

	if hasStudent {
		student.RemoveApplication(application.ID)
	}

	s.logger.Info().
		Str("request_id", request.ID).
		Str("application_id", application.ID).
		Msg("withdrawal approved")
	return nil
}

// AllInternships lists every posting in the system, sorted by title.
func (s *staffService) AllInternships() []dto.InternshipView {
	internships := s.store.Internships()
	sortInternshipsByTitle(internships)
	return toInternshipViews(internships)
}

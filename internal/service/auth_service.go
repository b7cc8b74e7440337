package service

import (
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/careerdesk/careerdesk/internal/dto"
	"github.com/careerdesk/careerdesk/internal/models"
	"github.com/careerdesk/careerdesk/internal/store"
)

var (
	// ErrInvalidCredentials indicates an unknown user or a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrAccountNotApproved indicates a company representative awaiting approval.
	ErrAccountNotApproved = errors.New("account is pending approval")
	// ErrUserExists indicates a registration under an identifier already in use.
	ErrUserExists = errors.New("user already exists")
	// ErrWrongPassword indicates the current password did not match.
	ErrWrongPassword = errors.New("current password is incorrect")
)

var (
	studentIDPattern = regexp.MustCompile(`^U\d{7}[A-Z]$`)
	emailPattern     = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	staffIDPattern   = regexp.MustCompile(`^[A-Za-z0-9]+$`)
)

// AuthService handles credential checks and account registration.
type AuthService interface {
	Login(id, password string) (*models.User, error)
	RegisterCompanyRep(input dto.RegisterCompanyRepInput) (*models.User, error)
	ChangePassword(user *models.User, input dto.ChangePasswordInput) error
	ValidateUserIDFormat(id string) bool
}

type authService struct {
	store     *store.Store
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewAuthService constructs the authentication service.
func NewAuthService(st *store.Store, validate *validator.Validate, logger zerolog.Logger) AuthService {
	return &authService{
		store:     st,
		validator: validate,
		logger:    logger.With().Str("component", "auth_service").Logger(),
	}
}

// Login verifies the credentials against the stored account. Passwords are
// compared as exact strings, matching the persisted format.
func (s *authService) Login(id, password string) (*models.User, error) {
	user, ok := s.store.UserByID(id)
	if !ok {
		return nil, ErrInvalidCredentials
	}

	if user.Role == models.RoleCompanyRep && !user.Approved {
		return nil, ErrAccountNotApproved
	}

	if user.Password != password {
		return nil, ErrInvalidCredentials
	}

	s.logger.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("login successful")
	return user, nil
}

// RegisterCompanyRep creates an unapproved representative account keyed by the
// company email.
func (s *authService) RegisterCompanyRep(input dto.RegisterCompanyRepInput) (*models.User, error) {
	if err := s.validator.Struct(input); err != nil {
		return nil, err
	}

	if _, exists := s.store.UserByID(input.Email); exists {
		return nil, ErrUserExists
	}

	rep := models.NewCompanyRep(input.Email, input.Name, input.Password, input.CompanyName, input.Department, input.Position)
	s.store.AddUser(rep)

	s.logger.Info().Str("user_id", rep.ID).Str("company", rep.CompanyName).Msg("company representative registered")
	return rep, nil
}

// ChangePassword mutates the stored password after verifying the current one.
func (s *authService) ChangePassword(user *models.User, input dto.ChangePasswordInput) error {
	if err := s.validator.Struct(input); err != nil {
		return err
	}
	if user.Password != input.OldPassword {
		return ErrWrongPassword
	}
	user.Password = input.NewPassword
	s.logger.Info().Str("user_id", user.ID).Msg("password changed")
	return nil
}

// ValidateUserIDFormat classifies an identifier as one of the recognized
// account formats: a student matric number, an email address, or a staff
// account name. Advisory only; login and registration do not gate on it.
func (s *authService) ValidateUserIDFormat(id string) bool {
	if id == "" {
		return false
	}
	return studentIDPattern.MatchString(id) ||
		emailPattern.MatchString(id) ||
		strings.Contains(id, "@") ||
		staffIDPattern.MatchString(id)
}

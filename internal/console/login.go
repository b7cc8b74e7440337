package console

import (
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/careerdesk/careerdesk/internal/dto"
	"github.com/careerdesk/careerdesk/internal/models"
	"github.com/careerdesk/careerdesk/internal/service"
)

// Menus bundles the services behind the console surface.
type Menus struct {
	Auth    service.AuthService
	Student service.StudentService
	Company service.CompanyService
	Staff   service.StaffService
	Report  service.ReportService
}

// UI drives the whole interactive session, from the login menu down to the
// role-specific workflows.
type UI struct {
	prompter *Prompter
	menus    Menus
	logger   zerolog.Logger
}

// NewUI constructs the console front end.
func NewUI(prompter *Prompter, menus Menus, logger zerolog.Logger) *UI {
	return &UI{
		prompter: prompter,
		menus:    menus,
		logger:   logger.With().Str("component", "console").Logger(),
	}
}

// Run shows the login menu until the operator exits.
func (u *UI) Run() {
	p := u.prompter
	for {
		p.Println("\n=== LOGIN MENU ===")
		p.Println("1. Login")
		p.Println("2. Register as Company Representative")
		p.Println("3. Exit")

		choice := p.Line("Enter choice: ")
		if p.EOF() {
			p.Println("\nExiting system...")
			return
		}
		switch choice {
		case "1":
			u.handleLogin()
		case "2":
			u.handleRegistration()
		case "3":
			p.Println("Exiting system...")
			return
		default:
			p.Println("Invalid choice. Please try again.")
		}
	}
}

func (u *UI) handleLogin() {
	p := u.prompter
	userID := p.Line("\nEnter User ID: ")
	password := p.Line("Enter Password: ")

	user, err := u.menus.Auth.Login(userID, password)
	if err != nil {
		if errors.Is(err, service.ErrAccountNotApproved) {
			p.Println("Your account is pending approval from Career Center Staff.")
		}
		p.Println("Login failed. Invalid credentials or account not approved.")
		return
	}

	p.Printf("\nLogin successful! Welcome, %s\n", user.Name)

	switch user.Role {
	case models.RoleStudent:
		u.studentMenu(user)
	case models.RoleCompanyRep:
		u.companyMenu(user)
	case models.RoleCareerStaff:
		u.staffMenu(user)
	}
}

func (u *UI) handleRegistration() {
	p := u.prompter
	p.Println("\n=== COMPANY REPRESENTATIVE REGISTRATION ===")

	email := p.Line("Enter Company Email: ")
	if !strings.Contains(email, "@") {
		p.Println("Invalid email format.")
		return
	}

	input := dto.RegisterCompanyRepInput{
		Email:       email,
		Name:        p.Line("Enter Your Name: "),
		Password:    p.Line("Enter Password: "),
		CompanyName: p.Line("Enter Company Name: "),
		Department:  p.Line("Enter Department: "),
		Position:    p.Line("Enter Position: "),
	}

	if _, err := u.menus.Auth.RegisterCompanyRep(input); err != nil {
		if errors.Is(err, service.ErrUserExists) {
			p.Println("\nRegistration failed. User already exists.")
			return
		}
		p.Println("\nRegistration failed. Please fill in every field with a valid value.")
		return
	}

	p.Println("\nRegistration successful!")
	p.Println("Your account is pending approval from Career Center Staff.")
	p.Println("You will be able to login once approved.")
}

func (u *UI) changePassword(user *models.User) {
	p := u.prompter
	p.Println("\n=== CHANGE PASSWORD ===")

	oldPassword := p.Line("Enter current password: ")
	newPassword := p.Line("Enter new password: ")
	confirm := p.Line("Confirm new password: ")

	if newPassword != confirm {
		p.Println("New passwords do not match.")
		return
	}

	err := u.menus.Auth.ChangePassword(user, dto.ChangePasswordInput{
		OldPassword: oldPassword,
		NewPassword: newPassword,
	})
	if err != nil {
		p.Println("Current password is incorrect.")
		return
	}
	p.Println("Password changed successfully!")
}

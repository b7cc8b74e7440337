package console

import (
	"errors"

	"github.com/careerdesk/careerdesk/internal/dto"
	"github.com/careerdesk/careerdesk/internal/models"
	"github.com/careerdesk/careerdesk/internal/service"
)

func (u *UI) studentMenu(student *models.User) {
	p := u.prompter
	for {
		p.Println("\n=== Student Menu ===")
		p.Println("1. View Available Internships")
		p.Println("2. Apply for Internship")
		p.Println("3. View My Applications")
		p.Println("4. Accept Internship Placement")
		p.Println("5. Request Withdrawal")
		p.Println("6. Change Password")
		p.Println("7. Logout")

		choice := p.Line("Enter choice: ")
		if p.EOF() {
			p.Println("\nLogging out...")
			return
		}
		switch choice {
		case "1":
			u.viewAvailableInternships(student)
		case "2":
			u.applyForInternship(student)
		case "3":
			u.viewMyApplications(student)
		case "4":
			u.acceptPlacement(student)
		case "5":
			u.requestWithdrawal(student)
		case "6":
			u.changePassword(student)
		case "7":
			p.Println("Logging out...")
			return
		default:
			p.Println("Invalid choice. Please try again.")
		}
	}
}

func (u *UI) viewAvailableInternships(student *models.User) {
	p := u.prompter
	p.Println("\n=== AVAILABLE INTERNSHIPS ===")

	views := u.menus.Student.AvailableInternships(student)
	if len(views) == 0 {
		p.Println("No internships available for your profile.")
		return
	}

	for i, view := range views {
		p.Printf("\n%d. %s\n", i+1, view.Title)
		p.renderInternshipDetail(view)
	}
}

func (u *UI) applyForInternship(student *models.User) {
	p := u.prompter

	internshipID := p.Line("\nEnter Internship ID to apply: ")
	application, err := u.menus.Student.Apply(student, internshipID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPlacementConfirmed):
			p.Println("You have already confirmed an internship placement.")
		case errors.Is(err, service.ErrApplicationLimit):
			p.Printf("You have reached the maximum of %d applications.\n", models.MaxActiveApplications)
		case errors.Is(err, service.ErrInternshipNotFound):
			p.Println("Internship not found.")
		case errors.Is(err, service.ErrNotAccepting):
			p.Println("This internship is not currently accepting applications.")
		case errors.Is(err, service.ErrNotEligible):
			p.Println("You are not eligible for this internship.")
		case errors.Is(err, service.ErrAlreadyApplied):
			p.Println("You have already applied for this internship.")
		default:
			p.Printf("Application failed: %v\n", err)
		}
		return
	}

	p.Println("\nApplication submitted successfully!")
	p.Printf("Application ID: %s\n", application.ID)
}

func (u *UI) viewMyApplications(student *models.User) {
	p := u.prompter
	p.Println("\n=== MY APPLICATIONS ===")

	rows := u.menus.Student.Applications(student)
	if len(rows) == 0 {
		p.Println("You have no applications.")
		return
	}
	for _, row := range rows {
		p.renderApplicationRow(row)
	}
}

func (u *UI) acceptPlacement(student *models.User) {
	p := u.prompter

	rows := u.menus.Student.SuccessfulApplications(student)
	if len(rows) == 0 {
		p.Println("\nYou have no successful applications to accept.")
		return
	}

	p.Println("\n=== SUCCESSFUL APPLICATIONS ===")
	for i, row := range rows {
		p.Printf("%d. %s - %s\n", i+1, row.ApplicationID, row.InternshipTitle)
	}

	index, ok := p.Select("\nEnter application number to accept (0 to cancel): ", len(rows))
	if !ok {
		return
	}

	if err := u.menus.Student.AcceptPlacement(student, rows[index].ApplicationID); err != nil {
		if errors.Is(err, service.ErrPlacementConfirmed) {
			p.Println("You have already confirmed an internship placement.")
			return
		}
		p.Printf("Could not confirm placement: %v\n", err)
		return
	}

	p.Println("\nInternship placement confirmed successfully!")
	p.Println("All other applications have been withdrawn.")
}

func (u *UI) requestWithdrawal(student *models.User) {
	p := u.prompter
	p.Println("\n=== REQUEST WITHDRAWAL ===")

	var active []dto.ApplicationRow
	for _, row := range u.menus.Student.Applications(student) {
		if row.Status == models.ApplicationStatusPending || row.Status == models.ApplicationStatusSuccessful {
			active = append(active, row)
		}
	}
	if len(active) == 0 {
		p.Println("You have no active applications to withdraw.")
		return
	}

	p.Println("Active Applications:")
	for i, row := range active {
		p.Printf("%d. %s - %s [%s]\n", i+1, row.ApplicationID, row.InternshipTitle, upper(row.Status))
	}

	index, ok := p.Select("\nEnter application number to withdraw (0 to cancel): ", len(active))
	if !ok {
		return
	}

	var reason string
	for reason == "" {
		reason = p.Line("Enter reason for withdrawal: ")
		if p.EOF() {
			return
		}
		if reason == "" {
			p.Println("Reason cannot be empty. Please provide a reason.")
		}
	}

	request, err := u.menus.Student.RequestWithdrawal(student, dto.WithdrawalRequestInput{
		ApplicationID: active[index].ApplicationID,
		Reason:        reason,
	})
	if err != nil {
		p.Printf("Could not submit withdrawal request: %v\n", err)
		return
	}

	p.Println("\nWithdrawal request submitted successfully!")
	p.Printf("Request ID: %s\n", request.ID)
	p.Println("Pending approval from Career Center Staff.")
}

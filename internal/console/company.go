package console

import (
	"errors"
	"strings"

	"github.com/careerdesk/careerdesk/internal/dto"
	"github.com/careerdesk/careerdesk/internal/models"
	"github.com/careerdesk/careerdesk/internal/service"
)

func (u *UI) companyMenu(rep *models.User) {
	p := u.prompter
	for {
		p.Println("\n=== Company Representative Menu ===")
		p.Println("1. Create Internship Opportunity")
		p.Println("2. View My Internship Opportunities")
		p.Println("3. Edit Internship Opportunity")
		p.Println("4. Delete Internship Opportunity")
		p.Println("5. View Applications")
		p.Println("6. Process Application (Approve/Reject)")
		p.Println("7. Toggle Internship Visibility")
		p.Println("8. Change Password")
		p.Println("9. Logout")

		choice := p.Line("Enter choice: ")
		if p.EOF() {
			p.Println("\nLogging out...")
			return
		}
		switch choice {
		case "1":
			u.createInternship(rep)
		case "2":
			u.viewMyInternships(rep)
		case "3":
			u.editInternship(rep)
		case "4":
			u.deleteInternship(rep)
		case "5":
			u.viewInternshipApplications(rep)
		case "6":
			u.processApplication(rep)
		case "7":
			u.toggleVisibility(rep)
		case "8":
			u.changePassword(rep)
		case "9":
			p.Println("Logging out...")
			return
		default:
			p.Println("Invalid choice. Please try again.")
		}
	}
}

func (u *UI) createInternship(rep *models.User) {
	p := u.prompter
	p.Println("\n=== CREATE INTERNSHIP OPPORTUNITY ===")

	if rep.AtInternshipLimit() {
		p.Printf("You have reached the maximum of %d internship opportunities.\n", models.MaxOwnedInternships)
		return
	}

	title := p.Line("Enter Internship Title: ")
	description := p.Line("Enter Description: ")

	var level string
	for level == "" {
		p.Println("Select Level (1-Basic, 2-Intermediate, 3-Advanced): ")
		switch p.Line("Enter choice: ") {
		case "1":
			level = models.LevelBasic
		case "2":
			level = models.LevelIntermediate
		case "3":
			level = models.LevelAdvanced
		default:
			if p.EOF() {
				return
			}
			p.Println("Invalid choice. Please enter 1, 2, or 3.")
		}
	}

	major := strings.ToUpper(p.Line("Enter Preferred Major (e.g., CSC, EEE, MAE, or ANY): "))
	openingDate := p.Date("Enter Opening Date (yyyy-MM-dd): ")

	var closingDate string
	for closingDate == "" {
		closingDate = p.Date("Enter Closing Date (yyyy-MM-dd): ")
		if p.EOF() {
			return
		}
		if closingDate < openingDate {
			p.Println("Closing date cannot be before opening date. Please try again.")
			closingDate = ""
		}
	}

	slots := p.IntInRange("Enter Number of Slots (1-10): ", 1, models.MaxTotalSlots)
	if p.EOF() {
		return
	}

	internship, err := u.menus.Company.CreateInternship(rep, dto.CreateInternshipInput{
		Title:          title,
		Description:    description,
		Level:          level,
		PreferredMajor: major,
		OpeningDate:    openingDate,
		ClosingDate:    closingDate,
		TotalSlots:     slots,
	})
	if err != nil {
		p.Printf("Could not create internship: %v\n", err)
		return
	}

	p.Println("\nInternship opportunity created successfully!")
	p.Printf("Internship ID: %s\n", internship.ID)
	p.Println("Status: PENDING (awaiting Career Center Staff approval)")
}

func (u *UI) viewMyInternships(rep *models.User) {
	p := u.prompter
	p.Println("\n=== MY INTERNSHIP OPPORTUNITIES ===")

	views := u.menus.Company.OwnedInternships(rep)
	if len(views) == 0 {
		p.Println("You have not created any internships yet.")
		return
	}
	for _, view := range views {
		p.renderInternshipSummary(view)
		p.Printf("   Opening: %s\n", view.OpeningDate.Format(dateLayout))
		p.Printf("   Closing: %s\n", view.ClosingDate.Format(dateLayout))
	}
}

func (u *UI) editInternship(rep *models.User) {
	p := u.prompter
	p.Println("\n=== EDIT INTERNSHIP OPPORTUNITY ===")

	internshipID := p.Line("Enter Internship ID to edit: ")

	input := dto.UpdateInternshipInput{
		Title:       p.Line("Enter new title (or press Enter to keep current): "),
		Description: p.Line("Enter new description (or press Enter to keep current): "),
	}

	if err := u.menus.Company.UpdateInternship(rep, internshipID, input); err != nil {
		u.reportOwnershipError(err, "edit")
		return
	}
	p.Println("\nInternship updated successfully!")
}

func (u *UI) deleteInternship(rep *models.User) {
	p := u.prompter
	p.Println("\n=== DELETE INTERNSHIP OPPORTUNITY ===")

	internshipID := p.Line("Enter Internship ID to delete: ")

	if !p.Confirm("Are you sure you want to delete this internship? (yes/no): ") {
		p.Println("Deletion cancelled.")
		return
	}

	if err := u.menus.Company.DeleteInternship(rep, internshipID); err != nil {
		u.reportOwnershipError(err, "delete")
		return
	}
	p.Println("Internship deleted successfully!")
}

func (u *UI) reportOwnershipError(err error, action string) {
	p := u.prompter
	switch {
	case errors.Is(err, service.ErrNotOwner):
		p.Printf("Internship not found or you don't have permission to %s it.\n", action)
	case errors.Is(err, service.ErrInternshipLocked):
		p.Printf("Cannot %s internship after it has been approved.\n", action)
	default:
		p.Printf("Operation failed: %v\n", err)
	}
}

func (u *UI) viewInternshipApplications(rep *models.User) {
	p := u.prompter
	p.Println("\n=== VIEW APPLICATIONS ===")

	internshipID := p.Line("Enter Internship ID: ")
	rows, err := u.menus.Company.ApplicationsFor(rep, internshipID)
	if err != nil {
		p.Println("Internship not found or you don't have permission to view it.")
		return
	}
	if len(rows) == 0 {
		p.Println("No applications for this internship.")
		return
	}

	for _, row := range rows {
		p.Printf("\n%s:\n", row.ApplicationID)
		p.Printf("   Student: %s\n", row.StudentName)
		p.Printf("   Student ID: %s\n", row.StudentID)
		p.Printf("   Year: %d\n", row.YearOfStudy)
		p.Printf("   Major: %s\n", row.Major)
		p.Printf("   Status: %s\n", upper(row.Status))
		p.Printf("   Applied: %s\n", row.AppliedAt.Format("2006-01-02 15:04"))
	}
}

func (u *UI) processApplication(rep *models.User) {
	p := u.prompter
	p.Println("\n=== PROCESS APPLICATION ===")

	applicationID := p.Line("Enter Application ID: ")

	p.Println("\n1. Approve")
	p.Println("2. Reject")
	choice := p.Line("Enter choice: ")
	if choice != "1" && choice != "2" {
		p.Println("Invalid choice.")
		return
	}

	err := u.menus.Company.ProcessApplication(rep, applicationID, choice == "1")
	if err != nil {
		switch {
		case errors.Is(err, service.ErrApplicationNotFound):
			p.Println("Application not found.")
		case errors.Is(err, service.ErrNotOwner):
			p.Println("You don't have permission to process this application.")
		case errors.Is(err, service.ErrAlreadyProcessed):
			p.Println("This application has already been processed.")
		default:
			p.Printf("Operation failed: %v\n", err)
		}
		return
	}

	if choice == "1" {
		p.Println("\nApplication approved successfully!")
	} else {
		p.Println("\nApplication rejected.")
	}
}

func (u *UI) toggleVisibility(rep *models.User) {
	p := u.prompter
	p.Println("\n=== TOGGLE INTERNSHIP VISIBILITY ===")

	internshipID := p.Line("Enter Internship ID: ")
	visible, err := u.menus.Company.ToggleVisibility(rep, internshipID)
	if err != nil {
		p.Println("Internship not found or you don't have permission to modify it.")
		return
	}
	p.Printf("\nVisibility toggled to: %s\n", onOff(visible))
}

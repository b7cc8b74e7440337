package console

import (
	"strings"

	"github.com/careerdesk/careerdesk/internal/dto"
	"github.com/careerdesk/careerdesk/internal/models"
)

func (u *UI) staffMenu(staff *models.User) {
	p := u.prompter
	for {
		p.Println("\n=== Career Center Staff Menu ===")
		p.Println("1. Authorize Company Representatives")
		p.Println("2. Approve Internship Opportunities")
		p.Println("3. Process Withdrawal Requests")
		p.Println("4. Generate Reports")
		p.Println("5. View All Internships")
		p.Println("6. Change Password")
		p.Println("7. Logout")

		choice := p.Line("Enter choice: ")
		if p.EOF() {
			p.Println("\nLogging out...")
			return
		}
		switch choice {
		case "1":
			u.authorizeCompanyReps()
		case "2":
			u.reviewInternships()
		case "3":
			u.reviewWithdrawals()
		case "4":
			u.generateReports()
		case "5":
			u.viewAllInternships()
		case "6":
			u.changePassword(staff)
		case "7":
			p.Println("Logging out...")
			return
		default:
			p.Println("Invalid choice. Please try again.")
		}
	}
}

// approveOrReject prompts until the operator picks approve (true) or reject
// (false). The second return is false when the input stream ends before a
// decision is made.
func (u *UI) approveOrReject() (bool, bool) {
	p := u.prompter
	for {
		p.Println("\n1. Approve")
		p.Println("2. Reject")
		switch p.Line("Enter choice: ") {
		case "1":
			return true, true
		case "2":
			return false, true
		default:
			if p.EOF() {
				return false, false
			}
			p.Println("Invalid choice. Please enter 1 or 2.")
		}
	}
}

func (u *UI) authorizeCompanyReps() {
	p := u.prompter
	p.Println("\n=== AUTHORIZE COMPANY REPRESENTATIVES ===")

	rows := u.menus.Staff.PendingCompanyReps()
	if len(rows) == 0 {
		p.Println("No pending company representative accounts.")
		return
	}

	p.Println("\nPending Accounts:")
	for i, row := range rows {
		p.Printf("\n%d.\n", i+1)
		p.Printf("   Email: %s\n", row.Email)
		p.Printf("   Name: %s\n", row.Name)
		p.Printf("   Company: %s\n", row.CompanyName)
		p.Printf("   Department: %s\n", row.Department)
		p.Printf("   Position: %s\n", row.Position)
	}

	index, ok := p.Select("\nEnter account number to process (0 to cancel): ", len(rows))
	if !ok {
		return
	}

	approve, ok := u.approveOrReject()
	if !ok {
		return
	}
	if err := u.menus.Staff.ReviewCompanyRep(rows[index].Email, approve); err != nil {
		p.Printf("Could not process registration: %v\n", err)
		return
	}
	if approve {
		p.Println("\nAccount approved! Representative can now log in.")
	} else {
		p.Println("\nAccount rejected and removed from system.")
	}
}

func (u *UI) reviewInternships() {
	p := u.prompter
	p.Println("\n=== APPROVE INTERNSHIP OPPORTUNITIES ===")

	views := u.menus.Staff.PendingInternships()
	if len(views) == 0 {
		p.Println("No pending internships to review.")
		return
	}

	p.Println("\nPending Internships:")
	for i, view := range views {
		p.Printf("\n%d. %s\n", i+1, view.Title)
		p.renderInternshipDetail(view)
	}

	index, ok := p.Select("\nEnter internship number to process (0 to cancel): ", len(views))
	if !ok {
		return
	}

	approve, ok := u.approveOrReject()
	if !ok {
		return
	}
	if err := u.menus.Staff.ReviewInternship(views[index].ID, approve); err != nil {
		p.Printf("Could not process internship: %v\n", err)
		return
	}
	if approve {
		p.Println("\nInternship approved! Now visible to eligible students.")
	} else {
		p.Println("\nInternship rejected.")
	}
}

func (u *UI) reviewWithdrawals() {
	p := u.prompter
	p.Println("\n=== PROCESS WITHDRAWAL REQUESTS ===")

	rows := u.menus.Staff.PendingWithdrawals()
	if len(rows) == 0 {
		p.Println("No pending withdrawal requests.")
		return
	}

	p.Println("\nPending Withdrawal Requests:")
	for i, row := range rows {
		p.Printf("\n%d. Request ID: %s\n", i+1, row.RequestID)
		p.Printf("   Student: %s\n", row.StudentName)
		p.Printf("   Internship: %s\n", row.InternshipTitle)
		afterConfirmation := "NO"
		if row.AfterConfirmation {
			afterConfirmation = "YES"
		}
		p.Printf("   After Confirmation: %s\n", afterConfirmation)
		p.Printf("   Reason: %s\n", row.Reason)
		p.Printf("   Requested: %s\n", row.RequestedAt.Format("2006-01-02 15:04"))
	}

	index, ok := p.Select("\nEnter request number to process (0 to cancel): ", len(rows))
	if !ok {
		return
	}

	approve, ok := u.approveOrReject()
	if !ok {
		return
	}
	if err := u.menus.Staff.ReviewWithdrawal(rows[index].RequestID, approve); err != nil {
		p.Printf("Could not process withdrawal request: %v\n", err)
		return
	}
	if approve {
		p.Println("\nWithdrawal request approved!")
	} else {
		p.Println("\nWithdrawal request rejected.")
	}
}

func (u *UI) generateReports() {
	p := u.prompter
	p.Println("\n=== GENERATE REPORTS ===")
	p.Println("1. All Internships Report")
	p.Println("2. Filter by Status")
	p.Println("3. Filter by Major")
	p.Println("4. Filter by Level")
	p.Println("5. Filter by Company")

	var filter dto.ReportFilter
	title := "All Internships"

	switch p.Line("Enter choice: ") {
	case "1":
	case "2":
		p.Println("\nSelect Status:")
		p.Println("1. PENDING")
		p.Println("2. APPROVED")
		p.Println("3. REJECTED")
		p.Println("4. FILLED")
		switch p.Line("Enter choice: ") {
		case "1":
			filter.Status = models.InternshipStatusPending
		case "2":
			filter.Status = models.InternshipStatusApproved
		case "3":
			filter.Status = models.InternshipStatusRejected
		case "4":
			filter.Status = models.InternshipStatusFilled
		default:
			p.Println("Invalid choice.")
			return
		}
		title = "Internships with Status: " + upper(filter.Status)
	case "3":
		filter.Major = strings.ToUpper(p.Line("\nEnter Major (e.g., CSC, EEE, MAE, ANY): "))
		title = "Internships for Major: " + filter.Major
	case "4":
		p.Println("\nSelect Level:")
		p.Println("1. BASIC")
		p.Println("2. INTERMEDIATE")
		p.Println("3. ADVANCED")
		switch p.Line("Enter choice: ") {
		case "1":
			filter.Level = models.LevelBasic
		case "2":
			filter.Level = models.LevelIntermediate
		case "3":
			filter.Level = models.LevelAdvanced
		default:
			p.Println("Invalid choice.")
			return
		}
		title = "Internships with Level: " + upper(filter.Level)
	case "5":
		filter.Company = p.Line("\nEnter Company Name: ")
		title = "Internships for Company: " + filter.Company
	default:
		p.Println("Invalid choice.")
		return
	}

	views, err := u.menus.Report.Internships(filter)
	if err != nil {
		p.Printf("Could not generate report: %v\n", err)
		return
	}

	p.Printf("\n=== %s ===\n", title)
	p.Printf("Total: %d\n", len(views))
	if len(views) == 0 {
		p.Println("No internships found.")
		return
	}
	for _, view := range views {
		p.renderInternshipSummary(view)
	}
}

func (u *UI) viewAllInternships() {
	p := u.prompter
	p.Println("\n=== ALL INTERNSHIPS ===")

	views := u.menus.Staff.AllInternships()
	if len(views) == 0 {
		p.Println("No internships in the system.")
		return
	}
	for _, view := range views {
		p.Printf("\n%s: %s\n", view.ID, view.Title)
		p.Printf("   Company: %s\n", view.CompanyName)
		p.Printf("   Level: %s\n", upper(view.Level))
		p.Printf("   Status: %s\n", upper(view.Status))
		p.Printf("   Slots: %d/%d\n", view.AvailableSlots, view.TotalSlots)
	}
}

package console

import (
	"strings"

	"github.com/careerdesk/careerdesk/internal/dto"
)

func onOff(visible bool) string {
	if visible {
		return "ON"
	}
	return "OFF"
}

func upper(s string) string {
	return strings.ToUpper(s)
}

func (p *Prompter) renderInternshipDetail(v dto.InternshipView) {
	p.Printf("   Internship ID: %s\n", v.ID)
	p.Printf("   Company: %s\n", v.CompanyName)
	p.Printf("   Level: %s\n", upper(v.Level))
	p.Printf("   Major: %s\n", v.PreferredMajor)
	p.Printf("   Available Slots: %d\n", v.AvailableSlots)
	p.Printf("   Opening Date: %s\n", v.OpeningDate.Format(dateLayout))
	p.Printf("   Closing Date: %s\n", v.ClosingDate.Format(dateLayout))
	p.Printf("   Description: %s\n", v.Description)
}

func (p *Prompter) renderInternshipSummary(v dto.InternshipView) {
	p.Printf("\n%s: %s\n", v.ID, v.Title)
	p.Printf("   Company: %s\n", v.CompanyName)
	p.Printf("   Level: %s\n", upper(v.Level))
	p.Printf("   Major: %s\n", v.PreferredMajor)
	p.Printf("   Status: %s\n", upper(v.Status))
	p.Printf("   Visibility: %s\n", onOff(v.Visible))
	p.Printf("   Slots: %d/%d\n", v.AvailableSlots, v.TotalSlots)
	p.Printf("   Applications: %d\n", v.Applications)
	p.Printf("   Confirmed: %d\n", v.Confirmed)
}

func (p *Prompter) renderApplicationRow(row dto.ApplicationRow) {
	p.Printf("\nApplication ID: %s\n", row.ApplicationID)
	p.Printf("Internship: %s\n", row.InternshipTitle)
	p.Printf("Company: %s\n", row.CompanyName)
	p.Printf("Status: %s\n", upper(row.Status))
	p.Printf("Application Date: %s\n", row.AppliedAt.Format("2006-01-02 15:04"))
	if row.PlacementConfirmed {
		p.Println("Placement: CONFIRMED")
	}
}

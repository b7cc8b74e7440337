package service

import (
	"sort"
	"strings"

	"github.com/careerdesk/careerdesk/internal/dto"
	"github.com/careerdesk/careerdesk/internal/models"
)

func toInternshipView(internship *models.Internship) dto.InternshipView {
	return dto.InternshipView{
		ID:             internship.ID,
		Title:          internship.Title,
		Description:    internship.Description,
		Level:          internship.Level,
		PreferredMajor: internship.PreferredMajor,
		OpeningDate:    internship.OpeningDate,
		ClosingDate:    internship.ClosingDate,
		Status:         internship.Status,
		CompanyName:    internship.CompanyName,
		TotalSlots:     internship.TotalSlots,
		AvailableSlots: internship.AvailableSlots,
		Visible:        internship.Visible,
		Applications:   len(internship.ApplicationIDs),
		Confirmed:      len(internship.ConfirmedStudentIDs),
	}
}

func toInternshipViews(internships []*models.Internship) []dto.InternshipView {
	views := make([]dto.InternshipView, 0, len(internships))
	for _, internship := range internships {
		views = append(views, toInternshipView(internship))
	}
	return views
}

func sortInternshipsByTitle(internships []*models.Internship) {
	sort.Slice(internships, func(a, b int) bool {
		return strings.Compare(internships[a].Title, internships[b].Title) < 0
	})
}

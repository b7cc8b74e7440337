package service

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/careerdesk/careerdesk/internal/dto"
	"github.com/careerdesk/careerdesk/internal/models"
	"github.com/careerdesk/careerdesk/internal/store"
)

// ReportService produces read-only internship projections for career staff.
type ReportService interface {
	Internships(filter dto.ReportFilter) ([]dto.InternshipView, error)
}

type reportService struct {
	store     *store.Store
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewReportService constructs the reporting service.
func NewReportService(st *store.Store, validate *validator.Validate, logger zerolog.Logger) ReportService {
	return &reportService{
		store:     st,
		validator: validate,
		logger:    logger.With().Str("component", "report_service").Logger(),
	}
}

// Internships returns every posting matching the filter, sorted by title. A
// zero filter returns the full report.
func (s *reportService) Internships(filter dto.ReportFilter) ([]dto.InternshipView, error) {
	if err := s.validator.Struct(filter); err != nil {
		return nil, err
	}

	var matches []*models.Internship
	for _, internship := range s.store.Internships() {
		if matchesFilter(internship, filter) {
			matches = append(matches, internship)
		}
	}
	sortInternshipsByTitle(matches)

	s.logger.Debug().Int("count", len(matches)).Msg("internship report generated")
	return toInternshipViews(matches), nil
}

func matchesFilter(internship *models.Internship, filter dto.ReportFilter) bool {
	if filter.Status != "" && internship.Status != filter.Status {
		return false
	}
	if filter.Major != "" && !strings.EqualFold(internship.PreferredMajor, filter.Major) {
		return false
	}
	if filter.Level != "" && internship.Level != filter.Level {
		return false
	}
	if filter.Company != "" && !strings.Contains(strings.ToLower(internship.CompanyName), strings.ToLower(filter.Company)) {
		return false
	}
	return true
}

package attendance

import (
	"context"
	"math"

	"github.com/facilityops/hvac-backend-go/internal/domain/attendance"
	"github.com/facilityops/hvac-backend-go/internal/pkg/clock"
)

// ByUser implements attendance.Service.
func (s *attendanceService) ByUser(ctx context.Context, userID string, f attendance.UserFilter) (attendance.ListResponse, error) {
	if err := f.Validate(); err != nil {
		return attendance.ListResponse{}, err
	}

	records, total, err := s.repo.ListByUser(ctx, userID, f)
	if err != nil {
		return attendance.ListResponse{}, err
	}

	return attendance.ListResponse{
		Records: toResponses(records),
		Pagination: attendance.Pagination{
			Page:       f.Page,
			Limit:      f.Limit,
			Total:      total,
			TotalPages: int(math.Ceil(float64(total) / float64(f.Limit))),
		},
	}, nil
}

// BySite implements attendance.Service. The date defaults to today's
// Asia/Kolkata civil date.
func (s *attendanceService) BySite(ctx context.Context, siteID string, f attendance.SiteFilter) ([]attendance.Response, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	date := clock.CivilDate(s.clk.Now())
	if f.Date != nil && *f.Date != "" {
		date = *f.Date
	}

	records, err := s.repo.ListBySite(ctx, siteID, date, f.Status)
	if err != nil {
		return nil, err
	}

	return toResponses(records), nil
}

// Report implements attendance.Service. "all" (or empty) widens the report to
// every site.
func (s *attendanceService) Report(ctx context.Context, siteID, dateFrom, dateTo string) ([]attendance.Response, error) {
	var filter *string
	if siteID != "" && siteID != "all" {
		filter = &siteID
	}

	records, err := s.repo.Report(ctx, filter, dateFrom, dateTo)
	if err != nil {
		return nil, err
	}

	return toResponses(records), nil
}

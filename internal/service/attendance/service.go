package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/facilityops/hvac-backend-go/internal/domain/activity"
	"github.com/facilityops/hvac-backend-go/internal/domain/attendance"
	"github.com/facilityops/hvac-backend-go/internal/domain/site"
	"github.com/facilityops/hvac-backend-go/internal/pkg/clock"
	"github.com/facilityops/hvac-backend-go/internal/pkg/geo"
)

// SiteWFH is the sentinel a client sends as site_id for a work-from-home
// check-in. It persists as a null site reference.
const SiteWFH = "WFH"

// DefaultMinWorkHours is the minimum shift length before a checkout needs no
// remarks.
const DefaultMinWorkHours = 7.0

type attendanceService struct {
	repo         attendance.Repository
	locationSvc  site.LocationService
	activityRepo activity.Repository
	clk          clock.Clock
	minWorkHours float64
}

// NewAttendanceService builds the attendance ledger service. minWorkHours of
// zero falls back to DefaultMinWorkHours.
func NewAttendanceService(
	repo attendance.Repository,
	locationSvc site.LocationService,
	activityRepo activity.Repository,
	clk clock.Clock,
	minWorkHours float64,
) attendance.Service {
	if minWorkHours <= 0 {
		minWorkHours = DefaultMinWorkHours
	}
	return &attendanceService{
		repo:         repo,
		locationSvc:  locationSvc,
		activityRepo: activityRepo,
		clk:          clk,
		minWorkHours: minWorkHours,
	}
}

// CheckIn implements attendance.Service.
//
// The civil date is computed once here, in Asia/Kolkata, and stored with the
// record; it is never recomputed afterwards. The unique (user_id, date)
// constraint is the authoritative duplicate guard; the pre-insert read only
// exists to return the existing record on the common path.
func (s *attendanceService) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.Response, error) {
	if err := req.Validate(); err != nil {
		return attendance.Response{}, err
	}

	now := s.clk.Now()
	today := clock.CivilDate(now)

	existing, err := s.repo.GetByUserAndDate(ctx, req.UserID, today)
	if err != nil {
		return attendance.Response{}, err
	}
	if existing != nil {
		return attendance.Response{}, &attendance.AlreadyCheckedInError{Existing: *existing}
	}

	if req.HasCoordinates() {
		point := &geo.Point{Latitude: *req.Latitude, Longitude: *req.Longitude}
		validation, err := s.locationSvc.Validate(ctx, req.UserID, point)
		if err != nil {
			return attendance.Response{}, err
		}
		if !validation.IsWFH && !validation.Allows(req.SiteID) {
			return attendance.Response{}, &attendance.LocationNotAllowedError{
				Message:      validation.Message,
				AllowedSites: validation.AllowedSites,
				NearestSite:  validation.NearestSite,
			}
		}
	}

	var siteID *string
	if req.SiteID != SiteWFH {
		id := req.SiteID
		siteID = &id
	}

	att, err := s.repo.Create(ctx, attendance.Attendance{
		UserID:           req.UserID,
		SiteID:           siteID,
		Date:             today,
		CheckInTime:      now,
		CheckInLatitude:  req.Latitude,
		CheckInLongitude: req.Longitude,
		CheckInAddress:   req.Address,
		ShiftID:          req.ShiftID,
		Status:           attendance.StatusPresent,
	})
	if err != nil {
		if errors.Is(err, attendance.ErrDuplicateDay) {
			// Lost the race; surface the winning record instead.
			winner, readErr := s.repo.GetByUserAndDate(ctx, req.UserID, today)
			if readErr == nil && winner != nil {
				return attendance.Response{}, &attendance.AlreadyCheckedInError{Existing: *winner}
			}
		}
		return attendance.Response{}, err
	}

	s.recordActivity(ctx, req.UserID, "attendance.check_in", "checked in on "+today)

	return toResponse(att), nil
}

// CheckOut implements attendance.Service. The checkout instant and the hours
// figure are computed from the same clock reading.
func (s *attendanceService) CheckOut(ctx context.Context, id string, req attendance.CheckOutRequest) (attendance.CheckOutResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.CheckOutResponse{}, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return attendance.CheckOutResponse{}, err
	}
	if existing.IsClosed() {
		return attendance.CheckOutResponse{}, attendance.ErrAlreadyCheckedOut
	}

	now := s.clk.Now()
	hoursWorked := now.Sub(existing.CheckInTime).Hours()
	isEarly := hoursWorked < s.minWorkHours

	if isEarly && !req.HasRemarks() {
		return attendance.CheckOutResponse{}, &attendance.EarlyCheckoutError{HoursWorked: hoursWorked}
	}

	att, err := s.repo.SetCheckOut(ctx, id, attendance.CheckOutUpdate{
		Time:      now,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Address:   req.Address,
		Remarks:   req.Remarks,
	})
	if err != nil {
		return attendance.CheckOutResponse{}, err
	}

	s.recordActivity(ctx, att.UserID, "attendance.check_out", fmt.Sprintf("checked out after %.2f hours", hoursWorked))

	return attendance.CheckOutResponse{
		Record:          toResponse(att),
		HoursWorked:     fmt.Sprintf("%.2f", hoursWorked),
		IsEarlyCheckout: isEarly,
	}, nil
}

// TodayByUser implements attendance.Service.
func (s *attendanceService) TodayByUser(ctx context.Context, userID string) (*attendance.Response, error) {
	today := clock.CivilDate(s.clk.Now())

	att, err := s.repo.GetByUserAndDate(ctx, userID, today)
	if err != nil {
		return nil, err
	}
	if att == nil {
		return nil, nil
	}

	resp := toResponse(*att)
	return &resp, nil
}

// Get implements attendance.Service.
func (s *attendanceService) Get(ctx context.Context, id string) (attendance.Response, error) {
	att, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return attendance.Response{}, err
	}
	return toResponse(att), nil
}

// Create implements attendance.Service. This is the raw administrative path:
// date and timestamps are taken verbatim, no geofence validation applies.
func (s *attendanceService) Create(ctx context.Context, req attendance.CreateRequest) (attendance.Response, error) {
	if err := req.Validate(); err != nil {
		return attendance.Response{}, err
	}

	status := req.Status
	if status == "" {
		status = attendance.StatusPresent
	}

	checkInTime := s.clk.Now()
	if req.CheckInTime != nil {
		checkInTime = *req.CheckInTime
	}

	att, err := s.repo.Create(ctx, attendance.Attendance{
		UserID:            req.UserID,
		SiteID:            req.SiteID,
		Date:              req.Date,
		CheckInTime:       checkInTime,
		CheckOutTime:      req.CheckOutTime,
		CheckInLatitude:   req.CheckInLatitude,
		CheckInLongitude:  req.CheckInLongitude,
		CheckOutLatitude:  req.CheckOutLatitude,
		CheckOutLongitude: req.CheckOutLongitude,
		CheckInAddress:    req.CheckInAddress,
		CheckOutAddress:   req.CheckOutAddress,
		ShiftID:           req.ShiftID,
		Status:            status,
		Remarks:           req.Remarks,
	})
	if err != nil {
		return attendance.Response{}, err
	}

	return toResponse(att), nil
}

// Update implements attendance.Service.
func (s *attendanceService) Update(ctx context.Context, id string, req attendance.UpdateRequest) (attendance.Response, error) {
	if err := req.Validate(); err != nil {
		return attendance.Response{}, err
	}

	att, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return attendance.Response{}, err
	}

	return toResponse(att), nil
}

// Delete implements attendance.Service.
func (s *attendanceService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// recordActivity writes a best-effort audit record. Failures are logged and
// never propagate into the primary operation.
func (s *attendanceService) recordActivity(ctx context.Context, userID, action, detail string) {
	if s.activityRepo == nil {
		return
	}
	if err := s.activityRepo.Create(ctx, activity.Log{
		UserID: userID,
		Action: action,
		Detail: detail,
	}); err != nil {
		slog.Warn("Failed to record activity", "action", action, "user_id", userID, "error", err)
	}
}

func formatTime(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	formatted := t.UTC().Format(time.RFC3339)
	return &formatted
}

func toResponse(att attendance.Attendance) attendance.Response {
	resp := attendance.Response{
		ID:                att.ID,
		UserID:            att.UserID,
		SiteID:            att.SiteID,
		Date:              att.Date,
		CheckInTime:       formatTime(att.CheckInTime),
		CheckInLatitude:   att.CheckInLatitude,
		CheckInLongitude:  att.CheckInLongitude,
		CheckOutLatitude:  att.CheckOutLatitude,
		CheckOutLongitude: att.CheckOutLongitude,
		CheckInAddress:    att.CheckInAddress,
		CheckOutAddress:   att.CheckOutAddress,
		Status:            att.Status,
		Remarks:           att.Remarks,
		ShiftID:           att.ShiftID,
		UserName:          att.UserName,
		UserPhone:         att.UserPhone,
		UserRole:          att.UserRole,
		EmployeeCode:      att.EmployeeCode,
		SiteName:          att.SiteName,
		SiteCode:          att.SiteCode,
	}
	if att.CheckOutTime != nil {
		resp.CheckOutTime = formatTime(*att.CheckOutTime)
	}
	if !att.CreatedAt.IsZero() {
		resp.CreatedAt = att.CreatedAt.UTC().Format(time.RFC3339)
	}
	if !att.UpdatedAt.IsZero() {
		resp.UpdatedAt = att.UpdatedAt.UTC().Format(time.RFC3339)
	}
	return resp
}

func toResponses(records []attendance.Attendance) []attendance.Response {
	responses := make([]attendance.Response, 0, len(records))
	for _, att := range records {
		responses = append(responses, toResponse(att))
	}
	return responses
}

package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/facilityops/hvac-backend-go/internal/domain/attendance"
	"github.com/facilityops/hvac-backend-go/internal/domain/site"
	"github.com/facilityops/hvac-backend-go/internal/handler/http/response"
	"github.com/facilityops/hvac-backend-go/internal/pkg/geo"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	ValidateLocation(w http.ResponseWriter, r *http.Request)
	GetUserSites(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	GetTodayByUser(w http.ResponseWriter, r *http.Request)
	GetByUser(w http.ResponseWriter, r *http.Request)
	GetBySite(w http.ResponseWriter, r *http.Request)
	GetSiteReport(w http.ResponseWriter, r *http.Request)
	GetOverallReport(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.Service
	locationService   site.LocationService
}

func NewAttendanceHandler(attendanceService attendance.Service, locationService site.LocationService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
		locationService:   locationService,
	}
}

// Create implements AttendanceHandler. Raw administrative insert.
func (h *attendanceHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req attendance.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance log created", result)
}

// CheckIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req attendance.CheckInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.CheckIn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Checked in successfully", result)
}

// CheckOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req attendance.CheckOutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.CheckOut(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Checked out successfully", result)
}

// ValidateLocation implements AttendanceHandler. Coordinates are optional so
// clients can probe work-from-home status before acquiring a GPS fix.
func (h *attendanceHandlerImpl) ValidateLocation(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	var point *geo.Point
	latStr := r.URL.Query().Get("latitude")
	lonStr := r.URL.Query().Get("longitude")
	if latStr != "" && lonStr != "" {
		lat, latErr := strconv.ParseFloat(latStr, 64)
		lon, lonErr := strconv.ParseFloat(lonStr, 64)
		if latErr != nil || lonErr != nil {
			response.BadRequest(w, "latitude and longitude must be numbers", nil)
			return
		}
		point = &geo.Point{Latitude: lat, Longitude: lon}
	}

	result, err := h.locationService.Validate(r.Context(), userID, point)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetUserSites implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetUserSites(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	sites, err := h.locationService.UserSites(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, sites)
}

// GetByID implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.attendanceService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetTodayByUser implements AttendanceHandler. A day with no record yet is a
// 200 with null data, not a 404.
func (h *attendanceHandlerImpl) GetTodayByUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	result, err := h.attendanceService.TodayByUser(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if result == nil {
		response.Success(w, nil)
		return
	}

	response.Success(w, result)
}

// GetByUser implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetByUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	filter := attendance.UserFilter{}

	if p := r.URL.Query().Get("page"); p != "" {
		if pageNum, err := strconv.Atoi(p); err == nil && pageNum > 0 {
			filter.Page = pageNum
		}
	}
	if l := r.URL.Query().Get("limit"); l != "" {
		if limitNum, err := strconv.Atoi(l); err == nil && limitNum > 0 {
			filter.Limit = limitNum
		}
	}
	if dateFrom := r.URL.Query().Get("date_from"); dateFrom != "" {
		filter.DateFrom = &dateFrom
	}
	if dateTo := r.URL.Query().Get("date_to"); dateTo != "" {
		filter.DateTo = &dateTo
	}

	result, err := h.attendanceService.ByUser(r.Context(), userID, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Records, &response.Meta{
		Page:       result.Pagination.Page,
		Limit:      result.Pagination.Limit,
		TotalItems: result.Pagination.Total,
		TotalPages: result.Pagination.TotalPages,
	})
}

// GetBySite implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetBySite(w http.ResponseWriter, r *http.Request) {
	siteID := chi.URLParam(r, "siteId")

	filter := attendance.SiteFilter{}
	if date := r.URL.Query().Get("date"); date != "" {
		filter.Date = &date
	}
	if status := r.URL.Query().Get("status"); status != "" {
		filter.Status = &status
	}

	results, err := h.attendanceService.BySite(r.Context(), siteID, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// GetSiteReport implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetSiteReport(w http.ResponseWriter, r *http.Request) {
	siteID := chi.URLParam(r, "siteId")
	h.report(w, r, siteID)
}

// GetOverallReport implements AttendanceHandler. Accepts an optional site_id
// query parameter; absent means all sites.
func (h *attendanceHandlerImpl) GetOverallReport(w http.ResponseWriter, r *http.Request) {
	siteID := r.URL.Query().Get("site_id")
	if siteID == "" {
		siteID = "all"
	}
	h.report(w, r, siteID)
}

func (h *attendanceHandlerImpl) report(w http.ResponseWriter, r *http.Request, siteID string) {
	dateFrom := r.URL.Query().Get("date_from")
	dateTo := r.URL.Query().Get("date_to")
	if dateFrom == "" || dateTo == "" {
		response.BadRequest(w, "date_from and date_to are required", nil)
		return
	}

	results, err := h.attendanceService.Report(r.Context(), siteID, dateFrom, dateTo)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// Update implements AttendanceHandler.
func (h *attendanceHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req attendance.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance updated successfully", result)
}

// Delete implements AttendanceHandler.
func (h *attendanceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.attendanceService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance log deleted successfully", nil)
}

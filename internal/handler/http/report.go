package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/facetrack/attendance-backend-go/internal/domain/report"
	"github.com/facetrack/attendance-backend-go/internal/handler/http/response"
	reportsvc "github.com/facetrack/attendance-backend-go/internal/service/report"
	"github.com/go-chi/chi/v5"
)

type ReportHandler interface {
	LateToday(w http.ResponseWriter, r *http.Request)
	EarlyLeaveToday(w http.ResponseWriter, r *http.Request)
	OvertimeToday(w http.ResponseWriter, r *http.Request)
	MonthlyStatistics(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

func snapshotRequest(r *http.Request) report.SnapshotRequest {
	var req report.SnapshotRequest
	if v := r.URL.Query().Get("date"); v != "" {
		req.Date = &v
	}
	if v := r.URL.Query().Get("department_id"); v != "" {
		req.DepartmentID = &v
	}
	return req
}

// monthlyRequest reads employeeID from the path and month/year from the
// query, defaulting to the current month in the business timezone.
func monthlyRequest(r *http.Request) (report.MonthlyRequest, error) {
	now := time.Now().In(reportsvc.BusinessZone)
	req := report.MonthlyRequest{
		EmployeeID: chi.URLParam(r, "employeeID"),
		Month:      int(now.Month()),
		Year:       now.Year(),
	}

	if v := r.URL.Query().Get("month"); v != "" {
		month, err := strconv.Atoi(v)
		if err != nil {
			return report.MonthlyRequest{}, err
		}
		req.Month = month
	}
	if v := r.URL.Query().Get("year"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			return report.MonthlyRequest{}, err
		}
		req.Year = year
	}
	return req, nil
}

func (h *reportHandlerImpl) LateToday(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.LateToday(r.Context(), snapshotRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *reportHandlerImpl) EarlyLeaveToday(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.EarlyLeaveToday(r.Context(), snapshotRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *reportHandlerImpl) OvertimeToday(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.OvertimeToday(r.Context(), snapshotRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *reportHandlerImpl) MonthlyStatistics(w http.ResponseWriter, r *http.Request) {
	req, err := monthlyRequest(r)
	if err != nil {
		response.BadRequest(w, "month and year must be integers", nil)
		return
	}

	result, err := h.reportService.MonthlyStatistics(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *reportHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	req, err := monthlyRequest(r)
	if err != nil {
		response.BadRequest(w, "month and year must be integers", nil)
		return
	}

	result, err := h.reportService.History(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

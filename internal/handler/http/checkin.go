package http

import (
	"encoding/json"
	"net/http"

	"github.com/facetrack/attendance-backend-go/internal/domain/checkin"
	"github.com/facetrack/attendance-backend-go/internal/handler/http/response"
	checkinservice "github.com/facetrack/attendance-backend-go/internal/service/checkin"
)

type CheckinHandler interface {
	// RecordScan accepts a manual scan, the HTTP twin of the device feed
	RecordScan(w http.ResponseWriter, r *http.Request)
	TodayFeed(w http.ResponseWriter, r *http.Request)
}

type checkinHandlerImpl struct {
	checkinService checkinservice.CheckinService
}

func NewCheckinHandler(checkinService checkinservice.CheckinService) CheckinHandler {
	return &checkinHandlerImpl{
		checkinService: checkinService,
	}
}

func (h *checkinHandlerImpl) RecordScan(w http.ResponseWriter, r *http.Request) {
	var req checkin.RecordScanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.checkinService.RecordScan(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Scan recorded successfully", result)
}

func (h *checkinHandlerImpl) TodayFeed(w http.ResponseWriter, r *http.Request) {
	result, err := h.checkinService.TodayFeed(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

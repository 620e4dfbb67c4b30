package http

import (
	"encoding/json"
	"net/http"

	"github.com/facetrack/attendance-backend-go/internal/domain/position"
	"github.com/facetrack/attendance-backend-go/internal/handler/http/response"
	positionservice "github.com/facetrack/attendance-backend-go/internal/service/position"
	"github.com/go-chi/chi/v5"
)

type PositionHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type positionHandlerImpl struct {
	positionService positionservice.PositionService
}

func NewPositionHandler(positionService positionservice.PositionService) PositionHandler {
	return &positionHandlerImpl{
		positionService: positionService,
	}
}

func (h *positionHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req position.CreatePositionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.positionService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Position created successfully", result)
}

func (h *positionHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.positionService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *positionHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var departmentID *string
	if v := r.URL.Query().Get("department_id"); v != "" {
		departmentID = &v
	}

	result, err := h.positionService.List(r.Context(), departmentID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *positionHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req position.UpdatePositionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := h.positionService.Update(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Position updated successfully", nil)
}

func (h *positionHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.positionService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Position deleted successfully", nil)
}

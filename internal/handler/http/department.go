package http

import (
	"encoding/json"
	"net/http"

	"github.com/facetrack/attendance-backend-go/internal/domain/department"
	"github.com/facetrack/attendance-backend-go/internal/handler/http/response"
	departmentservice "github.com/facetrack/attendance-backend-go/internal/service/department"
	"github.com/go-chi/chi/v5"
)

type DepartmentHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type departmentHandlerImpl struct {
	departmentService departmentservice.DepartmentService
}

func NewDepartmentHandler(departmentService departmentservice.DepartmentService) DepartmentHandler {
	return &departmentHandlerImpl{
		departmentService: departmentService,
	}
}

func (h *departmentHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req department.CreateDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.departmentService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Department created successfully", result)
}

func (h *departmentHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.departmentService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *departmentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.departmentService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *departmentHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req department.UpdateDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := h.departmentService.Update(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Department updated successfully", nil)
}

func (h *departmentHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.departmentService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Department deleted successfully", nil)
}

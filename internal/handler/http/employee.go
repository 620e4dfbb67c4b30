package http

import (
	"encoding/json"
	"net/http"

	"github.com/facetrack/attendance-backend-go/internal/domain/employee"
	"github.com/facetrack/attendance-backend-go/internal/handler/http/response"
	employeeservice "github.com/facetrack/attendance-backend-go/internal/service/employee"
	"github.com/go-chi/chi/v5"
)

type EmployeeHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employeeservice.EmployeeService
}

func NewEmployeeHandler(employeeService employeeservice.EmployeeService) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService: employeeService,
	}
}

func (h *employeeHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var req employee.RegisterEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.employeeService.Register(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee registered successfully", result)
}

func (h *employeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var departmentID *string
	if v := r.URL.Query().Get("department_id"); v != "" {
		departmentID = &v
	}

	result, err := h.employeeService.List(r.Context(), departmentID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *employeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	result, err := h.employeeService.GetByEmployeeID(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *employeeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req employee.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = chi.URLParam(r, "employeeID")

	result, err := h.employeeService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated successfully", result)
}

func (h *employeeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	if err := h.employeeService.Delete(r.Context(), employeeID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee deleted successfully", nil)
}

package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/facetrack/attendance-backend-go/internal/domain/department"
	"github.com/facetrack/attendance-backend-go/internal/domain/employee"
	"github.com/facetrack/attendance-backend-go/internal/domain/position"
	"github.com/facetrack/attendance-backend-go/internal/pkg/database"
	"github.com/facetrack/attendance-backend-go/internal/pkg/validator"
	"github.com/facetrack/attendance-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type EmployeeService interface {
	Register(ctx context.Context, req employee.RegisterEmployeeRequest) (employee.EmployeeResponse, error)
	Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error)
	Delete(ctx context.Context, employeeID string) error
	GetByEmployeeID(ctx context.Context, employeeID string) (employee.EmployeeResponse, error)
	List(ctx context.Context, departmentID *string) ([]employee.EmployeeResponse, error)

	// HandleDeviceRegistration processes an employee registration payload
	// pushed by a face terminal: department and position are referenced by
	// name and created on the fly when missing.
	HandleDeviceRegistration(ctx context.Context, req employee.DeviceRegistrationRequest) error
}

type employeeServiceImpl struct {
	db             *database.DB
	employeeRepo   employee.EmployeeRepository
	departmentRepo department.DepartmentRepository
	positionRepo   position.PositionRepository
	logger         *slog.Logger
}

func NewEmployeeService(
	db *database.DB,
	employeeRepo employee.EmployeeRepository,
	departmentRepo department.DepartmentRepository,
	positionRepo position.PositionRepository,
	logger *slog.Logger,
) EmployeeService {
	return &employeeServiceImpl{
		db:             db,
		employeeRepo:   employeeRepo,
		departmentRepo: departmentRepo,
		positionRepo:   positionRepo,
		logger:         logger,
	}
}

func (s *employeeServiceImpl) Register(ctx context.Context, req employee.RegisterEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}
	if !employee.Shift(req.Shift).Known() {
		return employee.EmployeeResponse{}, validator.ValidationErrors{{
			Field:   "shift",
			Message: "shift must be one of full_day, morning, afternoon",
		}}
	}

	exists, err := s.employeeRepo.ExistsByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check employee id: %w", err)
	}
	if exists {
		return employee.EmployeeResponse{}, employee.ErrEmployeeExists
	}

	now := time.Now().UTC()
	entity := employee.Employee{
		EmployeeID:       req.EmployeeID,
		FullName:         req.FullName,
		Email:            &req.Email,
		Phone:            &req.Phone,
		Shift:            employee.Shift(req.Shift),
		DepartmentID:     req.DepartmentID,
		PositionID:       req.PositionID,
		FaceImage:        req.FaceImage,
		RegistrationDate: &now,
	}

	created, err := s.employeeRepo.Create(ctx, entity)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return toResponse(created), nil
}

func (s *employeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	existing, err := s.employeeRepo.GetByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.FullName != nil {
		existing.FullName = *req.FullName
	}
	if req.Email != nil {
		existing.Email = req.Email
	}
	if req.Phone != nil {
		existing.Phone = req.Phone
	}
	if req.Shift != nil {
		if !employee.Shift(*req.Shift).Known() {
			return employee.EmployeeResponse{}, validator.ValidationErrors{{
				Field:   "shift",
				Message: "shift must be one of full_day, morning, afternoon",
			}}
		}
		existing.Shift = employee.Shift(*req.Shift)
	}
	if req.DepartmentID != nil {
		existing.DepartmentID = req.DepartmentID
	}
	if req.PositionID != nil {
		existing.PositionID = req.PositionID
	}
	if req.FaceImage != nil {
		existing.FaceImage = req.FaceImage
	}

	if err := s.employeeRepo.Update(ctx, existing); err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	updated, err := s.employeeRepo.GetByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toResponse(updated), nil
}

func (s *employeeServiceImpl) Delete(ctx context.Context, employeeID string) error {
	return s.employeeRepo.Delete(ctx, employeeID)
}

func (s *employeeServiceImpl) GetByEmployeeID(ctx context.Context, employeeID string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toResponse(emp), nil
}

func (s *employeeServiceImpl) List(ctx context.Context, departmentID *string) ([]employee.EmployeeResponse, error) {
	var (
		emps []employee.Employee
		err  error
	)
	if departmentID != nil && *departmentID != "" {
		if _, derr := s.departmentRepo.GetByID(ctx, *departmentID); derr != nil {
			return nil, derr
		}
		emps, err = s.employeeRepo.ListByDepartment(ctx, *departmentID)
	} else {
		emps, err = s.employeeRepo.List(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	out := make([]employee.EmployeeResponse, 0, len(emps))
	for _, emp := range emps {
		out = append(out, toResponse(emp))
	}
	return out, nil
}

func (s *employeeServiceImpl) HandleDeviceRegistration(ctx context.Context, req employee.DeviceRegistrationRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var departmentID, positionID *string
		if req.Department != nil && *req.Department != "" {
			dept, err := s.resolveDepartment(txCtx, *req.Department)
			if err != nil {
				return err
			}
			departmentID = &dept.ID

			if req.Position != nil && *req.Position != "" {
				pos, err := s.resolvePosition(txCtx, dept.ID, *req.Position)
				if err != nil {
					return err
				}
				positionID = &pos.ID
			}
		}

		entity := employee.Employee{
			EmployeeID:   req.EmployeeID,
			FullName:     req.EmployeeName,
			Shift:        NormalizeShift(req.Shift),
			DepartmentID: departmentID,
			PositionID:   positionID,
			FaceImage:    req.FaceBase64,
		}
		if req.RegistrationDate != nil {
			if ts, ok := validator.IsValidDateTime(*req.RegistrationDate); ok {
				utc := ts.UTC()
				entity.RegistrationDate = &utc
			}
		}
		if entity.RegistrationDate == nil {
			now := time.Now().UTC()
			entity.RegistrationDate = &now
		}

		existing, err := s.employeeRepo.GetByEmployeeID(txCtx, req.EmployeeID)
		if err == nil {
			// update payloads arrive on the same topic as registrations
			existing.FullName = entity.FullName
			if entity.Shift != "" {
				existing.Shift = entity.Shift
			}
			if departmentID != nil {
				existing.DepartmentID = departmentID
			}
			if positionID != nil {
				existing.PositionID = positionID
			}
			if entity.FaceImage != nil {
				existing.FaceImage = entity.FaceImage
			}
			return s.employeeRepo.Update(txCtx, existing)
		}
		if !errors.Is(err, employee.ErrEmployeeNotFound) {
			return fmt.Errorf("failed to look up employee: %w", err)
		}

		if _, err := s.employeeRepo.Create(txCtx, entity); err != nil {
			return fmt.Errorf("failed to create employee from device payload: %w", err)
		}
		s.logger.Info("employee registered from device",
			"employee_id", req.EmployeeID,
			"name", req.EmployeeName)
		return nil
	})
}

func (s *employeeServiceImpl) resolveDepartment(ctx context.Context, name string) (department.Department, error) {
	dept, err := s.departmentRepo.GetByName(ctx, name)
	if err == nil {
		return dept, nil
	}
	if !errors.Is(err, department.ErrDepartmentNotFound) {
		return department.Department{}, fmt.Errorf("failed to look up department: %w", err)
	}
	return s.departmentRepo.Create(ctx, department.Department{Name: name})
}

func (s *employeeServiceImpl) resolvePosition(ctx context.Context, departmentID, name string) (position.Position, error) {
	positions, err := s.positionRepo.ListByDepartment(ctx, departmentID)
	if err != nil {
		return position.Position{}, fmt.Errorf("failed to list positions: %w", err)
	}
	for _, p := range positions {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return s.positionRepo.Create(ctx, position.Position{DepartmentID: departmentID, Name: name})
}

// NormalizeShift maps the free-form shift strings devices send to the
// canonical values. Unrecognized input is kept as-is: the reconciliation
// engine treats it as unclassified rather than guessing.
func NormalizeShift(raw string) employee.Shift {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(raw)), " ", "_") {
	case "full_day", "fullday", "full":
		return employee.ShiftFullDay
	case "morning", "morning_shift":
		return employee.ShiftMorning
	case "afternoon", "afternoon_shift":
		return employee.ShiftAfternoon
	}
	return employee.Shift(strings.TrimSpace(raw))
}

func toResponse(emp employee.Employee) employee.EmployeeResponse {
	resp := employee.EmployeeResponse{
		ID:             emp.ID,
		EmployeeID:     emp.EmployeeID,
		FullName:       emp.FullName,
		Email:          emp.Email,
		Phone:          emp.Phone,
		Shift:          string(emp.Shift),
		DepartmentID:   emp.DepartmentID,
		DepartmentName: emp.DepartmentName,
		PositionID:     emp.PositionID,
		PositionName:   emp.PositionName,
		FaceImage:      emp.FaceImage,
		CreatedAt:      emp.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:      emp.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if emp.RegistrationDate != nil {
		v := emp.RegistrationDate.UTC().Format(time.RFC3339)
		resp.RegistrationDate = &v
	}
	return resp
}

package department

import (
	"context"
	"errors"
	"fmt"

	"github.com/facetrack/attendance-backend-go/internal/domain/department"
	"github.com/facetrack/attendance-backend-go/internal/domain/position"
	"github.com/facetrack/attendance-backend-go/internal/pkg/database"
	"github.com/facetrack/attendance-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type DepartmentService interface {
	Create(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error)
	GetByID(ctx context.Context, id string) (department.DepartmentResponse, error)
	List(ctx context.Context) ([]department.DepartmentResponse, error)
	Update(ctx context.Context, req department.UpdateDepartmentRequest) error
	Delete(ctx context.Context, id string) error
}

type departmentServiceImpl struct {
	db             *database.DB
	departmentRepo department.DepartmentRepository
	positionRepo   position.PositionRepository
}

func NewDepartmentService(
	db *database.DB,
	departmentRepo department.DepartmentRepository,
	positionRepo position.PositionRepository,
) DepartmentService {
	return &departmentServiceImpl{
		db:             db,
		departmentRepo: departmentRepo,
		positionRepo:   positionRepo,
	}
}

func (s *departmentServiceImpl) Create(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	_, err := s.departmentRepo.GetByName(ctx, req.Name)
	if err == nil {
		return department.DepartmentResponse{}, department.ErrDepartmentExists
	}
	if !errors.Is(err, department.ErrDepartmentNotFound) {
		return department.DepartmentResponse{}, fmt.Errorf("failed to check department name: %w", err)
	}

	created, err := s.departmentRepo.Create(ctx, department.Department{Name: req.Name})
	if err != nil {
		return department.DepartmentResponse{}, fmt.Errorf("failed to create department: %w", err)
	}

	return toResponse(created), nil
}

func (s *departmentServiceImpl) GetByID(ctx context.Context, id string) (department.DepartmentResponse, error) {
	dept, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return department.DepartmentResponse{}, err
	}
	return toResponse(dept), nil
}

func (s *departmentServiceImpl) List(ctx context.Context) ([]department.DepartmentResponse, error) {
	depts, err := s.departmentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}

	out := make([]department.DepartmentResponse, 0, len(depts))
	for _, dept := range depts {
		out = append(out, toResponse(dept))
	}
	return out, nil
}

func (s *departmentServiceImpl) Update(ctx context.Context, req department.UpdateDepartmentRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	existing, err := s.departmentRepo.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}
	existing.Name = req.Name

	return s.departmentRepo.Update(ctx, existing)
}

// Delete removes the department and its positions in one transaction.
func (s *departmentServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.departmentRepo.GetByID(ctx, id); err != nil {
		return err
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.positionRepo.DeleteByDepartment(txCtx, id); err != nil {
			return fmt.Errorf("failed to delete positions: %w", err)
		}
		return s.departmentRepo.Delete(txCtx, id)
	})
}

func toResponse(dept department.Department) department.DepartmentResponse {
	return department.DepartmentResponse{
		ID:            dept.ID,
		Name:          dept.Name,
		PositionCount: dept.PositionCount,
	}
}

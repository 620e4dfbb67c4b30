package position

import (
	"context"
	"fmt"

	"github.com/facetrack/attendance-backend-go/internal/domain/department"
	"github.com/facetrack/attendance-backend-go/internal/domain/position"
)

type PositionService interface {
	Create(ctx context.Context, req position.CreatePositionRequest) (position.PositionResponse, error)
	GetByID(ctx context.Context, id string) (position.PositionResponse, error)
	List(ctx context.Context, departmentID *string) ([]position.PositionResponse, error)
	Update(ctx context.Context, req position.UpdatePositionRequest) error
	Delete(ctx context.Context, id string) error
}

type positionServiceImpl struct {
	positionRepo   position.PositionRepository
	departmentRepo department.DepartmentRepository
}

func NewPositionService(
	positionRepo position.PositionRepository,
	departmentRepo department.DepartmentRepository,
) PositionService {
	return &positionServiceImpl{
		positionRepo:   positionRepo,
		departmentRepo: departmentRepo,
	}
}

func (s *positionServiceImpl) Create(ctx context.Context, req position.CreatePositionRequest) (position.PositionResponse, error) {
	if err := req.Validate(); err != nil {
		return position.PositionResponse{}, err
	}

	if _, err := s.departmentRepo.GetByID(ctx, req.DepartmentID); err != nil {
		return position.PositionResponse{}, err
	}

	created, err := s.positionRepo.Create(ctx, position.Position{
		DepartmentID: req.DepartmentID,
		Name:         req.Name,
	})
	if err != nil {
		return position.PositionResponse{}, fmt.Errorf("failed to create position: %w", err)
	}

	return toResponse(created), nil
}

func (s *positionServiceImpl) GetByID(ctx context.Context, id string) (position.PositionResponse, error) {
	pos, err := s.positionRepo.GetByID(ctx, id)
	if err != nil {
		return position.PositionResponse{}, err
	}
	return toResponse(pos), nil
}

func (s *positionServiceImpl) List(ctx context.Context, departmentID *string) ([]position.PositionResponse, error) {
	var (
		positions []position.Position
		err       error
	)
	if departmentID != nil && *departmentID != "" {
		if _, derr := s.departmentRepo.GetByID(ctx, *departmentID); derr != nil {
			return nil, derr
		}
		positions, err = s.positionRepo.ListByDepartment(ctx, *departmentID)
	} else {
		positions, err = s.positionRepo.List(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list positions: %w", err)
	}

	out := make([]position.PositionResponse, 0, len(positions))
	for _, pos := range positions {
		out = append(out, toResponse(pos))
	}
	return out, nil
}

func (s *positionServiceImpl) Update(ctx context.Context, req position.UpdatePositionRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	existing, err := s.positionRepo.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}
	existing.Name = req.Name

	return s.positionRepo.Update(ctx, existing)
}

func (s *positionServiceImpl) Delete(ctx context.Context, id string) error {
	return s.positionRepo.Delete(ctx, id)
}

func toResponse(pos position.Position) position.PositionResponse {
	return position.PositionResponse{
		ID:           pos.ID,
		DepartmentID: pos.DepartmentID,
		Name:         pos.Name,
	}
}

package department

import (
	"context"
	"errors"
	"fmt"

	"github.com/stafftrack/attendance-backend-go/internal/domain/department"
	"github.com/stafftrack/attendance-backend-go/internal/domain/user"
	"github.com/stafftrack/attendance-backend-go/internal/fixtures"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/authz"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/validator"
)

type DepartmentServiceImpl struct {
	department.DepartmentRepository
}

func NewDepartmentService(departmentRepository department.DepartmentRepository) department.DepartmentService {
	return &DepartmentServiceImpl{DepartmentRepository: departmentRepository}
}

// Create implements department.DepartmentService.
func (s *DepartmentServiceImpl) Create(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	if _, decision := authz.RequireAdmin(ctx); !decision.Allowed {
		return department.DepartmentResponse{}, fmt.Errorf("%s: %w", decision.Reason, user.ErrAdminPrivilegeRequired)
	}
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	if _, err := s.DepartmentRepository.GetByName(ctx, req.Name); err == nil {
		return department.DepartmentResponse{}, department.ErrNameExists
	} else if !errors.Is(err, department.ErrDepartmentNotFound) {
		return department.DepartmentResponse{}, fmt.Errorf("failed to check department name: %w", err)
	}

	slug := req.Slug
	if slug == "" {
		slug = validator.Slugify(req.Name)
	}

	created, err := s.DepartmentRepository.Create(ctx, department.Department{
		Name:        req.Name,
		Description: req.Description,
		Slug:        slug,
	})
	if err != nil {
		return department.DepartmentResponse{}, err
	}

	return toResponse(created), nil
}

// List implements department.DepartmentService.
func (s *DepartmentServiceImpl) List(ctx context.Context) ([]department.DepartmentResponse, error) {
	departments, err := s.DepartmentRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]department.DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		responses = append(responses, toResponse(d))
	}
	return responses, nil
}

// SeedDefaults implements department.DepartmentService. Runs at startup, so
// it takes no caller identity.
func (s *DepartmentServiceImpl) SeedDefaults(ctx context.Context) (int, error) {
	created := 0
	for _, d := range fixtures.DefaultDepartments() {
		if _, err := s.DepartmentRepository.GetByName(ctx, d.Name); err == nil {
			continue
		} else if !errors.Is(err, department.ErrDepartmentNotFound) {
			return created, fmt.Errorf("failed to check department %q: %w", d.Name, err)
		}

		d.Slug = validator.Slugify(d.Name)
		if _, err := s.DepartmentRepository.Create(ctx, d); err != nil {
			return created, fmt.Errorf("failed to seed department %q: %w", d.Name, err)
		}
		created++
	}
	return created, nil
}

func toResponse(d department.Department) department.DepartmentResponse {
	return department.DepartmentResponse{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Slug:        d.Slug,
	}
}

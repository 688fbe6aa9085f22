package services

import (
	"context"
	"fmt"

	"github.com/careerguide/backend/internal/app/models"
	"github.com/careerguide/backend/internal/app/models/dto"
	"github.com/careerguide/backend/internal/app/repositories"
	"github.com/careerguide/backend/internal/pkg/apperrors"
	"github.com/careerguide/backend/internal/pkg/auth"
)

//go:generate mockgen -source=./admin_service.go -package=svcmocks -destination=mocks/admin_service.mock.go

// AdminService covers the admin profile and the student listing
type AdminService interface {
	GetProfile(ctx context.Context, id int64) (*models.Admin, error)
	UpdateProfile(ctx context.Context, id int64, req *dto.UpdateAdminRequest) (*models.Admin, error)
	ListStudents(ctx context.Context, query *dto.ListStudentsQuery) ([]*models.Student, error)
}

type adminServiceImpl struct {
	adminRepo    repositories.IAdminRepository
	studentRepo  repositories.IStudentRepository
	hashPassword func(string) (string, error)
}

// NewAdminService creates a new AdminService
func NewAdminService(adminRepo repositories.IAdminRepository, studentRepo repositories.IStudentRepository) AdminService {
	return &adminServiceImpl{
		adminRepo:    adminRepo,
		studentRepo:  studentRepo,
		hashPassword: auth.HashPassword,
	}
}

// GetProfile returns the admin or ErrAdminNotFound
func (s *adminServiceImpl) GetProfile(ctx context.Context, id int64) (*models.Admin, error) {
	return s.adminRepo.GetByID(ctx, id)
}

// UpdateProfile applies the non-nil fields of req. Email is never changed.
func (s *adminServiceImpl) UpdateProfile(ctx context.Context, id int64, req *dto.UpdateAdminRequest) (*models.Admin, error) {
	admin, err := s.adminRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		admin.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		admin.LastName = *req.LastName
	}
	if req.Country != nil {
		admin.Country = *req.Country
	}
	if req.Phone != nil {
		admin.Phone = *req.Phone
	}
	if req.Password != nil {
		hash, err := s.hashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("error hashing password: %w", err)
		}
		admin.Password = hash
	}

	if err := s.adminRepo.Update(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}

// ListStudents filters by first name substring and sorts; defaults are id ascending
func (s *adminServiceImpl) ListStudents(ctx context.Context, query *dto.ListStudentsQuery) ([]*models.Student, error) {
	filter := repositories.StudentListFilter{
		Search: query.Search,
		SortBy: query.SortBy,
	}
	if filter.SortBy == "" {
		filter.SortBy = "id"
	}
	if !repositories.StudentSortColumns[filter.SortBy] {
		return nil, apperrors.NewValidationError(fmt.Sprintf("sort_by must be one of id, first_name, last_name, grade, country, email; got %q", query.SortBy))
	}

	switch query.Order {
	case "", "asc":
	case "desc":
		filter.Desc = true
	default:
		return nil, apperrors.NewValidationError(fmt.Sprintf("order must be asc or desc; got %q", query.Order))
	}

	return s.studentRepo.List(ctx, filter)
}

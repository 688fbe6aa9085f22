package services

import (
	"context"
	"fmt"

	"github.com/careerguide/backend/internal/app/models"
	"github.com/careerguide/backend/internal/app/models/dto"
	"github.com/careerguide/backend/internal/app/repositories"
	"github.com/careerguide/backend/internal/pkg/apperrors"
	"github.com/careerguide/backend/internal/pkg/auth"
	"github.com/careerguide/backend/internal/pkg/logger"
)

//go:generate mockgen -source=./auth_service.go -package=svcmocks -destination=mocks/auth_service.mock.go

// AuthService handles student registration and login for both roles
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (int64, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type authServiceImpl struct {
	studentRepo  repositories.IStudentRepository
	adminRepo    repositories.IAdminRepository
	jwtService   *auth.JWTService
	hashPassword func(string) (string, error)
}

// NewAuthService creates a new AuthService
func NewAuthService(
	studentRepo repositories.IStudentRepository,
	adminRepo repositories.IAdminRepository,
	jwtService *auth.JWTService,
) AuthService {
	return &authServiceImpl{
		studentRepo:  studentRepo,
		adminRepo:    adminRepo,
		jwtService:   jwtService,
		hashPassword: auth.HashPassword,
	}
}

// Register creates a student account. The password is stored as a bcrypt hash.
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (int64, error) {
	exists, err := s.studentRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return 0, fmt.Errorf("error checking email: %w", err)
	}
	if exists {
		return 0, apperrors.ErrEmailAlreadyExists
	}

	hash, err := s.hashPassword(req.Password)
	if err != nil {
		return 0, fmt.Errorf("error hashing password: %w", err)
	}

	id, err := s.studentRepo.Create(ctx, &models.Student{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Grade:     req.Grade,
		Email:     req.Email,
		Country:   req.Country,
		Phone:     req.Phone,
		Password:  hash,
	})
	if err != nil {
		return 0, err
	}

	logger.Info().Int64("studentID", id).Msg("Student registered")
	return id, nil
}

// Login checks students first and falls back to admins only when no student has
// the email. It returns the matched role with a token.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	student, err := s.studentRepo.GetByEmail(ctx, req.Email)
	switch {
	case err == nil:
		if auth.CheckPassword(student.Password, req.Password) {
			return s.loginResponse(student.ID, student.Email, models.RoleStudent)
		}
		logger.Debug().Str("email", req.Email).Msg("Login rejected: student password mismatch")
		return nil, apperrors.ErrInvalidCredentials
	case !apperrors.Is(err, apperrors.ErrResourceNotFound):
		return nil, err
	}

	admin, err := s.adminRepo.GetByEmail(ctx, req.Email)
	switch {
	case err == nil:
		if auth.CheckPassword(admin.Password, req.Password) {
			return s.loginResponse(admin.ID, admin.Email, models.RoleAdmin)
		}
	case !apperrors.Is(err, apperrors.ErrResourceNotFound):
		return nil, err
	}

	logger.Debug().Str("email", req.Email).Msg("Login rejected")
	return nil, apperrors.ErrInvalidCredentials
}

func (s *authServiceImpl) loginResponse(id int64, email string, role models.RoleType) (*dto.LoginResponse, error) {
	token, expiresIn, err := s.jwtService.GenerateAccessToken(id, email, string(role))
	if err != nil {
		return nil, fmt.Errorf("token generation error: %w", err)
	}

	return &dto.LoginResponse{
		Message:     "Login successful",
		Role:        string(role),
		UserID:      id,
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
	}, nil
}

package services

import (
	"github.com/careerguide/backend/internal/app/repositories"
	"github.com/careerguide/backend/internal/pkg/auth"
	"github.com/careerguide/backend/internal/pkg/filestorage"
)

// Services holds all the service instances
type Services struct {
	AuthService       AuthService
	AdminService      AdminService
	CareerTestService CareerTestService
	CareerPageService CareerPageService
}

// NewServices wires services onto repositories
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService, storage filestorage.FileStorage) *Services {
	return &Services{
		AuthService:       NewAuthService(repos.StudentRepository, repos.AdminRepository, jwtService),
		AdminService:      NewAdminService(repos.AdminRepository, repos.StudentRepository),
		CareerTestService: NewCareerTestService(repos.CareerTestRepository),
		CareerPageService: NewCareerPageService(repos.CareerPageRepository, storage),
	}
}

package repositories

import (
	"strings"

	"github.com/careerguide/backend/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository    *StudentRepository
	AdminRepository      *AdminRepository
	CareerTestRepository *CareerTestRepository
	CareerPageRepository *CareerPageRepository
}

// NewRepositories initializes all repositories
func NewRepositories(pool db.Pool) *Repositories {
	return &Repositories{
		StudentRepository:    NewStudentRepository(pool),
		AdminRepository:      NewAdminRepository(pool),
		CareerTestRepository: NewCareerTestRepository(pool),
		CareerPageRepository: NewCareerPageRepository(pool),
	}
}

func columnList(columns []string) string {
	return strings.Join(columns, ", ")
}

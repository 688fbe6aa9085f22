package services

import (
	"context"

	"github.com/careerguide/backend/internal/app/models"
	"github.com/careerguide/backend/internal/app/models/dto"
	"github.com/careerguide/backend/internal/app/repositories"
	"github.com/careerguide/backend/internal/pkg/logger"
	"github.com/careerguide/backend/internal/pkg/validation"
)

//go:generate mockgen -source=./career_test_service.go -package=svcmocks -destination=mocks/career_test_service.mock.go

// CareerTestService manages career tests and their questions as one aggregate
type CareerTestService interface {
	CreateTest(ctx context.Context, req *dto.CareerTestRequest) (*models.CareerTest, error)
	ListTests(ctx context.Context) ([]*models.CareerTest, error)
	GetTest(ctx context.Context, id int64) (*models.CareerTest, error)
	UpdateTest(ctx context.Context, id int64, req *dto.CareerTestRequest) (*models.CareerTest, error)
	DuplicateTest(ctx context.Context, id int64) (int64, error)
	DeleteTest(ctx context.Context, id int64) error
}

type careerTestServiceImpl struct {
	testRepo repositories.ICareerTestRepository
}

// NewCareerTestService creates a new CareerTestService
func NewCareerTestService(testRepo repositories.ICareerTestRepository) CareerTestService {
	return &careerTestServiceImpl{
		testRepo: testRepo,
	}
}

// toCareerTest maps a request onto the model. NumberOfQuestions is copied as sent.
func toCareerTest(id int64, req *dto.CareerTestRequest) *models.CareerTest {
	questions := make([]models.Question, 0, len(req.Questions))
	for i, q := range req.Questions {
		if q.Tag != "" && !validation.IsRiasecCode(q.Tag) {
			logger.Debug().Str("test", req.Name).Int("position", i).Str("tag", q.Tag).Msg("Question tag is not a RIASEC code")
		}
		questions = append(questions, models.Question{
			Position:    i,
			Description: q.Description,
			Tag:         q.Tag,
		})
	}

	return &models.CareerTest{
		ID:                id,
		Name:              req.Name,
		Description:       req.Description,
		NumberOfQuestions: req.NumberOfQuestions,
		Questions:         questions,
	}
}

func (s *careerTestServiceImpl) CreateTest(ctx context.Context, req *dto.CareerTestRequest) (*models.CareerTest, error) {
	return s.testRepo.Create(ctx, toCareerTest(0, req))
}

func (s *careerTestServiceImpl) ListTests(ctx context.Context) ([]*models.CareerTest, error) {
	return s.testRepo.ListAll(ctx)
}

func (s *careerTestServiceImpl) GetTest(ctx context.Context, id int64) (*models.CareerTest, error) {
	return s.testRepo.GetByID(ctx, id)
}

// UpdateTest is a full replace; questions missing from req are removed
func (s *careerTestServiceImpl) UpdateTest(ctx context.Context, id int64, req *dto.CareerTestRequest) (*models.CareerTest, error) {
	return s.testRepo.Update(ctx, toCareerTest(id, req))
}

// DuplicateTest copies test id under the name "<name> (Copy)" and returns the new id
func (s *careerTestServiceImpl) DuplicateTest(ctx context.Context, id int64) (int64, error) {
	return s.testRepo.Duplicate(ctx, id)
}

func (s *careerTestServiceImpl) DeleteTest(ctx context.Context, id int64) error {
	if err := s.testRepo.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info().Int64("testID", id).Msg("Career test deleted")
	return nil
}

package services

import (
	"context"
	"testing"

	"github.com/careerguide/backend/internal/app/models"
	"github.com/careerguide/backend/internal/app/models/dto"
	repomocks "github.com/careerguide/backend/internal/app/repositories/mocks"
	"github.com/careerguide/backend/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCareerTestService_CreateTest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repomocks.NewMockICareerTestRepository(ctrl)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, test *models.CareerTest) (*models.CareerTest, error) {
			assert.Equal(t, "Holland", test.Name)
			// advisory count is stored as sent
			assert.Equal(t, 5, test.NumberOfQuestions)
			require.Len(t, test.Questions, 2)
			assert.Equal(t, 0, test.Questions[0].Position)
			assert.Equal(t, 1, test.Questions[1].Position)
			assert.Equal(t, "S", test.Questions[1].Tag)
			test.ID = 9
			return test, nil
		})

	svc := NewCareerTestService(repo)
	created, err := svc.CreateTest(context.Background(), &dto.CareerTestRequest{
		Name:              "Holland",
		NumberOfQuestions: 5,
		Questions: []dto.QuestionRequest{
			{Description: "I like building things", Tag: "R"},
			{Description: "I like helping people", Tag: "S"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(9), created.ID)
}

func TestCareerTestService_UpdateTest(t *testing.T) {
	testCases := []struct {
		name    string
		repoErr error
		wantErr error
	}{
		{name: "replaced"},
		{name: "missing test", repoErr: apperrors.ErrCareerTestNotFound, wantErr: apperrors.ErrResourceNotFound},
		{name: "name taken", repoErr: apperrors.ErrCareerTestAlreadyExists, wantErr: apperrors.ErrConflict},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := repomocks.NewMockICareerTestRepository(ctrl)
			repo.EXPECT().Update(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, test *models.CareerTest) (*models.CareerTest, error) {
					assert.Equal(t, int64(4), test.ID)
					assert.Empty(t, test.Questions)
					if tc.repoErr != nil {
						return nil, tc.repoErr
					}
					return test, nil
				})

			svc := NewCareerTestService(repo)
			updated, err := svc.UpdateTest(context.Background(), 4, &dto.CareerTestRequest{Name: "Renamed"})
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Renamed", updated.Name)
		})
	}
}

func TestCareerTestService_DuplicateAndDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repomocks.NewMockICareerTestRepository(ctrl)
	repo.EXPECT().Duplicate(gomock.Any(), int64(4)).Return(int64(12), nil)
	repo.EXPECT().Delete(gomock.Any(), int64(4)).Return(nil)
	repo.EXPECT().Delete(gomock.Any(), int64(99)).Return(apperrors.ErrCareerTestNotFound)

	svc := NewCareerTestService(repo)

	newID, err := svc.DuplicateTest(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, int64(12), newID)

	assert.NoError(t, svc.DeleteTest(context.Background(), 4))
	assert.ErrorIs(t, svc.DeleteTest(context.Background(), 99), apperrors.ErrCareerTestNotFound)
}

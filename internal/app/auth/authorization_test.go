package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/careerguide/backend/internal/app/models"
	repomocks "github.com/careerguide/backend/internal/app/repositories/mocks"
	"github.com/careerguide/backend/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestAuthorizationService_ValidateProfileUpdate(t *testing.T) {
	testCases := []struct {
		name        string
		requesterID int64
		targetID    int64
		mock        func(repo *repomocks.MockIAdminRepository)
		wantErr     error
	}{
		{
			name:        "own profile",
			requesterID: 1,
			targetID:    1,
			mock: func(repo *repomocks.MockIAdminRepository) {
				repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&models.Admin{ID: 1}, nil)
			},
		},
		{
			name:        "someone else's profile",
			requesterID: 1,
			targetID:    2,
			mock:        func(repo *repomocks.MockIAdminRepository) {},
			wantErr:     apperrors.ErrPermissionDenied,
		},
		{
			name:        "deleted admin",
			requesterID: 3,
			targetID:    3,
			mock: func(repo *repomocks.MockIAdminRepository) {
				repo.EXPECT().GetByID(gomock.Any(), int64(3)).Return(nil, apperrors.ErrAdminNotFound)
			},
			wantErr: apperrors.ErrPermissionDenied,
		},
		{
			name:        "lookup failure",
			requesterID: 1,
			targetID:    1,
			mock: func(repo *repomocks.MockIAdminRepository) {
				repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(nil, errors.New("db down"))
			},
			wantErr: errors.New("db down"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := repomocks.NewMockIAdminRepository(ctrl)
			tc.mock(repo)

			err := NewAuthorizationService(repo).ValidateProfileUpdate(context.Background(), tc.requesterID, tc.targetID)
			switch {
			case tc.wantErr == nil:
				assert.NoError(t, err)
			case errors.Is(tc.wantErr, apperrors.ErrPermissionDenied):
				assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
			default:
				assert.EqualError(t, err, tc.wantErr.Error())
			}
		})
	}
}

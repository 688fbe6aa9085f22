package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/careerguide/backend/internal/app/models"
	"github.com/careerguide/backend/internal/app/models/dto"
	repomocks "github.com/careerguide/backend/internal/app/repositories/mocks"
	"github.com/careerguide/backend/internal/pkg/apperrors"
	"github.com/careerguide/backend/internal/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func fastHash(password string) (string, error) {
	return auth.HashPasswordWithCost(password, bcrypt.MinCost)
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := fastHash(password)
	require.NoError(t, err)
	return hash
}

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "careerguide.test",
	})
}

func newTestAuthService(studentRepo *repomocks.MockIStudentRepository, adminRepo *repomocks.MockIAdminRepository) *authServiceImpl {
	svc := NewAuthService(studentRepo, adminRepo, newTestJWTService()).(*authServiceImpl)
	svc.hashPassword = fastHash
	return svc
}

func TestAuthService_Register(t *testing.T) {
	req := &dto.RegisterRequest{
		FirstName: "Alice", LastName: "Smith", Grade: "11", Email: "alice@example.com",
		Country: "Canada", Phone: "555", Password: "secret123",
	}

	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) *repomocks.MockIStudentRepository
		wantID  int64
		wantErr error
	}{
		{
			name: "registered with hashed password",
			mock: func(ctrl *gomock.Controller) *repomocks.MockIStudentRepository {
				repo := repomocks.NewMockIStudentRepository(ctrl)
				repo.EXPECT().EmailExists(gomock.Any(), "alice@example.com").Return(false, nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, s *models.Student) (int64, error) {
						assert.Equal(t, "Alice", s.FirstName)
						assert.NotEqual(t, "secret123", s.Password)
						assert.True(t, auth.CheckPassword(s.Password, "secret123"))
						assert.False(t, s.Premium)
						return 3, nil
					})
				return repo
			},
			wantID: 3,
		},
		{
			name: "duplicate email",
			mock: func(ctrl *gomock.Controller) *repomocks.MockIStudentRepository {
				repo := repomocks.NewMockIStudentRepository(ctrl)
				repo.EXPECT().EmailExists(gomock.Any(), "alice@example.com").Return(true, nil)
				return repo
			},
			wantErr: apperrors.ErrEmailAlreadyExists,
		},
		{
			name: "lost race on insert",
			mock: func(ctrl *gomock.Controller) *repomocks.MockIStudentRepository {
				repo := repomocks.NewMockIStudentRepository(ctrl)
				repo.EXPECT().EmailExists(gomock.Any(), "alice@example.com").Return(false, nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(0), apperrors.ErrEmailAlreadyExists)
				return repo
			},
			wantErr: apperrors.ErrEmailAlreadyExists,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := newTestAuthService(tc.mock(ctrl), repomocks.NewMockIAdminRepository(ctrl))
			id, err := svc.Register(context.Background(), req)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantID, id)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	studentHash := mustHash(t, "student-pass")
	adminHash := mustHash(t, "admin-pass")

	testCases := []struct {
		name     string
		password string
		mock     func(ctrl *gomock.Controller) (*repomocks.MockIStudentRepository, *repomocks.MockIAdminRepository)
		wantRole string
		wantID   int64
		wantErr  error
	}{
		{
			name:     "student",
			password: "student-pass",
			mock: func(ctrl *gomock.Controller) (*repomocks.MockIStudentRepository, *repomocks.MockIAdminRepository) {
				students := repomocks.NewMockIStudentRepository(ctrl)
				students.EXPECT().GetByEmail(gomock.Any(), "user@example.com").
					Return(&models.Student{ID: 4, Email: "user@example.com", Password: studentHash}, nil)
				return students, repomocks.NewMockIAdminRepository(ctrl)
			},
			wantRole: "student",
			wantID:   4,
		},
		{
			name:     "admin when no student matches",
			password: "admin-pass",
			mock: func(ctrl *gomock.Controller) (*repomocks.MockIStudentRepository, *repomocks.MockIAdminRepository) {
				students := repomocks.NewMockIStudentRepository(ctrl)
				students.EXPECT().GetByEmail(gomock.Any(), "user@example.com").Return(nil, apperrors.ErrStudentNotFound)
				admins := repomocks.NewMockIAdminRepository(ctrl)
				admins.EXPECT().GetByEmail(gomock.Any(), "user@example.com").
					Return(&models.Admin{ID: 1, Email: "user@example.com", Password: adminHash}, nil)
				return students, admins
			},
			wantRole: "admin",
			wantID:   1,
		},
		{
			name:     "wrong student password never falls back to admins",
			password: "admin-pass",
			mock: func(ctrl *gomock.Controller) (*repomocks.MockIStudentRepository, *repomocks.MockIAdminRepository) {
				students := repomocks.NewMockIStudentRepository(ctrl)
				students.EXPECT().GetByEmail(gomock.Any(), "user@example.com").
					Return(&models.Student{ID: 4, Password: studentHash}, nil)
				// no admin lookup is expected even though an admin shares the email
				return students, repomocks.NewMockIAdminRepository(ctrl)
			},
			wantErr: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "wrong admin password",
			password: "nope",
			mock: func(ctrl *gomock.Controller) (*repomocks.MockIStudentRepository, *repomocks.MockIAdminRepository) {
				students := repomocks.NewMockIStudentRepository(ctrl)
				students.EXPECT().GetByEmail(gomock.Any(), "user@example.com").Return(nil, apperrors.ErrStudentNotFound)
				admins := repomocks.NewMockIAdminRepository(ctrl)
				admins.EXPECT().GetByEmail(gomock.Any(), "user@example.com").
					Return(&models.Admin{ID: 1, Password: adminHash}, nil)
				return students, admins
			},
			wantErr: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "unknown email",
			password: "whatever",
			mock: func(ctrl *gomock.Controller) (*repomocks.MockIStudentRepository, *repomocks.MockIAdminRepository) {
				students := repomocks.NewMockIStudentRepository(ctrl)
				students.EXPECT().GetByEmail(gomock.Any(), "user@example.com").Return(nil, apperrors.ErrStudentNotFound)
				admins := repomocks.NewMockIAdminRepository(ctrl)
				admins.EXPECT().GetByEmail(gomock.Any(), "user@example.com").Return(nil, apperrors.ErrAdminNotFound)
				return students, admins
			},
			wantErr: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "database failure is not a credential error",
			password: "whatever",
			mock: func(ctrl *gomock.Controller) (*repomocks.MockIStudentRepository, *repomocks.MockIAdminRepository) {
				students := repomocks.NewMockIStudentRepository(ctrl)
				students.EXPECT().GetByEmail(gomock.Any(), "user@example.com").Return(nil, errors.New("connection reset"))
				return students, repomocks.NewMockIAdminRepository(ctrl)
			},
			wantErr: errors.New("connection reset"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			students, admins := tc.mock(ctrl)
			svc := newTestAuthService(students, admins)

			resp, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "user@example.com", Password: tc.password})
			if tc.wantErr != nil {
				require.Error(t, err)
				if errors.Is(tc.wantErr, apperrors.ErrInvalidCredentials) {
					assert.ErrorIs(t, err, tc.wantErr)
				} else {
					assert.EqualError(t, err, tc.wantErr.Error())
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantRole, resp.Role)
			assert.Equal(t, tc.wantID, resp.UserID)
			assert.Equal(t, "Bearer", resp.TokenType)

			claims, err := newTestJWTService().ValidateAndExtractClaims(resp.AccessToken)
			require.NoError(t, err)
			assert.Equal(t, tc.wantRole, claims.Role)
			assert.Equal(t, tc.wantID, claims.UserID)
		})
	}
}

package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/careerguide/backend/internal/app/models/dto"
	svcmocks "github.com/careerguide/backend/internal/app/services/mocks"
	"github.com/careerguide/backend/internal/pkg/apperrors"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newAuthRouter(svc *svcmocks.MockAuthService) *gin.Engine {
	c := NewAuthController(svc)
	r := gin.New()
	r.POST("/register", c.Register)
	r.POST("/login", c.Login)
	return r
}

func TestAuthController_Register(t *testing.T) {
	valid := map[string]any{
		"first_name": "Alice", "last_name": "Smith", "grade": "11",
		"email": "alice@example.com", "country": "Canada", "phone": "555", "password": "secret123",
	}

	testCases := []struct {
		name       string
		body       any
		mock       func(svc *svcmocks.MockAuthService)
		wantStatus int
		wantCode   string
	}{
		{
			name: "registered",
			body: valid,
			mock: func(svc *svcmocks.MockAuthService) {
				svc.EXPECT().Register(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ any, req *dto.RegisterRequest) (int64, error) {
						assert.Equal(t, "alice@example.com", req.Email)
						return 7, nil
					})
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "invalid email",
			body:       map[string]any{"first_name": "A", "last_name": "B", "email": "nope", "password": "secret123"},
			mock:       func(svc *svcmocks.MockAuthService) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   string(dto.ErrorCodeValidationFailed),
		},
		{
			name:       "malformed json",
			body:       "{",
			mock:       func(svc *svcmocks.MockAuthService) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   string(dto.ErrorCodeValidationFailed),
		},
		{
			name: "duplicate email",
			body: valid,
			mock: func(svc *svcmocks.MockAuthService) {
				svc.EXPECT().Register(gomock.Any(), gomock.Any()).Return(int64(0), apperrors.ErrEmailAlreadyExists)
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   string(dto.ErrorCodeConflict),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := svcmocks.NewMockAuthService(ctrl)
			tc.mock(svc)

			rec, env := doJSON(t, newAuthRouter(svc), http.MethodPost, "/register", tc.body)
			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantCode != "" {
				require.NotNil(t, env.Error)
				assert.Equal(t, tc.wantCode, env.Error.Code)
				return
			}

			var resp dto.RegisterResponse
			require.NoError(t, json.Unmarshal(env.Data, &resp))
			assert.Equal(t, int64(7), resp.ID)
		})
	}
}

func TestAuthController_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := svcmocks.NewMockAuthService(ctrl)
	svc.EXPECT().Login(gomock.Any(), &dto.LoginRequest{Email: "admin@example.com", Password: "pw"}).
		Return(&dto.LoginResponse{Message: "Login successful", Role: "admin", UserID: 1, AccessToken: "t", TokenType: "Bearer"}, nil)
	svc.EXPECT().Login(gomock.Any(), &dto.LoginRequest{Email: "admin@example.com", Password: "bad"}).
		Return(nil, apperrors.ErrInvalidCredentials)

	r := newAuthRouter(svc)

	rec, env := doJSON(t, r, http.MethodPost, "/login", map[string]string{"email": "admin@example.com", "password": "pw"})
	assert.Equal(t, http.StatusOK, rec.Code)
	var resp dto.LoginResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, "admin", resp.Role)
	assert.Equal(t, int64(1), resp.UserID)

	rec, env = doJSON(t, r, http.MethodPost, "/login", map[string]string{"email": "admin@example.com", "password": "bad"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, string(dto.ErrorCodeInvalidCredentials), env.Error.Code)
}

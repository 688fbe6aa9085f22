package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/careerguide/backend/internal/app/models"
	"github.com/careerguide/backend/internal/app/models/dto"
	svcmocks "github.com/careerguide/backend/internal/app/services/mocks"
	"github.com/careerguide/backend/internal/middleware"
	"github.com/careerguide/backend/internal/pkg/apperrors"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newAdminRouter(svc *svcmocks.MockAdminService) *gin.Engine {
	c := NewAdminController(svc, nil)
	r := gin.New()
	r.GET("/admin/students", c.ListStudents)
	r.GET("/admin/:id", c.GetAdmin)
	r.PUT("/admin/:id", c.UpdateAdmin)
	return r
}

func TestAdminController_ListStudents(t *testing.T) {
	testCases := []struct {
		name       string
		path       string
		mock       func(svc *svcmocks.MockAdminService)
		wantStatus int
		wantLen    int
	}{
		{
			name: "query is passed through",
			path: "/admin/students?search=Al&sort_by=first_name&order=desc",
			mock: func(svc *svcmocks.MockAdminService) {
				svc.EXPECT().ListStudents(gomock.Any(), &dto.ListStudentsQuery{Search: "Al", SortBy: "first_name", Order: "desc"}).
					Return([]*models.Student{{ID: 1, FirstName: "Alice"}, {ID: 2, FirstName: "Alan"}}, nil)
			},
			wantStatus: http.StatusOK,
			wantLen:    2,
		},
		{
			name:       "unknown sort column is rejected",
			path:       "/admin/students?sort_by=password",
			mock:       func(svc *svcmocks.MockAdminService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "empty result is an empty list",
			path: "/admin/students",
			mock: func(svc *svcmocks.MockAdminService) {
				svc.EXPECT().ListStudents(gomock.Any(), &dto.ListStudentsQuery{}).Return([]*models.Student{}, nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := svcmocks.NewMockAdminService(ctrl)
			tc.mock(svc)

			rec, env := doJSON(t, newAdminRouter(svc), http.MethodGet, tc.path, nil)
			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantStatus != http.StatusOK {
				return
			}
			var students []map[string]any
			require.NoError(t, json.Unmarshal(env.Data, &students))
			assert.Len(t, students, tc.wantLen)
			for _, s := range students {
				assert.NotContains(t, s, "password")
			}
		})
	}
}

func TestAdminController_GetAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := svcmocks.NewMockAdminService(ctrl)
	svc.EXPECT().GetProfile(gomock.Any(), int64(1)).Return(&models.Admin{ID: 1, Email: "admin@example.com", Password: "hash"}, nil)
	svc.EXPECT().GetProfile(gomock.Any(), int64(2)).Return(nil, apperrors.ErrAdminNotFound)
	r := newAdminRouter(svc)

	rec, env := doJSON(t, r, http.MethodGet, "/admin/1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, string(env.Data), "hash")

	rec, _ = doJSON(t, r, http.MethodGet, "/admin/2", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, env = doJSON(t, r, http.MethodGet, "/admin/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "id", env.Error.Field)
}

func TestAdminController_UpdateAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := svcmocks.NewMockAdminService(ctrl)
	svc.EXPECT().UpdateProfile(gomock.Any(), int64(1), gomock.Any()).
		DoAndReturn(func(_ any, _ int64, req *dto.UpdateAdminRequest) (*models.Admin, error) {
			require.NotNil(t, req.Country)
			assert.Equal(t, "France", *req.Country)
			assert.Nil(t, req.Password)
			return &models.Admin{ID: 1, Country: "France"}, nil
		})
	r := newAdminRouter(svc)

	rec, _ := doJSON(t, r, http.MethodPut, "/admin/1", map[string]string{"country": "France"})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = doJSON(t, r, http.MethodPut, "/admin/1", map[string]string{"password": "123"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

type ownProfileOnly struct{}

func (ownProfileOnly) ValidateProfileUpdate(_ context.Context, requesterID, targetID int64) error {
	if requesterID != targetID {
		return apperrors.NewForbiddenError("admins may only update their own profile")
	}
	return nil
}

func TestAdminController_UpdateAdmin_Authorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := svcmocks.NewMockAdminService(ctrl)
	svc.EXPECT().UpdateProfile(gomock.Any(), int64(1), gomock.Any()).Return(&models.Admin{ID: 1}, nil)

	c := NewAdminController(svc, ownProfileOnly{})
	r := gin.New()
	r.Use(func(ctx *gin.Context) {
		ctx.Set(middleware.ContextKeyUserID, int64(1))
	})
	r.PUT("/admin/:id", c.UpdateAdmin)

	rec, _ := doJSON(t, r, http.MethodPut, "/admin/1", map[string]string{"phone": "555"})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env := doJSON(t, r, http.MethodPut, "/admin/2", map[string]string{"phone": "555"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "AUTH_009", env.Error.Code)
}

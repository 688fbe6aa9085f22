package bootstrap

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/careerguide/backend/internal/app/controllers"
	"github.com/careerguide/backend/internal/app/routes"
	svcmocks "github.com/careerguide/backend/internal/app/services/mocks"
	"github.com/careerguide/backend/internal/config"
	"github.com/careerguide/backend/internal/middleware"
	"github.com/careerguide/backend/internal/pkg/auth"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakePinger struct{ err error }

func (f fakePinger) Ping(context.Context) error { return f.err }

func newTestDeps(t *testing.T, pinger Pinger) *Dependencies {
	t.Helper()
	ctrl := gomock.NewController(t)
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "s", AccessTokenExp: time.Hour, TokenIssuer: "t"})

	return &Dependencies{
		Controllers: routes.Controllers{
			Homepage:   controllers.NewHomepageController(),
			Auth:       controllers.NewAuthController(svcmocks.NewMockAuthService(ctrl)),
			Admin:      controllers.NewAdminController(svcmocks.NewMockAdminService(ctrl), nil),
			CareerTest: controllers.NewCareerTestController(svcmocks.NewMockCareerTestService(ctrl)),
			CareerPage: controllers.NewCareerPageController(svcmocks.NewMockCareerPageService(ctrl)),
		},
		AuthMiddleware: middleware.NewAuthMiddleware(jwtService),
		JWTService:     jwtService,
		Metrics:        NewMetricsRegistry(),
		DB:             pinger,
		Logger:         zerolog.Nop(),
	}
}

func testConfig(t *testing.T) *config.Config {
	cfg := &config.Config{}
	cfg.Server.Mode = "production"
	cfg.Server.StoragePath = t.TempDir()
	cfg.Server.CORSOrigins = "*"
	return cfg
}

func get(r http.Handler, path string, header ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestSetupRouter_OpsEndpoints(t *testing.T) {
	router, err := SetupRouter(testConfig(t), newTestDeps(t, fakePinger{}), zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, get(router, "/homepage").Code)

	rec := get(router, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","database":"up"}`, rec.Body.String())

	rec = get(router, "/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `careerguide_http_requests_total{method="GET",path="/homepage",status_code="200"} 1`))

	rec = get(router, "/homepage", "Origin", "http://frontend.test")
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
}

func TestSetupRouter_HealthReportsDatabaseDown(t *testing.T) {
	router, err := SetupRouter(testConfig(t), newTestDeps(t, fakePinger{err: errors.New("refused")}), zerolog.Nop())
	require.NoError(t, err)

	rec := get(router, "/health")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestCorsConfig(t *testing.T) {
	assert.True(t, corsConfig(nil).AllowAllOrigins)
	assert.True(t, corsConfig([]string{"http://a.com", "*"}).AllowAllOrigins)

	c := corsConfig([]string{"http://a.com"})
	assert.False(t, c.AllowAllOrigins)
	assert.Equal(t, []string{"http://a.com"}, c.AllowOrigins)
}

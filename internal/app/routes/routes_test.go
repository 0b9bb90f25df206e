package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oguzk/learnhub/internal/app/controllers"
	"github.com/oguzk/learnhub/internal/app/models"
	"github.com/oguzk/learnhub/internal/middleware"
	"github.com/oguzk/learnhub/internal/pkg/auth"
)

// newTestRouter wires the full route table with empty controllers. The
// requests below are expected to be answered by the middleware chain, never
// by a handler.
func newTestRouter(t *testing.T) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret-key",
		AccessTokenExp:  15 * time.Minute,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "test",
	})

	router := gin.New()
	SetupRouter(
		router,
		&controllers.AuthController{},
		&controllers.UserController{},
		&controllers.CourseController{},
		&controllers.LessonController{},
		&controllers.EnrollmentController{},
		middleware.NewAuthMiddleware(jwtService),
	)
	return router, jwtService
}

func bearerFor(t *testing.T, jwtService *auth.JWTService, role models.RoleType) string {
	t.Helper()
	accessToken, _, _, _, err := jwtService.GenerateTokenPair(&models.User{ID: 5, Username: "maya_k"}, role)
	require.NoError(t, err)
	return "Bearer " + accessToken
}

func TestInstructorOnlyRoutes(t *testing.T) {
	router, jwtService := newTestRouter(t)
	studentBearer := bearerFor(t, jwtService, models.RoleStudent)

	// A student token must be stopped at the router, before any handler runs
	for _, target := range []string{"/api/v1/courses", "/api/v1/courses/1/lessons"} {
		req := httptest.NewRequest(http.MethodPost, target, strings.NewReader("{}"))
		req.Header.Set("Authorization", studentBearer)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code, target)
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/courses", strings.NewReader("{}"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHealthRoute(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"billed-fe-svc/internal/models"
	"billed-fe-svc/internal/session"
	"billed-fe-svc/pkg/logger"
)

func newSessionRouter(t *testing.T, decoder *session.Decoder) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	l, _ := test.NewNullLogger()
	router := gin.New()
	router.Use(Session(decoder, "jwt", logger.Wrap(l)))
	router.GET("/whoami", func(c *gin.Context) {
		sess, ok := SessionFromContext(c)
		if !ok {
			c.String(http.StatusOK, "anonymous")
			return
		}
		c.String(http.StatusOK, sess.Email)
	})
	router.GET("/api", RequireEmployeeAPI(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return router
}

func TestSession(t *testing.T) {
	decoder := session.NewDecoder("middleware-secret")
	router := newSessionRouter(t, decoder)

	token, err := decoder.Issue(models.Session{Type: models.UserTypeEmployee, Email: "a@a"}, time.Hour)
	require.NoError(t, err)
	forged, err := session.NewDecoder("other-secret").Issue(models.Session{Type: models.UserTypeEmployee, Email: "b@b"}, time.Hour)
	require.NoError(t, err)

	testCases := []struct {
		name     string
		prepare  func(r *http.Request)
		expected string
	}{
		{name: "no_token", prepare: func(*http.Request) {}, expected: "anonymous"},
		{name: "bearer", prepare: func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) }, expected: "a@a"},
		{name: "lower_case_scheme", prepare: func(r *http.Request) { r.Header.Set("Authorization", "bearer "+token) }, expected: "a@a"},
		{name: "cookie", prepare: func(r *http.Request) { r.AddCookie(&http.Cookie{Name: "jwt", Value: token}) }, expected: "a@a"},
		{name: "wrong_secret", prepare: func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+forged) }, expected: "anonymous"},
		{name: "basic_auth", prepare: func(r *http.Request) { r.Header.Set("Authorization", "Basic Zm9vOmJhcg==") }, expected: "anonymous"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			tc.prepare(req)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tc.expected, w.Body.String())
		})
	}
}

func TestRequireEmployeeAPI(t *testing.T) {
	decoder := session.NewDecoder("middleware-secret")
	router := newSessionRouter(t, decoder)

	employee, err := decoder.Issue(models.Session{Type: models.UserTypeEmployee, Email: "a@a"}, time.Hour)
	require.NoError(t, err)
	admin, err := decoder.Issue(models.Session{Type: "Admin", Email: "admin@a"}, time.Hour)
	require.NoError(t, err)

	testCases := []struct {
		name     string
		token    string
		expected int
	}{
		{name: "anonymous", expected: http.StatusUnauthorized},
		{name: "admin", token: admin, expected: http.StatusForbidden},
		{name: "employee", token: employee, expected: http.StatusNoContent},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api", nil)
			if tc.token != "" {
				req.Header.Set("Authorization", "Bearer "+tc.token)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tc.expected, w.Code)
		})
	}
}

func TestErrorHandler_RecoversPanics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	l, hook := test.NewNullLogger()

	router := gin.New()
	router.Use(ErrorHandler(logger.Wrap(l)))
	router.GET("/boom", func(*gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "boom", hook.LastEntry().Data["panic"])
}

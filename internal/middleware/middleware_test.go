package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"rentdesk/pkg/errors"
	"rentdesk/pkg/jwt"
	"rentdesk/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func decode(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var resp response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestRequireLogin(t *testing.T) {
	manager := jwt.NewJWTManager("test-secret", time.Hour)
	loggedIn := true
	auth := NewAuthMiddleware(manager, func() bool { return loggedIn })

	r := gin.New()
	r.GET("/private", auth.RequireLogin(), func(c *gin.Context) {
		response.Success(c, c.GetString("email"))
	})

	token, err := manager.GenerateToken("john@example.com")
	require.NoError(t, err)

	cases := []struct {
		name   string
		header string
		code   int
	}{
		{"missing header", "", errors.CodeUnauthorized},
		{"wrong scheme", "Basic abc", errors.CodeUnauthorized},
		{"bad token", "Bearer nope", errors.CodeUnauthorized},
		{"valid", "Bearer " + token, errors.CodeSuccess},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tc.code, decode(t, w).Code)
		})
	}

	loggedIn = false
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, errors.CodeUnauthorized, decode(t, w).Code)
}

func TestErrorHandler_RecoversPanic(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, errors.CodeServerError, decode(t, w).Code)
}

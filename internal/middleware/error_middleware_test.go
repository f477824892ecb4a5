package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/studentvault/backend/internal/pkg/apperrors"
)

func respondWith(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	HandleAPIError(c, err)
	return w
}

func TestHandleAPIErrorCollapsesAuthErrors(t *testing.T) {
	// Every auth failure mode must yield the same status and body so callers
	// cannot probe which check failed.
	authErrors := []error{
		apperrors.ErrUserNotFound,
		apperrors.ErrInvalidCredentials,
		apperrors.ErrTokenExpired,
		apperrors.ErrTokenSignature,
		apperrors.ErrTokenMalformed,
		apperrors.ErrSessionNotFound,
	}

	reference := respondWith(authErrors[0])
	assert.Equal(t, http.StatusUnauthorized, reference.Code)

	for _, err := range authErrors[1:] {
		w := respondWith(err)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "error %v", err)
		assert.Equal(t, reference.Body.String(), w.Body.String(), "error %v", err)
	}
}

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"username taken", apperrors.ErrUsernameTaken, http.StatusConflict},
		{"email taken", apperrors.ErrEmailTaken, http.StatusConflict},
		{"password too short", apperrors.ErrPasswordTooShort, http.StatusBadRequest},
		{"invalid mobile", apperrors.ErrInvalidMobileNumber, http.StatusBadRequest},
		{"validation failed", apperrors.ErrValidationFailed, http.StatusBadRequest},
		{"record not found", apperrors.ErrRecordNotFound, http.StatusNotFound},
		{"placement not found", apperrors.ErrPlacementNotFound, http.StatusNotFound},
		{"bad request", apperrors.ErrBadRequest, http.StatusBadRequest},
		{"unknown error", assert.AnError, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := respondWith(tc.err)
			assert.Equal(t, tc.code, w.Code)
		})
	}
}

func TestHandleAPIErrorUnwrapsCustomErrors(t *testing.T) {
	err := apperrors.NewCustomError(apperrors.ErrValidationFailed, "supporting doc is required")
	w := respondWith(err)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

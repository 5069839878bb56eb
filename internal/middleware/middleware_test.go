package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yigit/gradebook/internal/app/auth"
	"github.com/yigit/gradebook/internal/app/models"
	"github.com/yigit/gradebook/internal/app/models/dto"
	"github.com/yigit/gradebook/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   dto.ErrorCode
	}{
		{"not confirmed", apperrors.ErrNotConfirmed, http.StatusBadRequest, dto.ErrorCodeConfirmationRequired},
		{"invalid score", apperrors.ErrInvalidScore, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"logged out", apperrors.ErrUnauthenticated, http.StatusUnauthorized, dto.ErrorCodeUnauthorized},
		{"wrong password", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials},
		{"unknown user", apperrors.ErrUserNotFound, http.StatusUnauthorized, dto.ErrorCodeUnknownUser},
		{"teacher mutation", apperrors.NewForbiddenError("only admin users can perform this action"), http.StatusForbidden, dto.ErrorCodeForbidden},
		{"missing student", apperrors.ErrStudentNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"no data", fmt.Errorf("%w: no scores", apperrors.ErrNoData), http.StatusNotFound, dto.ErrorCodeNoData},
		{"duplicate score", apperrors.ErrDuplicateScore, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"course has scores", apperrors.ErrCourseHasScores, http.StatusConflict, dto.ErrorCodeConflict},
		{"database down", fmt.Errorf("read: %w", apperrors.ErrDatabaseUnavailable), http.StatusServiceUnavailable, dto.ErrorCodeDatabaseError},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			HandleAPIError(c, tt.err)

			if w.Code != tt.status {
				t.Errorf("status = %d, want %d", w.Code, tt.status)
			}
			var resp dto.APIResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if resp.Success || resp.Error == nil || resp.Error.Code != tt.code {
				t.Errorf("body = %s, want code %s", w.Body.String(), tt.code)
			}
		})
	}
}

func TestHandleAPIErrorHints(t *testing.T) {
	for _, err := range []error{apperrors.ErrDatabaseUnavailable, apperrors.ErrNotConfirmed} {
		_, detail := describeError(err)
		if detail.Hint == "" {
			t.Errorf("%v: no hint", err)
		}
	}

	_, detail := describeError(apperrors.ErrCourseHasScores.WithDetails(map[string]interface{}{"scores": 3}))
	if detail.Details == nil {
		t.Error("conflict details dropped")
	}
}

func newSessionRouter() *gin.Engine {
	r := gin.New()
	r.Use(Sessions(SessionOptions{Name: "test_session", Secret: "0123456789abcdef0123456789abcdef", MaxAge: time.Hour}))
	r.Use(SessionAuth())

	r.POST("/login", func(c *gin.Context) {
		sess := auth.Session{LoggedIn: true, Username: "admin", Role: models.RoleAdmin}
		if err := SaveSession(c, sess); err != nil {
			HandleAPIError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	})
	r.POST("/logout", func(c *gin.Context) {
		if err := ClearSession(c); err != nil {
			HandleAPIError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	})
	r.GET("/me", LoginRequired(), func(c *gin.Context) {
		c.String(http.StatusOK, CurrentSession(c).Username)
	})
	return r
}

func TestSessionLifecycle(t *testing.T) {
	r := newSessionRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous /me = %d, want 401", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
	cookies := w.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("login set no cookie")
	}

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(cookies[0])
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK || w.Body.String() != "admin" {
		t.Fatalf("logged-in /me = %d %q", w.Code, w.Body.String())
	}

	req = httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.AddCookie(cookies[0])
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	cleared := w.Result().Cookies()
	if len(cleared) == 0 || cleared[0].MaxAge >= 0 {
		t.Fatalf("logout did not expire the cookie: %+v", cleared)
	}

	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(cleared[0])
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("/me after logout = %d, want 401", w.Code)
	}
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, GetRequestID(c)) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := w.Header().Get(RequestIDHeader)
	if generated == "" || generated != w.Body.String() {
		t.Fatalf("generated id %q, body %q", generated, w.Body.String())
	}

	const given = "5f1c1f5e-8a8e-4c1a-9c55-3f1f2b3c4d5e"
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, given)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get(RequestIDHeader); got != given {
		t.Errorf("id = %q, want caller's %q", got, given)
	}
}

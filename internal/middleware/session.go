package middleware

import (
	"net/http"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"github.com/yigit/gradebook/internal/app/auth"
	"github.com/yigit/gradebook/internal/app/models"
	"github.com/yigit/gradebook/internal/app/models/dto"
)

// Keys of the values kept in the session cookie
const (
	sessionKeyLoggedIn = "is_login"
	sessionKeyUsername = "username"
	sessionKeyRole     = "role"

	// contextKeySession holds the auth.Session loaded for the request
	contextKeySession = "session"
)

// SessionOptions configures the signed cookie that carries the login state
type SessionOptions struct {
	Name   string
	Secret string
	MaxAge time.Duration
	Secure bool
}

// Sessions installs the cookie session store
func Sessions(opts SessionOptions) gin.HandlerFunc {
	store := cookie.NewStore([]byte(opts.Secret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   int(opts.MaxAge / time.Second),
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	return sessions.Sessions(opts.Name, store)
}

// SessionAuth loads the login state from the cookie into the request context.
// It never rejects a request; LoginRequired does that.
func SessionAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(contextKeySession, loadSession(sessions.Default(c)))
		c.Next()
	}
}

func loadSession(s sessions.Session) auth.Session {
	loggedIn, _ := s.Get(sessionKeyLoggedIn).(bool)
	if !loggedIn {
		return auth.Anonymous
	}
	username, _ := s.Get(sessionKeyUsername).(string)
	role, _ := s.Get(sessionKeyRole).(string)
	if username == "" || !models.Role(role).Valid() {
		return auth.Anonymous
	}
	return auth.Session{LoggedIn: true, Username: username, Role: models.Role(role)}
}

// LoginRequired rejects requests without a logged-in session
func LoginRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := auth.RequireLogin(CurrentSession(c)); err != nil {
			detail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Login required").
				WithHint("POST /api/v1/auth/login first")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewFailure(detail))
			return
		}
		c.Next()
	}
}

// CurrentSession returns the session loaded by SessionAuth, or Anonymous
func CurrentSession(c *gin.Context) auth.Session {
	if v, ok := c.Get(contextKeySession); ok {
		if sess, ok := v.(auth.Session); ok {
			return sess
		}
	}
	return auth.Anonymous
}

// SaveSession stores a logged-in state in the cookie
func SaveSession(c *gin.Context, sess auth.Session) error {
	s := sessions.Default(c)
	s.Set(sessionKeyLoggedIn, sess.LoggedIn)
	s.Set(sessionKeyUsername, sess.Username)
	s.Set(sessionKeyRole, string(sess.Role))
	if err := s.Save(); err != nil {
		return err
	}
	c.Set(contextKeySession, sess)
	return nil
}

// ClearSession drops every session value and expires the cookie
func ClearSession(c *gin.Context) error {
	s := sessions.Default(c)
	s.Clear()
	s.Options(sessions.Options{Path: "/", MaxAge: -1})
	if err := s.Save(); err != nil {
		return err
	}
	c.Set(contextKeySession, auth.Anonymous)
	return nil
}

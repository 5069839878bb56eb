// Package auth decides what a session may do. It holds no storage: the
// session is always passed in explicitly.
package auth

import (
	"fmt"

	"github.com/yigit/gradebook/internal/app/models"
	"github.com/yigit/gradebook/internal/pkg/apperrors"
)

// Session is the per-browser login state
type Session struct {
	LoggedIn bool
	Username string
	Role     models.Role
}

// Anonymous is the state before login and after logout
var Anonymous = Session{}

// NewSession returns the logged-in state for a user
func NewSession(user *models.User) Session {
	return Session{LoggedIn: true, Username: user.Username, Role: user.Role}
}

// RequireLogin fails with ErrUnauthenticated unless the session is logged in
func RequireLogin(sess Session) error {
	if !sess.LoggedIn || sess.Username == "" {
		return apperrors.ErrUnauthenticated
	}
	return nil
}

// RequireRole fails unless the session is logged in with the given role
func RequireRole(sess Session, role models.Role) error {
	if err := RequireLogin(sess); err != nil {
		return err
	}
	if sess.Role != role {
		return apperrors.NewForbiddenError(fmt.Sprintf("only %s users can perform this action", role))
	}
	return nil
}

// Action is one operation offered in the menu
type Action struct {
	Key    string
	Title  string
	Method string
	Path   string
	// AdminOnly marks mutations; reads are open to every role
	AdminOnly bool
}

// Actions is the catalog shown by the menu endpoint, in display order
var Actions = []Action{
	{Key: "student.query", Title: "Student lookup", Method: "GET", Path: "/api/v1/students/:id/profile"},
	{Key: "student.list", Title: "Student list", Method: "GET", Path: "/api/v1/students"},
	{Key: "student.add", Title: "Add student", Method: "POST", Path: "/api/v1/students", AdminOnly: true},
	{Key: "student.update", Title: "Update student", Method: "PUT", Path: "/api/v1/students/:id", AdminOnly: true},
	{Key: "student.delete", Title: "Delete student", Method: "DELETE", Path: "/api/v1/students/:id", AdminOnly: true},
	{Key: "course.list", Title: "Course list", Method: "GET", Path: "/api/v1/courses"},
	{Key: "course.add", Title: "Add course", Method: "POST", Path: "/api/v1/courses", AdminOnly: true},
	{Key: "course.update", Title: "Update course", Method: "PUT", Path: "/api/v1/courses/:id", AdminOnly: true},
	{Key: "course.delete", Title: "Delete course", Method: "DELETE", Path: "/api/v1/courses/:id", AdminOnly: true},
	{Key: "score.add", Title: "Add score", Method: "POST", Path: "/api/v1/scores", AdminOnly: true},
	{Key: "score.update", Title: "Update score", Method: "PUT", Path: "/api/v1/scores/:studentId/:courseId", AdminOnly: true},
	{Key: "score.delete", Title: "Delete score", Method: "DELETE", Path: "/api/v1/scores/:studentId/:courseId", AdminOnly: true},
	{Key: "report.ranking", Title: "GPA ranking", Method: "GET", Path: "/api/v1/reports/ranking"},
	{Key: "report.statistics", Title: "Score statistics", Method: "GET", Path: "/api/v1/reports/statistics"},
}

// Allowed reports whether the session may run the action
func Allowed(sess Session, a Action) bool {
	if a.AdminOnly {
		return RequireRole(sess, models.RoleAdmin) == nil
	}
	return RequireLogin(sess) == nil
}

package apperrors

import "errors"

// Error categories. Every error returned by a service unwraps to one of these.
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")
	ErrNoData                = errors.New("no data")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUnauthenticated    = errors.New("not logged in")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrNotConfirmed     = errors.New("confirmation required")

	// Storage errors
	ErrDatabaseUnavailable = errors.New("database unavailable")
)

// Student errors
var (
	ErrStudentNotFound        = NewCustomError(ErrResourceNotFound, "student not found")
	ErrStudentIDAlreadyExists = NewCustomError(ErrResourceAlreadyExists, "student ID already exists")
)

// Course errors
var (
	ErrCourseNotFound        = NewCustomError(ErrResourceNotFound, "course not found")
	ErrCourseIDAlreadyExists = NewCustomError(ErrResourceAlreadyExists, "course ID already exists")
	ErrCourseHasScores       = NewCustomError(ErrConflict, "course has recorded scores and cannot be deleted")
)

// Score errors
var (
	ErrScoreNotFound  = NewCustomError(ErrResourceNotFound, "score not found")
	ErrDuplicateScore = NewCustomError(ErrResourceAlreadyExists, "a score for this student and course already exists")
	ErrInvalidScore   = NewCustomError(ErrValidationFailed, "score must be a number between 0 and 100")
)

// NewForbiddenError creates a new custom error for permission denied with a message
func NewForbiddenError(message string) error {
	return &CustomError{
		Err:     ErrPermissionDenied,
		Message: message,
	}
}

// NewValidationError creates a validation error carrying a user-facing message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// Is returns whether err matches target or any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Code    string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// Is matches copies made by WithDetails or WithCode against their original
func (e *CustomError) Is(target error) bool {
	t, ok := target.(*CustomError)
	return ok && t.Err == e.Err && t.Message == e.Message
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails returns a copy of the error carrying context details
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	c := *e
	c.Details = details
	return &c
}

// WithCode returns a copy of the error carrying an error code
func (e *CustomError) WithCode(code string) *CustomError {
	c := *e
	c.Code = code
	return &c
}

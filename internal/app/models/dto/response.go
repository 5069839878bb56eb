package dto

import "time"

// APIResponse is the envelope of every JSON response
type APIResponse struct {
	Success   bool         `json:"success" example:"true"`
	Message   string       `json:"message,omitempty" example:"Student created"`
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp" example:"2025-04-23T12:01:05.123Z"`
}

// NewSuccess wraps data in a successful response
func NewSuccess(data interface{}, message string) APIResponse {
	return APIResponse{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// NewFailure wraps an error detail in a failed response
func NewFailure(detail *ErrorDetail) APIResponse {
	return APIResponse{
		Success:   false,
		Error:     detail,
		Timestamp: time.Now(),
	}
}

// ChangeResponse reports whether an update modified stored data
type ChangeResponse struct {
	Changed bool `json:"changed" example:"true"`
}

// DeleteResponse reports what a delete removed
type DeleteResponse struct {
	Deleted       bool `json:"deleted" example:"true"`
	ScoresRemoved int  `json:"scoresRemoved,omitempty" example:"3"`
}

// ConfirmQuery is the confirmation flag required by destructive operations
type ConfirmQuery struct {
	Confirm bool `form:"confirm"`
}

// ExportQuery selects the download format of a tabular export
type ExportQuery struct {
	Format string `form:"format" binding:"omitempty,oneof=xlsx csv" example:"xlsx"`
}

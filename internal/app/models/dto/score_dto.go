package dto

import "encoding/json"

// CreateScoreRequest records a score. The score may be sent as a JSON
// number or a numeric string.
type CreateScoreRequest struct {
	StudentID string      `json:"studentId" binding:"required" example:"S2024001"`
	CourseID  string      `json:"courseId" binding:"required" example:"CS101"`
	Score     json.Number `json:"score" binding:"required" swaggertype:"number" example:"88.5"`
}

// UpdateScoreRequest replaces the value of an existing score
type UpdateScoreRequest struct {
	Score json.Number `json:"score" binding:"required" swaggertype:"number" example:"91"`
}

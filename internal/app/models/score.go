package models

// Score defines the score model based on the 'scores' table.
// (StudentID, CourseID) is unique.
type Score struct {
	StudentID string  `json:"studentId" db:"student_id" example:"S2024001"`
	CourseID  string  `json:"courseId" db:"course_id" example:"CS101"`
	Score     float64 `json:"score" db:"score" example:"88.5"`
}

// CourseScoreEntry is a score row joined with the student it belongs to
type CourseScoreEntry struct {
	StudentID  string  `json:"studentId" example:"S2024001"`
	Name       string  `json:"name" example:"Li Lei"`
	ClassName  string  `json:"className" example:"Class 1"`
	Score      float64 `json:"score" example:"88.5"`
	GradePoint float64 `json:"gradePoint" example:"3.9"`
}

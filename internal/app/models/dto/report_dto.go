package dto

// StatisticsQuery selects the course and, optionally, the class to summarize
type StatisticsQuery struct {
	CourseID  string `form:"course" binding:"required" example:"CS101"`
	ClassName string `form:"class" example:"Class 1"`
}

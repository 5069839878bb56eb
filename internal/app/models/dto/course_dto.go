package dto

import "github.com/yigit/gradebook/internal/app/models"

// CreateCourseRequest represents a new course
type CreateCourseRequest struct {
	CourseID   string `json:"courseId" binding:"required,max=32" example:"CS101"`
	CourseName string `json:"courseName" binding:"required,max=100" example:"Data Structures"`
	Credit     int    `json:"credit" binding:"required,min=1,max=10" example:"3"`
}

// ToModel converts the request to a course
func (r CreateCourseRequest) ToModel() models.Course {
	return models.Course{
		CourseID:   r.CourseID,
		CourseName: r.CourseName,
		Credit:     r.Credit,
	}
}

// UpdateCourseRequest changes some fields of a course; omitted fields are kept
type UpdateCourseRequest struct {
	CourseName *string `json:"courseName,omitempty" binding:"omitempty,max=100" example:"Algorithms"`
	Credit     *int    `json:"credit,omitempty" binding:"omitempty,min=1,max=10" example:"4"`
}

// ToModel converts the request to a partial update
func (r UpdateCourseRequest) ToModel() models.CourseUpdate {
	return models.CourseUpdate{
		CourseName: r.CourseName,
		Credit:     r.Credit,
	}
}

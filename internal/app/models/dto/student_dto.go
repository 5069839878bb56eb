package dto

import "github.com/yigit/gradebook/internal/app/models"

// CreateStudentRequest represents a new student record
type CreateStudentRequest struct {
	StudentID string        `json:"studentId" binding:"required,max=32" example:"S2024001"`
	Name      string        `json:"name" binding:"required,max=100" example:"Li Lei"`
	Gender    models.Gender `json:"gender" binding:"required,oneof=male female" example:"male"`
	ClassName string        `json:"className" binding:"required,max=64" example:"Class 1"`
}

// ToModel converts the request to a student
func (r CreateStudentRequest) ToModel() models.Student {
	return models.Student{
		StudentID: r.StudentID,
		Name:      r.Name,
		Gender:    r.Gender,
		ClassName: r.ClassName,
	}
}

// UpdateStudentRequest changes some fields of a student; omitted fields are kept
type UpdateStudentRequest struct {
	Name      *string        `json:"name,omitempty" binding:"omitempty,max=100" example:"Li Lei"`
	Gender    *models.Gender `json:"gender,omitempty" binding:"omitempty,oneof=male female" example:"female"`
	ClassName *string        `json:"className,omitempty" binding:"omitempty,max=64" example:"Class 2"`
}

// ToModel converts the request to a partial update
func (r UpdateStudentRequest) ToModel() models.StudentUpdate {
	return models.StudentUpdate{
		Name:      r.Name,
		Gender:    r.Gender,
		ClassName: r.ClassName,
	}
}

// StudentListQuery filters the student list
type StudentListQuery struct {
	ClassName string `form:"class" example:"Class 1"`
}

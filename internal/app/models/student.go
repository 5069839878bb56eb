package models

// Student defines the student model based on the 'students' table
type Student struct {
	StudentID string `json:"studentId" db:"student_id" example:"S2024001"`
	Name      string `json:"name" db:"name" example:"Li Lei"`
	Gender    Gender `json:"gender" db:"gender" example:"male"`
	ClassName string `json:"className" db:"class_name" example:"Class 1"`
}

// StudentUpdate carries the fields to change; nil means keep the stored value
type StudentUpdate struct {
	Name      *string
	Gender    *Gender
	ClassName *string
}

// Apply returns s with the non-nil fields of u applied
func (u StudentUpdate) Apply(s Student) Student {
	if u.Name != nil {
		s.Name = *u.Name
	}
	if u.Gender != nil {
		s.Gender = *u.Gender
	}
	if u.ClassName != nil {
		s.ClassName = *u.ClassName
	}
	return s
}

// CourseScore is one line of a student's score sheet
type CourseScore struct {
	CourseID   string  `json:"courseId" example:"CS101"`
	CourseName string  `json:"courseName" example:"Data Structures"`
	Credit     int     `json:"credit" example:"3"`
	Score      float64 `json:"score" example:"88.5"`
	GradePoint float64 `json:"gradePoint" example:"3.9"`
}

// StudentProfile is a student with every recorded score and the mean grade point
type StudentProfile struct {
	Student    Student       `json:"student"`
	Scores     []CourseScore `json:"scores"`
	AverageGPA float64       `json:"averageGpa" example:"3.45"`
	HasScores  bool          `json:"hasScores" example:"true"`
}

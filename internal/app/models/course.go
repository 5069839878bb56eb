package models

// Course defines the course model based on the 'courses' table
type Course struct {
	CourseID   string `json:"courseId" db:"course_id" example:"CS101"`
	CourseName string `json:"courseName" db:"course_name" example:"Data Structures"`
	Credit     int    `json:"credit" db:"credit" example:"3"`
}

// CourseUpdate carries the fields to change; nil means keep the stored value
type CourseUpdate struct {
	CourseName *string
	Credit     *int
}

// Apply returns c with the non-nil fields of u applied
func (u CourseUpdate) Apply(c Course) Course {
	if u.CourseName != nil {
		c.CourseName = *u.CourseName
	}
	if u.Credit != nil {
		c.Credit = *u.Credit
	}
	return c
}

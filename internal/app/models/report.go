package models

import "github.com/yigit/gradebook/internal/pkg/grading"

// RankEntry is one line of the GPA ranking
type RankEntry struct {
	Rank       int     `json:"rank" example:"1"`
	StudentID  string  `json:"studentId" example:"S2024001"`
	Name       string  `json:"name" example:"Li Lei"`
	ClassName  string  `json:"className" example:"Class 1"`
	AverageGPA float64 `json:"averageGpa" example:"3.45"`
	Courses    int     `json:"courses" example:"5"`
}

// ScoreStatistics is the band distribution of one course, optionally
// restricted to one class
type ScoreStatistics struct {
	CourseID   string `json:"courseId" example:"CS101"`
	CourseName string `json:"courseName" example:"Data Structures"`
	ClassName  string `json:"className,omitempty" example:"Class 1"`
	grading.Distribution
}

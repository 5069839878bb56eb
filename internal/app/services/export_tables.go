package services

import (
	"github.com/yigit/gradebook/internal/app/models"
	"github.com/yigit/gradebook/internal/pkg/export"
)

// RankingTable lays out the ranking for download
func RankingTable(entries []models.RankEntry) export.Table {
	records := make([]export.Record, 0, len(entries))
	for _, e := range entries {
		records = append(records, export.Record{
			{Key: "rank", Value: e.Rank},
			{Key: "student_id", Value: e.StudentID},
			{Key: "name", Value: e.Name},
			{Key: "class_name", Value: e.ClassName},
			{Key: "courses", Value: e.Courses},
			{Key: "average_gpa", Value: e.AverageGPA},
		})
	}
	return export.NewTable(records)
}

// StudentsTable lays out a student list for download
func StudentsTable(students []models.Student) export.Table {
	records := make([]export.Record, 0, len(students))
	for _, s := range students {
		records = append(records, export.Record{
			{Key: "student_id", Value: s.StudentID},
			{Key: "name", Value: s.Name},
			{Key: "gender", Value: string(s.Gender)},
			{Key: "class_name", Value: s.ClassName},
		})
	}
	return export.NewTable(records)
}

// ProfileTable lays out a student's score sheet for download
func ProfileTable(p *models.StudentProfile) export.Table {
	records := make([]export.Record, 0, len(p.Scores))
	for _, cs := range p.Scores {
		records = append(records, export.Record{
			{Key: "course_id", Value: cs.CourseID},
			{Key: "course_name", Value: cs.CourseName},
			{Key: "credit", Value: cs.Credit},
			{Key: "score", Value: cs.Score},
			{Key: "grade_point", Value: cs.GradePoint},
		})
	}
	return export.NewTable(records)
}

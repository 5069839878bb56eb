package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/yigit/gradebook/internal/app/auth"
	"github.com/yigit/gradebook/internal/app/models"
	"github.com/yigit/gradebook/internal/db"
	"github.com/yigit/gradebook/internal/pkg/apperrors"
	"github.com/yigit/gradebook/internal/pkg/export"
	"github.com/yigit/gradebook/internal/pkg/grading"
	"github.com/yigit/gradebook/internal/pkg/helpers"
)

// ReportService defines ranking and statistics reports
type ReportService interface {
	Ranking(ctx context.Context, sess auth.Session) ([]models.RankEntry, error)
	ClassCourseStatistics(ctx context.Context, sess auth.Session, className, courseID string) (*models.ScoreStatistics, error)
	CourseStatistics(ctx context.Context, sess auth.Session, courseID string) (*models.ScoreStatistics, error)
	StatisticsChart(ctx context.Context, sess auth.Session, className, courseID string) ([]byte, error)
}

type reportServiceImpl struct {
	tx          Transactor
	studentRepo StudentStore
	courseRepo  CourseStore
	scoreRepo   ScoreStore
	logger      zerolog.Logger
}

// NewReportService creates a new report service instance
func NewReportService(tx Transactor, studentRepo StudentStore, courseRepo CourseStore, scoreRepo ScoreStore, logger zerolog.Logger) ReportService {
	return &reportServiceImpl{
		tx:          tx,
		studentRepo: studentRepo,
		courseRepo:  courseRepo,
		scoreRepo:   scoreRepo,
		logger:      logger,
	}
}

// Ranking lists every student by mean grade point, highest first. Students
// without scores rank with 0.0. Ties keep student_id order.
func (s *reportServiceImpl) Ranking(ctx context.Context, sess auth.Session) ([]models.RankEntry, error) {
	if err := auth.RequireLogin(sess); err != nil {
		return nil, err
	}

	var (
		students []models.Student
		scores   []models.Score
	)
	err := s.tx.Read(ctx, func(ctx context.Context, q db.Querier) error {
		var err error
		if students, err = s.studentRepo.List(ctx, q, ""); err != nil {
			return err
		}
		scores, err = s.scoreRepo.ListAll(ctx, q)
		return err
	})
	if err != nil {
		return nil, err
	}

	points := make(map[string][]float64, len(students))
	for _, sc := range scores {
		points[sc.StudentID] = append(points[sc.StudentID], grading.GradePoint(sc.Score))
	}

	entries := make([]models.RankEntry, len(students))
	for i, st := range students {
		entries[i] = models.RankEntry{
			StudentID:  st.StudentID,
			Name:       st.Name,
			ClassName:  st.ClassName,
			AverageGPA: helpers.Round(helpers.Mean(points[st.StudentID]), 2),
			Courses:    len(points[st.StudentID]),
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].AverageGPA > entries[j].AverageGPA
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries, nil
}

// ClassCourseStatistics summarizes one course within one class
func (s *reportServiceImpl) ClassCourseStatistics(ctx context.Context, sess auth.Session, className, courseID string) (*models.ScoreStatistics, error) {
	className = strings.TrimSpace(className)
	if className == "" {
		return nil, fmt.Errorf("%w: class is required", apperrors.ErrValidationFailed)
	}
	return s.statistics(ctx, sess, className, courseID)
}

// CourseStatistics summarizes one course across every class
func (s *reportServiceImpl) CourseStatistics(ctx context.Context, sess auth.Session, courseID string) (*models.ScoreStatistics, error) {
	return s.statistics(ctx, sess, "", courseID)
}

func (s *reportServiceImpl) statistics(ctx context.Context, sess auth.Session, className, courseID string) (*models.ScoreStatistics, error) {
	if err := auth.RequireLogin(sess); err != nil {
		return nil, err
	}
	courseID = strings.TrimSpace(courseID)
	if err := validateCourseID(courseID); err != nil {
		return nil, err
	}

	var (
		course  *models.Course
		entries []models.CourseScoreEntry
	)
	err := s.tx.Read(ctx, func(ctx context.Context, q db.Querier) error {
		var err error
		if course, err = s.courseRepo.GetByID(ctx, q, courseID); err != nil {
			return err
		}
		entries, err = s.scoreRepo.ListByCourse(ctx, q, courseID, className)
		return err
	})
	if err != nil {
		return nil, err
	}

	if len(entries) == 0 {
		if className != "" {
			return nil, fmt.Errorf("%w: no scores for course %s in class %s", apperrors.ErrNoData, courseID, className)
		}
		return nil, fmt.Errorf("%w: no scores for course %s", apperrors.ErrNoData, courseID)
	}

	values := make([]float64, len(entries))
	for i, e := range entries {
		values[i] = e.Score
	}

	return &models.ScoreStatistics{
		CourseID:     course.CourseID,
		CourseName:   course.CourseName,
		ClassName:    className,
		Distribution: grading.Distribute(values),
	}, nil
}

// StatisticsChart renders the distribution of a course as a PNG. An empty
// className covers every class.
func (s *reportServiceImpl) StatisticsChart(ctx context.Context, sess auth.Session, className, courseID string) ([]byte, error) {
	stats, err := s.statistics(ctx, sess, strings.TrimSpace(className), courseID)
	if err != nil {
		return nil, err
	}

	title := fmt.Sprintf("%s %s", stats.CourseID, stats.CourseName)
	if stats.ClassName != "" {
		title += " / " + stats.ClassName
	}
	meta := fmt.Sprintf("n=%d  avg %.2f  min %g  max %g", stats.Total, stats.Average, stats.Min, stats.Max)

	img, err := export.ToChartImage(stats.Distribution, title, meta)
	if err != nil {
		s.logger.Error().Err(err).Str("courseID", courseID).Msg("Failed to render statistics chart")
		return nil, fmt.Errorf("render chart: %w", err)
	}
	return img, nil
}

package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/yigit/gradebook/internal/app/models"
	"github.com/yigit/gradebook/internal/db"
	"github.com/yigit/gradebook/internal/pkg/apperrors"
	"github.com/yigit/gradebook/internal/pkg/dberrors"
	"github.com/yigit/gradebook/internal/pkg/logger"
)

// CourseRepository handles course database operations
type CourseRepository struct {
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository() *CourseRepository {
	return &CourseRepository{sb: newBuilder()}
}

// Exists reports whether a course with the ID is stored
func (r *CourseRepository) Exists(ctx context.Context, q db.Querier, courseID string) (bool, error) {
	return exists(ctx, q, r.sb, "courses", squirrel.Eq{"course_id": courseID})
}

// GetByID retrieves a course by ID
func (r *CourseRepository) GetByID(ctx context.Context, q db.Querier, courseID string) (*models.Course, error) {
	sql, args, err := r.sb.Select("course_id", "course_name", "credit").
		From("courses").
		Where(squirrel.Eq{"course_id": courseID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get course query: %w", err)
	}

	c := &models.Course{}
	err = q.QueryRow(ctx, sql, args...).Scan(&c.CourseID, &c.CourseName, &c.Credit)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Str("courseID", courseID).Msg("Error scanning course row")
		return nil, fmt.Errorf("error getting course by ID: %w", err)
	}
	return c, nil
}

// List retrieves all courses ordered by course_id
func (r *CourseRepository) List(ctx context.Context, q db.Querier) ([]models.Course, error) {
	sql, args, err := r.sb.Select("course_id", "course_name", "credit").
		From("courses").
		OrderBy("course_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list courses query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list courses query")
		return nil, fmt.Errorf("error querying courses: %w", err)
	}
	defer rows.Close()

	courses := []models.Course{}
	for rows.Next() {
		var c models.Course
		if err := rows.Scan(&c.CourseID, &c.CourseName, &c.Credit); err != nil {
			return nil, fmt.Errorf("error scanning course row: %w", err)
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating course rows: %w", err)
	}
	return courses, nil
}

// Create inserts a new course
func (r *CourseRepository) Create(ctx context.Context, q db.Querier, c *models.Course) error {
	sql, args, err := r.sb.Insert("courses").
		Columns("course_id", "course_name", "credit").
		Values(c.CourseID, c.CourseName, c.Credit).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create course query: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrCourseIDAlreadyExists
		}
		logger.Error().Err(err).Str("courseID", c.CourseID).Msg("Error creating course")
		return fmt.Errorf("error creating course: %w", err)
	}
	return nil
}

// Update writes name and credit of an existing course
func (r *CourseRepository) Update(ctx context.Context, q db.Querier, c *models.Course) error {
	sql, args, err := r.sb.Update("courses").
		Set("course_name", c.CourseName).
		Set("credit", c.Credit).
		Where(squirrel.Eq{"course_id": c.CourseID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update course query: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("courseID", c.CourseID).Msg("Error updating course")
		return fmt.Errorf("error updating course: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}
	return nil
}

// Delete removes a course. Scores reference courses with ON DELETE RESTRICT,
// so a course that still has scores is reported as ErrCourseHasScores.
func (r *CourseRepository) Delete(ctx context.Context, q db.Querier, courseID string) error {
	sql, args, err := r.sb.Delete("courses").
		Where(squirrel.Eq{"course_id": courseID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete course query: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrCourseHasScores
		}
		logger.Error().Err(err).Str("courseID", courseID).Msg("Error deleting course")
		return fmt.Errorf("error deleting course: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}
	return nil
}

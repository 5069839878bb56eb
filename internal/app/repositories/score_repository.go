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

// Foreign key constraint names as created by the schema migration
const (
	scoresStudentFK = "scores_student_id_fkey"
	scoresCourseFK  = "scores_course_id_fkey"
)

// ScoreRepository handles score database operations
type ScoreRepository struct {
	sb squirrel.StatementBuilderType
}

// NewScoreRepository creates a new ScoreRepository
func NewScoreRepository() *ScoreRepository {
	return &ScoreRepository{sb: newBuilder()}
}

func scoreKey(studentID, courseID string) squirrel.Eq {
	return squirrel.Eq{"student_id": studentID, "course_id": courseID}
}

// Exists reports whether the student already has a score for the course
func (r *ScoreRepository) Exists(ctx context.Context, q db.Querier, studentID, courseID string) (bool, error) {
	return exists(ctx, q, r.sb, "scores", scoreKey(studentID, courseID))
}

// Get retrieves one score
func (r *ScoreRepository) Get(ctx context.Context, q db.Querier, studentID, courseID string) (*models.Score, error) {
	sql, args, err := r.sb.Select("student_id", "course_id", "score").
		From("scores").
		Where(scoreKey(studentID, courseID)).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get score query: %w", err)
	}

	s := &models.Score{}
	if err := q.QueryRow(ctx, sql, args...).Scan(&s.StudentID, &s.CourseID, &s.Score); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrScoreNotFound
		}
		return nil, fmt.Errorf("error getting score: %w", err)
	}
	return s, nil
}

// Create inserts a score. The primary key on (student_id, course_id) turns a
// racing duplicate into ErrDuplicateScore; a dangling reference maps to the
// matching not-found error.
func (r *ScoreRepository) Create(ctx context.Context, q db.Querier, s *models.Score) error {
	sql, args, err := r.sb.Insert("scores").
		Columns("student_id", "course_id", "score").
		Values(s.StudentID, s.CourseID, s.Score).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create score query: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		switch {
		case dberrors.IsUniqueViolation(err):
			return apperrors.ErrDuplicateScore
		case dberrors.IsForeignKeyViolation(err) && dberrors.ConstraintName(err) == scoresCourseFK:
			return apperrors.ErrCourseNotFound
		case dberrors.IsForeignKeyViolation(err):
			return apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Str("studentID", s.StudentID).Str("courseID", s.CourseID).Msg("Error creating score")
		return fmt.Errorf("error creating score: %w", err)
	}
	return nil
}

// Update replaces the value of an existing score
func (r *ScoreRepository) Update(ctx context.Context, q db.Querier, s *models.Score) error {
	sql, args, err := r.sb.Update("scores").
		Set("score", s.Score).
		Where(scoreKey(s.StudentID, s.CourseID)).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update score query: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("studentID", s.StudentID).Str("courseID", s.CourseID).Msg("Error updating score")
		return fmt.Errorf("error updating score: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrScoreNotFound
	}
	return nil
}

// Delete removes one score
func (r *ScoreRepository) Delete(ctx context.Context, q db.Querier, studentID, courseID string) error {
	sql, args, err := r.sb.Delete("scores").Where(scoreKey(studentID, courseID)).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete score query: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting score: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrScoreNotFound
	}
	return nil
}

// DeleteByStudent removes every score of a student and returns how many went
func (r *ScoreRepository) DeleteByStudent(ctx context.Context, q db.Querier, studentID string) (int64, error) {
	sql, args, err := r.sb.Delete("scores").Where(squirrel.Eq{"student_id": studentID}).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build delete scores query: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("error deleting scores of student: %w", err)
	}
	return tag.RowsAffected(), nil
}

// CountByCourse returns how many scores reference the course
func (r *ScoreRepository) CountByCourse(ctx context.Context, q db.Querier, courseID string) (int, error) {
	sql, args, err := r.sb.Select("COUNT(*)").
		From("scores").
		Where(squirrel.Eq{"course_id": courseID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count scores query: %w", err)
	}

	var n int
	if err := q.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("error counting scores: %w", err)
	}
	return n, nil
}

// ListByStudent returns a student's scores joined with their courses, ordered by course_id
func (r *ScoreRepository) ListByStudent(ctx context.Context, q db.Querier, studentID string) ([]models.CourseScore, error) {
	sql, args, err := r.sb.Select("c.course_id", "c.course_name", "c.credit", "s.score").
		From("scores s").
		Join("courses c ON c.course_id = s.course_id").
		Where(squirrel.Eq{"s.student_id": studentID}).
		OrderBy("c.course_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build student scores query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying student scores: %w", err)
	}
	defer rows.Close()

	scores := []models.CourseScore{}
	for rows.Next() {
		var cs models.CourseScore
		if err := rows.Scan(&cs.CourseID, &cs.CourseName, &cs.Credit, &cs.Score); err != nil {
			return nil, fmt.Errorf("error scanning student score row: %w", err)
		}
		scores = append(scores, cs)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student score rows: %w", err)
	}
	return scores, nil
}

// ListByCourse returns the scores of a course joined with their students,
// ordered by student_id and limited to one class when className is set
func (r *ScoreRepository) ListByCourse(ctx context.Context, q db.Querier, courseID, className string) ([]models.CourseScoreEntry, error) {
	builder := r.sb.Select("st.student_id", "st.name", "st.class_name", "s.score").
		From("scores s").
		Join("students st ON st.student_id = s.student_id").
		Where(squirrel.Eq{"s.course_id": courseID}).
		OrderBy("st.student_id ASC")
	if className != "" {
		builder = builder.Where(squirrel.Eq{"st.class_name": className})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build course scores query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying course scores: %w", err)
	}
	defer rows.Close()

	entries := []models.CourseScoreEntry{}
	for rows.Next() {
		var e models.CourseScoreEntry
		if err := rows.Scan(&e.StudentID, &e.Name, &e.ClassName, &e.Score); err != nil {
			return nil, fmt.Errorf("error scanning course score row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating course score rows: %w", err)
	}
	return entries, nil
}

// ListAll returns every score ordered by student_id then course_id
func (r *ScoreRepository) ListAll(ctx context.Context, q db.Querier) ([]models.Score, error) {
	sql, args, err := r.sb.Select("student_id", "course_id", "score").
		From("scores").
		OrderBy("student_id ASC", "course_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list scores query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying scores: %w", err)
	}
	defer rows.Close()

	scores := []models.Score{}
	for rows.Next() {
		var s models.Score
		if err := rows.Scan(&s.StudentID, &s.CourseID, &s.Score); err != nil {
			return nil, fmt.Errorf("error scanning score row: %w", err)
		}
		scores = append(scores, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating score rows: %w", err)
	}
	return scores, nil
}

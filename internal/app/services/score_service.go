package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/yigit/gradebook/internal/app/auth"
	"github.com/yigit/gradebook/internal/app/models"
	"github.com/yigit/gradebook/internal/db"
	"github.com/yigit/gradebook/internal/pkg/apperrors"
	"github.com/yigit/gradebook/internal/pkg/grading"
)

// ScoreService defines the interface for score-related operations
type ScoreService interface {
	Create(ctx context.Context, sess auth.Session, studentID, courseID, rawScore string) (*models.Score, error)
	Update(ctx context.Context, sess auth.Session, studentID, courseID, rawScore string) (bool, error)
	Delete(ctx context.Context, sess auth.Session, studentID, courseID string, confirmed bool) error
	ListByCourse(ctx context.Context, sess auth.Session, courseID string) ([]models.CourseScoreEntry, error)
}

type scoreServiceImpl struct {
	tx          Transactor
	studentRepo StudentStore
	courseRepo  CourseStore
	scoreRepo   ScoreStore
	logger      zerolog.Logger
}

// NewScoreService creates a new score service instance
func NewScoreService(tx Transactor, studentRepo StudentStore, courseRepo CourseStore, scoreRepo ScoreStore, logger zerolog.Logger) ScoreService {
	return &scoreServiceImpl{
		tx:          tx,
		studentRepo: studentRepo,
		courseRepo:  courseRepo,
		scoreRepo:   scoreRepo,
		logger:      logger,
	}
}

func validateScoreKey(studentID, courseID string) error {
	if err := validateStudentID(studentID); err != nil {
		return err
	}
	return validateCourseID(courseID)
}

// Create records a score for a student in a course. The student and the
// course must exist and the pair must not have a score yet.
func (s *scoreServiceImpl) Create(ctx context.Context, sess auth.Session, studentID, courseID, rawScore string) (*models.Score, error) {
	if err := auth.RequireRole(sess, models.RoleAdmin); err != nil {
		return nil, err
	}
	studentID, courseID = strings.TrimSpace(studentID), strings.TrimSpace(courseID)
	if err := validateScoreKey(studentID, courseID); err != nil {
		return nil, err
	}
	value, err := grading.ParseScore(rawScore)
	if err != nil {
		return nil, err
	}

	score := &models.Score{StudentID: studentID, CourseID: courseID, Score: value}
	err = s.tx.WithTransaction(ctx, func(ctx context.Context, q db.Querier) error {
		found, err := s.studentRepo.Exists(ctx, q, studentID)
		if err != nil {
			return err
		}
		if !found {
			return apperrors.ErrStudentNotFound
		}

		if found, err = s.courseRepo.Exists(ctx, q, courseID); err != nil {
			return err
		}
		if !found {
			return apperrors.ErrCourseNotFound
		}

		if found, err = s.scoreRepo.Exists(ctx, q, studentID, courseID); err != nil {
			return err
		}
		if found {
			return apperrors.ErrDuplicateScore
		}

		return s.scoreRepo.Create(ctx, q, score)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("studentID", studentID).Str("courseID", courseID).Float64("score", value).Str("by", sess.Username).Msg("Score recorded")
	return score, nil
}

// Update replaces an existing score. It reports false when the stored value
// already equals the new one.
func (s *scoreServiceImpl) Update(ctx context.Context, sess auth.Session, studentID, courseID, rawScore string) (bool, error) {
	if err := auth.RequireRole(sess, models.RoleAdmin); err != nil {
		return false, err
	}
	studentID, courseID = strings.TrimSpace(studentID), strings.TrimSpace(courseID)
	if err := validateScoreKey(studentID, courseID); err != nil {
		return false, err
	}
	value, err := grading.ParseScore(rawScore)
	if err != nil {
		return false, err
	}

	changed := false
	err = s.tx.WithTransaction(ctx, func(ctx context.Context, q db.Querier) error {
		current, err := s.scoreRepo.Get(ctx, q, studentID, courseID)
		if err != nil {
			return err
		}
		if current.Score == value {
			return nil
		}
		current.Score = value
		if err := s.scoreRepo.Update(ctx, q, current); err != nil {
			return err
		}
		changed = true
		return nil
	})
	if err != nil {
		return false, err
	}

	if changed {
		s.logger.Info().Str("studentID", studentID).Str("courseID", courseID).Float64("score", value).Str("by", sess.Username).Msg("Score updated")
	}
	return changed, nil
}

// Delete removes one score
func (s *scoreServiceImpl) Delete(ctx context.Context, sess auth.Session, studentID, courseID string, confirmed bool) error {
	if err := auth.RequireRole(sess, models.RoleAdmin); err != nil {
		return err
	}
	if !confirmed {
		return apperrors.ErrNotConfirmed
	}
	studentID, courseID = strings.TrimSpace(studentID), strings.TrimSpace(courseID)
	if err := validateScoreKey(studentID, courseID); err != nil {
		return err
	}

	err := s.tx.WithTransaction(ctx, func(ctx context.Context, q db.Querier) error {
		return s.scoreRepo.Delete(ctx, q, studentID, courseID)
	})
	if err != nil {
		return err
	}

	s.logger.Info().Str("studentID", studentID).Str("courseID", courseID).Str("by", sess.Username).Msg("Score deleted")
	return nil
}

// ListByCourse returns the scores recorded for a course, with grade points
func (s *scoreServiceImpl) ListByCourse(ctx context.Context, sess auth.Session, courseID string) ([]models.CourseScoreEntry, error) {
	if err := auth.RequireLogin(sess); err != nil {
		return nil, err
	}
	courseID = strings.TrimSpace(courseID)
	if err := validateCourseID(courseID); err != nil {
		return nil, err
	}

	var entries []models.CourseScoreEntry
	err := s.tx.Read(ctx, func(ctx context.Context, q db.Querier) error {
		found, err := s.courseRepo.Exists(ctx, q, courseID)
		if err != nil {
			return err
		}
		if !found {
			return apperrors.ErrCourseNotFound
		}
		entries, err = s.scoreRepo.ListByCourse(ctx, q, courseID, "")
		return err
	})
	if err != nil {
		return nil, err
	}

	for i := range entries {
		entries[i].GradePoint = grading.GradePoint(entries[i].Score)
	}
	return entries, nil
}

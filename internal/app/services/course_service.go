package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/yigit/gradebook/internal/app/auth"
	"github.com/yigit/gradebook/internal/app/models"
	"github.com/yigit/gradebook/internal/db"
	"github.com/yigit/gradebook/internal/pkg/apperrors"
	"github.com/yigit/gradebook/internal/pkg/validation"
)

// CourseService defines the interface for course-related operations
type CourseService interface {
	Get(ctx context.Context, sess auth.Session, courseID string) (*models.Course, error)
	List(ctx context.Context, sess auth.Session) ([]models.Course, error)
	Create(ctx context.Context, sess auth.Session, course models.Course) (*models.Course, error)
	Update(ctx context.Context, sess auth.Session, courseID string, upd models.CourseUpdate) (bool, error)
	Delete(ctx context.Context, sess auth.Session, courseID string, confirmed bool) error
}

type courseServiceImpl struct {
	tx         Transactor
	courseRepo CourseStore
	scoreRepo  ScoreStore
	logger     zerolog.Logger
}

// NewCourseService creates a new course service instance
func NewCourseService(tx Transactor, courseRepo CourseStore, scoreRepo ScoreStore, logger zerolog.Logger) CourseService {
	return &courseServiceImpl{
		tx:         tx,
		courseRepo: courseRepo,
		scoreRepo:  scoreRepo,
		logger:     logger,
	}
}

func validateCourseID(id string) error {
	if !validation.ValidIdentifier(id) {
		return fmt.Errorf("%w: invalid course ID %q", apperrors.ErrValidationFailed, id)
	}
	return nil
}

func validateCourseFields(name *string, credit *int) error {
	if name != nil && !validation.ValidName(*name) {
		return fmt.Errorf("%w: course name cannot be empty or longer than %d characters", apperrors.ErrValidationFailed, validation.NameMaxLength)
	}
	if credit != nil && !validation.ValidCredit(*credit) {
		return fmt.Errorf("%w: credit must be between %d and %d", apperrors.ErrValidationFailed, validation.CreditMin, validation.CreditMax)
	}
	return nil
}

// Get returns one course
func (s *courseServiceImpl) Get(ctx context.Context, sess auth.Session, courseID string) (*models.Course, error) {
	if err := auth.RequireLogin(sess); err != nil {
		return nil, err
	}
	courseID = strings.TrimSpace(courseID)
	if err := validateCourseID(courseID); err != nil {
		return nil, err
	}

	var course *models.Course
	err := s.tx.Read(ctx, func(ctx context.Context, q db.Querier) error {
		var err error
		course, err = s.courseRepo.GetByID(ctx, q, courseID)
		return err
	})
	return course, err
}

// List returns every course ordered by ID
func (s *courseServiceImpl) List(ctx context.Context, sess auth.Session) ([]models.Course, error) {
	if err := auth.RequireLogin(sess); err != nil {
		return nil, err
	}

	var courses []models.Course
	err := s.tx.Read(ctx, func(ctx context.Context, q db.Querier) error {
		var err error
		courses, err = s.courseRepo.List(ctx, q)
		return err
	})
	return courses, err
}

// Create adds a course to the catalog
func (s *courseServiceImpl) Create(ctx context.Context, sess auth.Session, course models.Course) (*models.Course, error) {
	if err := auth.RequireRole(sess, models.RoleAdmin); err != nil {
		return nil, err
	}
	course.CourseID = strings.TrimSpace(course.CourseID)
	course.CourseName = strings.TrimSpace(course.CourseName)
	if err := validateCourseID(course.CourseID); err != nil {
		return nil, err
	}
	if err := validateCourseFields(&course.CourseName, &course.Credit); err != nil {
		return nil, err
	}

	err := s.tx.WithTransaction(ctx, func(ctx context.Context, q db.Querier) error {
		taken, err := s.courseRepo.Exists(ctx, q, course.CourseID)
		if err != nil {
			return err
		}
		if taken {
			return apperrors.ErrCourseIDAlreadyExists
		}
		return s.courseRepo.Create(ctx, q, &course)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("courseID", course.CourseID).Str("by", sess.Username).Msg("Course created")
	return &course, nil
}

// Update applies a partial update. It reports false when nothing changed.
func (s *courseServiceImpl) Update(ctx context.Context, sess auth.Session, courseID string, upd models.CourseUpdate) (bool, error) {
	if err := auth.RequireRole(sess, models.RoleAdmin); err != nil {
		return false, err
	}
	courseID = strings.TrimSpace(courseID)
	if err := validateCourseID(courseID); err != nil {
		return false, err
	}
	if upd.CourseName != nil {
		name := strings.TrimSpace(*upd.CourseName)
		upd.CourseName = &name
	}
	if err := validateCourseFields(upd.CourseName, upd.Credit); err != nil {
		return false, err
	}

	changed := false
	err := s.tx.WithTransaction(ctx, func(ctx context.Context, q db.Querier) error {
		current, err := s.courseRepo.GetByID(ctx, q, courseID)
		if err != nil {
			return err
		}
		merged := upd.Apply(*current)
		if merged == *current {
			return nil
		}
		if err := s.courseRepo.Update(ctx, q, &merged); err != nil {
			return err
		}
		changed = true
		return nil
	})
	if err != nil {
		return false, err
	}

	if changed {
		s.logger.Info().Str("courseID", courseID).Str("by", sess.Username).Msg("Course updated")
	}
	return changed, nil
}

// Delete removes a course. A course with recorded scores is never removed.
func (s *courseServiceImpl) Delete(ctx context.Context, sess auth.Session, courseID string, confirmed bool) error {
	if err := auth.RequireRole(sess, models.RoleAdmin); err != nil {
		return err
	}
	if !confirmed {
		return apperrors.ErrNotConfirmed
	}
	courseID = strings.TrimSpace(courseID)
	if err := validateCourseID(courseID); err != nil {
		return err
	}

	err := s.tx.WithTransaction(ctx, func(ctx context.Context, q db.Querier) error {
		found, err := s.courseRepo.Exists(ctx, q, courseID)
		if err != nil {
			return err
		}
		if !found {
			return apperrors.ErrCourseNotFound
		}
		n, err := s.scoreRepo.CountByCourse(ctx, q, courseID)
		if err != nil {
			return err
		}
		if n > 0 {
			return apperrors.ErrCourseHasScores.WithDetails(map[string]interface{}{"scores": n})
		}
		return s.courseRepo.Delete(ctx, q, courseID)
	})
	if err != nil {
		return err
	}

	s.logger.Info().Str("courseID", courseID).Str("by", sess.Username).Msg("Course deleted")
	return nil
}

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
	"github.com/yigit/gradebook/internal/pkg/grading"
	"github.com/yigit/gradebook/internal/pkg/helpers"
	"github.com/yigit/gradebook/internal/pkg/validation"
)

// StudentService defines the interface for student-related operations
type StudentService interface {
	GetProfile(ctx context.Context, sess auth.Session, studentID string) (*models.StudentProfile, error)
	Get(ctx context.Context, sess auth.Session, studentID string) (*models.Student, error)
	List(ctx context.Context, sess auth.Session, className string) ([]models.Student, error)
	Create(ctx context.Context, sess auth.Session, student models.Student) (*models.Student, error)
	Update(ctx context.Context, sess auth.Session, studentID string, upd models.StudentUpdate) (bool, error)
	Delete(ctx context.Context, sess auth.Session, studentID string, confirmed bool) (int64, error)
}

type studentServiceImpl struct {
	tx          Transactor
	studentRepo StudentStore
	scoreRepo   ScoreStore
	logger      zerolog.Logger
}

// NewStudentService creates a new student service instance
func NewStudentService(tx Transactor, studentRepo StudentStore, scoreRepo ScoreStore, logger zerolog.Logger) StudentService {
	return &studentServiceImpl{
		tx:          tx,
		studentRepo: studentRepo,
		scoreRepo:   scoreRepo,
		logger:      logger,
	}
}

func normalizeStudent(s models.Student) models.Student {
	s.StudentID = strings.TrimSpace(s.StudentID)
	s.Name = strings.TrimSpace(s.Name)
	s.ClassName = strings.TrimSpace(s.ClassName)
	return s
}

// validateStudent validates student data before database operations
func validateStudent(s models.Student) error {
	if !validation.ValidIdentifier(s.StudentID) {
		return fmt.Errorf("%w: student ID must be 1-32 letters, digits, '-' or '_'", apperrors.ErrValidationFailed)
	}
	if !validation.ValidName(s.Name) {
		return fmt.Errorf("%w: name cannot be empty or longer than %d characters", apperrors.ErrValidationFailed, validation.NameMaxLength)
	}
	if !s.Gender.Valid() {
		return fmt.Errorf("%w: gender must be male or female", apperrors.ErrValidationFailed)
	}
	if !validation.ValidClassName(s.ClassName) {
		return fmt.Errorf("%w: class name cannot be empty or longer than %d characters", apperrors.ErrValidationFailed, validation.ClassNameMaxLength)
	}
	return nil
}

func validateStudentID(id string) error {
	if !validation.ValidIdentifier(id) {
		return fmt.Errorf("%w: invalid student ID %q", apperrors.ErrValidationFailed, id)
	}
	return nil
}

// normalizeStudentUpdate trims and validates the fields present in upd
func normalizeStudentUpdate(upd models.StudentUpdate) (models.StudentUpdate, error) {
	if upd.Name != nil {
		name := strings.TrimSpace(*upd.Name)
		if !validation.ValidName(name) {
			return upd, fmt.Errorf("%w: name cannot be empty or longer than %d characters", apperrors.ErrValidationFailed, validation.NameMaxLength)
		}
		upd.Name = &name
	}
	if upd.Gender != nil && !upd.Gender.Valid() {
		return upd, fmt.Errorf("%w: gender must be male or female", apperrors.ErrValidationFailed)
	}
	if upd.ClassName != nil {
		class := strings.TrimSpace(*upd.ClassName)
		if !validation.ValidClassName(class) {
			return upd, fmt.Errorf("%w: class name cannot be empty or longer than %d characters", apperrors.ErrValidationFailed, validation.ClassNameMaxLength)
		}
		upd.ClassName = &class
	}
	return upd, nil
}

// GetProfile returns a student with every score and the mean grade point
func (s *studentServiceImpl) GetProfile(ctx context.Context, sess auth.Session, studentID string) (*models.StudentProfile, error) {
	if err := auth.RequireLogin(sess); err != nil {
		return nil, err
	}
	studentID = strings.TrimSpace(studentID)
	if err := validateStudentID(studentID); err != nil {
		return nil, err
	}

	profile := &models.StudentProfile{}
	err := s.tx.Read(ctx, func(ctx context.Context, q db.Querier) error {
		student, err := s.studentRepo.GetByID(ctx, q, studentID)
		if err != nil {
			return err
		}
		scores, err := s.scoreRepo.ListByStudent(ctx, q, studentID)
		if err != nil {
			return err
		}
		profile.Student = *student
		profile.Scores = scores
		return nil
	})
	if err != nil {
		return nil, err
	}

	points := make([]float64, len(profile.Scores))
	for i := range profile.Scores {
		profile.Scores[i].GradePoint = grading.GradePoint(profile.Scores[i].Score)
		points[i] = profile.Scores[i].GradePoint
	}
	profile.HasScores = len(points) > 0
	profile.AverageGPA = helpers.Round(helpers.Mean(points), 2)
	return profile, nil
}

// Get returns one student
func (s *studentServiceImpl) Get(ctx context.Context, sess auth.Session, studentID string) (*models.Student, error) {
	if err := auth.RequireLogin(sess); err != nil {
		return nil, err
	}
	studentID = strings.TrimSpace(studentID)
	if err := validateStudentID(studentID); err != nil {
		return nil, err
	}

	var student *models.Student
	err := s.tx.Read(ctx, func(ctx context.Context, q db.Querier) error {
		var err error
		student, err = s.studentRepo.GetByID(ctx, q, studentID)
		return err
	})
	return student, err
}

// List returns students ordered by ID, optionally limited to one class
func (s *studentServiceImpl) List(ctx context.Context, sess auth.Session, className string) ([]models.Student, error) {
	if err := auth.RequireLogin(sess); err != nil {
		return nil, err
	}

	var students []models.Student
	err := s.tx.Read(ctx, func(ctx context.Context, q db.Querier) error {
		var err error
		students, err = s.studentRepo.List(ctx, q, strings.TrimSpace(className))
		return err
	})
	return students, err
}

// Create adds a student record
func (s *studentServiceImpl) Create(ctx context.Context, sess auth.Session, student models.Student) (*models.Student, error) {
	if err := auth.RequireRole(sess, models.RoleAdmin); err != nil {
		return nil, err
	}
	student = normalizeStudent(student)
	if err := validateStudent(student); err != nil {
		return nil, err
	}

	err := s.tx.WithTransaction(ctx, func(ctx context.Context, q db.Querier) error {
		taken, err := s.studentRepo.Exists(ctx, q, student.StudentID)
		if err != nil {
			return err
		}
		if taken {
			return apperrors.ErrStudentIDAlreadyExists
		}
		return s.studentRepo.Create(ctx, q, &student)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("studentID", student.StudentID).Str("by", sess.Username).Msg("Student created")
	return &student, nil
}

// Update applies a partial update. It reports false when the stored record
// already holds the requested values.
func (s *studentServiceImpl) Update(ctx context.Context, sess auth.Session, studentID string, upd models.StudentUpdate) (bool, error) {
	if err := auth.RequireRole(sess, models.RoleAdmin); err != nil {
		return false, err
	}
	studentID = strings.TrimSpace(studentID)
	if err := validateStudentID(studentID); err != nil {
		return false, err
	}
	upd, err := normalizeStudentUpdate(upd)
	if err != nil {
		return false, err
	}

	changed := false
	err = s.tx.WithTransaction(ctx, func(ctx context.Context, q db.Querier) error {
		current, err := s.studentRepo.GetByID(ctx, q, studentID)
		if err != nil {
			return err
		}
		merged := upd.Apply(*current)
		if merged == *current {
			return nil
		}
		if err := s.studentRepo.Update(ctx, q, &merged); err != nil {
			return err
		}
		changed = true
		return nil
	})
	if err != nil {
		return false, err
	}

	if changed {
		s.logger.Info().Str("studentID", studentID).Str("by", sess.Username).Msg("Student updated")
	}
	return changed, nil
}

// Delete removes a student and all of their scores in one transaction.
// It returns how many score rows were removed.
func (s *studentServiceImpl) Delete(ctx context.Context, sess auth.Session, studentID string, confirmed bool) (int64, error) {
	if err := auth.RequireRole(sess, models.RoleAdmin); err != nil {
		return 0, err
	}
	if !confirmed {
		return 0, apperrors.ErrNotConfirmed
	}
	studentID = strings.TrimSpace(studentID)
	if err := validateStudentID(studentID); err != nil {
		return 0, err
	}

	var removed int64
	err := s.tx.WithTransaction(ctx, func(ctx context.Context, q db.Querier) error {
		found, err := s.studentRepo.Exists(ctx, q, studentID)
		if err != nil {
			return err
		}
		if !found {
			return apperrors.ErrStudentNotFound
		}
		if removed, err = s.scoreRepo.DeleteByStudent(ctx, q, studentID); err != nil {
			return err
		}
		return s.studentRepo.Delete(ctx, q, studentID)
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info().Str("studentID", studentID).Int64("scoresRemoved", removed).Str("by", sess.Username).Msg("Student deleted")
	return removed, nil
}

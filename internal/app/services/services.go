package services

import (
	"context"

	"github.com/yigit/gradebook/internal/app/models"
	"github.com/yigit/gradebook/internal/app/repositories"
	"github.com/yigit/gradebook/internal/db"
)

// Services defined in this package:
// - AuthService: login checks and user provisioning
// - StudentService: student records and profiles
// - CourseService: course catalog
// - ScoreService: score entry
// - ReportService: ranking, statistics and charts
//
// Every operation that acts for a user takes the caller's auth.Session.
// Mutations check the admin role first, then validate input, then run in
// one transaction.

// Transactor runs repository calls against the database
type Transactor interface {
	WithTransaction(ctx context.Context, fn db.TransactionFn) error
	Read(ctx context.Context, fn db.TransactionFn) error
}

// UserStore is the user persistence the services need
type UserStore interface {
	GetByUsername(ctx context.Context, q db.Querier, username string) (*models.User, error)
	Create(ctx context.Context, q db.Querier, user *models.User) error
	List(ctx context.Context, q db.Querier) ([]models.User, error)
	Count(ctx context.Context, q db.Querier) (int, error)
}

// StudentStore is the student persistence the services need
type StudentStore interface {
	Exists(ctx context.Context, q db.Querier, studentID string) (bool, error)
	GetByID(ctx context.Context, q db.Querier, studentID string) (*models.Student, error)
	List(ctx context.Context, q db.Querier, className string) ([]models.Student, error)
	Create(ctx context.Context, q db.Querier, s *models.Student) error
	Update(ctx context.Context, q db.Querier, s *models.Student) error
	Delete(ctx context.Context, q db.Querier, studentID string) error
}

// CourseStore is the course persistence the services need
type CourseStore interface {
	Exists(ctx context.Context, q db.Querier, courseID string) (bool, error)
	GetByID(ctx context.Context, q db.Querier, courseID string) (*models.Course, error)
	List(ctx context.Context, q db.Querier) ([]models.Course, error)
	Create(ctx context.Context, q db.Querier, c *models.Course) error
	Update(ctx context.Context, q db.Querier, c *models.Course) error
	Delete(ctx context.Context, q db.Querier, courseID string) error
}

// ScoreStore is the score persistence the services need
type ScoreStore interface {
	Exists(ctx context.Context, q db.Querier, studentID, courseID string) (bool, error)
	Get(ctx context.Context, q db.Querier, studentID, courseID string) (*models.Score, error)
	Create(ctx context.Context, q db.Querier, s *models.Score) error
	Update(ctx context.Context, q db.Querier, s *models.Score) error
	Delete(ctx context.Context, q db.Querier, studentID, courseID string) error
	DeleteByStudent(ctx context.Context, q db.Querier, studentID string) (int64, error)
	CountByCourse(ctx context.Context, q db.Querier, courseID string) (int, error)
	ListByStudent(ctx context.Context, q db.Querier, studentID string) ([]models.CourseScore, error)
	ListByCourse(ctx context.Context, q db.Querier, courseID, className string) ([]models.CourseScoreEntry, error)
	ListAll(ctx context.Context, q db.Querier) ([]models.Score, error)
}

var (
	_ Transactor   = (*db.PostgresDB)(nil)
	_ UserStore    = (*repositories.UserRepository)(nil)
	_ StudentStore = (*repositories.StudentRepository)(nil)
	_ CourseStore  = (*repositories.CourseRepository)(nil)
	_ ScoreStore   = (*repositories.ScoreRepository)(nil)
)

package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/yigit/gradebook/internal/db"
)

// Repositories holds all the repository instances. Every method takes the
// db.Querier to run on, so the caller decides between the pool and a
// transaction.
type Repositories struct {
	UserRepository    *UserRepository
	StudentRepository *StudentRepository
	CourseRepository  *CourseRepository
	ScoreRepository   *ScoreRepository
}

// NewRepositories initializes all repositories
func NewRepositories() *Repositories {
	return &Repositories{
		UserRepository:    NewUserRepository(),
		StudentRepository: NewStudentRepository(),
		CourseRepository:  NewCourseRepository(),
		ScoreRepository:   NewScoreRepository(),
	}
}

func newBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// exists runs SELECT EXISTS (SELECT 1 FROM table WHERE pred)
func exists(ctx context.Context, q db.Querier, sb squirrel.StatementBuilderType, table string, pred squirrel.Eq) (bool, error) {
	sql, args, err := sb.Select("1").
		From(table).
		Where(pred).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build exists query: %w", err)
	}

	var found bool
	if err := q.QueryRow(ctx, sql, args...).Scan(&found); err != nil {
		return false, fmt.Errorf("error checking %s: %w", table, err)
	}
	return found, nil
}

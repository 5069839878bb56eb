package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"

	"github.com/yigit/gradebook/internal/app/models"
	"github.com/yigit/gradebook/internal/pkg/apperrors"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("create mock pool: %v", err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Error(err)
		}
		mock.Close()
	})
	return mock
}

func TestScoreCreateMapsConstraintViolations(t *testing.T) {
	tests := []struct {
		name  string
		pgErr *pgconn.PgError
		want  error
	}{
		{"duplicate pair", &pgconn.PgError{Code: "23505", ConstraintName: "scores_pkey"}, apperrors.ErrDuplicateScore},
		{"missing course", &pgconn.PgError{Code: "23503", ConstraintName: scoresCourseFK}, apperrors.ErrCourseNotFound},
		{"missing student", &pgconn.PgError{Code: "23503", ConstraintName: scoresStudentFK}, apperrors.ErrStudentNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMock(t)
			mock.ExpectExec("INSERT INTO scores").
				WithArgs("S001", "C001", 88.5).
				WillReturnError(tt.pgErr)

			err := NewScoreRepository().Create(context.Background(), mock, &models.Score{StudentID: "S001", CourseID: "C001", Score: 88.5})
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestScoreUpdateNotFound(t *testing.T) {
	mock := newMock(t)
	mock.ExpectExec("UPDATE scores SET score").
		WithArgs(70.0, "C001", "S001").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := NewScoreRepository().Update(context.Background(), mock, &models.Score{StudentID: "S001", CourseID: "C001", Score: 70})
	if !errors.Is(err, apperrors.ErrScoreNotFound) {
		t.Fatalf("err = %v, want ErrScoreNotFound", err)
	}
}

func TestScoreDeleteByStudentReturnsCount(t *testing.T) {
	mock := newMock(t)
	mock.ExpectExec("DELETE FROM scores WHERE student_id").
		WithArgs("S001").
		WillReturnResult(pgxmock.NewResult("DELETE", 3))

	n, err := NewScoreRepository().DeleteByStudent(context.Background(), mock, "S001")
	if err != nil {
		t.Fatalf("DeleteByStudent: %v", err)
	}
	if n != 3 {
		t.Errorf("removed %d, want 3", n)
	}
}

func TestScoreListByCourseFiltersClass(t *testing.T) {
	mock := newMock(t)
	rows := pgxmock.NewRows([]string{"student_id", "name", "class_name", "score"}).
		AddRow("S001", "Li Lei", "Class 1", 55.0).
		AddRow("S003", "Wang Fang", "Class 1", 95.0)
	mock.ExpectQuery("SELECT st.student_id, st.name, st.class_name, s.score FROM scores s JOIN students st").
		WithArgs("C001", "Class 1").
		WillReturnRows(rows)

	entries, err := NewScoreRepository().ListByCourse(context.Background(), mock, "C001", "Class 1")
	if err != nil {
		t.Fatalf("ListByCourse: %v", err)
	}
	if len(entries) != 2 || entries[1].StudentID != "S003" || entries[1].Score != 95 {
		t.Errorf("entries = %+v", entries)
	}
}

func TestScoreExists(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("C001", "S001").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	found, err := NewScoreRepository().Exists(context.Background(), mock, "S001", "C001")
	if err != nil || !found {
		t.Fatalf("Exists = %v, %v", found, err)
	}
}

func TestStudentCreateDuplicate(t *testing.T) {
	mock := newMock(t)
	mock.ExpectExec("INSERT INTO students").
		WithArgs("S001", "Li Lei", models.GenderMale, "Class 1").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "students_pkey"})

	err := NewStudentRepository().Create(context.Background(), mock, &models.Student{
		StudentID: "S001", Name: "Li Lei", Gender: models.GenderMale, ClassName: "Class 1",
	})
	if !errors.Is(err, apperrors.ErrStudentIDAlreadyExists) {
		t.Fatalf("err = %v, want ErrStudentIDAlreadyExists", err)
	}
	if !errors.Is(err, apperrors.ErrResourceAlreadyExists) {
		t.Error("duplicate student is not categorized as already-exists")
	}
}

func TestStudentDeleteNotFound(t *testing.T) {
	mock := newMock(t)
	mock.ExpectExec("DELETE FROM students").
		WithArgs("S404").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := NewStudentRepository().Delete(context.Background(), mock, "S404")
	if !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Fatalf("err = %v, want ErrStudentNotFound", err)
	}
}

func TestCourseDeleteBlockedByScores(t *testing.T) {
	mock := newMock(t)
	mock.ExpectExec("DELETE FROM courses").
		WithArgs("C001").
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: scoresCourseFK})

	err := NewCourseRepository().Delete(context.Background(), mock, "C001")
	if !errors.Is(err, apperrors.ErrCourseHasScores) {
		t.Fatalf("err = %v, want ErrCourseHasScores", err)
	}
}

func TestCourseGetByIDNotFound(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery("SELECT course_id, course_name, credit FROM courses").
		WithArgs("C404").
		WillReturnRows(pgxmock.NewRows([]string{"course_id", "course_name", "credit"}))

	_, err := NewCourseRepository().GetByID(context.Background(), mock, "C404")
	if !errors.Is(err, apperrors.ErrCourseNotFound) {
		t.Fatalf("err = %v, want ErrCourseNotFound", err)
	}
}

func TestUserCountAndDuplicate(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery("SELECT COUNT").WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectExec("INSERT INTO users").
		WithArgs("admin", "secret", models.RoleAdmin).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	repo := NewUserRepository()
	n, err := repo.Count(context.Background(), mock)
	if err != nil || n != 2 {
		t.Fatalf("Count = %d, %v", n, err)
	}

	err = repo.Create(context.Background(), mock, &models.User{Username: "admin", Password: "secret", Role: models.RoleAdmin})
	if !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("err = %v, want ErrUsernameTaken", err)
	}
}

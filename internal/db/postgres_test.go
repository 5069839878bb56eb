package db

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"

	"github.com/yigit/gradebook/internal/pkg/apperrors"
)

func newMockDB(t *testing.T) (*PostgresDB, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("create mock pool: %v", err)
	}
	t.Cleanup(mock.Close)
	return New(mock), mock
}

func TestWithTransactionCommits(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM scores").WithArgs("S001").WillReturnResult(pgxmock.NewResult("DELETE", 2))
	mock.ExpectCommit()

	err := db.WithTransaction(context.Background(), func(ctx context.Context, q Querier) error {
		_, err := q.Exec(ctx, "DELETE FROM scores WHERE student_id = $1", "S001")
		return err
	})
	if err != nil {
		t.Fatalf("WithTransaction: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestWithTransactionRollsBackOnError(t *testing.T) {
	db, mock := newMockDB(t)

	stmtErr := &pgconn.PgError{Code: "23505"}
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO scores").
		WithArgs("S001", "C001", 90.0).
		WillReturnError(stmtErr)
	mock.ExpectRollback()

	err := db.WithTransaction(context.Background(), func(ctx context.Context, q Querier) error {
		_, err := q.Exec(ctx, "INSERT INTO scores (student_id, course_id, score) VALUES ($1, $2, $3)", "S001", "C001", 90.0)
		return err
	})
	if !errors.Is(err, stmtErr) {
		t.Fatalf("err = %v, want the statement error", err)
	}
	if apperrors.Is(err, apperrors.ErrDatabaseUnavailable) {
		t.Error("statement failure classified as unavailable")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestWithTransactionRollsBackOnPanic(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	func() {
		defer func() {
			if r := recover(); r == nil {
				t.Error("panic was swallowed")
			}
		}()
		_ = db.WithTransaction(context.Background(), func(ctx context.Context, q Querier) error {
			panic("boom")
		})
	}()

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestWithTransactionBeginFailure(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin().WillReturnError(errors.New("connection refused"))

	called := false
	err := db.WithTransaction(context.Background(), func(ctx context.Context, q Querier) error {
		called = true
		return nil
	})
	if !errors.Is(err, apperrors.ErrDatabaseUnavailable) {
		t.Fatalf("err = %v, want ErrDatabaseUnavailable", err)
	}
	if called {
		t.Error("fn ran without a transaction")
	}
}

func TestWithTransactionCommitFailure(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(errors.New("serialization failure"))

	err := db.WithTransaction(context.Background(), func(ctx context.Context, q Querier) error {
		return nil
	})
	if err == nil {
		t.Fatal("commit failure was not returned")
	}
}

func TestReadClassifiesConnectivity(t *testing.T) {
	db, _ := newMockDB(t)

	err := db.Read(context.Background(), func(ctx context.Context, q Querier) error {
		return &pgconn.PgError{Code: "08006"}
	})
	if !errors.Is(err, apperrors.ErrDatabaseUnavailable) {
		t.Errorf("err = %v, want ErrDatabaseUnavailable", err)
	}

	notFound := apperrors.ErrStudentNotFound
	err = db.Read(context.Background(), func(ctx context.Context, q Querier) error {
		return notFound
	})
	if !errors.Is(err, notFound) || errors.Is(err, apperrors.ErrDatabaseUnavailable) {
		t.Errorf("err = %v, want the not-found error unchanged", err)
	}
}

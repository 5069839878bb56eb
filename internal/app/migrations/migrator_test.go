package migrations

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/pashagolub/pgxmock/v4"

	"github.com/yigit/gradebook/internal/db"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"m/002_add_index.sql": {Data: []byte("CREATE INDEX idx_x ON students (name)")},
		"m/001_init.sql":      {Data: []byte("CREATE TABLE students (student_id TEXT)")},
		"m/README.md":         {Data: []byte("ignored")},
	}
}

func TestPendingSortsSQLFiles(t *testing.T) {
	m := NewMigratorFS(nil, testFS(), "m")
	names, err := m.Pending()
	if err != nil {
		t.Fatalf("Pending: %v", err)
	}
	if len(names) != 2 || names[0] != "001_init.sql" || names[1] != "002_add_index.sql" {
		t.Errorf("names = %v", names)
	}
}

func TestEmbeddedMigrationsPresent(t *testing.T) {
	names, err := NewMigrator(nil).Pending()
	if err != nil {
		t.Fatalf("Pending: %v", err)
	}
	if len(names) == 0 || names[0] != "001_init.sql" {
		t.Errorf("embedded migrations = %v", names)
	}
}

func TestMigrateAppliesOnlyNewVersions(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	defer mock.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").WillReturnResult(pgxmock.NewResult("CREATE", 0))

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT EXISTS").WithArgs("001").WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectCommit()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT EXISTS").WithArgs("002").WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec("CREATE INDEX idx_x").WillReturnResult(pgxmock.NewResult("CREATE", 0))
	mock.ExpectExec("INSERT INTO schema_migrations").WithArgs("002").WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	applied, err := NewMigratorFS(db.New(mock), testFS(), "m").Migrate(context.Background())
	if err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	if len(applied) != 1 || applied[0] != "002" {
		t.Errorf("applied = %v, want [002]", applied)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestMigrateRollsBackFailedFile(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	defer mock.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").WillReturnResult(pgxmock.NewResult("CREATE", 0))
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT EXISTS").WithArgs("001").WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec("CREATE TABLE students").WillReturnError(errors.New("syntax error"))
	mock.ExpectRollback()

	applied, err := NewMigratorFS(db.New(mock), testFS(), "m").Migrate(context.Background())
	if err == nil {
		t.Fatal("expected the failing migration to be reported")
	}
	if len(applied) != 0 {
		t.Errorf("applied = %v, want none", applied)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

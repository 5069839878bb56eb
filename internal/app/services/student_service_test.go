package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/yigit/gradebook/internal/app/auth"
	"github.com/yigit/gradebook/internal/app/models"
	"github.com/yigit/gradebook/internal/pkg/apperrors"
	"github.com/yigit/gradebook/internal/pkg/validation"
)

func newStudent(id string) models.Student {
	return models.Student{StudentID: id, Name: "Li Lei", Gender: models.GenderMale, ClassName: "Class 1"}
}

func TestStudentCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("admin creates", func(t *testing.T) {
		f := newFixture()
		s, err := f.students.Create(ctx, adminSession, models.Student{StudentID: " S001 ", Name: " Li Lei ", Gender: models.GenderMale, ClassName: "Class 1"})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if s.StudentID != "S001" || f.db.students["S001"].Name != "Li Lei" {
			t.Errorf("stored = %+v", f.db.students)
		}
	})

	t.Run("duplicate ID", func(t *testing.T) {
		f := newFixture()
		f.addStudent("S001", "Han Meimei", "Class 2")
		_, err := f.students.Create(ctx, adminSession, newStudent("S001"))
		if !errors.Is(err, apperrors.ErrStudentIDAlreadyExists) {
			t.Fatalf("err = %v, want ErrStudentIDAlreadyExists", err)
		}
		if f.db.students["S001"].Name != "Han Meimei" {
			t.Error("existing student was overwritten")
		}
	})

	t.Run("teacher forbidden before validation", func(t *testing.T) {
		f := newFixture()
		_, err := f.students.Create(ctx, teacherSession, models.Student{})
		if !errors.Is(err, apperrors.ErrPermissionDenied) {
			t.Fatalf("err = %v, want ErrPermissionDenied", err)
		}
		if f.tx.calls() != 0 {
			t.Error("storage was called")
		}
	})

	t.Run("invalid gender", func(t *testing.T) {
		f := newFixture()
		s := newStudent("S001")
		s.Gender = "other"
		if _, err := f.students.Create(ctx, adminSession, s); !errors.Is(err, apperrors.ErrValidationFailed) {
			t.Fatalf("err = %v, want ErrValidationFailed", err)
		}
		if f.tx.calls() != 0 {
			t.Error("storage was called for invalid input")
		}
	})

	t.Run("class name longer than the column", func(t *testing.T) {
		f := newFixture()
		s := newStudent("S001")
		s.ClassName = strings.Repeat("x", validation.ClassNameMaxLength+1)
		if _, err := f.students.Create(ctx, adminSession, s); !errors.Is(err, apperrors.ErrValidationFailed) {
			t.Fatalf("err = %v, want ErrValidationFailed", err)
		}
		if f.tx.calls() != 0 {
			t.Error("storage was called for invalid input")
		}
	})
}

func TestStudentReadsRequireLogin(t *testing.T) {
	f := newFixture()
	f.addStudent("S001", "Li Lei", "Class 1")
	ctx := context.Background()

	if _, err := f.students.List(ctx, auth.Anonymous, ""); !errors.Is(err, apperrors.ErrUnauthenticated) {
		t.Errorf("List err = %v", err)
	}
	if _, err := f.students.GetProfile(ctx, auth.Anonymous, "S001"); !errors.Is(err, apperrors.ErrUnauthenticated) {
		t.Errorf("GetProfile err = %v", err)
	}
	if list, err := f.students.List(ctx, teacherSession, ""); err != nil || len(list) != 1 {
		t.Errorf("teacher List = %v, %v", list, err)
	}
}

func TestStudentGetProfile(t *testing.T) {
	f := newFixture()
	f.addStudent("S001", "Li Lei", "Class 1")
	f.addStudent("S002", "Han Meimei", "Class 1")
	f.addCourse("C001", "Math", 4)
	f.addCourse("C002", "Physics", 3)
	f.addScore("S001", "C001", 85)
	f.addScore("S001", "C002", 72)
	ctx := context.Background()

	p, err := f.students.GetProfile(ctx, teacherSession, "S001")
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if !p.HasScores || len(p.Scores) != 2 {
		t.Fatalf("profile = %+v", p)
	}
	if p.Scores[0].GradePoint != 3.5 || p.Scores[1].GradePoint != 2.2 {
		t.Errorf("grade points = %v, %v", p.Scores[0].GradePoint, p.Scores[1].GradePoint)
	}
	if p.AverageGPA != 2.85 {
		t.Errorf("average = %v, want 2.85", p.AverageGPA)
	}

	empty, err := f.students.GetProfile(ctx, teacherSession, "S002")
	if err != nil {
		t.Fatalf("GetProfile(S002): %v", err)
	}
	if empty.HasScores || empty.AverageGPA != 0 || len(empty.Scores) != 0 {
		t.Errorf("empty profile = %+v", empty)
	}

	if _, err := f.students.GetProfile(ctx, teacherSession, "S404"); !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Errorf("err = %v, want ErrStudentNotFound", err)
	}
}

func TestStudentUpdate(t *testing.T) {
	f := newFixture()
	f.addStudent("S001", "Li Lei", "Class 1")
	ctx := context.Background()

	class := "Class 2"
	changed, err := f.students.Update(ctx, adminSession, "S001", models.StudentUpdate{ClassName: &class})
	if err != nil || !changed {
		t.Fatalf("Update = %v, %v", changed, err)
	}
	if got := f.db.students["S001"]; got.ClassName != "Class 2" || got.Name != "Li Lei" {
		t.Errorf("stored = %+v", got)
	}

	changed, err = f.students.Update(ctx, adminSession, "S001", models.StudentUpdate{ClassName: &class})
	if err != nil || changed {
		t.Errorf("repeat Update = %v, %v, want no change", changed, err)
	}

	if _, err := f.students.Update(ctx, adminSession, "S404", models.StudentUpdate{ClassName: &class}); !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Errorf("err = %v, want ErrStudentNotFound", err)
	}

	blank := "  "
	if _, err := f.students.Update(ctx, adminSession, "S001", models.StudentUpdate{Name: &blank}); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("err = %v, want ErrValidationFailed", err)
	}
}

func TestStudentDeleteCascadesScores(t *testing.T) {
	f := newFixture()
	f.addStudent("S001", "Li Lei", "Class 1")
	f.addStudent("S002", "Han Meimei", "Class 1")
	f.addCourse("C001", "Math", 4)
	f.addCourse("C002", "Physics", 3)
	f.addScore("S001", "C001", 85)
	f.addScore("S001", "C002", 72)
	f.addScore("S002", "C001", 90)
	ctx := context.Background()

	removed, err := f.students.Delete(ctx, adminSession, "S001", true)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if removed != 2 {
		t.Errorf("removed = %d, want 2", removed)
	}
	if _, ok := f.db.students["S001"]; ok {
		t.Error("student still stored")
	}
	if len(f.db.scores) != 1 {
		t.Errorf("scores left = %v", f.db.scores)
	}
	if f.tx.txs != 1 {
		t.Errorf("ran %d transactions, want 1", f.tx.txs)
	}
}

func TestStudentDeleteNeedsConfirmation(t *testing.T) {
	f := newFixture()
	f.addStudent("S001", "Li Lei", "Class 1")
	ctx := context.Background()

	if _, err := f.students.Delete(ctx, adminSession, "S001", false); !errors.Is(err, apperrors.ErrNotConfirmed) {
		t.Fatalf("err = %v, want ErrNotConfirmed", err)
	}
	if f.tx.calls() != 0 {
		t.Error("storage was called without confirmation")
	}

	if _, err := f.students.Delete(ctx, teacherSession, "S001", false); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Errorf("teacher err = %v, want ErrPermissionDenied", err)
	}

	if _, err := f.students.Delete(ctx, adminSession, "S404", true); !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Errorf("err = %v, want ErrStudentNotFound", err)
	}
}

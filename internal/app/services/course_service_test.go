package services

import (
	"context"
	"errors"
	"testing"

	"github.com/yigit/gradebook/internal/app/models"
	"github.com/yigit/gradebook/internal/pkg/apperrors"
)

func TestCourseCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("teacher forbidden", func(t *testing.T) {
		f := newFixture()
		_, err := f.courses.Create(ctx, teacherSession, models.Course{CourseID: "C001", CourseName: "Math", Credit: 4})
		if !errors.Is(err, apperrors.ErrPermissionDenied) {
			t.Fatalf("err = %v, want ErrPermissionDenied", err)
		}
		if len(f.db.courses) != 0 {
			t.Error("course stored")
		}
	})

	t.Run("credit out of range", func(t *testing.T) {
		f := newFixture()
		for _, credit := range []int{0, 11} {
			_, err := f.courses.Create(ctx, adminSession, models.Course{CourseID: "C001", CourseName: "Math", Credit: credit})
			if !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Errorf("credit %d: err = %v", credit, err)
			}
		}
	})

	t.Run("duplicate", func(t *testing.T) {
		f := newFixture()
		f.addCourse("C001", "Math", 4)
		_, err := f.courses.Create(ctx, adminSession, models.Course{CourseID: "C001", CourseName: "Other", Credit: 2})
		if !errors.Is(err, apperrors.ErrCourseIDAlreadyExists) {
			t.Fatalf("err = %v, want ErrCourseIDAlreadyExists", err)
		}
	})
}

func TestCourseUpdateNoChange(t *testing.T) {
	f := newFixture()
	f.addCourse("C001", "Math", 4)
	ctx := context.Background()

	credit := 4
	changed, err := f.courses.Update(ctx, adminSession, "C001", models.CourseUpdate{Credit: &credit})
	if err != nil || changed {
		t.Fatalf("Update = %v, %v, want no change", changed, err)
	}

	credit = 5
	changed, err = f.courses.Update(ctx, adminSession, "C001", models.CourseUpdate{Credit: &credit})
	if err != nil || !changed || f.db.courses["C001"].Credit != 5 {
		t.Fatalf("Update = %v, %v, stored %+v", changed, err, f.db.courses["C001"])
	}
}

func TestCourseDeleteBlockedWhileScoresExist(t *testing.T) {
	f := newFixture()
	f.addStudent("S001", "Li Lei", "Class 1")
	f.addCourse("C001", "Math", 4)
	f.addScore("S001", "C001", 80)
	ctx := context.Background()

	err := f.courses.Delete(ctx, adminSession, "C001", true)
	if !errors.Is(err, apperrors.ErrCourseHasScores) {
		t.Fatalf("err = %v, want ErrCourseHasScores", err)
	}
	if !errors.Is(err, apperrors.ErrConflict) {
		t.Error("blocked delete is not a conflict")
	}
	if _, ok := f.db.courses["C001"]; !ok {
		t.Error("course was removed")
	}

	delete(f.db.scores, scoreKey{"S001", "C001"})
	if err := f.courses.Delete(ctx, adminSession, "C001", true); err != nil {
		t.Fatalf("Delete after scores removed: %v", err)
	}
	if _, ok := f.db.courses["C001"]; ok {
		t.Error("course still stored")
	}
}

func TestCourseDeleteNeedsConfirmation(t *testing.T) {
	f := newFixture()
	f.addCourse("C001", "Math", 4)

	if err := f.courses.Delete(context.Background(), adminSession, "C001", false); !errors.Is(err, apperrors.ErrNotConfirmed) {
		t.Fatalf("err = %v, want ErrNotConfirmed", err)
	}
	if f.tx.calls() != 0 {
		t.Error("storage was called without confirmation")
	}
}

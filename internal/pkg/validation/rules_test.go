package validation

import (
	"strings"
	"testing"
)

func TestValidIdentifier(t *testing.T) {
	valid := []string{"S001", "2024-001", "CS_101", "a"}
	invalid := []string{"", "   ", "-lead", "has space", "x/y"}

	for _, id := range valid {
		if !ValidIdentifier(id) {
			t.Errorf("ValidIdentifier(%q) = false, want true", id)
		}
	}
	for _, id := range invalid {
		if ValidIdentifier(id) {
			t.Errorf("ValidIdentifier(%q) = true, want false", id)
		}
	}
}

func TestValidCredit(t *testing.T) {
	for credit, want := range map[int]bool{0: false, 1: true, 5: true, 10: true, 11: false, -1: false} {
		if got := ValidCredit(credit); got != want {
			t.Errorf("ValidCredit(%d) = %v, want %v", credit, got, want)
		}
	}
}

func TestValidName(t *testing.T) {
	if ValidName("  ") {
		t.Error("blank name accepted")
	}
	if !ValidName("Zhang San") {
		t.Error("valid name rejected")
	}
}

func TestValidClassName(t *testing.T) {
	if !ValidClassName("Class 1") {
		t.Error("valid class rejected")
	}
	if !ValidClassName(strings.Repeat("班", ClassNameMaxLength)) {
		t.Error("class at the limit rejected")
	}
	if ValidClassName(strings.Repeat("a", ClassNameMaxLength+1)) {
		t.Error("overlong class accepted")
	}
}

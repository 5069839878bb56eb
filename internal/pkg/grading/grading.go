// Package grading holds the pure scoring rules: grade points, score
// validation and band classification.
package grading

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/yigit/gradebook/internal/pkg/apperrors"
	"github.com/yigit/gradebook/internal/pkg/helpers"
)

const (
	MinScore = 0.0
	MaxScore = 100.0
	// ScoreDecimals is the precision scores are stored with
	ScoreDecimals = 2

	// PassingScore is the lowest score that earns grade points
	PassingScore = 60.0
	// MaxGradePoint is reached at 90 and above
	MaxGradePoint = 4.0
)

// GradePoint converts a raw score to grade points on a 4.0 scale.
// Below 60 earns nothing; from 60 it climbs 0.1 per point, capped at 4.0.
func GradePoint(score float64) float64 {
	if score < PassingScore {
		return 0
	}
	gp := helpers.Round(1+(score-PassingScore)/10, 1)
	return math.Min(MaxGradePoint, gp)
}

// ValidateScore checks that v is a finite number in [0, 100].
func ValidateScore(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < MinScore || v > MaxScore {
		return apperrors.ErrInvalidScore
	}
	return nil
}

// ParseScore parses user input into a validated score, rounded to
// ScoreDecimals places.
func ParseScore(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, apperrors.ErrInvalidScore
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", apperrors.ErrInvalidScore, raw)
	}
	if err := ValidateScore(v); err != nil {
		return 0, err
	}
	return helpers.Round(v, ScoreDecimals), nil
}

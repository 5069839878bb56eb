package grading

import "github.com/yigit/gradebook/internal/pkg/helpers"

// Band is a named score range used by the statistics reports
type Band string

const (
	BandFail      Band = "fail"
	BandPass      Band = "pass"
	BandGood      Band = "good"
	BandExcellent Band = "excellent"
)

// Bands lists every band in reporting order
var Bands = []Band{BandFail, BandPass, BandGood, BandExcellent}

// Label returns the display label of the band with its range
func (b Band) Label() string {
	switch b {
	case BandFail:
		return "Fail (<60)"
	case BandPass:
		return "Pass (60-79)"
	case BandGood:
		return "Good (80-89)"
	case BandExcellent:
		return "Excellent (90-100)"
	}
	return string(b)
}

// BandFor classifies a score. Bands are half-open on the upper side:
// fail <60, pass [60,80), good [80,90), excellent [90,100].
func BandFor(score float64) Band {
	switch {
	case score < 60:
		return BandFail
	case score < 80:
		return BandPass
	case score < 90:
		return BandGood
	default:
		return BandExcellent
	}
}

// BandCount is the size of one band within a distribution
type BandCount struct {
	Band       Band    `json:"band"`
	Label      string  `json:"label"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// Distribution summarizes a set of scores
type Distribution struct {
	Total   int         `json:"total"`
	Average float64     `json:"average"`
	Min     float64     `json:"min"`
	Max     float64     `json:"max"`
	Bands   []BandCount `json:"bands"`
}

// Distribute computes band counts, percentages (1 decimal) and the mean (2 decimals).
// Every band is present, in reporting order, even when empty.
func Distribute(scores []float64) Distribution {
	counts := make(map[Band]int, len(Bands))
	d := Distribution{Total: len(scores)}

	for i, s := range scores {
		counts[BandFor(s)]++
		if i == 0 || s < d.Min {
			d.Min = s
		}
		if i == 0 || s > d.Max {
			d.Max = s
		}
	}
	d.Average = helpers.Round(helpers.Mean(scores), 2)

	d.Bands = make([]BandCount, 0, len(Bands))
	for _, b := range Bands {
		d.Bands = append(d.Bands, BandCount{
			Band:       b,
			Label:      b.Label(),
			Count:      counts[b],
			Percentage: helpers.Round(helpers.Percent(counts[b], d.Total), 1),
		})
	}
	return d
}

package export

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/yigit/gradebook/internal/pkg/grading"
)

const (
	chartWidth  = 600
	chartHeight = 450
)

// ErrEmptyDistribution is returned when there is nothing to draw
var ErrEmptyDistribution = errors.New("distribution has no scores")

var bandColors = map[grading.Band]drawing.Color{
	grading.BandFail:      drawing.ColorFromHex("d9534f"),
	grading.BandPass:      drawing.ColorFromHex("f0ad4e"),
	grading.BandGood:      drawing.ColorFromHex("5bc0de"),
	grading.BandExcellent: drawing.ColorFromHex("5cb85c"),
}

// ToChartImage renders the distribution as a pie of proportions next to a bar
// chart of counts, in one PNG. Bands keep reporting order; empty bands are
// left out of the pie only.
func ToChartImage(dist grading.Distribution, title, meta string) ([]byte, error) {
	if dist.Total == 0 {
		return nil, ErrEmptyDistribution
	}

	pieValues := make([]chart.Value, 0, len(dist.Bands))
	bars := make([]chart.Value, 0, len(dist.Bands))
	maxCount := 0
	for _, b := range dist.Bands {
		style := chart.Style{FillColor: bandColors[b.Band], StrokeColor: bandColors[b.Band]}
		bars = append(bars, chart.Value{Label: string(b.Band), Value: float64(b.Count), Style: style})
		if b.Count > maxCount {
			maxCount = b.Count
		}
		if b.Count > 0 {
			pieValues = append(pieValues, chart.Value{
				Label: fmt.Sprintf("%s %.1f%%", b.Band, b.Percentage),
				Value: float64(b.Count),
				Style: style,
			})
		}
	}

	pie := chart.PieChart{
		Title:  title,
		Width:  chartWidth,
		Height: chartHeight,
		Values: pieValues,
	}
	var pieBuf bytes.Buffer
	if err := pie.Render(chart.PNG, &pieBuf); err != nil {
		return nil, fmt.Errorf("render pie chart: %w", err)
	}

	bar := chart.BarChart{
		Title:    meta,
		Width:    chartWidth,
		Height:   chartHeight,
		BarWidth: 80,
		Background: chart.Style{
			Padding: chart.Box{Top: 50},
		},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: float64(maxCount + 1)},
		},
		Bars: bars,
	}
	var barBuf bytes.Buffer
	if err := bar.Render(chart.PNG, &barBuf); err != nil {
		return nil, fmt.Errorf("render bar chart: %w", err)
	}

	return sideBySide(pieBuf.Bytes(), barBuf.Bytes())
}

// sideBySide decodes two PNGs and places them left to right on a white canvas.
func sideBySide(left, right []byte) ([]byte, error) {
	l, err := png.Decode(bytes.NewReader(left))
	if err != nil {
		return nil, fmt.Errorf("decode left image: %w", err)
	}
	r, err := png.Decode(bytes.NewReader(right))
	if err != nil {
		return nil, fmt.Errorf("decode right image: %w", err)
	}

	lb, rb := l.Bounds(), r.Bounds()
	height := lb.Dy()
	if rb.Dy() > height {
		height = rb.Dy()
	}
	canvas := image.NewRGBA(image.Rect(0, 0, lb.Dx()+rb.Dx(), height))
	draw.Draw(canvas, canvas.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)
	draw.Draw(canvas, image.Rect(0, 0, lb.Dx(), lb.Dy()), l, lb.Min, draw.Over)
	draw.Draw(canvas, image.Rect(lb.Dx(), 0, lb.Dx()+rb.Dx(), rb.Dy()), r, rb.Min, draw.Over)

	var out bytes.Buffer
	if err := png.Encode(&out, canvas); err != nil {
		return nil, fmt.Errorf("encode chart: %w", err)
	}
	return out.Bytes(), nil
}

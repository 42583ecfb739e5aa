package report

import (
	"errors"
	"math"
)

var (
	// ErrSeriesTooShort is returned when a chart series has fewer than two points.
	ErrSeriesTooShort = errors.New("chart series needs at least two points")

	// ErrLabelMismatch is returned when labels and data differ in length.
	ErrLabelMismatch = errors.New("chart labels must match data length")
)

// Chart layout constants shared by viewer and PDF output. Values are SVG
// viewBox units.
const (
	chartWidth   = 360.0
	chartHeight  = 120.0
	chartPadding = 28.0

	// Dot reveal: first dot fades in at dotBaseDelay, each next one
	// dotStagger later.
	dotBaseDelay = 0.8
	dotStagger   = 0.15
)

// ChartPoint is one plotted sample.
type ChartPoint struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Value float64 `json:"value"`
}

// Chart is the fully computed geometry for one trend plot: everything the
// renderer needs except styling.
type Chart struct {
	Width    float64      `json:"width"`
	Height   float64      `json:"height"`
	Min      float64      `json:"min"`
	Max      float64      `json:"max"`
	Points   []ChartPoint `json:"points"`
	Labels   []string     `json:"labels"`
	Unit     string       `json:"unit,omitempty"`
	Improved bool         `json:"improved"`

	// StrokeLength is the polyline length, used for the dash-reveal
	// animation.
	StrokeLength float64 `json:"strokeLength"`

	// DotDelays holds per-point fade-in offsets in seconds.
	DotDelays []float64 `json:"dotDelays"`
}

// BuildChart scales an ordered series into plot geometry. The vertical scale
// pads 15% of the data range on each side; a flat series falls back to a
// range of 1 instead of dividing by zero, which draws the line along the
// bottom padding edge.
// Improvement compares only the first and last points under decreaseIsGood;
// intermediate movement is deliberately ignored, matching what the report
// viewer has always shown.
func BuildChart(data []float64, labels []string, unit string, decreaseIsGood bool) (*Chart, error) {
	if len(data) < 2 {
		return nil, ErrSeriesTooShort
	}
	if len(labels) != len(data) {
		return nil, ErrLabelMismatch
	}

	dataMin, dataMax := data[0], data[0]
	for _, v := range data[1:] {
		dataMin = math.Min(dataMin, v)
		dataMax = math.Max(dataMax, v)
	}

	min := dataMin - (dataMax-dataMin)*0.15
	max := dataMax + (dataMax-dataMin)*0.15
	rng := max - min
	if rng == 0 {
		rng = 1
	}

	step := (chartWidth - chartPadding*2) / float64(len(data)-1)
	points := make([]ChartPoint, len(data))
	delays := make([]float64, len(data))
	for i, v := range data {
		points[i] = ChartPoint{
			X:     chartPadding + float64(i)*step,
			Y:     chartHeight - chartPadding - ((v-min)/rng)*(chartHeight-chartPadding*2),
			Value: v,
		}
		delays[i] = dotBaseDelay + float64(i)*dotStagger
	}

	var stroke float64
	for i := 1; i < len(points); i++ {
		dx := points[i].X - points[i-1].X
		dy := points[i].Y - points[i-1].Y
		stroke += math.Hypot(dx, dy)
	}

	first, last := data[0], data[len(data)-1]
	improved := last > first
	if decreaseIsGood {
		improved = last < first
	}

	return &Chart{
		Width:        chartWidth,
		Height:       chartHeight,
		Min:          min,
		Max:          max,
		Points:       points,
		Labels:       labels,
		Unit:         unit,
		Improved:     improved,
		StrokeLength: stroke,
		DotDelays:    delays,
	}, nil
}

// RevealState tracks the one-shot viewport-visibility animation of a chart.
type RevealState int

const (
	RevealPending RevealState = iota
	RevealTriggered
	RevealSettled
)

func (s RevealState) String() string {
	switch s {
	case RevealPending:
		return "pending"
	case RevealTriggered:
		return "triggered"
	default:
		return "settled"
	}
}

// Reveal is the per-chart animation state machine: pending -> triggered ->
// settled. The trigger fires once; later visibility changes never replay it.
type Reveal struct {
	state RevealState
}

// State returns the current reveal phase.
func (r *Reveal) State() RevealState {
	return r.state
}

// OnVisible handles a visibility event. It returns true only on the first
// call while pending; the observer is expected to disconnect after that.
func (r *Reveal) OnVisible() bool {
	if r.state != RevealPending {
		return false
	}
	r.state = RevealTriggered
	return true
}

// Settle marks the animation finished. Settling a pending reveal is a no-op;
// the animation cannot finish before it starts.
func (r *Reveal) Settle() {
	if r.state == RevealTriggered {
		r.state = RevealSettled
	}
}

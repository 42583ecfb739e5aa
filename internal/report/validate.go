package report

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingID is returned when a report has no id.
	ErrMissingID = errors.New("report id is required")

	// ErrNoScans is returned when the trend series has fewer than two points.
	ErrNoScans = errors.New("report needs at least two scans for trends")

	// ErrSeriesLength is returned when a trend series is not index-aligned
	// with the scan dates.
	ErrSeriesLength = errors.New("trend series length does not match scan dates")

	// ErrUnknownRegion is returned for a region name outside the fixed set.
	ErrUnknownRegion = errors.New("unknown body region")
)

// Validate checks the structural invariants the viewer relies on: every trend
// series is index-aligned with Trends.Dates, and region/symmetry names come
// from the fixed enums. Reports are validated once at load and trusted after.
func (r *Report) Validate() error {
	if r.ID == "" {
		return ErrMissingID
	}

	n := len(r.Trends.Dates)
	if n < 2 {
		return ErrNoScans
	}
	if err := checkSeries("trends.bodyFat", r.Trends.BodyFat, n); err != nil {
		return err
	}
	if err := checkSeries("trends.leanMass", r.Trends.LeanMass, n); err != nil {
		return err
	}
	if err := checkSeries("trends.fatMass", r.Trends.FatMass, n); err != nil {
		return err
	}

	for _, reg := range r.Regions {
		if !IsCompositionRegion(reg.Name) {
			return fmt.Errorf("region %q: %w", reg.Name, ErrUnknownRegion)
		}
		if err := checkSeries(reg.Name+".fatTrend", reg.FatTrend, n); err != nil {
			return err
		}
		if err := checkSeries(reg.Name+".leanTrend", reg.LeanTrend, n); err != nil {
			return err
		}
	}

	for _, sym := range r.Symmetry {
		if !IsSymmetryRegion(sym.Name) {
			return fmt.Errorf("symmetry %q: %w", sym.Name, ErrUnknownRegion)
		}
	}

	if err := checkSeries("visceralFat.trend", r.VisceralFat.Trend, n); err != nil {
		return err
	}
	if err := checkSeries("boneHealth.tScoreTrend", r.BoneHealth.TScoreTrend, n); err != nil {
		return err
	}
	if err := checkSeries("boneHealth.bmdTrend", r.BoneHealth.BMDTrend, n); err != nil {
		return err
	}
	if err := checkSeries("metabolism.trend", r.Metabolism.Trend, n); err != nil {
		return err
	}

	return nil
}

func checkSeries(name string, series []float64, want int) error {
	if len(series) != want {
		return fmt.Errorf("%s has %d points, dates has %d: %w", name, len(series), want, ErrSeriesLength)
	}
	return nil
}

package report

import (
	"errors"
	"testing"
)

func validReport() *Report {
	return &Report{
		ID:       "BI-20260210-AM",
		Patient:  Patient{Name: "Arjun Mehta", Age: 28, Sex: "Male", Height: 175, Weight: 73.4},
		ScanDate: "10 February 2026",
		Trends: Trends{
			Dates:    []string{"Jan '25", "Feb '26"},
			BodyFat:  []float64{10.0, 9.0},
			LeanMass: []float64{63.1, 63.9},
			FatMass:  []float64{7.2, 6.6},
		},
		Regions: []Region{
			{
				Name:      "Trunk",
				FatTrend:  []float64{11.0, 10.1},
				LeanTrend: []float64{25.9, 26.4},
			},
		},
		Symmetry: []SymmetryPair{
			{
				Name:  "Arms",
				Left:  SymmetrySide{Total: 4.7},
				Right: SymmetrySide{Total: 4.8},
			},
		},
		VisceralFat: VisceralFat{Trend: []float64{195, 185}},
		BoneHealth: BoneHealth{
			TScoreTrend: []float64{1.0, 1.2},
			BMDTrend:    []float64{1.21, 1.25},
		},
		Metabolism: Metabolism{Trend: []float64{1720, 1742}},
	}
}

func TestValidateOK(t *testing.T) {
	if err := validReport().Validate(); err != nil {
		t.Fatalf("valid report rejected: %v", err)
	}
}

func TestValidateMissingID(t *testing.T) {
	r := validReport()
	r.ID = ""
	if err := r.Validate(); !errors.Is(err, ErrMissingID) {
		t.Errorf("error = %v, want ErrMissingID", err)
	}
}

func TestValidateSingleScan(t *testing.T) {
	r := validReport()
	r.Trends = Trends{Dates: []string{"Feb '26"}, BodyFat: []float64{9}, LeanMass: []float64{63.9}, FatMass: []float64{6.6}}
	if err := r.Validate(); !errors.Is(err, ErrNoScans) {
		t.Errorf("error = %v, want ErrNoScans", err)
	}
}

func TestValidateMisalignedSeries(t *testing.T) {
	r := validReport()
	r.Trends.FatMass = []float64{6.6}
	if err := r.Validate(); !errors.Is(err, ErrSeriesLength) {
		t.Errorf("error = %v, want ErrSeriesLength", err)
	}

	r = validReport()
	r.Regions[0].LeanTrend = []float64{26.4, 26.5, 26.6}
	if err := r.Validate(); !errors.Is(err, ErrSeriesLength) {
		t.Errorf("region series error = %v, want ErrSeriesLength", err)
	}

	r = validReport()
	r.VisceralFat.Trend = nil
	if err := r.Validate(); !errors.Is(err, ErrSeriesLength) {
		t.Errorf("visceral series error = %v, want ErrSeriesLength", err)
	}
}

func TestValidateUnknownRegion(t *testing.T) {
	r := validReport()
	r.Regions[0].Name = "Torso"
	if err := r.Validate(); !errors.Is(err, ErrUnknownRegion) {
		t.Errorf("error = %v, want ErrUnknownRegion", err)
	}

	r = validReport()
	r.Symmetry[0].Name = "Android (Belly)"
	if err := r.Validate(); !errors.Is(err, ErrUnknownRegion) {
		t.Errorf("symmetry error = %v, want ErrUnknownRegion", err)
	}
}

// Package report models a finished DEXA scan report: a precomputed, read-only
// snapshot rendered into tabs, plus the geometry and selection logic the
// viewer needs (trend charts, body-region panels, symmetry balance).
package report

// Status is a traffic-light rating attached to a metric.
type Status string

const (
	StatusGreen   Status = "green"
	StatusYellow  Status = "yellow"
	StatusRed     Status = "red"
	StatusNeutral Status = "neutral"
)

// Report is one scan report. Nothing in it is mutated after load; the viewer
// only selects which parts to show.
type Report struct {
	ID         string  `json:"id"`
	Patient    Patient `json:"patient"`
	ScanDate   string  `json:"scanDate"`
	ScanNumber int     `json:"scanNumber"`

	Summary     Summary     `json:"summary"`
	Composition Composition `json:"composition"`
	Trends      Trends      `json:"trends"`

	Regions  []Region       `json:"regions"`
	Symmetry []SymmetryPair `json:"symmetry"`

	SubcutaneousFat SubcutaneousFat `json:"subcutaneousFat"`
	VisceralFat     VisceralFat     `json:"visceralFat"`
	BoneHealth      BoneHealth      `json:"boneHealth"`
	AGRatio         AGRatio         `json:"agRatio"`
	Sarcopenia      Sarcopenia      `json:"sarcopenia"`
	Metabolism      Metabolism      `json:"metabolism"`
	Nutrition       Nutrition       `json:"nutrition"`
	ActionPlan      []ActionItem    `json:"actionPlan"`
}

// Patient identifies who was scanned.
type Patient struct {
	Name      string  `json:"name"`
	FirstName string  `json:"firstName"`
	Age       int     `json:"age"`
	Sex       string  `json:"sex"`
	Height    float64 `json:"height"` // cm
	Weight    float64 `json:"weight"` // kg
}

// Summary is the headline composition block.
type Summary struct {
	BodyFatPercent float64 `json:"bodyFatPercent"`
	BodyFatRating  string  `json:"bodyFatRating"`
	BodyFatStatus  Status  `json:"bodyFatStatus"`
	TotalMass      float64 `json:"totalMass"`
	LeanMass       float64 `json:"leanMass"`
	LeanPercent    float64 `json:"leanPercent"`
	FatMass        float64 `json:"fatMass"`
	FatPercent     float64 `json:"fatPercent"`
	BoneMass       float64 `json:"boneMass"`
	BonePercent    float64 `json:"bonePercent"`
	OverallNote    string  `json:"overallNote"`
}

// TissueBreakdown describes one tissue class (lean, fat or bone).
type TissueBreakdown struct {
	Mass        float64 `json:"mass"`
	Desc        string  `json:"desc"`
	Verdict     string  `json:"verdict"`
	Status      Status  `json:"status"`
	DotPosition float64 `json:"dotPosition"` // 0-100 along the rating scale
}

// Composition breaks total mass into tissue classes.
type Composition struct {
	Lean TissueBreakdown `json:"lean"`
	Fat  TissueBreakdown `json:"fat"`
	Bone TissueBreakdown `json:"bone"`
}

// Trends holds the scan-over-scan series. All series are index-aligned with
// Dates, ascending chronologically.
type Trends struct {
	Dates    []string  `json:"dates"`
	BodyFat  []float64 `json:"bodyFat"`
	LeanMass []float64 `json:"leanMass"`
	FatMass  []float64 `json:"fatMass"`
}

// Region is one body region's composition detail.
type Region struct {
	Name       string    `json:"name"`
	FatPercent float64   `json:"fatPercent"`
	Lean       float64   `json:"lean"`
	Fat        float64   `json:"fat"`
	Total      float64   `json:"total"`
	PrevFat    float64   `json:"prevFat"`
	PrevDate   string    `json:"prevDate"`
	FatTrend   []float64 `json:"fatTrend"`
	LeanTrend  []float64 `json:"leanTrend"`
}

// SymmetrySide is one side's mass breakdown in a left/right pair.
type SymmetrySide struct {
	FatPercent float64 `json:"fatPercent"`
	Total      float64 `json:"total"`
	Lean       float64 `json:"lean"`
	Fat        float64 `json:"fat"`
	Bone       float64 `json:"bone"`
}

// SymmetryPair compares left and right sides of a region.
type SymmetryPair struct {
	Name           string       `json:"name"`
	Left           SymmetrySide `json:"left"`
	Right          SymmetrySide `json:"right"`
	Verdict        string       `json:"verdict"`
	Status         Status       `json:"status"`
	BalancePercent float64      `json:"balancePercent"`
}

// SubcutaneousFat is under-skin fat storage.
type SubcutaneousFat struct {
	Mass    float64 `json:"mass"`
	Percent float64 `json:"percent"`
	Rating  string  `json:"rating"`
	Status  Status  `json:"status"`
	Note    string  `json:"note"`
}

// VisceralFat is organ-surrounding fat; Trend tracks grams per scan.
type VisceralFat struct {
	Mass   float64   `json:"mass"`   // grams
	Volume float64   `json:"volume"` // cm^3
	Area   float64   `json:"area"`   // cm^2
	Rating string    `json:"rating"`
	Status Status    `json:"status"`
	Trend  []float64 `json:"trend"`
	Note   string    `json:"note"`
}

// BoneRegion is bone mineral density for one skeletal region.
type BoneRegion struct {
	Name string  `json:"name"`
	BMD  float64 `json:"bmd"` // g/cm^2
}

// BoneHealth is the bone density block.
type BoneHealth struct {
	TScore       float64      `json:"tScore"`
	TScoreRating string       `json:"tScoreRating"`
	ZScore       float64      `json:"zScore"`
	ZScoreRating string       `json:"zScoreRating"`
	TotalBMD     float64      `json:"totalBMD"`
	Regions      []BoneRegion `json:"regions"`
	TScoreTrend  []float64    `json:"tScoreTrend"`
	BMDTrend     []float64    `json:"bmdTrend"`
	Note         string       `json:"note"`
}

// AGRatio is the android-to-gynoid fat distribution indicator.
type AGRatio struct {
	Value   float64 `json:"value"`
	Status  Status  `json:"status"`
	Verdict string  `json:"verdict"`
	Note    string  `json:"note"`
}

// Sarcopenia is the muscle-mass-adequacy block (ALMI based).
type Sarcopenia struct {
	ALMI    float64 `json:"almi"` // kg/m^2
	Status  Status  `json:"status"`
	Verdict string  `json:"verdict"`
	Formula string  `json:"formula"`
	Note    string  `json:"note"`
}

// MetabolismEntry is one line of the TDEE breakdown.
type MetabolismEntry struct {
	Label string `json:"label"`
	Value int    `json:"value"` // kcal
}

// Activity is calories burned per hour of one activity at this body weight.
type Activity struct {
	Name string `json:"name"`
	Cal  int    `json:"cal"`
}

// Metabolism holds RMR/TDEE figures.
type Metabolism struct {
	RMR        int               `json:"rmr"`
	AboveAvg   float64           `json:"aboveAvg"` // percent vs population
	TDEE       int               `json:"tdee"`
	Breakdown  []MetabolismEntry `json:"breakdown"`
	Trend      []float64         `json:"trend"`
	Activities []Activity        `json:"activities"`
}

// NutritionPlan is one goal-oriented calorie/macro target.
type NutritionPlan struct {
	Goal     string `json:"goal"`
	Calories int    `json:"calories"`
	Note     string `json:"note"`
	Protein  int    `json:"protein"` // grams
	Carbs    int    `json:"carbs"`
	Fat      int    `json:"fat"`
}

// Nutrition holds the nutrition tab content.
type Nutrition struct {
	TDEE           int             `json:"tdee"`
	ProteinPerKg   float64         `json:"proteinPerKg"`
	Plans          []NutritionPlan `json:"plans"`
	Recommendation string          `json:"recommendation"`
}

// ActionItem is one game-plan recommendation.
type ActionItem struct {
	Title string `json:"title"`
	Desc  string `json:"desc"`
}

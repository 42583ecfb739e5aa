package report

// Tab identifies one of the eight report views.
type Tab string

const (
	TabComposition Tab = "composition"
	TabRegions     Tab = "regions"
	TabSymmetry    Tab = "symmetry"
	TabVisceral    Tab = "visceral"
	TabBone        Tab = "bone"
	TabNutrition   Tab = "nutrition"
	TabRisks       Tab = "risks"
	TabGamePlan    Tab = "gameplan"
)

var tabLabels = map[Tab]string{
	TabComposition: "Composition",
	TabRegions:     "Regions",
	TabSymmetry:    "Symmetry",
	TabVisceral:    "Visceral Fat",
	TabBone:        "Bone Health",
	TabNutrition:   "Nutrition",
	TabRisks:       "Other Risks",
	TabGamePlan:    "Game Plan",
}

// Tabs returns every tab in display order.
func Tabs() []Tab {
	return []Tab{
		TabComposition, TabRegions, TabSymmetry, TabVisceral,
		TabBone, TabNutrition, TabRisks, TabGamePlan,
	}
}

// ParseTab validates a tab id.
func ParseTab(id string) (Tab, bool) {
	t := Tab(id)
	_, ok := tabLabels[t]
	return t, ok
}

// Label returns the display label for a tab.
func (t Tab) Label() string {
	return tabLabels[t]
}

// TabController holds the viewer's current tab. Switching tabs fully replaces
// the previous view; no state carries across tabs beyond the shared report.
// It is a pure selector with no terminal state.
type TabController struct {
	current Tab
}

// NewTabController starts on the composition tab.
func NewTabController() *TabController {
	return &TabController{current: TabComposition}
}

// Current returns the active tab.
func (c *TabController) Current() Tab {
	return c.current
}

// Select switches to the given tab. Unknown ids leave the controller
// unchanged and report false.
func (c *TabController) Select(id string) bool {
	t, ok := ParseTab(id)
	if !ok {
		return false
	}
	c.current = t
	return true
}

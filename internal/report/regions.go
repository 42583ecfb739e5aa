package report

// Body regions shown in the composition and symmetry views. Fixed sets; a
// report naming anything else fails validation.
var (
	compositionRegions = []string{"Trunk", "Arms", "Legs", "Android (Belly)", "Gynoid (Hip)"}
	symmetryRegions    = []string{"Arms", "Legs", "Trunk"}
)

// CompositionRegions returns the selectable regions of the regions tab.
func CompositionRegions() []string {
	return append([]string(nil), compositionRegions...)
}

// SymmetryRegions returns the selectable regions of the symmetry tab.
func SymmetryRegions() []string {
	return append([]string(nil), symmetryRegions...)
}

// IsCompositionRegion reports whether name is a valid composition region.
func IsCompositionRegion(name string) bool {
	return contains(compositionRegions, name)
}

// IsSymmetryRegion reports whether name is a valid symmetry region.
func IsSymmetryRegion(name string) bool {
	return contains(symmetryRegions, name)
}

func contains(set []string, name string) bool {
	for _, s := range set {
		if s == name {
			return true
		}
	}
	return false
}

// RegionSelector tracks which region's detail panel is open. At most one
// panel shows at a time; selecting the open region closes it.
type RegionSelector struct {
	valid  []string
	active string
}

// NewRegionSelector creates a selector over the given region set. Nothing is
// selected initially.
func NewRegionSelector(valid []string) *RegionSelector {
	return &RegionSelector{valid: valid}
}

// Active returns the open region, or "" when no panel is open.
func (s *RegionSelector) Active() string {
	return s.active
}

// Select toggles a region: selecting the active region closes its panel,
// selecting another switches to it. Unknown regions are ignored and report
// false.
func (s *RegionSelector) Select(name string) bool {
	if !contains(s.valid, name) {
		return false
	}
	if s.active == name {
		s.active = ""
	} else {
		s.active = name
	}
	return true
}

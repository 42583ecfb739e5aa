package slots

// AvailabilityOracle answers whether a slot can still be booked. The default
// implementation is a deterministic stand-in; swap it for a real capacity
// query without touching the slot math.
type AvailabilityOracle interface {
	Available(minuteOfDay int, landmark string) bool
}

// DeterministicOracle marks slots unavailable from a fixed hash of the slot
// start and the landmark name. It exists so demo schedules look realistic and
// render identically on every load.
type DeterministicOracle struct{}

// Available reports false iff (minuteOfDay*7 + len(landmark)*13) mod 10 is 3 or 7.
func (DeterministicOracle) Available(minuteOfDay int, landmark string) bool {
	v := (minuteOfDay*7 + len(landmark)*13) % 10
	return v != 3 && v != 7
}

// AlwaysAvailable treats every slot as bookable. Used in tests and for
// private events where capacity is managed manually.
type AlwaysAvailable struct{}

func (AlwaysAvailable) Available(int, string) bool { return true }

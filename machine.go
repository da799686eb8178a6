package galleria

// Machine is the uniform capability shared by every animation state
// machine: advance by a normalized elapsed time, and report whether any
// state is still in motion. The orchestrator ticks machines generically
// through this interface; machine-specific entry points stay on the
// concrete types.
type Machine interface {
	Advance(dt float64)
	IsActive() bool
}

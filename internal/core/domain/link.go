package domain

// LinkStatus is the outcome of a hard-link fast path attempt.
type LinkStatus int

const (
	// LinkNotApplicable means link mode is off or the source is not local.
	LinkNotApplicable LinkStatus = iota
	// LinkFailed means a link was attempted and did not succeed.
	LinkFailed
	// Linked means the destination now shares the source's inode.
	Linked
)

// LinkResult carries the link status and, for LinkFailed, the cause.
type LinkResult struct {
	Status LinkStatus
	Err    error
}

// String returns a short label for logging.
func (s LinkStatus) String() string {
	switch s {
	case LinkFailed:
		return "failed"
	case Linked:
		return "linked"
	default:
		return "not-applicable"
	}
}

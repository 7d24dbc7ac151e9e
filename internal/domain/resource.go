package domain

// Resource is a seatable unit (a table) belonging to a service.
// Once attached to a booking it is referenced immutably by ID.
type Resource struct {
	ID        string
	ServiceID string
	Code      string // display label, e.g. "T-12"
	Seats     int
	// Resources sharing a merge group can be combined server-side;
	// combination logic is not the gateway's concern.
	MergeGroup *string
	Active     bool
}

// CanSeat returns true if the table has capacity for the party.
func (r *Resource) CanSeat(partySize int) bool {
	return r.Seats >= partySize
}

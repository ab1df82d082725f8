package delivery

// Status represents the lifecycle state of a delivery. Unlike a stored state
// column, Status is derived from the delivery's timestamps, so it can never
// disagree with the recorded dates.
//
// State transitions:
//
//	Registered ──> PickedUp ──> Delivered
//	     │             │
//	     └─────────────┴──────> Canceled
//
// Delivered and Canceled are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Registered is the initial state after the admin creates the delivery.
	// The package is waiting for the courier to collect it.
	Registered

	// PickedUp indicates the courier has collected the package.
	PickedUp

	// Delivered indicates the package reached the recipient. Terminal.
	Delivered

	// Canceled indicates a problem report terminated the delivery. Terminal.
	Canceled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Registered: "Registered",
		PickedUp:   "PickedUp",
		Delivered:  "Delivered",
		Canceled:   "Canceled",
	}
}

// String returns the human-readable name of the status.
// It implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions are allowed from the status.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Canceled
}

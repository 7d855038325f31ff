package booking

type Status string

const (
	StatusPending  Status = "pending"
	StatusBooked   Status = "booked"
	StatusRejected Status = "rejected"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusBooked, StatusRejected:
		return true
	default:
		return false
	}
}

// Booked and Rejected are terminal; no transition leaves them.
func (s Status) IsTerminal() bool {
	return s == StatusBooked || s == StatusRejected
}

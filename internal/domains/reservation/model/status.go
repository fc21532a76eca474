package model

type Status int

const (
	StatusPending Status = iota + 1
	StatusConfirmed
	StatusSeated
	StatusCompleted
	StatusCancelled
)

var statusLabels = map[Status]string{
	StatusPending:   "pending",
	StatusConfirmed: "confirmed",
	StatusSeated:    "seated",
	StatusCompleted: "completed",
	StatusCancelled: "cancelled",
}

var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusPending, StatusSeated, StatusCancelled},
	StatusSeated:    {StatusCompleted, StatusCancelled},
}

// OccupyingStatuses are the statuses that hold a table for overlap purposes.
var OccupyingStatuses = []Status{StatusConfirmed, StatusSeated}

func (s Status) IsValid() bool {
	_, ok := statusLabels[s]

	return ok
}

func (s Status) String() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}

	return "unknown"
}

func (s Status) IsOccupying() bool {
	return s == StatusConfirmed || s == StatusSeated
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanAssign reports whether a table may be (re)assigned while in s.
func (s Status) CanAssign() bool {
	return s == StatusPending || s == StatusConfirmed
}

// CanTransitionTo reports whether a staff edit may move s to next. Writing the same status is always allowed.
func (s Status) CanTransitionTo(next Status) bool {
	if !next.IsValid() {
		return false
	}

	if s == next {
		return true
	}

	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

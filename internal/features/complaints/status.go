package complaints

// TransitionPolicy is the single place that decides which status moves are
// legal. Swapping the policy at wiring time changes the whole workflow.
type TransitionPolicy map[Status][]Status

// CanTransition reports whether moving from one status to another is allowed
// under this policy. Unknown statuses are never allowed.
func (p TransitionPolicy) CanTransition(from, to Status) bool {
	if !IsKnownStatus(from) || !IsKnownStatus(to) {
		return false
	}

	targets, ok := p[from]
	if !ok {
		return false
	}

	for _, t := range targets {
		if t == to {
			return true
		}
	}
	return false
}

// PermissivePolicy allows any known status to move to any known status,
// matching the workflow the portal has always run with. Administrators can
// reopen Completed complaints.
func PermissivePolicy() TransitionPolicy {
	return TransitionPolicy{
		StatusPending:    {StatusPending, StatusInProgress, StatusRejected, StatusCompleted},
		StatusInProgress: {StatusPending, StatusInProgress, StatusRejected, StatusCompleted},
		StatusRejected:   {StatusPending, StatusInProgress, StatusRejected, StatusCompleted},
		StatusCompleted:  {StatusPending, StatusInProgress, StatusRejected, StatusCompleted},
	}
}

// StrictPolicy is the directed workflow: Pending branches to In Progress or
// Rejected, In Progress closes as Completed, and the terminal states are
// frozen. Not wired in by default.
func StrictPolicy() TransitionPolicy {
	return TransitionPolicy{
		StatusPending:    {StatusInProgress, StatusRejected},
		StatusInProgress: {StatusCompleted},
		StatusRejected:   {},
		StatusCompleted:  {},
	}
}

package booking

import "fixly/models"

// validTransitions is the full lifecycle table. Completed and cancelled
// are terminal: no entry, no way out.
var validTransitions = map[string][]string{
	models.StatusPending:    {models.StatusConfirmed, models.StatusCancelled},
	models.StatusConfirmed:  {models.StatusInProgress, models.StatusCancelled},
	models.StatusInProgress: {models.StatusCompleted, models.StatusCancelled},
	models.StatusCompleted:  {},
	models.StatusCancelled:  {},
}

// transitionAllowed reports whether current -> target is in the table.
func transitionAllowed(current, target string) bool {
	for _, allowed := range validTransitions[current] {
		if allowed == target {
			return true
		}
	}
	return false
}

// cancellable reports whether the cancel shortcut may run from status.
func cancellable(status string) bool {
	return status == models.StatusPending || status == models.StatusConfirmed
}

package vehicles

// CheckTransition validates a status change for one vehicle against the
// fleet snapshot. A nil return means the transition is legal. Same-status
// updates are non-events: no quota check, no error.
//
// Rules:
//   - Maintenance may only be left for Available.
//   - Entering Maintenance must keep the fleet-wide maintenance count
//     within the quota cap, counting the vehicle being admitted.
//   - Available and InUse move freely between each other.
func CheckTransition(fleet []Vehicle, current, next Status, quota QuotaPolicy) *RuleError {
	if next == current {
		return nil
	}
	if !next.Valid() {
		return ErrUnknownStatus
	}
	if current == StatusMaintenance && next != StatusAvailable {
		return ErrMaintenanceExit
	}
	if next == StatusMaintenance {
		total := len(fleet)
		inMaintenance := 0
		for _, v := range fleet {
			if v.Status == StatusMaintenance {
				inMaintenance++
			}
		}
		max := quota.Cap(total)
		// current != Maintenance here, so admission always adds one
		if inMaintenance+1 > max {
			return NewQuotaExceededError(inMaintenance, total, max)
		}
	}
	return nil
}

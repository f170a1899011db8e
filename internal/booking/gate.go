package booking

import "github.com/Prabheesh178/woxsen-league/internal/model"

// CanBook is the system gate: booking is permitted only when no global
// lockdown is active and the facility has not been individually
// disabled by a warden. Settings are live; callers must evaluate this
// against a fresh read at confirmation time, never a copy cached at
// page load.
func CanBook(settings model.SystemSettings, facility string) bool {
	if settings.GlobalLockdown {
		return false
	}
	return !settings.FacilityDisabled(facility)
}

package model

import "time"

// SystemSettings is the single warden-controlled record gating all
// bookings. It lives as one row (id=1) in the system_settings table and
// is cached/fanned out through Redis so the gate always evaluates a
// fresh copy at confirmation time.
//
// Fields:
//  GlobalLockdown     – when true, no student can book anything.
//  DisabledFacilities – facility names individually closed by a warden.
//  Version            – monotonically increasing revision; writes are
//                       compare-and-swap on this value so two wardens
//                       toggling concurrently cannot clobber each other.
//  UpdatedAt          – timestamp of the last write.
type SystemSettings struct {
	GlobalLockdown     bool      `json:"global_lockdown"`
	DisabledFacilities []string  `json:"disabled_facilities"`
	Version            uint64    `json:"version"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// FacilityDisabled reports whether name is in the disabled set.
func (s SystemSettings) FacilityDisabled(name string) bool {
	for _, f := range s.DisabledFacilities {
		if f == name {
			return true
		}
	}
	return false
}

// DefaultSettings is the state assumed before any warden has touched
// the record: nothing locked, nothing disabled.
func DefaultSettings() SystemSettings {
	return SystemSettings{GlobalLockdown: false, DisabledFacilities: []string{}}
}

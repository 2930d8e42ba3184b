package domain

import "time"

// ResolveReturnTime decides when a debt is due. An explicit date always wins;
// otherwise useDefault schedules it reminderDays after now; otherwise there is
// no due date.
func ResolveReturnTime(explicit *time.Time, useDefault bool, reminderDays int, now time.Time) *time.Time {
	if explicit != nil {
		t := *explicit
		return &t
	}
	if useDefault {
		t := now.AddDate(0, 0, reminderDays)
		return &t
	}
	return nil
}

// ResolveUpdatedReturnTime applies the same rule on update, keeping the
// current value when the request neither supplies a date nor asks for the
// default interval.
func ResolveUpdatedReturnTime(current, explicit *time.Time, useDefault *bool, reminderDays int, now time.Time) *time.Time {
	if explicit == nil && (useDefault == nil || !*useDefault) {
		return current
	}
	return ResolveReturnTime(explicit, useDefault != nil && *useDefault, reminderDays, now)
}

package domain

import "time"

// PlannerPolicy selects between the behaviour variants of the planner.
type PlannerPolicy struct {
	DeleteMode          DeleteMode
	ListScope           ListScope
	SyncMode            SyncMode
	SeedOnCreate        bool
	DefaultTimerMinutes int
	// Location decides which calendar day "today" is. Nil means UTC.
	Location *time.Location
}

// Today returns the current day in the policy's location.
func (p PlannerPolicy) Today(now time.Time) Date {
	return Today(now, p.Location)
}

// DefaultPlannerPolicy is the cascading, owner-scoped, find-or-create variant.
func DefaultPlannerPolicy() PlannerPolicy {
	return PlannerPolicy{
		DeleteMode:          DeleteModeCascade,
		ListScope:           ListScopeOwner,
		SyncMode:            SyncModeCreate,
		SeedOnCreate:        true,
		DefaultTimerMinutes: 25,
		Location:            time.UTC,
	}
}

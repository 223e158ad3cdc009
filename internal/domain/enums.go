package domain

// EntityType identifies the kind of document an audit record refers to.
type EntityType string

const (
	EntityTypeSubject       EntityType = "SUBJECT"
	EntityTypeDailyRevision EntityType = "DAILY_REVISION"
	EntityTypeFlashcard     EntityType = "FLASHCARD"
	EntityTypeQuiz          EntityType = "QUIZ"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeSubject, EntityTypeDailyRevision, EntityTypeFlashcard, EntityTypeQuiz:
		return true
	}
	return false
}

// AuditAction represents the kind of mutation recorded in the audit log.
type AuditAction string

const (
	AuditActionCreate AuditAction = "CREATE"
	AuditActionUpdate AuditAction = "UPDATE"
	AuditActionDelete AuditAction = "DELETE"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate, AuditActionDelete:
		return true
	}
	return false
}

// DeleteMode selects what deleting a subject does.
type DeleteMode string

const (
	// DeleteModeCascade removes the subject and every daily revision of it.
	DeleteModeCascade DeleteMode = "cascade"
	// DeleteModeStub checks existence and ownership, then reports success without deleting.
	DeleteModeStub DeleteMode = "stub"
)

func (m DeleteMode) IsValid() bool {
	return m == DeleteModeCascade || m == DeleteModeStub
}

// ListScope selects which subjects ListSubjects returns.
type ListScope string

const (
	ListScopeOwner ListScope = "owner"
	ListScopeAll   ListScope = "all"
)

func (s ListScope) IsValid() bool {
	return s == ListScopeOwner || s == ListScopeAll
}

// SyncMode selects how a new subject topic reaches the day's revision plan.
type SyncMode string

const (
	// SyncModeCreate finds or creates the day's plan before appending.
	SyncModeCreate SyncMode = "create"
	// SyncModeExisting appends only when the day's plan already exists.
	SyncModeExisting SyncMode = "existing"
)

func (m SyncMode) IsValid() bool {
	return m == SyncModeCreate || m == SyncModeExisting
}

package domain

import "github.com/google/uuid"

// SubjectFilter narrows a subject listing. A nil OwnerID lists every subject.
type SubjectFilter struct {
	OwnerID *uuid.UUID
}

// RevisionFilter narrows a daily revision listing. OwnerID is always applied;
// SubjectID and Date only when set.
type RevisionFilter struct {
	OwnerID   uuid.UUID
	SubjectID *uuid.UUID
	Date      *Date
}

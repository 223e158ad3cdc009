package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DailyRevision is the study plan of one subject for one day.
// At most one exists per (owner, subject, date).
type DailyRevision struct {
	ID        uuid.UUID
	SubjectID uuid.UUID
	OwnerID   uuid.UUID
	Date      Date
	Topics    []RevisionTopic

	// NextTopicID is the ID the next entry receives. It only grows, so an
	// ID dropped by ReplaceTopics is never handed out again.
	NextTopicID int
	Version     int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RevisionTopic is a planned entry. TopicName and TimerMinutes are copied
// from the subject topic when the entry is created and never follow it.
type RevisionTopic struct {
	ID           int
	TopicName    string
	TimerMinutes int
	Completed    bool
	CompletedAt  *time.Time
}

// RevisionTopicDraft carries the values of a new entry. Entries synced from a
// subject topic start incomplete; an upserted plan may carry completion.
type RevisionTopicDraft struct {
	TopicName    string
	TimerMinutes int
	Completed    bool
	CompletedAt  *time.Time
}

// NewDailyRevision returns an empty plan for the given day.
func NewDailyRevision(ownerID, subjectID uuid.UUID, day Date) *DailyRevision {
	return &DailyRevision{
		ID:        uuid.New(),
		SubjectID: subjectID,
		OwnerID:   ownerID,
		Date:      day,
		Topics:    []RevisionTopic{},

		NextTopicID: 1,
	}
}

// OwnedBy reports whether the plan belongs to ownerID.
func (r *DailyRevision) OwnedBy(ownerID uuid.UUID) bool {
	return r.OwnerID == ownerID
}

// AppendTopic adds an incomplete entry with a fresh local ID.
func (r *DailyRevision) AppendTopic(d RevisionTopicDraft) RevisionTopic {
	t := r.newTopic(d)
	r.Topics = append(r.Topics, t)
	return t
}

// ReplaceTopics discards every entry and installs drafts as new entries with
// fresh local IDs. IDs of discarded entries stay retired.
func (r *DailyRevision) ReplaceTopics(drafts []RevisionTopicDraft) {
	r.raiseNextTopicID()
	r.Topics = make([]RevisionTopic, 0, len(drafts))
	for _, d := range drafts {
		r.Topics = append(r.Topics, r.newTopic(d))
	}
}

func (r *DailyRevision) newTopic(d RevisionTopicDraft) RevisionTopic {
	r.raiseNextTopicID()
	t := RevisionTopic{
		ID:           r.NextTopicID,
		TopicName:    d.TopicName,
		TimerMinutes: d.TimerMinutes,
		Completed:    d.Completed,
	}
	if d.Completed {
		t.CompletedAt = d.CompletedAt
	}
	r.NextTopicID++
	return t
}

// TopicCounter returns NextTopicID raised above every ID in use, which also
// covers documents written before the counter existed. Stores persist it.
func (r *DailyRevision) TopicCounter() int {
	next := max(r.NextTopicID, 1)
	for _, t := range r.Topics {
		next = max(next, t.ID+1)
	}
	return next
}

func (r *DailyRevision) raiseNextTopicID() {
	r.NextTopicID = r.TopicCounter()
}

// TopicByID returns the entry with the given local ID.
func (r *DailyRevision) TopicByID(id int) (*RevisionTopic, error) {
	for i := range r.Topics {
		if r.Topics[i].ID == id {
			return &r.Topics[i], nil
		}
	}
	return nil, fmt.Errorf("daily revision %s topic %d: %w", r.ID, id, ErrNotFound)
}

// SetTopicCompletion sets the completion flag of one entry. Completing stamps
// CompletedAt with now; un-completing clears it.
func (r *DailyRevision) SetTopicCompletion(id int, completed bool, now time.Time) (RevisionTopic, error) {
	t, err := r.TopicByID(id)
	if err != nil {
		return RevisionTopic{}, err
	}
	t.Completed = completed
	if completed {
		at := now.UTC()
		t.CompletedAt = &at
	} else {
		t.CompletedAt = nil
	}
	return *t, nil
}

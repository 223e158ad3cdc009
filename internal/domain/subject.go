package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Subject is a study area owned by a user. Its topics are embedded and
// addressed by IDs that are unique only within the subject.
type Subject struct {
	ID          uuid.UUID
	Key         string
	OwnerID     uuid.UUID
	Name        string
	Description *string
	Deleted     bool
	Topics      []Topic
	// NextTopicID is the ID the next topic receives. It only grows.
	NextTopicID int
	Version     int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Topic is a unit of study material under a Subject.
type Topic struct {
	ID        int
	Name      string
	Completed bool
}

// OwnedBy reports whether the subject belongs to ownerID.
func (s *Subject) OwnedBy(ownerID uuid.UUID) bool {
	return s.OwnerID == ownerID
}

// AppendTopic adds an incomplete topic with a fresh local ID and returns a copy of it.
func (s *Subject) AppendTopic(name string) Topic {
	t := Topic{ID: s.nextTopicID(), Name: name}
	s.Topics = append(s.Topics, t)
	return t
}

// TopicByID returns the topic with the given local ID.
func (s *Subject) TopicByID(id int) (*Topic, error) {
	for i := range s.Topics {
		if s.Topics[i].ID == id {
			return &s.Topics[i], nil
		}
	}
	return nil, fmt.Errorf("subject %s topic %d: %w", s.ID, id, ErrNotFound)
}

// SetTopicCompletion sets the completion flag of one topic.
func (s *Subject) SetTopicCompletion(id int, completed bool) (Topic, error) {
	t, err := s.TopicByID(id)
	if err != nil {
		return Topic{}, err
	}
	t.Completed = completed
	return *t, nil
}

// TopicCounter returns NextTopicID raised above every topic ID in use.
// Stores persist it.
func (s *Subject) TopicCounter() int {
	next := max(s.NextTopicID, 1)
	for _, t := range s.Topics {
		next = max(next, t.ID+1)
	}
	return next
}

func (s *Subject) nextTopicID() int {
	id := s.TopicCounter()
	s.NextTopicID = id + 1
	return id
}

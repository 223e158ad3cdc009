package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/revision-planner-backend/internal/domain"
)

type subjectResponse struct {
	ID          uuid.UUID       `json:"_id"`
	Key         string          `json:"subject_id"`
	User        uuid.UUID       `json:"user"`
	Name        string          `json:"name"`
	Description *string         `json:"description,omitempty"`
	Deleted     bool            `json:"deleted"`
	Topics      []topicResponse `json:"topics"`
	Version     int64           `json:"version"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

type topicResponse struct {
	ID        int    `json:"_id"`
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

type dailyRevisionResponse struct {
	ID             uuid.UUID               `json:"_id"`
	User           uuid.UUID               `json:"user"`
	Subject        uuid.UUID               `json:"subject"`
	RevisionDate   domain.Date             `json:"revisionDate"`
	RevisionTopics []revisionTopicResponse `json:"revisionTopics"`
	Version        int64                   `json:"version"`
	CreatedAt      time.Time               `json:"createdAt"`
	UpdatedAt      time.Time               `json:"updatedAt"`
}

type revisionTopicResponse struct {
	ID          int        `json:"_id"`
	TopicName   string     `json:"topicName"`
	Timer       int        `json:"timer"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

type createSubjectRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type updateSubjectRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type addTopicRequest struct {
	Name  string `json:"name"`
	Timer *int   `json:"timer"`
}

type completionRequest struct {
	Completed *bool `json:"completed"`
}

type upsertRevisionRequest struct {
	Subject        uuid.UUID              `json:"subject"`
	RevisionDate   domain.Date            `json:"revisionDate"`
	RevisionTopics []revisionTopicRequest `json:"revisionTopics"`
}

// revisionTopicRequest accepts entries as the list endpoint returns them, so a
// fetched plan can be posted back without losing completion.
type revisionTopicRequest struct {
	TopicName   string     `json:"topicName"`
	Timer       int        `json:"timer"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt"`
}

func toSubjectResponse(s *domain.Subject) subjectResponse {
	topics := make([]topicResponse, 0, len(s.Topics))
	for _, t := range s.Topics {
		topics = append(topics, toTopicResponse(t))
	}
	return subjectResponse{
		ID:          s.ID,
		Key:         s.Key,
		User:        s.OwnerID,
		Name:        s.Name,
		Description: s.Description,
		Deleted:     s.Deleted,
		Topics:      topics,
		Version:     s.Version,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func toTopicResponse(t domain.Topic) topicResponse {
	return topicResponse{ID: t.ID, Name: t.Name, Completed: t.Completed}
}

func toDailyRevisionResponse(r *domain.DailyRevision) dailyRevisionResponse {
	topics := make([]revisionTopicResponse, 0, len(r.Topics))
	for _, t := range r.Topics {
		topics = append(topics, toRevisionTopicResponse(t))
	}
	return dailyRevisionResponse{
		ID:             r.ID,
		User:           r.OwnerID,
		Subject:        r.SubjectID,
		RevisionDate:   r.Date,
		RevisionTopics: topics,
		Version:        r.Version,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

func toRevisionTopicResponse(t domain.RevisionTopic) revisionTopicResponse {
	return revisionTopicResponse{
		ID:          t.ID,
		TopicName:   t.TopicName,
		Timer:       t.TimerMinutes,
		Completed:   t.Completed,
		CompletedAt: t.CompletedAt,
	}
}

func (r upsertRevisionRequest) drafts() []domain.RevisionTopicDraft {
	drafts := make([]domain.RevisionTopicDraft, 0, len(r.RevisionTopics))
	for _, t := range r.RevisionTopics {
		drafts = append(drafts, domain.RevisionTopicDraft{
			TopicName:    t.TopicName,
			TimerMinutes: t.Timer,
			Completed:    t.Completed,
			CompletedAt:  t.CompletedAt,
		})
	}
	return drafts
}

package revision

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/revision-planner-backend/internal/domain"
)

// UpsertDailyPlanInput holds the parameters for creating or replacing a day's plan.
type UpsertDailyPlanInput struct {
	SubjectID uuid.UUID
	Date      domain.Date
	Topics    []domain.RevisionTopicDraft
}

// Validate checks all fields and collects all errors.
func (i UpsertDailyPlanInput) Validate() error {
	var errs []domain.FieldError

	if i.SubjectID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "subject", Message: "required"})
	}
	if i.Date.IsZero() {
		errs = append(errs, domain.FieldError{Field: "revisionDate", Message: "required"})
	}
	for n, t := range i.Topics {
		if strings.TrimSpace(t.TopicName) == "" {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("revisionTopics[%d].topicName", n), Message: "required"})
		}
		if t.TimerMinutes < 0 {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("revisionTopics[%d].timer", n), Message: "must not be negative"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// PlanFilter narrows GetDailyPlan. Nil fields are not applied.
type PlanFilter struct {
	SubjectID *uuid.UUID
	Date      *domain.Date
}

// AddRevisionTopicInput holds a value copy of a subject topic for a day's plan.
type AddRevisionTopicInput struct {
	SubjectID    uuid.UUID
	Date         domain.Date
	Name         string
	TimerMinutes int
}

// Validate checks all fields and collects all errors.
func (i AddRevisionTopicInput) Validate() error {
	var errs []domain.FieldError

	if i.SubjectID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "subject_id", Message: "required"})
	}
	if i.Date.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	}
	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if i.TimerMinutes < 0 {
		errs = append(errs, domain.FieldError{Field: "timer", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SetRevisionTopicCompletionInput addresses one entry by (plan id, local id).
type SetRevisionTopicCompletionInput struct {
	RevisionID uuid.UUID
	TopicID    int
	Completed  bool
}

// Validate checks all fields and collects all errors.
func (i SetRevisionTopicCompletionInput) Validate() error {
	var errs []domain.FieldError
	if i.RevisionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "revision_id", Message: "required"})
	}
	if i.TopicID <= 0 {
		errs = append(errs, domain.FieldError{Field: "topic_id", Message: "must be positive"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SetDayTopicCompletionInput addresses one entry by (subject, day, local id).
// A nil Date means today.
type SetDayTopicCompletionInput struct {
	SubjectID uuid.UUID
	Date      *domain.Date
	TopicID   int
	Completed bool
}

// Validate checks all fields and collects all errors.
func (i SetDayTopicCompletionInput) Validate() error {
	var errs []domain.FieldError
	if i.SubjectID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "subject_id", Message: "required"})
	}
	if i.TopicID <= 0 {
		errs = append(errs, domain.FieldError{Field: "topic_id", Message: "must be positive"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteDailyRevisionInput holds the parameters for deleting a plan.
type DeleteDailyRevisionInput struct {
	RevisionID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DeleteDailyRevisionInput) Validate() error {
	if i.RevisionID == uuid.Nil {
		return domain.NewValidationError("revision_id", "required")
	}
	return nil
}

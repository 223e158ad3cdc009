package subject

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/revision-planner-backend/internal/domain"
)

const (
	maxNameLength        = 200
	maxDescriptionLength = 2000
)

// CreateSubjectInput holds the parameters for creating a subject.
type CreateSubjectInput struct {
	Name        string
	Description *string
}

// Validate checks all fields and collects all errors.
func (i CreateSubjectInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > maxNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
	}
	if i.Description != nil && len(strings.TrimSpace(*i.Description)) > maxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 2000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateSubjectInput holds the parameters for a partial subject update.
// A nil field is left unchanged.
type UpdateSubjectInput struct {
	SubjectID   uuid.UUID
	Name        *string
	Description *string // ptr("") clears
}

// Validate checks all fields and collects all errors.
func (i UpdateSubjectInput) Validate() error {
	var errs []domain.FieldError

	if i.SubjectID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "subject_id", Message: "required"})
	}
	if i.Name != nil {
		name := strings.TrimSpace(*i.Name)
		if name == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
		}
		if len(name) > maxNameLength {
			errs = append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
		}
	}
	if i.Description != nil && len(strings.TrimSpace(*i.Description)) > maxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 2000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteSubjectInput holds the parameters for deleting a subject.
type DeleteSubjectInput struct {
	SubjectID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DeleteSubjectInput) Validate() error {
	if i.SubjectID == uuid.Nil {
		return domain.NewValidationError("subject_id", "required")
	}
	return nil
}

// AddTopicInput holds the parameters for appending a topic. A nil
// TimerMinutes uses the configured default for the revision entry.
type AddTopicInput struct {
	SubjectID    uuid.UUID
	Name         string
	TimerMinutes *int
}

// Validate checks all fields and collects all errors.
func (i AddTopicInput) Validate() error {
	var errs []domain.FieldError

	if i.SubjectID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "subject_id", Message: "required"})
	}
	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > maxNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
	}
	if i.TimerMinutes != nil && *i.TimerMinutes < 1 {
		errs = append(errs, domain.FieldError{Field: "timer", Message: "must be at least 1 minute"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SetTopicCompletionInput addresses one subject topic by (subject id, local id).
type SetTopicCompletionInput struct {
	SubjectID uuid.UUID
	TopicID   int
	Completed bool
}

// Validate checks all fields and collects all errors.
func (i SetTopicCompletionInput) Validate() error {
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

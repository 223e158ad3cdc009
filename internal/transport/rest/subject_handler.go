package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/revision-planner-backend/internal/domain"
	"github.com/heartmarshall/revision-planner-backend/internal/service/subject"
)

type subjectService interface {
	ListSubjects(ctx context.Context) ([]domain.Subject, error)
	CreateSubject(ctx context.Context, input subject.CreateSubjectInput) (*domain.Subject, error)
	UpdateSubject(ctx context.Context, input subject.UpdateSubjectInput) (*domain.Subject, error)
	DeleteSubject(ctx context.Context, input subject.DeleteSubjectInput) (subject.DeleteResult, error)
	AddTopic(ctx context.Context, input subject.AddTopicInput) (*domain.Topic, error)
	SetTopicCompletion(ctx context.Context, input subject.SetTopicCompletionInput) (*domain.Topic, error)
}

// SubjectHandler serves /subjects endpoints.
type SubjectHandler struct {
	svc subjectService
	log *slog.Logger
}

// NewSubjectHandler creates a SubjectHandler.
func NewSubjectHandler(svc subjectService, logger *slog.Logger) *SubjectHandler {
	return &SubjectHandler{svc: svc, log: logger.With("handler", "subject")}
}

// List handles GET /subjects.
func (h *SubjectHandler) List(w http.ResponseWriter, r *http.Request) {
	subjects, err := h.svc.ListSubjects(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]subjectResponse, 0, len(subjects))
	for i := range subjects {
		resp = append(resp, toSubjectResponse(&subjects[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Create handles POST /subjects.
func (h *SubjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createSubjectRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	subj, err := h.svc.CreateSubject(r.Context(), subject.CreateSubjectInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toSubjectResponse(subj))
}

// Update handles PUT /subjects/{id}.
func (h *SubjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req updateSubjectRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	subj, err := h.svc.UpdateSubject(r.Context(), subject.UpdateSubjectInput{
		SubjectID:   id,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSubjectResponse(subj))
}

// Delete handles DELETE /subjects/{id}. A stub delete answers 204.
func (h *SubjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.svc.DeleteSubject(r.Context(), subject.DeleteSubjectInput{SubjectID: id})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if !res.Deleted {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Subject deleted successfully"})
}

// AddTopic handles POST /subjects/{id}/topics.
func (h *SubjectHandler) AddTopic(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req addTopicRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	topic, err := h.svc.AddTopic(r.Context(), subject.AddTopicInput{
		SubjectID:    id,
		Name:         req.Name,
		TimerMinutes: req.Timer,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTopicResponse(*topic))
}

// SetTopicCompletion handles PATCH /subjects/{subjectId}/topics/{topicId}.
func (h *SubjectHandler) SetTopicCompletion(w http.ResponseWriter, r *http.Request) {
	subjectID, err := pathUUID(r, "subjectId")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	topicID, err := pathInt(r, "topicId")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req completionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if req.Completed == nil {
		handleError(h.log, w, r, domain.NewValidationError("completed", "required"))
		return
	}

	topic, err := h.svc.SetTopicCompletion(r.Context(), subject.SetTopicCompletionInput{
		SubjectID: subjectID,
		TopicID:   topicID,
		Completed: *req.Completed,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTopicResponse(*topic))
}

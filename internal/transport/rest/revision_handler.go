package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/revision-planner-backend/internal/domain"
	"github.com/heartmarshall/revision-planner-backend/internal/service/revision"
)

type revisionService interface {
	GetDailyPlan(ctx context.Context, filter revision.PlanFilter) ([]domain.DailyRevision, error)
	UpsertDailyPlan(ctx context.Context, input revision.UpsertDailyPlanInput) (*domain.DailyRevision, bool, error)
	SetDayTopicCompletion(ctx context.Context, input revision.SetDayTopicCompletionInput) (*domain.RevisionTopic, error)
	DeleteDailyRevision(ctx context.Context, input revision.DeleteDailyRevisionInput) error
}

// RevisionHandler serves /revision/dailyRevisions endpoints.
type RevisionHandler struct {
	svc revisionService
	log *slog.Logger
}

// NewRevisionHandler creates a RevisionHandler.
func NewRevisionHandler(svc revisionService, logger *slog.Logger) *RevisionHandler {
	return &RevisionHandler{svc: svc, log: logger.With("handler", "revision")}
}

// List handles GET /revision/dailyRevisions?subjectId=&date=.
func (h *RevisionHandler) List(w http.ResponseWriter, r *http.Request) {
	subjectID, err := queryUUID(r, "subjectId")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	h.list(w, r, revision.PlanFilter{SubjectID: subjectID})
}

// ListBySubject handles GET /revision/dailyRevisions/{subjectId}?date=.
func (h *RevisionHandler) ListBySubject(w http.ResponseWriter, r *http.Request) {
	subjectID, err := pathUUID(r, "subjectId")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	h.list(w, r, revision.PlanFilter{SubjectID: &subjectID})
}

func (h *RevisionHandler) list(w http.ResponseWriter, r *http.Request, filter revision.PlanFilter) {
	date, err := queryDate(r, "date")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	filter.Date = date

	plans, err := h.svc.GetDailyPlan(r.Context(), filter)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]dailyRevisionResponse, 0, len(plans))
	for i := range plans {
		resp = append(resp, toDailyRevisionResponse(&plans[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Upsert handles POST /revision/dailyRevisions. A new plan answers 201.
func (h *RevisionHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var req upsertRevisionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	plan, created, err := h.svc.UpsertDailyPlan(r.Context(), revision.UpsertDailyPlanInput{
		SubjectID: req.Subject,
		Date:      req.RevisionDate,
		Topics:    req.drafts(),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, toDailyRevisionResponse(plan))
}

// SetTopicCompletion handles PATCH /revision/dailyRevisions/{subjectId}/topics/{topicId}.
// Without ?date the entry is looked up in today's plan.
func (h *RevisionHandler) SetTopicCompletion(w http.ResponseWriter, r *http.Request) {
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
	date, err := queryDate(r, "date")
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

	topic, err := h.svc.SetDayTopicCompletion(r.Context(), revision.SetDayTopicCompletionInput{
		SubjectID: subjectID,
		Date:      date,
		TopicID:   topicID,
		Completed: *req.Completed,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toRevisionTopicResponse(*topic))
}

// Delete handles DELETE /revision/dailyRevisions/{id}.
func (h *RevisionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.DeleteDailyRevision(r.Context(), revision.DeleteDailyRevisionInput{RevisionID: id}); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Daily revision deleted successfully"})
}

package rest

import (
	"net/http"
	"strings"

	"github.com/heartmarshall/revision-planner-backend/internal/transport/middleware"
)

// Router holds the handlers mounted by NewRouter.
type Router struct {
	APIPrefix string
	Subjects  *SubjectHandler
	Revisions *RevisionHandler
	Health    *HealthHandler
}

// Handler returns the root handler. Health probes bypass api, which wraps
// every route under APIPrefix.
func (rt Router) Handler(api middleware.Middleware) http.Handler {
	prefix := strings.TrimRight(rt.APIPrefix, "/")

	apiMux := http.NewServeMux()
	apiMux.HandleFunc("GET "+prefix+"/subjects", rt.Subjects.List)
	apiMux.HandleFunc("POST "+prefix+"/subjects", rt.Subjects.Create)
	apiMux.HandleFunc("PUT "+prefix+"/subjects/{id}", rt.Subjects.Update)
	apiMux.HandleFunc("DELETE "+prefix+"/subjects/{id}", rt.Subjects.Delete)
	apiMux.HandleFunc("POST "+prefix+"/subjects/{id}/topics", rt.Subjects.AddTopic)
	apiMux.HandleFunc("PATCH "+prefix+"/subjects/{subjectId}/topics/{topicId}", rt.Subjects.SetTopicCompletion)

	apiMux.HandleFunc("GET "+prefix+"/revision/dailyRevisions", rt.Revisions.List)
	apiMux.HandleFunc("POST "+prefix+"/revision/dailyRevisions", rt.Revisions.Upsert)
	apiMux.HandleFunc("GET "+prefix+"/revision/dailyRevisions/{subjectId}", rt.Revisions.ListBySubject)
	apiMux.HandleFunc("PATCH "+prefix+"/revision/dailyRevisions/{subjectId}/topics/{topicId}", rt.Revisions.SetTopicCompletion)
	apiMux.HandleFunc("DELETE "+prefix+"/revision/dailyRevisions/{id}", rt.Revisions.Delete)

	var apiHandler http.Handler = apiMux
	if api != nil {
		apiHandler = api(apiMux)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /live", rt.Health.Live)
	mux.HandleFunc("GET /ready", rt.Health.Ready)
	mux.HandleFunc("GET /health", rt.Health.Health)
	mux.Handle(prefix+"/", apiHandler)
	return mux
}

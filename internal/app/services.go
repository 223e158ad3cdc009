package app

import (
	"log/slog"

	"github.com/heartmarshall/revision-planner-backend/internal/config"
	"github.com/heartmarshall/revision-planner-backend/internal/service/quiz"
	"github.com/heartmarshall/revision-planner-backend/internal/service/revision"
	"github.com/heartmarshall/revision-planner-backend/internal/service/subject"
)

// Services are the domain services wired over one Store.
type Services struct {
	Subjects  *subject.Service
	Revisions *revision.Service
	Quizzes   *quiz.Service
}

// NewServices wires every service over store.
func NewServices(logger *slog.Logger, store *Store, planner config.PlannerConfig) Services {
	policy := planner.Policy()

	revisions := revision.NewService(logger, store.Revisions, store.Subjects, store.Audit, store.Tx, policy)
	subjects := subject.NewService(logger, store.Subjects, revisions, store.Audit, store.Tx, policy)
	quizzes := quiz.NewService(logger, store.Subjects, store.Flashcards, store.Quizzes, store.Audit, store.Tx)

	return Services{
		Subjects:  subjects,
		Revisions: revisions,
		Quizzes:   quizzes,
	}
}

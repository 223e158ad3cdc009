// Package quiz implements the Quiz repository using PostgreSQL.
// Questions are stored as a JSONB array on the quiz row.
package quiz

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/revision-planner-backend/internal/adapter/postgres"
	"github.com/heartmarshall/revision-planner-backend/internal/domain"
)

// Repo provides quiz persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new quiz repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const quizColumns = `id, owner_id, subject_id, title, description, questions, created_at`

const createSQL = `
INSERT INTO quizzes (id, owner_id, subject_id, title, description, questions, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + quizColumns

const getByIDSQL = `
SELECT ` + quizColumns + `
FROM quizzes
WHERE id = $1`

type optionJSON struct {
	Text      string `json:"option_text"`
	IsCorrect bool   `json:"is_correct"`
}

type questionJSON struct {
	Text        string       `json:"question_text"`
	Options     []optionJSON `json:"options"`
	FlashcardID *uuid.UUID   `json:"flashcard_id,omitempty"`
}

// Create stores a quiz with its questions and returns the persisted row.
func (r *Repo) Create(ctx context.Context, q *domain.Quiz) (*domain.Quiz, error) {
	questions, err := marshalQuestions(q.Questions)
	if err != nil {
		return nil, fmt.Errorf("quiz %s: %w", q.ID, err)
	}

	createdAt := q.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	createdAt = createdAt.UTC().Truncate(time.Microsecond)

	querier := postgres.QuerierFromCtx(ctx, r.db)
	row := querier.QueryRow(ctx, createSQL,
		q.ID, q.OwnerID, q.SubjectID, q.Title, q.Description, questions, createdAt,
	)

	created, err := scanQuiz(row)
	if err != nil {
		return nil, postgres.MapError(err, "quiz", q.ID)
	}
	return created, nil
}

// GetByID returns a quiz by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Quiz, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	q, err := scanQuiz(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "quiz", id)
	}
	return q, nil
}

func scanQuiz(row pgx.Row) (*domain.Quiz, error) {
	var (
		q         domain.Quiz
		questions []byte
	)
	if err := row.Scan(&q.ID, &q.OwnerID, &q.SubjectID, &q.Title, &q.Description, &questions, &q.CreatedAt); err != nil {
		return nil, err
	}

	var raw []questionJSON
	if err := json.Unmarshal(questions, &raw); err != nil {
		return nil, fmt.Errorf("quiz %s unmarshal questions: %w", q.ID, err)
	}
	q.Questions = make([]domain.QuizQuestion, len(raw))
	for i, rq := range raw {
		opts := make([]domain.QuizOption, len(rq.Options))
		for j, o := range rq.Options {
			opts[j] = domain.QuizOption{Text: o.Text, IsCorrect: o.IsCorrect}
		}
		q.Questions[i] = domain.QuizQuestion{Text: rq.Text, Options: opts, FlashcardID: rq.FlashcardID}
	}
	return &q, nil
}

func marshalQuestions(questions []domain.QuizQuestion) ([]byte, error) {
	out := make([]questionJSON, len(questions))
	for i, q := range questions {
		opts := make([]optionJSON, len(q.Options))
		for j, o := range q.Options {
			opts[j] = optionJSON{Text: o.Text, IsCorrect: o.IsCorrect}
		}
		out[i] = questionJSON{Text: q.Text, Options: opts, FlashcardID: q.FlashcardID}
	}
	b, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("marshal questions: %w", err)
	}
	return b, nil
}

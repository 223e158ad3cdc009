// Package flashcard implements the Flashcard repository using PostgreSQL.
package flashcard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/revision-planner-backend/internal/adapter/postgres"
	"github.com/heartmarshall/revision-planner-backend/internal/domain"
)

// Repo provides flashcard persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new flashcard repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const insertSQL = `
INSERT INTO flashcards (id, owner_id, subject_id, question, answer, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`

const listBySubjectSQL = `
SELECT id, owner_id, subject_id, question, answer, created_at
FROM flashcards
WHERE subject_id = $1
ORDER BY created_at ASC, id ASC`

// CreateBatch inserts cards in one round trip and returns how many were stored.
func (r *Repo) CreateBatch(ctx context.Context, cards []domain.Flashcard) (int, error) {
	if len(cards) == 0 {
		return 0, nil
	}

	now := time.Now().UTC().Truncate(time.Microsecond)
	batch := &pgx.Batch{}
	for _, c := range cards {
		createdAt := c.CreatedAt
		if createdAt.IsZero() {
			createdAt = now
		}
		batch.Queue(insertSQL, c.ID, c.OwnerID, c.SubjectID, c.Question, c.Answer, createdAt)
	}

	querier := postgres.QuerierFromCtx(ctx, r.db)
	br := querier.SendBatch(ctx, batch)
	defer br.Close()

	for _, c := range cards {
		if _, err := br.Exec(); err != nil {
			return 0, postgres.MapError(err, "flashcard", c.ID)
		}
	}

	return len(cards), nil
}

// ListBySubject returns every flashcard of a subject in insertion order.
func (r *Repo) ListBySubject(ctx context.Context, subjectID uuid.UUID) ([]domain.Flashcard, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := querier.Query(ctx, listBySubjectSQL, subjectID)
	if err != nil {
		return nil, fmt.Errorf("list flashcards: %w", err)
	}
	defer rows.Close()

	cards := make([]domain.Flashcard, 0)
	for rows.Next() {
		var c domain.Flashcard
		if err := rows.Scan(&c.ID, &c.OwnerID, &c.SubjectID, &c.Question, &c.Answer, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan flashcard: %w", err)
		}
		cards = append(cards, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list flashcards: %w", err)
	}

	return cards, nil
}

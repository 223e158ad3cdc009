// Package flashcard implements the Flashcard repository on MongoDB.
package flashcard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/heartmarshall/revision-planner-backend/internal/adapter/mongodb"
	"github.com/heartmarshall/revision-planner-backend/internal/domain"
)

// Repo provides flashcard persistence backed by MongoDB.
type Repo struct {
	db *mongo.Database
}

// New creates a new flashcard repository.
func New(db *mongo.Database) *Repo {
	return &Repo{db: db}
}

type flashcardDoc struct {
	ID        string    `bson:"_id"`
	OwnerID   string    `bson:"user"`
	SubjectID string    `bson:"subject_id"`
	Question  string    `bson:"question"`
	Answer    string    `bson:"answer"`
	CreatedAt time.Time `bson:"created_at"`
}

func (r *Repo) coll() *mongo.Collection {
	return r.db.Collection(mongodb.CollFlashcards)
}

// CreateBatch inserts cards and returns how many were stored.
func (r *Repo) CreateBatch(ctx context.Context, cards []domain.Flashcard) (int, error) {
	if len(cards) == 0 {
		return 0, nil
	}

	now := time.Now().UTC().Truncate(time.Millisecond)
	docs := make([]any, len(cards))
	for i, c := range cards {
		createdAt := c.CreatedAt
		if createdAt.IsZero() {
			// Keep insertion order stable under the created_at sort.
			createdAt = now.Add(time.Duration(i) * time.Millisecond)
		}
		docs[i] = flashcardDoc{
			ID:        c.ID.String(),
			OwnerID:   c.OwnerID.String(),
			SubjectID: c.SubjectID.String(),
			Question:  c.Question,
			Answer:    c.Answer,
			CreatedAt: createdAt,
		}
	}

	res, err := r.coll().InsertMany(ctx, docs)
	if err != nil {
		return 0, mongodb.MapError(err, "flashcards of subject", cards[0].SubjectID)
	}
	return len(res.InsertedIDs), nil
}

// ListBySubject returns every flashcard of a subject in insertion order.
func (r *Repo) ListBySubject(ctx context.Context, subjectID uuid.UUID) ([]domain.Flashcard, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := r.coll().Find(ctx, bson.M{"subject_id": subjectID.String()}, opts)
	if err != nil {
		return nil, fmt.Errorf("list flashcards: %w", err)
	}

	var docs []flashcardDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("list flashcards: %w", err)
	}

	cards := make([]domain.Flashcard, 0, len(docs))
	for _, d := range docs {
		id, err := mongodb.ParseID("flashcard _id", d.ID)
		if err != nil {
			return nil, err
		}
		owner, err := mongodb.ParseID("flashcard user", d.OwnerID)
		if err != nil {
			return nil, err
		}
		cards = append(cards, domain.Flashcard{
			ID:        id,
			OwnerID:   owner,
			SubjectID: subjectID,
			Question:  d.Question,
			Answer:    d.Answer,
			CreatedAt: d.CreatedAt,
		})
	}
	return cards, nil
}

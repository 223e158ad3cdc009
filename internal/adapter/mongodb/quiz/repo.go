// Package quiz implements the Quiz repository on MongoDB.
package quiz

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/heartmarshall/revision-planner-backend/internal/adapter/mongodb"
	"github.com/heartmarshall/revision-planner-backend/internal/domain"
)

// Repo provides quiz persistence backed by MongoDB.
type Repo struct {
	db *mongo.Database
}

// New creates a new quiz repository.
func New(db *mongo.Database) *Repo {
	return &Repo{db: db}
}

type optionDoc struct {
	Text      string `bson:"option_text"`
	IsCorrect bool   `bson:"is_correct"`
}

type questionDoc struct {
	Text        string      `bson:"question_text"`
	Options     []optionDoc `bson:"options"`
	FlashcardID *string     `bson:"flashcard_id,omitempty"`
}

type quizDoc struct {
	ID          string        `bson:"_id"`
	OwnerID     string        `bson:"user"`
	SubjectID   string        `bson:"subject_id"`
	Title       string        `bson:"title"`
	Description string        `bson:"description"`
	Questions   []questionDoc `bson:"questions"`
	CreatedAt   time.Time     `bson:"created_at"`
}

func (r *Repo) coll() *mongo.Collection {
	return r.db.Collection(mongodb.CollQuizzes)
}

// Create stores a quiz with its questions.
func (r *Repo) Create(ctx context.Context, q *domain.Quiz) (*domain.Quiz, error) {
	createdAt := q.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	doc := quizDoc{
		ID:          q.ID.String(),
		OwnerID:     q.OwnerID.String(),
		SubjectID:   q.SubjectID.String(),
		Title:       q.Title,
		Description: q.Description,
		Questions:   make([]questionDoc, len(q.Questions)),
		CreatedAt:   createdAt.UTC().Truncate(time.Millisecond),
	}
	for i, qq := range q.Questions {
		opts := make([]optionDoc, len(qq.Options))
		for j, o := range qq.Options {
			opts[j] = optionDoc{Text: o.Text, IsCorrect: o.IsCorrect}
		}
		doc.Questions[i] = questionDoc{Text: qq.Text, Options: opts}
		if qq.FlashcardID != nil {
			s := qq.FlashcardID.String()
			doc.Questions[i].FlashcardID = &s
		}
	}

	if _, err := r.coll().InsertOne(ctx, doc); err != nil {
		return nil, mongodb.MapError(err, "quiz", q.ID)
	}
	return toDomain(doc)
}

// GetByID returns a quiz by id.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Quiz, error) {
	var doc quizDoc
	if err := r.coll().FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc); err != nil {
		return nil, mongodb.MapError(err, "quiz", id)
	}
	return toDomain(doc)
}

func toDomain(d quizDoc) (*domain.Quiz, error) {
	id, err := mongodb.ParseID("quiz _id", d.ID)
	if err != nil {
		return nil, err
	}
	owner, err := mongodb.ParseID("quiz user", d.OwnerID)
	if err != nil {
		return nil, err
	}
	subject, err := mongodb.ParseID("quiz subject_id", d.SubjectID)
	if err != nil {
		return nil, err
	}

	q := &domain.Quiz{
		ID:          id,
		OwnerID:     owner,
		SubjectID:   subject,
		Title:       d.Title,
		Description: d.Description,
		Questions:   make([]domain.QuizQuestion, len(d.Questions)),
		CreatedAt:   d.CreatedAt,
	}
	for i, dq := range d.Questions {
		opts := make([]domain.QuizOption, len(dq.Options))
		for j, o := range dq.Options {
			opts[j] = domain.QuizOption{Text: o.Text, IsCorrect: o.IsCorrect}
		}
		q.Questions[i] = domain.QuizQuestion{Text: dq.Text, Options: opts}
		if dq.FlashcardID != nil {
			fid, err := mongodb.ParseID("quiz flashcard_id", *dq.FlashcardID)
			if err != nil {
				return nil, err
			}
			q.Questions[i].FlashcardID = &fid
		}
	}
	return q, nil
}

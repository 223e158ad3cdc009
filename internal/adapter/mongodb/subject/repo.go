// Package subject implements the Subject repository on MongoDB.
// A subject is one document with its topics embedded.
package subject

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

// Repo provides subject persistence backed by MongoDB.
type Repo struct {
	db *mongo.Database
}

// New creates a new subject repository.
func New(db *mongo.Database) *Repo {
	return &Repo{db: db}
}

type topicDoc struct {
	ID        int    `bson:"_id"`
	Name      string `bson:"name"`
	Completed bool   `bson:"completed"`
}

type subjectDoc struct {
	ID          string     `bson:"_id"`
	Key         string     `bson:"subject_key"`
	OwnerID     string     `bson:"user"`
	Name        string     `bson:"name"`
	Description *string    `bson:"description,omitempty"`
	Deleted     bool       `bson:"deleted"`
	Topics      []topicDoc `bson:"topics"`
	NextTopicID int        `bson:"next_topic_id"`
	Version     int64      `bson:"version"`
	CreatedAt   time.Time  `bson:"created_at"`
	UpdatedAt   time.Time  `bson:"updated_at"`
}

func (r *Repo) coll() *mongo.Collection {
	return r.db.Collection(mongodb.CollSubjects)
}

// GetByID returns a subject regardless of owner.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Subject, error) {
	var doc subjectDoc
	if err := r.coll().FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc); err != nil {
		return nil, mongodb.MapError(err, "subject", id)
	}
	return toDomain(doc)
}

// List returns subjects ordered by creation time, optionally scoped to an owner.
func (r *Repo) List(ctx context.Context, filter domain.SubjectFilter) ([]domain.Subject, error) {
	q := bson.M{}
	if filter.OwnerID != nil {
		q["user"] = filter.OwnerID.String()
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := r.coll().Find(ctx, q, opts)
	if err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}

	var docs []subjectDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}

	subjects := make([]domain.Subject, 0, len(docs))
	for _, d := range docs {
		s, err := toDomain(d)
		if err != nil {
			return nil, err
		}
		subjects = append(subjects, *s)
	}
	return subjects, nil
}

// Create inserts a subject at version 1.
func (r *Repo) Create(ctx context.Context, s *domain.Subject) (*domain.Subject, error) {
	now := time.Now().UTC().Truncate(time.Millisecond)
	doc := fromDomain(s)
	doc.Version = 1
	doc.CreatedAt = now
	doc.UpdatedAt = now

	if _, err := r.coll().InsertOne(ctx, doc); err != nil {
		return nil, mongodb.MapError(err, "subject", s.ID)
	}
	return toDomain(doc)
}

// Replace writes the mutable fields of s if the stored version still equals
// s.Version. Returns domain.ErrConflict when it does not.
func (r *Repo) Replace(ctx context.Context, s *domain.Subject) (*domain.Subject, error) {
	doc := fromDomain(s)
	update := bson.M{
		"$set": bson.M{
			"name":          doc.Name,
			"description":   doc.Description,
			"deleted":       doc.Deleted,
			"topics":        doc.Topics,
			"next_topic_id": doc.NextTopicID,
			"updated_at":    time.Now().UTC().Truncate(time.Millisecond),
		},
		"$inc": bson.M{"version": 1},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var out subjectDoc
	err := r.coll().FindOneAndUpdate(ctx, bson.M{"_id": doc.ID, "version": s.Version}, update, opts).Decode(&out)
	if err != nil {
		return nil, mongodb.MapReplaceError(err, "subject", s.ID)
	}
	return toDomain(out)
}

// Delete removes a subject with its flashcards and quizzes.
// Returns domain.ErrNotFound if the subject did not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.coll().DeleteOne(ctx, bson.M{"_id": id.String()})
	if err != nil {
		return mongodb.MapError(err, "subject", id)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("subject %s: %w", id, domain.ErrNotFound)
	}

	for _, coll := range []string{mongodb.CollFlashcards, mongodb.CollQuizzes} {
		if _, err := r.db.Collection(coll).DeleteMany(ctx, bson.M{"subject_id": id.String()}); err != nil {
			return fmt.Errorf("subject %s: delete %s: %w", id, coll, err)
		}
	}
	return nil
}

func fromDomain(s *domain.Subject) subjectDoc {
	topics := make([]topicDoc, len(s.Topics))
	for i, t := range s.Topics {
		topics[i] = topicDoc{ID: t.ID, Name: t.Name, Completed: t.Completed}
	}
	return subjectDoc{
		ID:          s.ID.String(),
		Key:         s.Key,
		OwnerID:     s.OwnerID.String(),
		Name:        s.Name,
		Description: s.Description,
		Deleted:     s.Deleted,
		Topics:      topics,
		NextTopicID: s.TopicCounter(),
		Version:     s.Version,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func toDomain(d subjectDoc) (*domain.Subject, error) {
	id, err := mongodb.ParseID("subject _id", d.ID)
	if err != nil {
		return nil, err
	}
	owner, err := mongodb.ParseID("subject user", d.OwnerID)
	if err != nil {
		return nil, err
	}

	topics := make([]domain.Topic, len(d.Topics))
	for i, t := range d.Topics {
		topics[i] = domain.Topic{ID: t.ID, Name: t.Name, Completed: t.Completed}
	}

	return &domain.Subject{
		ID:          id,
		Key:         d.Key,
		OwnerID:     owner,
		Name:        d.Name,
		Description: d.Description,
		Deleted:     d.Deleted,
		Topics:      topics,
		NextTopicID: d.NextTopicID,
		Version:     d.Version,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}, nil
}

// Package revision implements the DailyRevision repository on MongoDB.
// The revision date is stored as a YYYY-MM-DD string so day ranges compare
// lexicographically.
package revision

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

// Repo provides daily revision persistence backed by MongoDB.
type Repo struct {
	db *mongo.Database
}

// New creates a new daily revision repository.
func New(db *mongo.Database) *Repo {
	return &Repo{db: db}
}

type topicDoc struct {
	ID           int        `bson:"_id"`
	TopicName    string     `bson:"topicName"`
	TimerMinutes int        `bson:"timer"`
	Completed    bool       `bson:"completed"`
	CompletedAt  *time.Time `bson:"completedAt,omitempty"`
}

type revisionDoc struct {
	ID          string     `bson:"_id"`
	SubjectID   string     `bson:"subject_id"`
	OwnerID     string     `bson:"user"`
	Date        string     `bson:"revision_date"`
	Topics      []topicDoc `bson:"topics"`
	NextTopicID int        `bson:"next_topic_id"`
	Version     int64      `bson:"version"`
	CreatedAt   time.Time  `bson:"created_at"`
	UpdatedAt   time.Time  `bson:"updated_at"`
}

func (r *Repo) coll() *mongo.Collection {
	return r.db.Collection(mongodb.CollDailyRevisions)
}

func dayFilter(ownerID, subjectID uuid.UUID, day domain.Date) bson.M {
	return bson.M{"user": ownerID.String(), "subject_id": subjectID.String(), "revision_date": day.String()}
}

// GetByID returns a daily revision regardless of owner.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.DailyRevision, error) {
	var doc revisionDoc
	if err := r.coll().FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc); err != nil {
		return nil, mongodb.MapError(err, "daily_revision", id)
	}
	return toDomain(doc)
}

// GetByDay returns the plan of (owner, subject, day).
func (r *Repo) GetByDay(ctx context.Context, ownerID, subjectID uuid.UUID, day domain.Date) (*domain.DailyRevision, error) {
	var doc revisionDoc
	if err := r.coll().FindOne(ctx, dayFilter(ownerID, subjectID, day)).Decode(&doc); err != nil {
		return nil, mongodb.MapError(err, "daily_revision", subjectID)
	}
	return toDomain(doc)
}

// List returns the owner's plans ordered by date, optionally narrowed to one
// subject and to the range [day, day+1).
func (r *Repo) List(ctx context.Context, filter domain.RevisionFilter) ([]domain.DailyRevision, error) {
	q := bson.M{"user": filter.OwnerID.String()}
	if filter.SubjectID != nil {
		q["subject_id"] = filter.SubjectID.String()
	}
	if filter.Date != nil {
		q["revision_date"] = bson.M{"$gte": filter.Date.String(), "$lt": filter.Date.AddDays(1).String()}
	}

	opts := options.Find().SetSort(bson.D{{Key: "revision_date", Value: 1}, {Key: "created_at", Value: 1}})
	cur, err := r.coll().Find(ctx, q, opts)
	if err != nil {
		return nil, fmt.Errorf("list daily_revisions: %w", err)
	}

	var docs []revisionDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("list daily_revisions: %w", err)
	}

	out := make([]domain.DailyRevision, 0, len(docs))
	for _, d := range docs {
		rev, err := toDomain(d)
		if err != nil {
			return nil, err
		}
		out = append(out, *rev)
	}
	return out, nil
}

// Create inserts a plan at version 1. A second plan for the same
// (owner, subject, date) fails with domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, rev *domain.DailyRevision) (*domain.DailyRevision, error) {
	now := time.Now().UTC().Truncate(time.Millisecond)
	doc := fromDomain(rev)
	doc.Version = 1
	doc.CreatedAt = now
	doc.UpdatedAt = now

	if _, err := r.coll().InsertOne(ctx, doc); err != nil {
		return nil, mongodb.MapError(err, "daily_revision", rev.ID)
	}
	return toDomain(doc)
}

// GetOrCreate returns the plan of (owner, subject, day), upserting an empty
// one if absent. created reports whether this call inserted it.
func (r *Repo) GetOrCreate(ctx context.Context, ownerID, subjectID uuid.UUID, day domain.Date) (*domain.DailyRevision, bool, error) {
	newID := uuid.NewString()
	now := time.Now().UTC().Truncate(time.Millisecond)

	update := bson.M{"$setOnInsert": bson.M{
		"_id":           newID,
		"topics":        []topicDoc{},
		"next_topic_id": 1,
		"version":       int64(1),
		"created_at":    now,
		"updated_at":    now,
	}}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var doc revisionDoc
	err := r.coll().FindOneAndUpdate(ctx, dayFilter(ownerID, subjectID, day), update, opts).Decode(&doc)
	if mongo.IsDuplicateKeyError(err) {
		// Two upserts raced on the unique index; the winner's document is there now.
		rev, err := r.GetByDay(ctx, ownerID, subjectID, day)
		return rev, false, err
	}
	if err != nil {
		return nil, false, mongodb.MapError(err, "daily_revision", subjectID)
	}

	rev, err := toDomain(doc)
	if err != nil {
		return nil, false, err
	}
	return rev, doc.ID == newID, nil
}

// Replace writes the entry list of rev if the stored version still equals
// rev.Version. Returns domain.ErrConflict when it does not.
func (r *Repo) Replace(ctx context.Context, rev *domain.DailyRevision) (*domain.DailyRevision, error) {
	doc := fromDomain(rev)
	update := bson.M{
		"$set": bson.M{
			"topics":        doc.Topics,
			"next_topic_id": doc.NextTopicID,
			"updated_at":    time.Now().UTC().Truncate(time.Millisecond),
		},
		"$inc": bson.M{"version": 1},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var out revisionDoc
	err := r.coll().FindOneAndUpdate(ctx, bson.M{"_id": doc.ID, "version": rev.Version}, update, opts).Decode(&out)
	if err != nil {
		return nil, mongodb.MapReplaceError(err, "daily_revision", rev.ID)
	}
	return toDomain(out)
}

// Delete removes one plan. Returns domain.ErrNotFound if nothing was deleted.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.coll().DeleteOne(ctx, bson.M{"_id": id.String()})
	if err != nil {
		return mongodb.MapError(err, "daily_revision", id)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("daily_revision %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// DeleteBySubject removes every plan of (owner, subject) and returns how many.
func (r *Repo) DeleteBySubject(ctx context.Context, ownerID, subjectID uuid.UUID) (int, error) {
	res, err := r.coll().DeleteMany(ctx, bson.M{"user": ownerID.String(), "subject_id": subjectID.String()})
	if err != nil {
		return 0, mongodb.MapError(err, "daily_revisions of subject", subjectID)
	}
	return int(res.DeletedCount), nil
}

func fromDomain(rev *domain.DailyRevision) revisionDoc {
	topics := make([]topicDoc, len(rev.Topics))
	for i, t := range rev.Topics {
		topics[i] = topicDoc{
			ID:           t.ID,
			TopicName:    t.TopicName,
			TimerMinutes: t.TimerMinutes,
			Completed:    t.Completed,
			CompletedAt:  t.CompletedAt,
		}
	}
	return revisionDoc{
		ID:          rev.ID.String(),
		SubjectID:   rev.SubjectID.String(),
		OwnerID:     rev.OwnerID.String(),
		Date:        rev.Date.String(),
		Topics:      topics,
		NextTopicID: rev.TopicCounter(),
		Version:     rev.Version,
		CreatedAt:   rev.CreatedAt,
		UpdatedAt:   rev.UpdatedAt,
	}
}

func toDomain(d revisionDoc) (*domain.DailyRevision, error) {
	id, err := mongodb.ParseID("daily_revision _id", d.ID)
	if err != nil {
		return nil, err
	}
	subjectID, err := mongodb.ParseID("daily_revision subject_id", d.SubjectID)
	if err != nil {
		return nil, err
	}
	ownerID, err := mongodb.ParseID("daily_revision user", d.OwnerID)
	if err != nil {
		return nil, err
	}
	day, err := domain.ParseDate(d.Date)
	if err != nil {
		return nil, fmt.Errorf("daily_revision %s: %w", d.ID, err)
	}

	topics := make([]domain.RevisionTopic, len(d.Topics))
	for i, t := range d.Topics {
		topics[i] = domain.RevisionTopic{
			ID:           t.ID,
			TopicName:    t.TopicName,
			TimerMinutes: t.TimerMinutes,
			Completed:    t.Completed,
			CompletedAt:  t.CompletedAt,
		}
	}

	return &domain.DailyRevision{
		ID:          id,
		SubjectID:   subjectID,
		OwnerID:     ownerID,
		Date:        day,
		Topics:      topics,
		NextTopicID: d.NextTopicID,
		Version:     d.Version,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}, nil
}

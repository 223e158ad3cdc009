package flashcard_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/heartmarshall/revision-planner-backend/internal/adapter/postgres/flashcard"
	"github.com/heartmarshall/revision-planner-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/revision-planner-backend/internal/domain"
)

func TestRepo_Integration_CreateBatchAndList(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := flashcard.New(pool)
	ctx := context.Background()

	owner := uuid.New()
	subj := testhelper.SeedSubject(t, pool, owner)

	cards := []domain.Flashcard{
		{ID: uuid.New(), OwnerID: owner, SubjectID: subj.ID, Question: "2+2", Answer: "4"},
		{ID: uuid.New(), OwnerID: owner, SubjectID: subj.ID, Question: "3+3", Answer: "6"},
	}
	n, err := repo.CreateBatch(ctx, cards)
	if err != nil {
		t.Fatalf("CreateBatch: %v", err)
	}
	if n != 2 {
		t.Errorf("stored = %d, want 2", n)
	}

	got, err := repo.ListBySubject(ctx, subj.ID)
	if err != nil {
		t.Fatalf("ListBySubject: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
}

func TestRepo_Integration_CreateBatchUnknownSubject(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := flashcard.New(pool)

	_, err := repo.CreateBatch(context.Background(), []domain.Flashcard{
		{ID: uuid.New(), OwnerID: uuid.New(), SubjectID: uuid.New(), Question: "q", Answer: "a"},
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

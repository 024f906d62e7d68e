package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"solarquiz/internal/common"
	"solarquiz/internal/domain/model"
)

func TestUserRepositorySequentialIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewMemUserRepository()

	first := &model.User{Email: "a@x.com"}
	second := &model.User{Email: "b@x.com"}
	if err := repo.Create(ctx, first); err != nil {
		t.Fatal(err)
	}
	if err := repo.Create(ctx, second); err != nil {
		t.Fatal(err)
	}
	if first.ID != 1 || second.ID != 2 {
		t.Errorf("ids = %d, %d, want 1, 2", first.ID, second.ID)
	}

	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if count != 2 {
		t.Errorf("Count() = %d, want 2", count)
	}
}

func TestUserRepositoryDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewMemUserRepository()

	if err := repo.Create(ctx, &model.User{Email: "a@x.com", PasswordHash: []byte{1}}); err != nil {
		t.Fatal(err)
	}
	err := repo.Create(ctx, &model.User{Email: "a@x.com", PasswordHash: []byte{2}})
	if !errors.Is(err, common.ErrConflict) {
		t.Fatalf("Create(duplicate) error = %v, want ErrConflict", err)
	}

	// The stored credential must be unchanged by the failed attempt
	stored, err := repo.FindByEmail(ctx, "a@x.com")
	if err != nil {
		t.Fatal(err)
	}
	if stored.PasswordHash[0] != 1 {
		t.Error("failed signup mutated the stored credential")
	}
}

func TestUserRepositoryFindMisses(t *testing.T) {
	ctx := context.Background()
	repo := NewMemUserRepository()

	if _, err := repo.FindByEmail(ctx, "nobody@x.com"); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("FindByEmail(miss) error = %v, want ErrNotFound", err)
	}
	if _, err := repo.FindByID(ctx, 42); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("FindByID(miss) error = %v, want ErrNotFound", err)
	}
}

func TestSessionRepositoryIssueResolveRevoke(t *testing.T) {
	ctx := context.Background()
	repo := NewMemSessionRepository()

	token, err := repo.Issue(ctx, 7)
	if err != nil {
		t.Fatal(err)
	}
	if len(token) != 32 {
		t.Errorf("token length = %d, want 32 hex chars", len(token))
	}

	userID, err := repo.Resolve(ctx, token)
	if err != nil {
		t.Fatal(err)
	}
	if userID != 7 {
		t.Errorf("Resolve() = %d, want 7", userID)
	}

	// Concurrent tokens for the same user are allowed and distinct
	other, err := repo.Issue(ctx, 7)
	if err != nil {
		t.Fatal(err)
	}
	if other == token {
		t.Error("Issue() returned a duplicate token")
	}

	if err := repo.Revoke(ctx, token); err != nil {
		t.Fatal(err)
	}
	if _, err := repo.Resolve(ctx, token); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("Resolve(revoked) error = %v, want ErrNotFound", err)
	}
	if _, err := repo.Resolve(ctx, other); err != nil {
		t.Errorf("revoking one token broke another: %v", err)
	}
}

func TestQuizRepositoryLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewMemQuizRepository()

	run := &model.QuizRun{
		ID:         "q_abc12345",
		SectionSeq: []string{"economics", "fundamentals", "technology"},
		Phase:      model.RunCreated,
	}
	if err := repo.Create(ctx, run); err != nil {
		t.Fatal(err)
	}

	if err := repo.SetInProgress(ctx, run.ID, 1); err != nil {
		t.Fatal(err)
	}
	got, err := repo.Find(ctx, run.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Phase != model.RunInProgress || got.SectionIndex != 1 {
		t.Errorf("run = %q at %d, want InProgress at 1", got.Phase, got.SectionIndex)
	}

	if err := repo.SetComplete(ctx, run.ID); err != nil {
		t.Fatal(err)
	}
	// No transitions out of Complete
	if err := repo.SetInProgress(ctx, run.ID, 2); !errors.Is(err, common.ErrConflict) {
		t.Errorf("SetInProgress(complete run) error = %v, want ErrConflict", err)
	}

	if _, err := repo.Find(ctx, "q_missing0"); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("Find(miss) error = %v, want ErrNotFound", err)
	}
}

func TestQuizRepositoryFindReturnsCopy(t *testing.T) {
	ctx := context.Background()
	repo := NewMemQuizRepository()

	run := &model.QuizRun{ID: "q_abc12345", SectionSeq: []string{"a", "b"}}
	if err := repo.Create(ctx, run); err != nil {
		t.Fatal(err)
	}

	got, _ := repo.Find(ctx, run.ID)
	got.SectionSeq[0] = "tampered"

	again, _ := repo.Find(ctx, run.ID)
	if again.SectionSeq[0] != "a" {
		t.Error("mutating a returned run changed the stored section sequence")
	}
}

func TestScoreRepositoryAppendAndSnapshot(t *testing.T) {
	ctx := context.Background()
	repo := NewMemScoreRepository()

	records, err := repo.All(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 0 {
		t.Fatalf("fresh ledger has %d records", len(records))
	}

	now := time.Now()
	for i := 0; i < 3; i++ {
		rec := &model.ScoreRecord{UserID: 1, QuizID: "q_abc12345", Correct: i, Total: 3, CreatedAt: now}
		if err := repo.Append(ctx, rec); err != nil {
			t.Fatal(err)
		}
	}

	records, err = repo.All(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 3 {
		t.Fatalf("ledger has %d records, want 3", len(records))
	}
	// Insertion order is preserved
	for i, rec := range records {
		if rec.Correct != i {
			t.Errorf("record %d has Correct = %d, want %d", i, rec.Correct, i)
		}
	}

	// The snapshot is detached from the ledger
	records[0].Correct = 99
	again, _ := repo.All(ctx)
	if again[0].Correct == 99 {
		t.Error("mutating a snapshot changed the ledger")
	}
}

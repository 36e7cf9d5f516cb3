package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"etickets/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := db.AutoMigrate(&model.Actor{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func testActor(name string) *model.Actor {
	return &model.Actor{
		FullName:          name,
		ProfilePictureURL: "https://example.com/actor.png",
		Bio:               "An actor fixture used by the repository round-trip tests.",
	}
}

func TestAddThenGetByID(t *testing.T) {
	db := openTestDB(t)
	repo := New[model.Actor](db)
	ctx := context.Background()

	actor := testActor(fmt.Sprintf("Round Trip %d", time.Now().UnixNano()))
	if err := repo.Add(ctx, actor); err != nil {
		t.Fatalf("Add: %v", err)
	}
	t.Cleanup(func() {
		db.Unscoped().Delete(actor)
	})
	if actor.ID == 0 {
		t.Fatal("Add did not assign an id")
	}

	got, err := repo.GetByID(ctx, actor.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got == nil {
		t.Fatal("GetByID returned nil for a stored actor")
	}
	if got.FullName != actor.FullName || got.Bio != actor.Bio {
		t.Fatalf("GetByID = %+v, want %+v", got, actor)
	}
}

func TestGetByIDMissingReturnsNil(t *testing.T) {
	db := openTestDB(t)
	repo := New[model.Actor](db)

	got, err := repo.GetByID(context.Background(), 999999999)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got != nil {
		t.Fatalf("GetByID of unknown id = %+v, want nil", got)
	}
}

func TestUpdateRejectsIDMismatch(t *testing.T) {
	db := openTestDB(t)
	repo := New[model.Actor](db)
	ctx := context.Background()

	actor := testActor(fmt.Sprintf("Mismatch %d", time.Now().UnixNano()))
	if err := repo.Add(ctx, actor); err != nil {
		t.Fatalf("Add: %v", err)
	}
	t.Cleanup(func() {
		db.Unscoped().Delete(actor)
	})

	err := repo.Update(ctx, actor.ID+1, actor)
	if !errors.Is(err, ErrIDMismatch) {
		t.Fatalf("Update with mismatched id returned %v, want ErrIDMismatch", err)
	}

	actor.Bio = "Updated bio text, long enough to satisfy the length rule."
	if err := repo.Update(ctx, actor.ID, actor); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := repo.GetByID(ctx, actor.ID)
	if err != nil || got == nil {
		t.Fatalf("GetByID after update = (%v, %v)", got, err)
	}
	if got.Bio != actor.Bio {
		t.Fatalf("update not persisted: bio = %q", got.Bio)
	}
}

func TestDelete(t *testing.T) {
	db := openTestDB(t)
	repo := New[model.Actor](db)
	ctx := context.Background()

	actor := testActor(fmt.Sprintf("Delete %d", time.Now().UnixNano()))
	if err := repo.Add(ctx, actor); err != nil {
		t.Fatalf("Add: %v", err)
	}

	if err := repo.Delete(ctx, actor.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	got, err := repo.GetByID(ctx, actor.ID)
	if err != nil {
		t.Fatalf("GetByID after delete: %v", err)
	}
	if got != nil {
		t.Fatalf("actor still readable after delete: %+v", got)
	}

	if err := repo.Delete(ctx, actor.ID); !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("Delete of missing row returned %v, want ErrRecordNotFound", err)
	}
}

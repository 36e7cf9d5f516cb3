package cart

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"

	"etickets/model"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestTotal(t *testing.T) {
	items := []model.ShoppingCartItem{
		{Movie: model.Movie{Price: 20}, Amount: 3},
		{Movie: model.Movie{Price: 14.5}, Amount: 1},
	}

	if got := Total(items); got != 74.5 {
		t.Fatalf("Total = %v, want 74.5", got)
	}
	if got := Total(nil); got != 0 {
		t.Fatalf("Total(nil) = %v, want 0", got)
	}
}

func TestLockSessionIsStableAndBounded(t *testing.T) {
	if lockSession("session-a") != lockSession("session-a") {
		t.Fatal("same session id mapped to different locks")
	}

	distinct := make(map[*sync.Mutex]bool)
	for i := 0; i < 10000; i++ {
		distinct[lockSession(uuid.New().String())] = true
	}
	if len(distinct) > len(sessionLocks) {
		t.Fatalf("%d distinct locks handed out, stripe array holds %d", len(distinct), len(sessionLocks))
	}
}

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
	err = db.AutoMigrate(&model.Cinema{}, &model.Producer{}, &model.Movie{}, &model.ShoppingCartItem{})
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func testMovie(t *testing.T, db *gorm.DB, name string, price float64) *model.Movie {
	t.Helper()
	movie := model.Movie{
		Name:        name,
		Description: "fixture",
		Price:       price,
		ImageURL:    "https://example.com/poster.png",
		Category:    "ACTION",
		Slug:        fmt.Sprintf("cart-test-%s", uuid.New().String()),
	}
	if err := db.Create(&movie).Error; err != nil {
		t.Fatalf("create movie fixture: %v", err)
	}
	t.Cleanup(func() {
		db.Unscoped().Delete(&movie)
	})
	return &movie
}

func TestShoppingCartLifecycle(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	movie := testMovie(t, db, "Cart Lifecycle Movie", 15)
	other := testMovie(t, db, "Cart Other Movie", 9)

	sc := New(db, uuid.New().String())
	t.Cleanup(func() {
		sc.Clear(ctx)
	})

	// Adding the same movie twice merges into one line.
	if err := sc.AddItem(ctx, movie); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if err := sc.AddItem(ctx, movie); err != nil {
		t.Fatalf("AddItem again: %v", err)
	}
	if err := sc.AddItem(ctx, other); err != nil {
		t.Fatalf("AddItem other: %v", err)
	}

	items, err := sc.GetItems(ctx)
	if err != nil {
		t.Fatalf("GetItems: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("cart has %d lines, want 2", len(items))
	}
	if items[0].MovieId != movie.ID || items[0].Amount != 2 {
		t.Fatalf("first line = %+v, want movie %d with amount 2", items[0], movie.ID)
	}

	total, err := sc.GetTotal(ctx)
	if err != nil {
		t.Fatalf("GetTotal: %v", err)
	}
	if total != 39 {
		t.Fatalf("total = %v, want 39", total)
	}

	// Removing decrements first, then drops the line at zero.
	if err := sc.RemoveItem(ctx, movie); err != nil {
		t.Fatalf("RemoveItem: %v", err)
	}
	items, _ = sc.GetItems(ctx)
	if len(items) != 2 || items[0].Amount != 1 {
		t.Fatalf("after decrement: %+v, want amount 1 on first line", items)
	}

	if err := sc.RemoveItem(ctx, movie); err != nil {
		t.Fatalf("RemoveItem to zero: %v", err)
	}
	items, _ = sc.GetItems(ctx)
	if len(items) != 1 || items[0].MovieId != other.ID {
		t.Fatalf("after drop: %+v, want only movie %d", items, other.ID)
	}

	// Removing a movie that is not in the cart is a no-op.
	if err := sc.RemoveItem(ctx, movie); err != nil {
		t.Fatalf("RemoveItem of absent movie: %v", err)
	}

	if err := sc.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	items, _ = sc.GetItems(ctx)
	if len(items) != 0 {
		t.Fatalf("cart not empty after Clear: %+v", items)
	}
}

func TestMergeFromGuestSession(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	shared := testMovie(t, db, "Merge Shared Movie", 10)
	guestOnly := testMovie(t, db, "Merge Guest Movie", 7)

	guest := New(db, uuid.New().String())
	user := New(db, uuid.New().String())
	t.Cleanup(func() {
		guest.Clear(ctx)
		user.Clear(ctx)
	})

	// Guest cart: shared x2, guestOnly x1. User cart: shared x1.
	for i := 0; i < 2; i++ {
		if err := guest.AddItem(ctx, shared); err != nil {
			t.Fatalf("AddItem to guest cart: %v", err)
		}
	}
	if err := guest.AddItem(ctx, guestOnly); err != nil {
		t.Fatalf("AddItem to guest cart: %v", err)
	}
	if err := user.AddItem(ctx, shared); err != nil {
		t.Fatalf("AddItem to user cart: %v", err)
	}

	if err := user.MergeFrom(ctx, guest.ID); err != nil {
		t.Fatalf("MergeFrom: %v", err)
	}

	leftovers, err := guest.GetItems(ctx)
	if err != nil {
		t.Fatalf("GetItems on guest cart: %v", err)
	}
	if len(leftovers) != 0 {
		t.Fatalf("guest cart still holds %d lines after merge", len(leftovers))
	}

	items, err := user.GetItems(ctx)
	if err != nil {
		t.Fatalf("GetItems on user cart: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("user cart has %d lines after merge, want 2", len(items))
	}
	byMovie := make(map[uint]int)
	for _, item := range items {
		byMovie[item.MovieId] = item.Amount
	}
	if byMovie[shared.ID] != 3 {
		t.Fatalf("shared movie amount = %d after merge, want 3", byMovie[shared.ID])
	}
	if byMovie[guestOnly.ID] != 1 {
		t.Fatalf("guest-only movie amount = %d after merge, want 1", byMovie[guestOnly.ID])
	}

	// Merging the now-empty guest session again changes nothing.
	if err := user.MergeFrom(ctx, guest.ID); err != nil {
		t.Fatalf("second MergeFrom: %v", err)
	}
	total, err := user.GetTotal(ctx)
	if err != nil {
		t.Fatalf("GetTotal: %v", err)
	}
	if total != 37 {
		t.Fatalf("total after merge = %v, want 37", total)
	}
}

func TestMergeFromSelfIsNoop(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	movie := testMovie(t, db, "Merge Self Movie", 5)

	sc := New(db, uuid.New().String())
	t.Cleanup(func() {
		sc.Clear(ctx)
	})

	if err := sc.AddItem(ctx, movie); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if err := sc.MergeFrom(ctx, sc.ID); err != nil {
		t.Fatalf("MergeFrom(self): %v", err)
	}
	if err := sc.MergeFrom(ctx, ""); err != nil {
		t.Fatalf("MergeFrom(empty): %v", err)
	}

	items, err := sc.GetItems(ctx)
	if err != nil {
		t.Fatalf("GetItems: %v", err)
	}
	if len(items) != 1 || items[0].Amount != 1 {
		t.Fatalf("cart changed by self-merge: %+v", items)
	}
}

func TestShoppingCartSessionIsolation(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	movie := testMovie(t, db, "Cart Isolation Movie", 8)

	first := New(db, uuid.New().String())
	second := New(db, uuid.New().String())
	t.Cleanup(func() {
		first.Clear(ctx)
		second.Clear(ctx)
	})

	if err := first.AddItem(ctx, movie); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	items, err := second.GetItems(ctx)
	if err != nil {
		t.Fatalf("GetItems: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("second session sees %d lines from the first, want 0", len(items))
	}
}

package service

import (
	"context"
	"os"
	"strings"
	"testing"

	"etickets/constants"
	"etickets/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestOrderTotal(t *testing.T) {
	items := []model.ShoppingCartItem{
		{Movie: model.Movie{Price: 39.5}, Amount: 2},
		{Movie: model.Movie{Price: 10}, Amount: 1},
	}

	if got := OrderTotal(items); got != 89 {
		t.Fatalf("OrderTotal = %v, want 89", got)
	}
	if got := OrderTotal(nil); got != 0 {
		t.Fatalf("OrderTotal(nil) = %v, want 0", got)
	}
}

func TestNewOrderCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code := NewOrderCode()
		if !strings.HasPrefix(code, "ORD-") {
			t.Fatalf("order code %q missing ORD- prefix", code)
		}
		if len(code) != 12 {
			t.Fatalf("order code %q has length %d, want 12", code, len(code))
		}
		if code != strings.ToUpper(code) {
			t.Fatalf("order code %q is not upper case", code)
		}
		if seen[code] {
			t.Fatalf("order code %q repeated", code)
		}
		seen[code] = true
	}
}

func openOrdersTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	err = db.AutoMigrate(&model.Cinema{}, &model.Producer{}, &model.Movie{}, &model.Order{}, &model.OrderItem{})
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestStoreOrderAndRoleVisibility(t *testing.T) {
	db := openOrdersTestDB(t)
	svc := NewOrdersService(db)
	ctx := context.Background()

	movie := model.Movie{
		Name:        "Orders Test Movie " + NewOrderCode(),
		Description: "fixture",
		Price:       12.5,
		ImageURL:    "https://example.com/poster.png",
		Category:    "DRAMA",
		Slug:        "orders-test-" + strings.ToLower(NewOrderCode()),
	}
	if err := db.Create(&movie).Error; err != nil {
		t.Fatalf("create movie fixture: %v", err)
	}
	t.Cleanup(func() {
		db.Unscoped().Delete(&movie)
	})

	items := []model.ShoppingCartItem{
		{MovieId: movie.ID, Movie: movie, Amount: 2},
	}

	const buyerId, otherId = 990001, 990002

	order, err := svc.StoreOrder(ctx, items, buyerId, "buyer@example.com")
	if err != nil {
		t.Fatalf("StoreOrder: %v", err)
	}
	t.Cleanup(func() {
		db.Unscoped().Where("order_id = ?", order.ID).Delete(&model.OrderItem{})
		db.Unscoped().Delete(order)
	})

	if order.Total != 25 {
		t.Fatalf("order total = %v, want 25", order.Total)
	}
	if len(order.Items) != 1 || order.Items[0].Price != movie.Price {
		t.Fatalf("order items = %+v, want one line at unit price %v", order.Items, movie.Price)
	}

	if _, err := svc.StoreOrder(ctx, nil, buyerId, "buyer@example.com"); err == nil {
		t.Fatal("StoreOrder with empty cart should fail")
	}

	own, err := svc.GetOrdersByUserIDAndRole(ctx, buyerId, constants.ROLE_USER)
	if err != nil {
		t.Fatalf("GetOrdersByUserIDAndRole(user): %v", err)
	}
	for _, o := range own {
		if o.UserId != buyerId {
			t.Fatalf("non-admin listing leaked order of user %d", o.UserId)
		}
	}
	if len(own) == 0 {
		t.Fatal("buyer should see their own order")
	}

	foreign, err := svc.GetOrdersByUserIDAndRole(ctx, otherId, constants.ROLE_USER)
	if err != nil {
		t.Fatalf("GetOrdersByUserIDAndRole(other user): %v", err)
	}
	for _, o := range foreign {
		if o.ID == order.ID {
			t.Fatal("another user can see the buyer's order")
		}
	}

	all, err := svc.GetOrdersByUserIDAndRole(ctx, otherId, constants.ROLE_ADMIN)
	if err != nil {
		t.Fatalf("GetOrdersByUserIDAndRole(admin): %v", err)
	}
	found := false
	for _, o := range all {
		if o.ID == order.ID {
			found = true
		}
	}
	if !found {
		t.Fatal("admin listing should include every order")
	}

	byCode, err := svc.GetOrderByPublicCode(ctx, order.PublicCode)
	if err != nil {
		t.Fatalf("GetOrderByPublicCode: %v", err)
	}
	if byCode == nil || byCode.ID != order.ID {
		t.Fatalf("GetOrderByPublicCode(%q) = %v, want order %d", order.PublicCode, byCode, order.ID)
	}

	missing, err := svc.GetOrderByPublicCode(ctx, "ORD-DOESNOTX")
	if err != nil || missing != nil {
		t.Fatalf("GetOrderByPublicCode(unknown) = (%v, %v), want (nil, nil)", missing, err)
	}
}

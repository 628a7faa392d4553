package catalog

import (
	"context"
	"testing"

	"github.com/techverse/aiverse/internal/db"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	if err := Seed(context.Background(), database); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	return NewStore(database)
}

func TestGetAllProducts(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	products, err := store.GetAllProducts(ctx)
	if err != nil {
		t.Fatalf("GetAllProducts: %v", err)
	}
	if len(products) != 6 {
		t.Fatalf("expected 6 products, got %d", len(products))
	}

	// Ordered by name.
	for i := 1; i < len(products); i++ {
		if products[i-1].Name > products[i].Name {
			t.Errorf("products not sorted: %q before %q", products[i-1].Name, products[i].Name)
		}
	}
}

func TestStockStatusComputation(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		status string
	}{
		{"iPhone 15", StatusInStock},      // qty 25 > reorder 5
		{"Galaxy S24", StatusLowStock},    // qty 3 <= reorder 5, > 0
		{"MacBook Air M3", StatusOutOfStock}, // qty 0
	}

	for _, tt := range tests {
		p, err := store.CheckStock(ctx, 0, tt.name)
		if err != nil {
			t.Fatalf("CheckStock(%s): %v", tt.name, err)
		}
		if p == nil {
			t.Fatalf("CheckStock(%s): not found", tt.name)
		}
		if p.StockStatus != tt.status {
			t.Errorf("%s: status = %q, want %q", tt.name, p.StockStatus, tt.status)
		}
	}
}

func TestCheckStockFuzzyMatch(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	// Case-insensitive substring match.
	p, err := store.CheckStock(ctx, 0, "iphone")
	if err != nil {
		t.Fatalf("CheckStock: %v", err)
	}
	if p == nil || p.Name != "iPhone 15" {
		t.Fatalf("fuzzy match failed: %+v", p)
	}
	if p.CategoryName != "Phones" {
		t.Errorf("category = %q, want Phones", p.CategoryName)
	}

	// No match.
	p, err = store.CheckStock(ctx, 0, "toaster")
	if err != nil {
		t.Fatalf("CheckStock: %v", err)
	}
	if p != nil {
		t.Errorf("expected nil for unknown product, got %+v", p)
	}
}

func TestCheckStockByID(t *testing.T) {
	store := setupTestStore(t)

	p, err := store.CheckStock(context.Background(), 1, "")
	if err != nil {
		t.Fatalf("CheckStock: %v", err)
	}
	if p == nil || p.ID != 1 {
		t.Fatalf("lookup by id failed: %+v", p)
	}
}

func TestGetOrderInfo(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	o, err := store.GetOrderInfo(ctx, 1)
	if err != nil {
		t.Fatalf("GetOrderInfo: %v", err)
	}
	if o == nil {
		t.Fatal("order 1 not found")
	}
	if o.Status == nil || *o.Status != "Shipped" {
		t.Errorf("status = %v, want Shipped", o.Status)
	}
	if o.DeliveryDate == nil || *o.DeliveryDate != "2025-08-25" {
		t.Errorf("delivery date = %v", o.DeliveryDate)
	}
	if o.PaymentStatus == nil || *o.PaymentStatus != "Paid" {
		t.Errorf("payment status = %v", o.PaymentStatus)
	}
	if len(o.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(o.Items))
	}
	if o.Items[0].Name != "iPhone 15" {
		t.Errorf("first item = %q", o.Items[0].Name)
	}
}

func TestGetOrderInfoAbsentFields(t *testing.T) {
	store := setupTestStore(t)

	// Order 2 has no delivery row.
	o, err := store.GetOrderInfo(context.Background(), 2)
	if err != nil {
		t.Fatalf("GetOrderInfo: %v", err)
	}
	if o == nil {
		t.Fatal("order 2 not found")
	}
	if o.Status != nil {
		t.Errorf("expected nil status, got %q", *o.Status)
	}
	if o.DeliveryDate != nil {
		t.Errorf("expected nil delivery date, got %q", *o.DeliveryDate)
	}
	if o.PaymentStatus == nil || *o.PaymentStatus != "Pending" {
		t.Errorf("payment status = %v, want Pending", o.PaymentStatus)
	}
}

func TestGetOrderInfoNotFound(t *testing.T) {
	store := setupTestStore(t)

	o, err := store.GetOrderInfo(context.Background(), 99999)
	if err != nil {
		t.Fatalf("GetOrderInfo: %v", err)
	}
	if o != nil {
		t.Errorf("expected nil for unknown order, got %+v", o)
	}
}

func TestGetRecentOrdersForUser(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	orders, err := store.GetRecentOrdersForUser(ctx, 1, 5)
	if err != nil {
		t.Fatalf("GetRecentOrdersForUser: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}
	// Newest first.
	if orders[0].ID != 2 {
		t.Errorf("expected order 2 first, got %d", orders[0].ID)
	}

	// Unknown or invalid user ids give empty, not an error.
	orders, err = store.GetRecentOrdersForUser(ctx, 42, 5)
	if err != nil || len(orders) != 0 {
		t.Errorf("unknown user: got (%v, %v)", orders, err)
	}
	orders, err = store.GetRecentOrdersForUser(ctx, 0, 5)
	if err != nil || orders != nil {
		t.Errorf("zero user id: got (%v, %v)", orders, err)
	}
}

func TestGetUserOrders(t *testing.T) {
	store := setupTestStore(t)

	orders, err := store.GetUserOrders(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetUserOrders: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}
	if orders[0].ID != 2 || orders[1].ID != 1 {
		t.Errorf("unexpected order: %d then %d", orders[0].ID, orders[1].ID)
	}
	if orders[1].PaymentStatus == nil || *orders[1].PaymentStatus != "Paid" {
		t.Errorf("order 1 payment status = %v, want Paid", orders[1].PaymentStatus)
	}
}

func TestGetUserInfo(t *testing.T) {
	store := setupTestStore(t)

	c, err := store.GetUserInfo(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetUserInfo: %v", err)
	}
	if c == nil || c.Email != "demo@techverse.example" {
		t.Fatalf("unexpected client: %+v", c)
	}

	c, err = store.GetUserInfo(context.Background(), 12345)
	if err != nil {
		t.Fatalf("GetUserInfo: %v", err)
	}
	if c != nil {
		t.Errorf("expected nil for unknown client")
	}
}

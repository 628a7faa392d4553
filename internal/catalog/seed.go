package catalog

import (
	"context"
	"fmt"

	"github.com/techverse/aiverse/internal/db"
)

// Seed loads a small demo catalog so the assistant can answer product and
// order questions out of the box. It is safe to call only on an empty
// database.
func Seed(ctx context.Context, database *db.DB) error {
	tx, err := database.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning seed transaction: %w", err)
	}
	defer tx.Rollback()

	categories := []string{"Phones", "Laptops", "Accessories"}
	for _, name := range categories {
		if _, err := tx.ExecContext(ctx, `INSERT INTO categories (name) VALUES (?)`, name); err != nil {
			return fmt.Errorf("seeding category %s: %w", name, err)
		}
	}

	products := []struct {
		name        string
		description string
		price       float64
		qty         int
		reorder     int
		points      int
		category    int
	}{
		{"iPhone 15", "Latest-generation smartphone, 128GB", 999.00, 25, 5, 100, 1},
		{"Galaxy S24", "Flagship Android smartphone", 899.00, 3, 5, 90, 1},
		{"ThinkPad X1 Carbon", "14-inch business ultrabook", 1549.00, 12, 3, 150, 2},
		{"MacBook Air M3", "13-inch laptop, 16GB RAM", 1299.00, 0, 2, 130, 2},
		{"Wireless Mouse", "Ergonomic 2.4GHz mouse", 29.99, 140, 20, 5, 3},
		{"USB-C Charger 65W", "GaN fast charger", 49.99, 8, 10, 10, 3},
	}
	for _, p := range products {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO products (name, description, price, stock_qty, reorder_level, reward_points, category_id)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			p.name, p.description, p.price, p.qty, p.reorder, p.points, p.category)
		if err != nil {
			return fmt.Errorf("seeding product %s: %w", p.name, err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO clients (name, email) VALUES ('Demo Customer', 'demo@techverse.example')`); err != nil {
		return fmt.Errorf("seeding client: %w", err)
	}

	orders := []struct {
		clientID int
		date     string
		total    float64
	}{
		{1, "2025-08-01", 1028.99},
		{1, "2025-08-18", 49.99},
	}
	for _, o := range orders {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO orders (client_id, order_date, total) VALUES (?, ?, ?)`,
			o.clientID, o.date, o.total); err != nil {
			return fmt.Errorf("seeding order: %w", err)
		}
	}

	seedStmts := []string{
		`INSERT INTO order_items (order_id, product_id, quantity, price) VALUES (1, 1, 1, 999.00)`,
		`INSERT INTO order_items (order_id, product_id, quantity, price) VALUES (1, 5, 1, 29.99)`,
		`INSERT INTO order_items (order_id, product_id, quantity, price) VALUES (2, 6, 1, 49.99)`,
		`INSERT INTO deliveries (order_id, status, delivery_date, courier) VALUES (1, 'Shipped', '2025-08-25', 'DHL')`,
		`INSERT INTO payments (order_id, status, amount) VALUES (1, 'Paid', 1028.99)`,
		`INSERT INTO payments (order_id, status, amount) VALUES (2, 'Pending', 49.99)`,
	}
	for _, stmt := range seedStmts {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("seeding order details: %w", err)
		}
	}

	return tx.Commit()
}

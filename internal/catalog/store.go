// Package catalog is the read side of the e-commerce database that the chat
// pipeline consults: products and their stock status, orders with delivery
// and payment state, and per-client order history.
package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/techverse/aiverse/internal/db"
)

// stockStatusCase computes the display stock status from quantity and
// reorder level, matching what the storefront shows.
const stockStatusCase = `CASE
    WHEN p.stock_qty > p.reorder_level THEN 'In Stock'
    WHEN p.stock_qty > 0 THEN 'Low Stock'
    ELSE 'Out of Stock'
END`

const productColumns = `p.id, p.name, p.description, p.price, p.stock_qty, p.reorder_level, p.reward_points,
    COALESCE(c.name, ''), ` + stockStatusCase

// Store provides read access to the catalog and order tables.
type Store struct {
	db *db.DB
}

// NewStore creates a catalog store over the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

func scanProduct(row interface{ Scan(...any) error }) (*Product, error) {
	var p Product
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.StockQty, &p.ReorderLevel,
		&p.RewardPoints, &p.CategoryName, &p.StockStatus)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetAllProducts returns every non-deleted product ordered by name.
func (s *Store) GetAllProducts(ctx context.Context) ([]Product, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+productColumns+`
		 FROM products p
		 LEFT JOIN categories c ON p.category_id = c.id
		 WHERE p.deleted = 0
		 ORDER BY p.name`)
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

// CheckStock looks a product up by id or fuzzy name (case-insensitive
// substring). Pass productID <= 0 to search by name. Returns (nil, nil)
// when nothing matches.
func (s *Store) CheckStock(ctx context.Context, productID int, productName string) (*Product, error) {
	query := `SELECT ` + productColumns + `
		 FROM products p
		 LEFT JOIN categories c ON p.category_id = c.id
		 WHERE p.deleted = 0 AND `

	var row *sql.Row
	switch {
	case productID > 0:
		row = s.db.QueryRowContext(ctx, query+`p.id = ?`, productID)
	case productName != "":
		row = s.db.QueryRowContext(ctx, query+`p.name LIKE ?`, "%"+productName+"%")
	default:
		return nil, nil
	}

	p, err := scanProduct(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("checking stock: %w", err)
	}
	return p, nil
}

// GetOrderInfo returns the full record for one order, including delivery
// status, payment status, and line items. Returns (nil, nil) when the order
// does not exist.
func (s *Store) GetOrderInfo(ctx context.Context, orderID int) (*Order, error) {
	var o Order
	var status, deliveryDate, courier, paymentStatus sql.NullString

	err := s.db.QueryRowContext(ctx,
		`SELECT o.id, o.client_id, o.order_date, o.total,
		        d.status, d.delivery_date, d.courier, pay.status
		 FROM orders o
		 LEFT JOIN deliveries d ON o.id = d.order_id
		 LEFT JOIN payments pay ON o.id = pay.order_id
		 WHERE o.id = ?`, orderID,
	).Scan(&o.ID, &o.ClientID, &o.Date, &o.Total, &status, &deliveryDate, &courier, &paymentStatus)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting order %d: %w", orderID, err)
	}

	if status.Valid {
		o.Status = &status.String
	}
	if deliveryDate.Valid {
		o.DeliveryDate = &deliveryDate.String
	}
	if courier.Valid {
		o.Courier = &courier.String
	}
	if paymentStatus.Valid {
		o.PaymentStatus = &paymentStatus.String
	}

	items, err := s.orderItems(ctx, orderID)
	if err != nil {
		return nil, err
	}
	o.Items = items

	return &o, nil
}

func (s *Store) orderItems(ctx context.Context, orderID int) ([]OrderItem, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT oi.product_id, p.name, oi.quantity, oi.price
		 FROM order_items oi
		 JOIN products p ON oi.product_id = p.id
		 WHERE oi.order_id = ?
		 ORDER BY oi.id`, orderID)
	if err != nil {
		return nil, fmt.Errorf("listing order items: %w", err)
	}
	defer rows.Close()

	var items []OrderItem
	for rows.Next() {
		var it OrderItem
		if err := rows.Scan(&it.ProductID, &it.Name, &it.Quantity, &it.Price); err != nil {
			return nil, fmt.Errorf("scanning order item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// GetRecentOrdersForUser returns up to limit most-recent orders for a client,
// newest first.
func (s *Store) GetRecentOrdersForUser(ctx context.Context, userID int, limit int) ([]OrderSummary, error) {
	if userID <= 0 {
		return nil, nil
	}
	if limit <= 0 {
		limit = 5
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT o.id, o.order_date, o.total, d.status, pay.status
		 FROM orders o
		 LEFT JOIN deliveries d ON o.id = d.order_id
		 LEFT JOIN payments pay ON o.id = pay.order_id
		 WHERE o.client_id = ?
		 ORDER BY o.id DESC
		 LIMIT ?`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing recent orders: %w", err)
	}
	defer rows.Close()

	return scanOrderSummaries(rows)
}

// GetUserOrders returns all orders for a client, newest first.
func (s *Store) GetUserOrders(ctx context.Context, userID int) ([]OrderSummary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT o.id, o.order_date, o.total, d.status, pay.status
		 FROM orders o
		 LEFT JOIN deliveries d ON o.id = d.order_id
		 LEFT JOIN payments pay ON o.id = pay.order_id
		 WHERE o.client_id = ?
		 ORDER BY o.id DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("listing user orders: %w", err)
	}
	defer rows.Close()

	return scanOrderSummaries(rows)
}

func scanOrderSummaries(rows *sql.Rows) ([]OrderSummary, error) {
	var orders []OrderSummary
	for rows.Next() {
		var o OrderSummary
		var status, paymentStatus sql.NullString
		if err := rows.Scan(&o.ID, &o.Date, &o.Total, &status, &paymentStatus); err != nil {
			return nil, fmt.Errorf("scanning order summary: %w", err)
		}
		if status.Valid {
			o.Status = &status.String
		}
		if paymentStatus.Valid {
			o.PaymentStatus = &paymentStatus.String
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

// GetUserInfo returns a client record, or (nil, nil) when the id is unknown.
func (s *Store) GetUserInfo(ctx context.Context, userID int) (*Client, error) {
	var c Client
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, email FROM clients WHERE id = ?`, userID,
	).Scan(&c.ID, &c.Name, &c.Email)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting client %d: %w", userID, err)
	}
	return &c, nil
}

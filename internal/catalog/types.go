package catalog

// Stock status values computed from quantity vs. reorder level.
const (
	StatusInStock    = "In Stock"
	StatusLowStock   = "Low Stock"
	StatusOutOfStock = "Out of Stock"
)

// Product is a catalog row enriched with its category name and a computed
// stock status.
type Product struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description,omitempty"`
	Price        float64 `json:"price"`
	StockQty     int     `json:"stock_qty"`
	ReorderLevel int     `json:"reorder_level"`
	RewardPoints int     `json:"reward_points"`
	CategoryName string  `json:"category_name,omitempty"`
	StockStatus  string  `json:"stock_status"`
}

// OrderItem is a single line of an order.
type OrderItem struct {
	ProductID int     `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// Order is a full order record with delivery and payment state joined in.
// Optional fields are pointers: absent means the corresponding row
// (delivery, payment) does not exist yet, and renderers omit the line.
type Order struct {
	ID            int         `json:"id"`
	ClientID      int         `json:"client_id"`
	Date          string      `json:"date"`
	Total         float64     `json:"total"`
	Status        *string     `json:"status,omitempty"`
	DeliveryDate  *string     `json:"delivery_date,omitempty"`
	Courier       *string     `json:"courier,omitempty"`
	PaymentStatus *string     `json:"payment_status,omitempty"`
	Items         []OrderItem `json:"items,omitempty"`
}

// OrderSummary is the compact form used for recent-order listings.
type OrderSummary struct {
	ID            int     `json:"id"`
	Date          string  `json:"date"`
	Total         float64 `json:"total"`
	Status        *string `json:"status,omitempty"`
	PaymentStatus *string `json:"payment_status,omitempty"`
}

// Client is a registered customer.
type Client struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

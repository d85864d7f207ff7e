package models

// Order status constants
const (
	OrderStatusConfirmed  = "confirmed"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// OrderStatuses lists every status the backend accepts.
var OrderStatuses = []string{
	OrderStatusConfirmed,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// ValidOrderStatus reports whether s is one of the five known statuses.
func ValidOrderStatus(s string) bool {
	for _, v := range OrderStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// ShippingAddress represents the structured address collected at checkout
type ShippingAddress struct {
	FullName     string `json:"full_name"`
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2"`
	City         string `json:"city"`
	State        string `json:"state"`
	PostalCode   string `json:"postal_code"`
	Country      string `json:"country"`
	Phone        string `json:"phone"`
}

// OrderItem is an immutable snapshot of a cart line at order-creation time
type OrderItem struct {
	ProductID    string  `json:"product_id"`
	ProductName  string  `json:"product_name"`
	ProductImage string  `json:"product_image"`
	Price        float64 `json:"price"`
	Quantity     int     `json:"quantity"`
	Size         string  `json:"size"`
	Color        string  `json:"color"`
	Subtotal     float64 `json:"subtotal"`
}

// Order represents a placed order
type Order struct {
	ID              string          `json:"id"`
	UserID          string          `json:"user_id"`
	Items           []OrderItem     `json:"items"`
	ShippingAddress ShippingAddress `json:"shipping_address"`
	Total           float64         `json:"total"`
	Status          string          `json:"status"`
	CreatedAt       string          `json:"created_at"`
}

// OrderRequest represents the checkout payload
type OrderRequest struct {
	ShippingAddress ShippingAddress `json:"shipping_address" binding:"required"`
}

// MessageResponse wraps status-only replies such as order-status updates
type MessageResponse struct {
	Message string `json:"message"`
}

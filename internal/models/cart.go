package models

// CartItem represents one line in the cart with resolved product details
type CartItem struct {
	ID           string  `json:"id"`
	ProductID    string  `json:"product_id"`
	ProductName  string  `json:"product_name"`
	ProductImage string  `json:"product_image"`
	Price        float64 `json:"price"`
	Quantity     int     `json:"quantity"`
	Size         string  `json:"size"`
	Color        string  `json:"color"`
	Subtotal     float64 `json:"subtotal"`
}

// Cart represents the full cart as the server reports it
type Cart struct {
	Items     []CartItem `json:"items"`
	Total     float64    `json:"total"`
	ItemCount int        `json:"item_count"`
}

// EmptyCart is the zero value a cart resets to without a credential.
func EmptyCart() Cart {
	return Cart{Items: []CartItem{}}
}

// CartItemRequest represents the request to add an item to the cart
type CartItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
	Size      string `json:"size" binding:"required"`
	Color     string `json:"color" binding:"required"`
}

// CartItemUpdateRequest represents the request to change a line's quantity
type CartItemUpdateRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

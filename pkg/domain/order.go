package domain

// OrderItem is one {product, quantity} pair in an order payload.
type OrderItem struct {
	Product  int `json:"product"`
	Quantity int `json:"quantity"`
}

// OrderRequest is the payload for placing an order.
type OrderRequest struct {
	OrderItems []OrderItem `json:"order_items"`
}

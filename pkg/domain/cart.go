package domain

// CartItem is one line of the locally persisted cart. At most one line exists
// per product id; adding the same product again bumps Qty instead.
type CartItem struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Qty   int     `json:"qty"`
	Image string  `json:"image,omitempty"`
}

// Subtotal returns price * qty for this line.
func (i CartItem) Subtotal() float64 {
	return i.Price * float64(i.Qty)
}

package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Money is a decimal price in the shop's currency. The API serializes prices
// inconsistently (sometimes a JSON number, sometimes a quoted decimal string),
// so unmarshalling accepts both.
type Money float64

func (m *Money) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			*m = 0
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("parse price %q: %w", s, err)
		}
		*m = Money(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*m = Money(v)
	return nil
}

// Product is a catalog entry. Owned by the remote API; read-only here.
type Product struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       Money  `json:"price"`
	Image       string `json:"image,omitempty"`
	Category    int    `json:"category"`
}

// Category is a product grouping used by the catalog filter.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// PlaceholderImage is shown for products without an image of their own.
const PlaceholderImage = "https://via.placeholder.com/400x300"

// ImageURL returns the product image, falling back to the placeholder.
func (p Product) ImageURL() string {
	if p.Image == "" {
		return PlaceholderImage
	}
	return p.Image
}

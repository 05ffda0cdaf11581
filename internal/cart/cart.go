// Package cart implements the locally persisted shopping cart.
package cart

import (
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"github.com/arnuv/shopfront/pkg/domain"
)

// storeKey is the well-known slot the cart JSON lives under.
const storeKey = "cart"

// KV is the slice of the local store the cart needs.
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
}

// Cart holds the single authoritative copy of the shopper's cart. Every
// mutation runs as a locked read-modify-write flushed to the store before the
// lock is released, so two rapid actions cannot lose an update.
type Cart struct {
	mu     sync.Mutex
	kv     KV
	log    *zap.Logger
	items  []domain.CartItem
	loaded bool
}

// New creates a cart service over the given store.
func New(kv KV, log *zap.Logger) *Cart {
	if log == nil {
		log = zap.NewNop()
	}
	return &Cart{kv: kv, log: log}
}

// load populates items from the store. An absent or unparsable value is an
// empty cart, never an error. Caller holds the lock.
func (c *Cart) load() {
	if c.loaded {
		return
	}
	c.loaded = true

	raw, ok, err := c.kv.Get(storeKey)
	if err != nil {
		c.log.Warn("cart read failed, starting empty", zap.Error(err))
		return
	}
	if !ok || raw == "" {
		return
	}
	var items []domain.CartItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		c.log.Warn("cart state unparsable, starting empty", zap.Error(err))
		return
	}
	c.items = items
}

// flush writes the full cart back to the store. Caller holds the lock.
// A write failure is logged; the in-memory copy stays authoritative.
func (c *Cart) flush() {
	data, err := json.Marshal(c.items)
	if err != nil {
		c.log.Error("cart marshal failed", zap.Error(err))
		return
	}
	if err := c.kv.Set(storeKey, string(data)); err != nil {
		c.log.Error("cart persist failed", zap.Error(err))
	}
}

// Add puts one unit of the product in the cart. An existing line for the same
// id gets its quantity bumped instead of a duplicate line.
func (c *Cart) Add(id int, name string, price float64, image string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.load()

	for i := range c.items {
		if c.items[i].ID == id {
			c.items[i].Qty++
			c.flush()
			return
		}
	}
	c.items = append(c.items, domain.CartItem{ID: id, Name: name, Price: price, Qty: 1, Image: image})
	c.flush()
}

// Remove deletes the line at index, preserving the order of the rest.
// An out-of-range index is a silent no-op.
func (c *Cart) Remove(index int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.load()

	if index < 0 || index >= len(c.items) {
		return
	}
	c.items = append(c.items[:index], c.items[index+1:]...)
	c.flush()
}

// Clear empties the cart. Used after a successful order.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.load()

	c.items = nil
	c.flush()
}

// Items returns a copy of the cart lines in order of addition.
func (c *Cart) Items() []domain.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.load()

	out := make([]domain.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// Count returns the number of cart lines.
func (c *Cart) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.load()

	return len(c.items)
}

// Total returns the sum of all line subtotals.
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.load()

	var total float64
	for _, it := range c.items {
		total += it.Subtotal()
	}
	return total
}

// OrderItems transforms the cart into the {product, quantity} pairs an order
// payload wants.
func (c *Cart) OrderItems() []domain.OrderItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.load()

	out := make([]domain.OrderItem, 0, len(c.items))
	for _, it := range c.items {
		out = append(out, domain.OrderItem{Product: it.ID, Quantity: it.Qty})
	}
	return out
}

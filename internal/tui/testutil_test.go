package tui

import (
	"github.com/arnuv/shopfront/internal/cart"
	"github.com/arnuv/shopfront/internal/session"
	"github.com/arnuv/shopfront/pkg/domain"
)

// memKV is an in-memory store for view tests; it satisfies both cart.KV and
// session.KV.
type memKV struct {
	m map[string]string
}

func newMemKV() *memKV { return &memKV{m: map[string]string{}} }

func (k *memKV) Get(key string) (string, bool, error) {
	v, ok := k.m[key]
	return v, ok, nil
}

func (k *memKV) Set(key, value string) error {
	k.m[key] = value
	return nil
}

func (k *memKV) Delete(key string) error {
	delete(k.m, key)
	return nil
}

func newTestCart() *cart.Cart {
	return cart.New(newMemKV(), nil)
}

func newTestSession(loggedIn bool) *session.Session {
	kv := newMemKV()
	s := session.New(kv, nil)
	if loggedIn {
		s.SetPair(domain.TokenPair{Access: "acc", Refresh: "ref"}) //nolint:errcheck
	}
	return s
}

func makeTestProduct(id int, name string, price float64) domain.Product {
	return domain.Product{
		ID:       id,
		Name:     name,
		Price:    domain.Money(price),
		Category: 1,
	}
}

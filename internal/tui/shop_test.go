package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/arnuv/shopfront/pkg/client"
	"github.com/arnuv/shopfront/pkg/domain"
)

func newTestShopModel() shopModel {
	m := newShopModel(nil, newTestCart())
	m.width = 80
	m.height = 24
	m.loading = false
	return m
}

func loadedShop(t *testing.T, products ...domain.Product) shopModel {
	t.Helper()
	m := newTestShopModel()
	m, _ = m.Update(productsLoadedMsg{page: &client.ProductPage{Results: products}})
	return m
}

func TestShopListRendersProductNames(t *testing.T) {
	m := loadedShop(t,
		makeTestProduct(1, "Ceramic Mug", 9.50),
		makeTestProduct(2, "Oak Cutting Board", 24.00),
	)

	view := m.View()
	if !strings.Contains(view, "Ceramic Mug") {
		t.Errorf("expected product name in view, got:\n%s", view)
	}
	if !strings.Contains(view, "Oak Cutting Board") {
		t.Errorf("expected second product name in view, got:\n%s", view)
	}
	if !strings.Contains(view, "$9.50") {
		t.Errorf("expected price in view, got:\n%s", view)
	}
}

func TestShopAddToCartKeepsLiteralName(t *testing.T) {
	name := `O'Brien's "Finest" Teapot`
	m := loadedShop(t, makeTestProduct(7, name, 25.00))

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})

	items := m.cart.Items()
	if len(items) != 1 {
		t.Fatalf("got %d cart items, want 1", len(items))
	}
	if items[0].Name != name {
		t.Errorf("cart item name = %q, want literal %q", items[0].Name, name)
	}
	if !strings.Contains(m.statusMsg, name) {
		t.Errorf("statusMsg = %q, want confirmation naming the product", m.statusMsg)
	}
}

func TestShopAddSameProductTwiceIncrementsQty(t *testing.T) {
	m := loadedShop(t, makeTestProduct(1, "Mug", 9.50))

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})

	items := m.cart.Items()
	if len(items) != 1 {
		t.Fatalf("got %d cart items, want 1", len(items))
	}
	if items[0].Qty != 2 {
		t.Errorf("qty = %d, want 2", items[0].Qty)
	}
}

func TestShopMissingImageFallsBackToPlaceholder(t *testing.T) {
	m := loadedShop(t, makeTestProduct(1, "Mug", 9.50))

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})

	items := m.cart.Items()
	if len(items) != 1 {
		t.Fatalf("got %d cart items, want 1", len(items))
	}
	if items[0].Image != domain.PlaceholderImage {
		t.Errorf("image = %q, want placeholder fallback", items[0].Image)
	}
}

func TestShopSearchActivatesOnSlash(t *testing.T) {
	m := loadedShop(t, makeTestProduct(1, "Mug", 9.50))

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})
	if !m.editing {
		t.Fatal("expected editing=true after '/'")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("m")})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("u")})
	if m.search != "mu" {
		t.Errorf("search = %q, want %q", m.search, "mu")
	}

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.editing {
		t.Error("expected editing=false after enter")
	}
	if cmd == nil {
		t.Error("expected a reload command after committing the search")
	}
	if m.page != 1 {
		t.Errorf("page = %d, want reset to 1", m.page)
	}
}

func TestShopSortCycles(t *testing.T) {
	m := loadedShop(t, makeTestProduct(1, "Mug", 9.50))

	want := []string{"price", "-price", "name"}
	for _, w := range want {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
		if m.sortBy != w {
			t.Fatalf("sortBy = %q, want %q", m.sortBy, w)
		}
	}
}

func TestShopCategoryCycle(t *testing.T) {
	m := loadedShop(t, makeTestProduct(1, "Mug", 9.50))
	m, _ = m.Update(categoriesLoadedMsg{categories: []domain.Category{
		{ID: 10, Name: "Kitchen"},
		{ID: 11, Name: "Garden"},
	}})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
	if got := m.query().Category; got != "10" {
		t.Errorf("category filter = %q, want %q", got, "10")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
	if got := m.query().Category; got != "" {
		t.Errorf("category filter = %q, want wrap back to all", got)
	}
}

func TestShopPagerRespectsCursors(t *testing.T) {
	m := newTestShopModel()
	m, _ = m.Update(productsLoadedMsg{page: &client.ProductPage{
		Results: []domain.Product{makeTestProduct(1, "Mug", 9.50)},
	}})

	// No next cursor: n must not move.
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	if cmd != nil || m.page != 1 {
		t.Errorf("page = %d with cmd %v, want no move without next cursor", m.page, cmd)
	}

	m, _ = m.Update(productsLoadedMsg{page: &client.ProductPage{
		Results: []domain.Product{makeTestProduct(1, "Mug", 9.50)},
		Next:    "http://x/products/?page=2",
	}})
	m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	if cmd == nil || m.page != 2 {
		t.Errorf("page = %d, want 2 with a reload command", m.page)
	}
}

func TestShopPriceFilterInput(t *testing.T) {
	m := loadedShop(t, makeTestProduct(1, "Mug", 9.50))

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("f")})
	if m.priceField != priceFieldMin {
		t.Fatal("expected min price field active after 'f'")
	}

	for _, r := range "5abc" { // letters must be ignored
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	if m.minPrice != "5" {
		t.Errorf("minPrice = %q, want %q", m.minPrice, "5")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	for _, r := range "20" {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Error("expected a reload command after committing the price band")
	}
	q := m.query()
	if q.MinPrice != "5" || q.MaxPrice != "20" {
		t.Errorf("price band = (%q, %q), want (5, 20)", q.MinPrice, q.MaxPrice)
	}
}

func TestShopDetailView(t *testing.T) {
	p := makeTestProduct(1, "Ceramic Mug", 9.50)
	p.Description = "A mug for hot drinks."
	m := loadedShop(t, p)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !m.detail {
		t.Fatal("expected detail=true after enter")
	}

	view := m.View()
	if !strings.Contains(view, "Ceramic Mug") || !strings.Contains(view, "A mug for hot drinks.") {
		t.Errorf("detail view missing product info, got:\n%s", view)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.detail {
		t.Error("expected detail=false after esc")
	}
}

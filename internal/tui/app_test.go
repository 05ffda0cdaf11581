package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestApp(t *testing.T) App {
	t.Helper()
	a := NewApp(nil, newTestCart(), newTestSession(false), "test")
	m, _ := a.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return m.(App)
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestAppTabSwitching(t *testing.T) {
	a := newTestApp(t)

	m, _ := a.Update(key("2"))
	a = m.(App)
	if a.view != viewCart {
		t.Fatalf("expected cart view, got %d", a.view)
	}
	if !strings.Contains(a.View(), "YOUR CART") {
		t.Error("expected cart body after switching tabs")
	}

	m, _ = a.Update(key("3"))
	a = m.(App)
	if a.view != viewAccount {
		t.Fatalf("expected account view, got %d", a.view)
	}

	m, _ = a.Update(key("1"))
	a = m.(App)
	if a.view != viewShop {
		t.Fatalf("expected shop view, got %d", a.view)
	}
}

func TestAppQuitKey(t *testing.T) {
	a := newTestApp(t)
	_, cmd := a.Update(key("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected tea.QuitMsg, got %T", cmd())
	}
}

func TestAppHeaderShowsCartBadge(t *testing.T) {
	a := newTestApp(t)
	a.cart.Add(1, "Teapot", 10, "")
	a.cart.Add(2, "Kettle", 5, "")

	if !strings.Contains(a.View(), "cart 2") {
		t.Errorf("expected cart badge with total quantity, got:\n%s", a.View())
	}
}

func TestAppGlobalKeysSuppressedWhileSearching(t *testing.T) {
	a := newTestApp(t)

	m, _ := a.Update(key("/"))
	a = m.(App)
	if !a.shop.editing {
		t.Fatal("expected search editing mode after /")
	}

	// q now belongs to the search box, not the quit binding.
	m, cmd := a.Update(key("q"))
	a = m.(App)
	if cmd != nil {
		if _, ok := cmd().(tea.QuitMsg); ok {
			t.Fatal("q must not quit while a text field is active")
		}
	}
	if a.shop.search != "q" {
		t.Errorf("expected q appended to search, got %q", a.shop.search)
	}
}

package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/arnuv/shopfront/internal/cart"
	"github.com/arnuv/shopfront/internal/session"
	"github.com/arnuv/shopfront/pkg/client"
)

type view int

const (
	viewShop view = iota
	viewCart
	viewAccount
)

// App is the root Bubbletea model.
type App struct {
	client  *client.Client
	cart    *cart.Cart
	sess    *session.Session
	view    view
	shop    shopModel
	cartV   cartModel
	account accountModel
	version string
	width   int
	height  int
}

// NewApp creates the TUI application.
func NewApp(c *client.Client, crt *cart.Cart, sess *session.Session, version string) App {
	return App{
		client:  c,
		cart:    crt,
		sess:    sess,
		shop:    newShopModel(c, crt),
		cartV:   newCartModel(c, crt, sess),
		account: newAccountModel(c, sess),
		version: version,
	}
}

func (a App) Init() tea.Cmd {
	return tea.Batch(a.shop.Init(), a.account.Init())
}

// chromeLines is the vertical space taken by header, tab bar and help bar.
const chromeLines = 4

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		bodyMsg := tea.WindowSizeMsg{Width: msg.Width, Height: msg.Height - chromeLines}
		a.shop, _ = a.shop.Update(bodyMsg)
		a.cartV, _ = a.cartV.Update(bodyMsg)
		a.account, _ = a.account.Update(bodyMsg)
		return a, nil

	case tea.KeyMsg:
		if !a.isEditing() {
			switch msg.String() {
			case "q", "ctrl+c":
				return a, tea.Quit
			case "1":
				if a.view != viewShop {
					a.view = viewShop
				}
				return a, nil
			case "2":
				if a.view != viewCart {
					a.view = viewCart
					return a, a.cartV.Init()
				}
				return a, nil
			case "3":
				if a.view != viewAccount {
					a.view = viewAccount
					return a, a.account.Init()
				}
				return a, nil
			}
		}
		return a.updateActive(msg)
	}
	return a.updateActive(msg)
}

// isEditing reports whether the active view is capturing raw text input, in
// which case global keys must not fire.
func (a App) isEditing() bool {
	return a.view == viewShop && (a.shop.editing || a.shop.priceField != priceFieldOff)
}

func (a App) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.view {
	case viewShop:
		a.shop, cmd = a.shop.Update(msg)
	case viewCart:
		a.cartV, cmd = a.cartV.Update(msg)
	case viewAccount:
		a.account, cmd = a.account.Update(msg)
	}
	return a, cmd
}

func (a App) View() string {
	var b strings.Builder

	// Header: brand left, cart badge right
	brand := " " + renderBrand()
	badge := badgeStyle.Render(fmt.Sprintf("cart %d", a.cart.Count()))
	gap := a.width - lipgloss.Width(brand) - lipgloss.Width(badge) - 1
	if gap < 1 {
		gap = 1
	}
	b.WriteString(brand + strings.Repeat(" ", gap) + badge + "\n")

	// Tab bar
	tabs := []struct {
		key   string
		label string
		v     view
	}{
		{"1", "shop", viewShop},
		{"2", "cart", viewCart},
		{"3", "account", viewAccount},
	}
	var tb strings.Builder
	tb.WriteString(" ")
	for i, t := range tabs {
		if i > 0 {
			tb.WriteString("  ")
		}
		label := t.key + ":" + t.label
		if a.view == t.v {
			tb.WriteString(accentStyle.Bold(true).Render(label))
		} else {
			tb.WriteString(dimStyle.Render(label))
		}
	}
	b.WriteString(tb.String() + "\n\n")

	// Body
	switch a.view {
	case viewShop:
		b.WriteString(a.shop.View())
	case viewCart:
		b.WriteString(a.cartV.View())
	case viewAccount:
		b.WriteString(a.account.View())
	}

	// Help bar
	help := []string{
		helpEntry("j/k", "move"),
		helpEntry("enter", "select"),
		helpEntry("q", "quit"),
	}
	if a.view == viewShop {
		help = append([]string{
			helpEntry("a", "add"),
			helpEntry("/", "search"),
			helpEntry("c", "category"),
			helpEntry("f", "price"),
		}, help...)
	}
	b.WriteString("\n\n " + strings.Join(help, "  ") + "  " + metaStyle.Render("shopfront "+a.version))

	return b.String()
}

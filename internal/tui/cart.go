package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/arnuv/shopfront/internal/cart"
	"github.com/arnuv/shopfront/internal/session"
	"github.com/arnuv/shopfront/pkg/client"
)

type orderResultMsg struct{ err error }

type cartModel struct {
	client    *client.Client
	cart      *cart.Cart
	sess      *session.Session
	cursor    int
	placing   bool
	statusMsg string
	alertMsg  string
	width     int
	height    int
}

func newCartModel(c *client.Client, crt *cart.Cart, sess *session.Session) cartModel {
	return cartModel{client: c, cart: crt, sess: sess}
}

func (m cartModel) Init() tea.Cmd {
	return nil
}

func (m cartModel) Update(msg tea.Msg) (cartModel, tea.Cmd) {
	switch msg := msg.(type) {
	case orderResultMsg:
		m.placing = false
		if msg.err != nil {
			// The cart is left untouched so the user may retry.
			if errors.Is(msg.err, client.ErrSessionExpired) {
				m.alertMsg = "session expired -- run: shopfront login"
			} else {
				m.alertMsg = "failed to place order"
			}
			return m, nil
		}
		m.cart.Clear()
		m.cursor = 0
		m.statusMsg = "order placed successfully!"
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.placing {
			return m, nil
		}
		m.statusMsg = ""
		m.alertMsg = ""
		switch msg.String() {
		case "j", "down":
			if m.cursor < m.cart.Count()-1 {
				m.cursor++
			}
		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case "x":
			m.cart.Remove(m.cursor)
			if n := m.cart.Count(); m.cursor >= n && n > 0 {
				m.cursor = n - 1
			}
		case "enter":
			return m.placeOrder()
		}
	}
	return m, nil
}

// placeOrder checks the local preconditions and submits the cart. An empty
// cart or a logged-out session never reaches the network.
func (m cartModel) placeOrder() (cartModel, tea.Cmd) {
	if m.cart.Count() == 0 {
		m.alertMsg = "cart is empty"
		return m, nil
	}
	if !m.sess.LoggedIn() {
		m.alertMsg = "not logged in -- run: shopfront login"
		return m, nil
	}

	items := m.cart.OrderItems()
	m.placing = true
	c := m.client
	return m, func() tea.Msg {
		return orderResultMsg{err: c.PlaceOrder(context.Background(), items)}
	}
}

func (m cartModel) View() string {
	var b strings.Builder

	b.WriteString(" " + brandStyle.Render("YOUR CART") + "\n")

	sepW := m.width - 2
	if sepW < 4 {
		sepW = 4
	}
	b.WriteString(" " + metaStyle.Render(strings.Repeat("─", sepW)) + "\n")

	if m.statusMsg != "" {
		b.WriteString(" " + statusStyle.Render(m.statusMsg) + "\n")
	}
	if m.alertMsg != "" {
		b.WriteString(" " + alertStyle.Render(m.alertMsg) + "\n")
	}

	items := m.cart.Items()
	if len(items) == 0 {
		b.WriteString(" " + dimStyle.Render("your cart is empty"))
		return b.String()
	}

	const qtyCol, subCol = 6, 10
	for i, it := range items {
		cursor := "  "
		nameStyle := dimStyle
		if i == m.cursor {
			cursor = accentStyle.Render("▸") + " "
			nameStyle = normalStyle.Bold(true)
		}

		nameWidth := m.width - 4 - qtyCol - subCol
		if nameWidth < 10 {
			nameWidth = 10
		}
		name := nameStyle.Render(fmt.Sprintf("%-*s", nameWidth, truncStr(it.Name, nameWidth)))
		qty := metaStyle.Render(fmt.Sprintf("%*s", qtyCol, fmt.Sprintf("x%d", it.Qty)))
		sub := priceStyle.Render(fmt.Sprintf("%*s", subCol, formatPrice(it.Subtotal())))

		b.WriteString(" " + cursor + name + qty + sub + "\n")
	}

	b.WriteString(" " + metaStyle.Render(strings.Repeat("─", sepW)) + "\n")
	total := fmt.Sprintf("total  %s", formatPrice(m.cart.Total()))
	pad := m.width - len("total  ") - 10
	if pad < 1 {
		pad = 1
	}
	b.WriteString(strings.Repeat(" ", pad) + normalStyle.Bold(true).Render(total) + "\n")

	if m.placing {
		b.WriteString("\n " + dimStyle.Render("placing order..."))
	} else {
		b.WriteString("\n " + strings.Join([]string{
			helpEntry("x", "remove"),
			helpEntry("enter", "place order"),
		}, "  "))
	}
	return b.String()
}

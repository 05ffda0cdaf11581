package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/arnuv/shopfront/internal/browser"
	"github.com/arnuv/shopfront/internal/cart"
	"github.com/arnuv/shopfront/pkg/client"
	"github.com/arnuv/shopfront/pkg/domain"
)

// sortOrder is the cycle of catalog sort keys offered by the shop view.
var sortOrder = []string{"name", "price", "-price"}

type productsLoadedMsg struct {
	page *client.ProductPage
	err  error
}

type categoriesLoadedMsg struct {
	categories []domain.Category
	err        error
}

type copyResultMsg struct{ err error }

// priceField tracks which bound of the price band is being edited.
const (
	priceFieldOff = iota
	priceFieldMin
	priceFieldMax
)

type shopModel struct {
	client     *client.Client
	cart       *cart.Cart
	products   []domain.Product
	categories []domain.Category
	catIdx     int // 0 = all categories, else categories[catIdx-1]
	cursor     int
	page       int
	next       string
	prev       string
	search     string
	editing    bool // typing in search
	minPrice   string
	maxPrice   string
	priceField int
	sortBy     string
	detail     bool
	loading    bool
	err        error
	statusMsg  string
	width      int
	height     int
}

func newShopModel(c *client.Client, crt *cart.Cart) shopModel {
	return shopModel{
		client:  c,
		cart:    crt,
		page:    1,
		sortBy:  "name",
		loading: true,
	}
}

func (m shopModel) Init() tea.Cmd {
	return tea.Batch(m.loadProducts(), m.loadCategories())
}

func (m shopModel) query() client.ProductQuery {
	q := client.ProductQuery{
		Page:     m.page,
		Search:   m.search,
		MinPrice: m.minPrice,
		MaxPrice: m.maxPrice,
		Ordering: m.sortBy,
	}
	if m.catIdx > 0 && m.catIdx <= len(m.categories) {
		q.Category = strconv.Itoa(m.categories[m.catIdx-1].ID)
	}
	return q
}

func (m shopModel) loadProducts() tea.Cmd {
	c := m.client
	q := m.query()
	return func() tea.Msg {
		page, err := c.Products(context.Background(), q)
		return productsLoadedMsg{page: page, err: err}
	}
}

func (m shopModel) loadCategories() tea.Cmd {
	c := m.client
	return func() tea.Msg {
		cats, err := c.Categories(context.Background())
		return categoriesLoadedMsg{categories: cats, err: err}
	}
}

func (m shopModel) reload() (shopModel, tea.Cmd) {
	m.loading = true
	return m, m.loadProducts()
}

func (m shopModel) Update(msg tea.Msg) (shopModel, tea.Cmd) {
	switch msg := msg.(type) {
	case productsLoadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.products = msg.page.Results
			m.next = msg.page.Next
			m.prev = msg.page.Previous
		}
		if m.cursor >= len(m.products) {
			m.cursor = 0
		}
		return m, nil

	case categoriesLoadedMsg:
		// A failed category fetch leaves the filter at "all"; the listing
		// still works without it.
		if msg.err == nil {
			m.categories = msg.categories
		}
		return m, nil

	case copyResultMsg:
		if msg.err != nil {
			m.statusMsg = fmt.Sprintf("copy failed: %v", msg.err)
		} else {
			m.statusMsg = "copied!"
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		m.statusMsg = ""
		if m.editing {
			return m.updateSearch(msg)
		}
		if m.priceField != priceFieldOff {
			return m.updatePriceFilter(msg)
		}
		if m.detail {
			return m.updateDetail(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m shopModel) updateSearch(msg tea.KeyMsg) (shopModel, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.editing = false
		m.page = 1
		return m.reload()
	case "esc":
		m.editing = false
		m.search = ""
		m.page = 1
		return m.reload()
	default:
		m.search = editRune(m.search, msg.String())
	}
	return m, nil
}

func (m shopModel) updatePriceFilter(msg tea.KeyMsg) (shopModel, tea.Cmd) {
	switch msg.String() {
	case "enter", "tab":
		if m.priceField == priceFieldMin {
			m.priceField = priceFieldMax
			return m, nil
		}
		m.priceField = priceFieldOff
		m.page = 1
		return m.reload()
	case "esc":
		m.priceField = priceFieldOff
		m.minPrice = ""
		m.maxPrice = ""
		m.page = 1
		return m.reload()
	default:
		if m.priceField == priceFieldMin {
			m.minPrice = editDigits(m.minPrice, msg.String())
		} else {
			m.maxPrice = editDigits(m.maxPrice, msg.String())
		}
	}
	return m, nil
}

func (m shopModel) updateList(msg tea.KeyMsg) (shopModel, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.cursor < len(m.products)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "enter":
		if len(m.products) > 0 {
			m.detail = true
		}
	case "/":
		m.editing = true
		m.search = ""
	case "f":
		m.priceField = priceFieldMin
		m.minPrice = ""
		m.maxPrice = ""
	case "c":
		if len(m.categories) > 0 {
			m.catIdx = (m.catIdx + 1) % (len(m.categories) + 1)
			m.cursor = 0
			m.page = 1
			return m.reload()
		}
	case "s":
		for i, s := range sortOrder {
			if s == m.sortBy {
				m.sortBy = sortOrder[(i+1)%len(sortOrder)]
				break
			}
		}
		m.cursor = 0
		m.page = 1
		return m.reload()
	case "n":
		if m.next != "" {
			m.page++
			m.cursor = 0
			return m.reload()
		}
	case "p":
		if m.prev != "" && m.page > 1 {
			m.page--
			m.cursor = 0
			return m.reload()
		}
	case "a":
		return m.addSelected()
	case "r":
		return m.reload()
	}
	return m, nil
}

func (m shopModel) updateDetail(msg tea.KeyMsg) (shopModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.detail = false
	case "a":
		return m.addSelected()
	case "y":
		if m.cursor < len(m.products) {
			url := m.products[m.cursor].ImageURL()
			return m, func() tea.Msg {
				return copyResultMsg{err: clipboard.WriteAll(url)}
			}
		}
	case "o":
		if m.cursor < len(m.products) {
			browser.Open(m.products[m.cursor].ImageURL()) //nolint:errcheck // best-effort browser open
		}
	}
	return m, nil
}

// addSelected puts the product under the cursor in the cart. The name travels
// as a plain string value, so quotes and other markup-hostile characters reach
// the cart untouched.
func (m shopModel) addSelected() (shopModel, tea.Cmd) {
	if m.cursor >= len(m.products) {
		return m, nil
	}
	p := m.products[m.cursor]
	m.cart.Add(p.ID, p.Name, float64(p.Price), p.ImageURL())
	m.statusMsg = fmt.Sprintf("%s added to cart", p.Name)
	return m, nil
}

func (m shopModel) catLabel() string {
	if m.catIdx > 0 && m.catIdx <= len(m.categories) {
		return m.categories[m.catIdx-1].Name
	}
	return "all"
}

func (m shopModel) View() string {
	if m.detail {
		return m.viewDetail()
	}

	var b strings.Builder

	// Filter bar: search, category, price band, sort
	if m.editing {
		b.WriteString(" " + searchStyle.Render("/ "+m.search+"█"))
	} else if m.search != "" {
		b.WriteString(" " + searchStyle.Render("/ "+m.search))
	} else {
		b.WriteString(" " + dimStyle.Render("/ search..."))
	}
	b.WriteString("   " + categoryStyle.Render("["+m.catLabel()+"]") + " " + helpKeyStyle.Render("c"))
	b.WriteString("   " + m.priceBandLabel())
	b.WriteString("   " + searchStyle.Render(m.sortBy+"↑") + " " + helpKeyStyle.Render("s"))
	b.WriteString("\n")

	// Separator
	sepW := m.width - 2
	if sepW < 4 {
		sepW = 4
	}
	b.WriteString(" " + metaStyle.Render(strings.Repeat("─", sepW)) + "\n")

	if m.statusMsg != "" {
		b.WriteString(" " + statusStyle.Render(m.statusMsg) + "\n")
	}

	if m.loading {
		b.WriteString(" " + dimStyle.Render("loading catalog..."))
		return b.String()
	}
	if m.err != nil {
		b.WriteString(" " + alertStyle.Render("could not load products"))
		return b.String()
	}
	if len(m.products) == 0 {
		b.WriteString(" " + dimStyle.Render("no products found"))
		return b.String()
	}

	b.WriteString(m.viewList())

	// Pager line
	pager := " " + metaStyle.Render(fmt.Sprintf("page %d", m.page))
	if m.prev != "" {
		pager += "  " + helpEntry("p", "prev")
	}
	if m.next != "" {
		pager += "  " + helpEntry("n", "next")
	}
	b.WriteString(pager + "\n")

	return b.String()
}

func (m shopModel) priceBandLabel() string {
	switch m.priceField {
	case priceFieldMin:
		return searchStyle.Render("$ " + m.minPrice + "█ - ")
	case priceFieldMax:
		return searchStyle.Render("$ " + m.minPrice + " - " + m.maxPrice + "█")
	}
	if m.minPrice != "" || m.maxPrice != "" {
		return searchStyle.Render("$ "+m.minPrice+" - "+m.maxPrice) + " " + helpKeyStyle.Render("f")
	}
	return dimStyle.Render("$ any") + " " + helpKeyStyle.Render("f")
}

func (m shopModel) viewList() string {
	var b strings.Builder

	maxVisible := m.height - 6 // filter bar + separator + status + pager + help chrome
	if maxVisible < 3 {
		maxVisible = 3
	}
	start := 0
	if m.cursor >= maxVisible {
		start = m.cursor - maxVisible + 1
	}

	// Right column: price, fixed width
	const priceCol = 10

	for i := start; i < len(m.products) && i < start+maxVisible; i++ {
		p := m.products[i]

		cursor := "  "
		nameStyle := dimStyle
		if i == m.cursor {
			cursor = accentStyle.Render("▸") + " "
			nameStyle = normalStyle.Bold(true)
		}

		nameWidth := m.width - 4 - priceCol
		if nameWidth < 10 {
			nameWidth = 10
		}
		name := nameStyle.Render(fmt.Sprintf("%-*s", nameWidth, truncStr(p.Name, nameWidth)))
		price := priceStyle.Render(fmt.Sprintf("%*s", priceCol, formatPrice(float64(p.Price))))

		b.WriteString(" " + cursor + name + price + "\n")
	}
	return b.String()
}

func (m shopModel) viewDetail() string {
	if m.cursor >= len(m.products) {
		return " " + dimStyle.Render("no product selected")
	}
	p := m.products[m.cursor]

	var b strings.Builder
	b.WriteString(" " + normalStyle.Bold(true).Render(p.Name) + "\n")
	b.WriteString(" " + priceStyle.Render(formatPrice(float64(p.Price))) + "\n\n")

	if p.Description != "" {
		bodyWidth := m.width - 2
		if bodyWidth < 20 {
			bodyWidth = 20
		}
		wrapped := lipgloss.NewStyle().Width(bodyWidth).Render(normalStyle.Render(p.Description))
		b.WriteString(" " + strings.ReplaceAll(wrapped, "\n", "\n ") + "\n\n")
	}

	b.WriteString(" " + metaStyle.Render(p.ImageURL()) + "\n")
	if m.statusMsg != "" {
		b.WriteString("\n " + statusStyle.Render(m.statusMsg) + "\n")
	}

	b.WriteString("\n " + strings.Join([]string{
		helpEntry("a", "add to cart"),
		helpEntry("y", "copy image url"),
		helpEntry("o", "open image"),
		helpEntry("esc", "back"),
	}, "  "))
	return b.String()
}

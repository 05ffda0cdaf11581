package tui

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/arnuv/shopfront/internal/session"
	"github.com/arnuv/shopfront/pkg/client"
	"github.com/arnuv/shopfront/pkg/domain"
)

type meLoadedMsg struct {
	me  *domain.User
	err error
}

type accountModel struct {
	client    *client.Client
	sess      *session.Session
	me        *domain.User
	loading   bool
	failed    bool
	statusMsg string
	width     int
	height    int
}

func newAccountModel(c *client.Client, sess *session.Session) accountModel {
	return accountModel{client: c, sess: sess}
}

// Init fetches the current identity when a token is present. Any failure,
// network errors included, degrades to the login hint.
func (m accountModel) Init() tea.Cmd {
	if !m.sess.LoggedIn() {
		return nil
	}
	return m.loadMe()
}

func (m accountModel) loadMe() tea.Cmd {
	c := m.client
	return func() tea.Msg {
		me, err := c.Me(context.Background())
		return meLoadedMsg{me: me, err: err}
	}
}

func (m accountModel) Update(msg tea.Msg) (accountModel, tea.Cmd) {
	switch msg := msg.(type) {
	case meLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.me = nil
			m.failed = true
			return m, nil
		}
		m.me = msg.me
		m.failed = false
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		m.statusMsg = ""
		switch msg.String() {
		case "L":
			if m.sess.LoggedIn() {
				m.sess.Clear()
				m.me = nil
				m.failed = false
				m.statusMsg = "logged out"
			}
		case "r":
			if m.sess.LoggedIn() {
				m.loading = true
				return m, m.loadMe()
			}
		}
	}
	return m, nil
}

func (m accountModel) View() string {
	var b strings.Builder

	b.WriteString(" " + brandStyle.Render("ACCOUNT") + "\n")
	sepW := m.width - 2
	if sepW < 4 {
		sepW = 4
	}
	b.WriteString(" " + metaStyle.Render(strings.Repeat("─", sepW)) + "\n")

	if m.statusMsg != "" {
		b.WriteString(" " + statusStyle.Render(m.statusMsg) + "\n")
	}

	if m.loading {
		b.WriteString(" " + dimStyle.Render("loading..."))
		return b.String()
	}

	if m.me != nil {
		b.WriteString(" " + normalStyle.Render("signed in as ") + accentStyle.Render(m.me.Username) + "\n")
		if exp, ok := m.sess.ExpiresAt(); ok {
			label := "session expires " + exp.Format(time.RFC822)
			if time.Now().After(exp) {
				label = "session expired (renews on next request)"
			}
			b.WriteString(" " + metaStyle.Render(label) + "\n")
		}
		b.WriteString("\n " + helpEntry("L", "log out") + "  " + helpEntry("r", "refresh"))
		return b.String()
	}

	if m.failed {
		b.WriteString(" " + dimStyle.Render("could not verify your session") + "\n")
	}
	b.WriteString(" " + normalStyle.Render("not signed in") + "\n")
	b.WriteString(" " + dimStyle.Render("run ") + accentStyle.Render("shopfront login") + dimStyle.Render(" in another terminal, then press r"))
	return b.String()
}

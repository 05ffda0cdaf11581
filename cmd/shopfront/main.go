package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/arnuv/shopfront/internal/cart"
	"github.com/arnuv/shopfront/internal/config"
	"github.com/arnuv/shopfront/internal/logging"
	"github.com/arnuv/shopfront/internal/session"
	"github.com/arnuv/shopfront/internal/store"
	"github.com/arnuv/shopfront/internal/tui"
	"github.com/arnuv/shopfront/pkg/client"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "version", "-v":
			fmt.Println("shopfront " + version)
			return nil
		case "help", "--help", "-h":
			printHelp()
			return nil
		case "login":
			return runLogin(cfg)
		case "logout":
			return runLogout(cfg)
		}
	}

	log, err := logging.New(cfg.StatePath("shopfront.log"), cfg.LogLevel)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	st, err := store.Open(cfg.StatePath("state.db"))
	if err != nil {
		return err
	}
	defer st.Close() //nolint:errcheck

	sess := session.New(st, log)
	crt := cart.New(st, log)
	c := client.New(cfg.APIRoot, sess, log, cfg.HTTPTimeout)

	log.Info("starting shopfront", zap.String("version", version), zap.String("api", cfg.APIRoot))

	app := tui.NewApp(c, crt, sess, version)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}

// runLogin prompts for credentials, exchanges them for a token pair and
// stores it. The access token is verified with a /users/me/ round trip so a
// bad password fails here, not on first use inside the TUI.
func runLogin(cfg *config.Config) error {
	log, err := logging.New(cfg.StatePath("shopfront.log"), cfg.LogLevel)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	st, err := store.Open(cfg.StatePath("state.db"))
	if err != nil {
		return err
	}
	defer st.Close() //nolint:errcheck

	reader := bufio.NewReader(os.Stdin)
	fmt.Print("Username: ")
	username, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("read username: %w", err)
	}
	fmt.Print("Password: ")
	password, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("read password: %w", err)
	}
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if username == "" || password == "" {
		return fmt.Errorf("username and password are required")
	}

	sess := session.New(st, log)
	c := client.New(cfg.APIRoot, sess, log, cfg.HTTPTimeout)

	ctx := context.Background()
	pair, err := c.Login(ctx, username, password)
	if err != nil {
		if client.IsStatus(err, 401) {
			return fmt.Errorf("invalid username or password")
		}
		return fmt.Errorf("login: %w", err)
	}
	if err := sess.SetPair(*pair); err != nil {
		return fmt.Errorf("store tokens: %w", err)
	}

	me, err := c.Me(ctx)
	if err != nil {
		return fmt.Errorf("verify session: %w", err)
	}
	fmt.Printf("Logged in as %s.\n", me.Username)
	return nil
}

func runLogout(cfg *config.Config) error {
	log, err := logging.New(cfg.StatePath("shopfront.log"), cfg.LogLevel)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	st, err := store.Open(cfg.StatePath("state.db"))
	if err != nil {
		return err
	}
	defer st.Close() //nolint:errcheck

	session.New(st, log).Clear()
	fmt.Println("Logged out.")
	return nil
}

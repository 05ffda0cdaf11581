package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

func init() {
	// Load .env file if it exists (silent fail if not)
	_ = godotenv.Load()
}

// Config holds all shopfront settings loaded from environment variables.
// The API root is the single externally-injected value — nothing else in the
// codebase carries a server address.
type Config struct {
	APIRoot     string        `envconfig:"SHOP_API_URL" default:"https://ecommerce-backend-arnu.onrender.com/api/v1"`
	StateDir    string        `envconfig:"SHOP_STATE_DIR" default:""`
	LogLevel    string        `envconfig:"SHOP_LOG_LEVEL" default:"info"`
	HTTPTimeout time.Duration `envconfig:"SHOP_HTTP_TIMEOUT" default:"30s"`
}

// Load reads configuration from the environment. An empty SHOP_STATE_DIR
// resolves to ~/.shopfront.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg.APIRoot = strings.TrimRight(cfg.APIRoot, "/")
	if cfg.StateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve state dir: %w", err)
		}
		cfg.StateDir = filepath.Join(home, ".shopfront")
	}
	return &cfg, nil
}

// StatePath returns the path of a file inside the state directory.
func (c *Config) StatePath(name string) string {
	return filepath.Join(c.StateDir, name)
}

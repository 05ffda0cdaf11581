package session

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"

	"github.com/arnuv/shopfront/pkg/domain"
)

// Store keys for the persisted token pair.
const (
	keyAccess  = "access"
	keyRefresh = "refresh"
)

// KV is the slice of the local store the session needs.
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
}

// Session manages the persisted token pair. Tokens are minted by the remote
// API; this side only stores, rotates, and clears them.
type Session struct {
	kv  KV
	log *zap.Logger
}

// New creates a session service over the given store.
func New(kv KV, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{kv: kv, log: log}
}

// Access returns the current access token, or "" when absent. A store read
// failure degrades to "" — the request path treats that as "not logged in".
func (s *Session) Access() string {
	return s.read(keyAccess)
}

// Refresh returns the current refresh token, or "" when absent.
func (s *Session) Refresh() string {
	return s.read(keyRefresh)
}

func (s *Session) read(key string) string {
	v, ok, err := s.kv.Get(key)
	if err != nil {
		s.log.Warn("session read failed", zap.String("key", key), zap.Error(err))
		return ""
	}
	if !ok {
		return ""
	}
	return v
}

// SetAccess replaces the access token. Used by the refresh flow.
func (s *Session) SetAccess(tok string) error {
	return s.kv.Set(keyAccess, tok)
}

// SetPair stores a freshly issued token pair. Used after login.
func (s *Session) SetPair(p domain.TokenPair) error {
	if err := s.kv.Set(keyAccess, p.Access); err != nil {
		return err
	}
	return s.kv.Set(keyRefresh, p.Refresh)
}

// Clear removes both tokens. Used on logout and on irrecoverable refresh
// failure.
func (s *Session) Clear() {
	if err := s.kv.Delete(keyAccess); err != nil {
		s.log.Warn("clear access token failed", zap.Error(err))
	}
	if err := s.kv.Delete(keyRefresh); err != nil {
		s.log.Warn("clear refresh token failed", zap.Error(err))
	}
}

// LoggedIn reports whether an access token is present. It says nothing about
// validity — the API stays authoritative, expiry surfaces as a 401.
func (s *Session) LoggedIn() bool {
	return s.Access() != ""
}

// ExpiresAt returns the access token's exp claim. The token is decoded without
// signature verification; this is display-only and never gates a request.
func (s *Session) ExpiresAt() (time.Time, bool) {
	tok := s.Access()
	if tok == "" {
		return time.Time{}, false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tok, claims); err != nil {
		return time.Time{}, false
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		return time.Time{}, false
	}
	return time.Unix(int64(exp), 0), true
}

package token

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Store persists the upstream bearer token across restarts, the console's
// analog of the browser's local storage. The token is opaque to the console;
// it is attached to requests verbatim and never refreshed.
type Store struct {
	Path string

	mu     sync.RWMutex
	cached string
}

func NewStore(path string) (*Store, error) {
	s := &Store{Path: path}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, err
	}
	s.cached = strings.TrimSpace(string(raw))
	return s, nil
}

// Token implements upstream.TokenSource. Empty means not logged in.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cached
}

func (s *Store) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(s.Path, []byte(token), 0o600); err != nil {
		return err
	}
	s.cached = token
	return nil
}

func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cached = ""
	if err := os.Remove(s.Path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Claims holds what the console can read off the stored token without the
// upstream's signing key.
type Claims struct {
	Subject   string
	ExpiresAt time.Time
}

// Peek decodes the stored token's claims without verifying the signature;
// only the upstream can verify it. Used to show the operator who is logged
// in and when the session runs out.
func (s *Store) Peek() (Claims, bool) {
	raw := s.Token()
	if raw == "" {
		return Claims{}, false
	}
	parsed, _, err := jwt.NewParser().ParseUnverified(raw, jwt.MapClaims{})
	if err != nil {
		return Claims{}, false
	}
	claims := Claims{}
	if sub, err := parsed.Claims.GetSubject(); err == nil {
		claims.Subject = sub
	}
	if exp, err := parsed.Claims.GetExpirationTime(); err == nil && exp != nil {
		claims.ExpiresAt = exp.Time
	}
	return claims, true
}

// Package secrets manages secret configuration values sourced from the
// environment. It confirms required values are present, flags values that
// look like hardcoded credential assignments, masks secrets for display,
// and reports values unrotated beyond a staleness window for health checks.
package secrets

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// ErrMissingSecret is returned by Required when a secret is absent.
var ErrMissingSecret = errors.New("required secret is missing")

// DefaultMaxAge is the rotation staleness window applied when a Manager is
// constructed with a non-positive max age.
const DefaultMaxAge = 30 * 24 * time.Hour

// assignmentPatterns flag values that look like credential assignments
// pasted into configuration (password=..., api_key=..., and so on).
var assignmentPatterns = func() []*regexp.Regexp {
	keys := []string{"password", "secret", "api_key", "token", "key", "pwd", "pass"}
	out := make([]*regexp.Regexp, 0, len(keys))
	for _, k := range keys {
		out = append(out, regexp.MustCompile(`(?i)`+k+`\s*=\s*["']?[^"'\s]+["']?`))
	}
	return out
}()

// requiredKeys are the secrets every deployment must provide.
var requiredKeys = []string{"DATABASE_URL", "SECRET_KEY", "JWT_SECRET"}

// Report summarizes a secrets configuration check.
type Report struct {
	Valid    bool     `json:"valid"`
	Missing  []string `json:"missing_secrets"`
	Stale    []string `json:"stale_secrets"`
	Warnings []string `json:"warnings"`
}

// Manager reads secrets from the environment and tracks when each was
// first seen, so rotation staleness can be reported. Safe for concurrent
// use.
type Manager struct {
	maxAge time.Duration
	now    func() time.Time

	mu       sync.Mutex
	lastSeen map[string]time.Time
}

// NewManager returns a Manager with the given staleness window.
func NewManager(maxAge time.Duration) *Manager {
	if maxAge <= 0 {
		maxAge = DefaultMaxAge
	}
	return &Manager{
		maxAge:   maxAge,
		now:      time.Now,
		lastSeen: make(map[string]time.Time),
	}
}

// Get returns the secret value for key, or "" when absent. Values that
// look like credential assignments are refused and logged (masked) rather
// than returned.
func (m *Manager) Get(key string) string {
	value := os.Getenv(key)
	if value == "" {
		return ""
	}
	if looksLikeAssignment(value) {
		log.Warn().
			Str("key", key).
			Str("value", MaskSecret(value)).
			Msg("secret value resembles a hardcoded credential assignment; refusing")
		return ""
	}
	m.mu.Lock()
	if _, seen := m.lastSeen[key]; !seen {
		// First sighting marks the rotation epoch; later reads of the same
		// value must not reset the staleness clock.
		m.lastSeen[key] = m.now()
	}
	m.mu.Unlock()
	return value
}

// Required returns the secret for key or ErrMissingSecret.
func (m *Manager) Required(key string) (string, error) {
	v := m.Get(key)
	if v == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingSecret, key)
	}
	return v, nil
}

// MaskSecret renders a secret for logs and health output, keeping only the
// first and last two characters of sufficiently long values.
func MaskSecret(secret string) string {
	if len(secret) < 4 {
		return "***"
	}
	return secret[:2] + strings.Repeat("*", len(secret)-4) + secret[len(secret)-2:]
}

// Validate checks that every required secret is present and that no
// tracked secret has gone unrotated beyond the staleness window.
func (m *Manager) Validate() Report {
	report := Report{Valid: true, Missing: []string{}, Stale: []string{}, Warnings: []string{}}

	for _, key := range requiredKeys {
		if m.Get(key) == "" {
			report.Missing = append(report.Missing, key)
			report.Valid = false
		}
	}

	m.mu.Lock()
	now := m.now()
	for key, seen := range m.lastSeen {
		if now.Sub(seen) > m.maxAge {
			report.Stale = append(report.Stale, key)
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("secret %s has not been rotated within %s", key, m.maxAge))
		}
	}
	m.mu.Unlock()

	return report
}

func looksLikeAssignment(value string) bool {
	for _, re := range assignmentPatterns {
		if re.MatchString(value) {
			return true
		}
	}
	return false
}

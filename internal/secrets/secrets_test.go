package secrets

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestGetAndRequired(t *testing.T) {
	m := NewManager(0)

	t.Setenv("DATABASE_URL", "postgres://app@db/wishlist")
	if got := m.Get("DATABASE_URL"); got != "postgres://app@db/wishlist" {
		t.Fatalf("Get = %q", got)
	}
	if got := m.Get("NO_SUCH_SECRET"); got != "" {
		t.Fatalf("absent Get = %q", got)
	}

	if _, err := m.Required("NO_SUCH_SECRET"); !errors.Is(err, ErrMissingSecret) {
		t.Fatalf("Required err = %v", err)
	}
	if v, err := m.Required("DATABASE_URL"); err != nil || v == "" {
		t.Fatalf("Required = %q, %v", v, err)
	}
}

func TestGet_RefusesAssignmentLikeValues(t *testing.T) {
	m := NewManager(0)

	for _, v := range []string{
		`password=hunter2`,
		`export API_KEY="sk-123456"`,
		`token = abc`,
	} {
		t.Setenv("SECRET_KEY", v)
		if got := m.Get("SECRET_KEY"); got != "" {
			t.Fatalf("value %q not refused, got %q", v, got)
		}
	}

	// A plain opaque value passes.
	t.Setenv("SECRET_KEY", "c2VjcmV0LXZhbHVl")
	if got := m.Get("SECRET_KEY"); got == "" {
		t.Fatalf("plain value refused")
	}
}

func TestMaskSecret(t *testing.T) {
	for _, tc := range []struct{ in, want string }{
		{"", "***"},
		{"abc", "***"},
		{"abcd", "ab" + "cd"},
		{"supersecret", "su*******et"},
	} {
		if got := MaskSecret(tc.in); got != tc.want {
			t.Fatalf("MaskSecret(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestValidate_MissingAndStale(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://app@db/wishlist")
	t.Setenv("SECRET_KEY", "c2VjcmV0")
	t.Setenv("JWT_SECRET", "and-another")

	m := NewManager(24 * time.Hour)

	// All present, nothing tracked as old yet.
	rep := m.Validate()
	if !rep.Valid || len(rep.Missing) != 0 || len(rep.Stale) != 0 {
		t.Fatalf("clean report = %+v", rep)
	}

	// Age one key past the window via the injected clock.
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	m.lastSeen["SECRET_KEY"] = base
	m.now = func() time.Time { return base.Add(25 * time.Hour) }

	rep = m.Validate()
	if len(rep.Stale) != 1 || rep.Stale[0] != "SECRET_KEY" {
		t.Fatalf("stale = %v", rep.Stale)
	}
	if len(rep.Warnings) == 0 {
		t.Fatalf("no staleness warning")
	}
	// Staleness warns without flipping validity.
	if !rep.Valid {
		t.Fatalf("staleness marked report invalid")
	}

	// Drop a required key.
	t.Setenv("JWT_SECRET", "")
	rep = m.Validate()
	if rep.Valid {
		t.Fatalf("missing secret left report valid")
	}
	if len(rep.Missing) != 1 || rep.Missing[0] != "JWT_SECRET" {
		t.Fatalf("missing = %v", rep.Missing)
	}
}

func TestGet_RefusalLogMasksValue(t *testing.T) {
	var buf bytes.Buffer
	orig := log.Logger
	log.Logger = zerolog.New(&buf)
	defer func() { log.Logger = orig }()

	value := "password=hunter2-very-long"
	t.Setenv("SECRET_KEY", value)

	m := NewManager(0)
	if got := m.Get("SECRET_KEY"); got != "" {
		t.Fatalf("assignment-like value not refused, got %q", got)
	}

	out := buf.String()
	if strings.Contains(out, "hunter2") {
		t.Fatalf("raw secret leaked into the log: %s", out)
	}
	if !strings.Contains(out, MaskSecret(value)) {
		t.Fatalf("masked value missing from the log: %s", out)
	}
}

package mask

import (
	"reflect"
	"strings"
	"testing"
)

func TestMask_AllFourPatterns(t *testing.T) {
	in := "Contact user@example.com, token abc123def456, path /etc/passwd, ip 10.0.0.1"
	out := Mask(in)

	for _, leaked := range []string{"user@example.com", "abc123def456", "/etc/passwd", "10.0.0.1"} {
		if strings.Contains(out, leaked) {
			t.Fatalf("masked output still contains %q: %s", leaked, out)
		}
	}
	for _, marker := range []string{"***@***.***", "***TOKEN***", "/***PATH***", "***.***.***.***"} {
		if !strings.Contains(out, marker) {
			t.Fatalf("expected marker %q in output: %s", marker, out)
		}
	}
}

func TestMask_Cases(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain text untouched", "hello world", "hello world"},
		// long words without digits are not tokens
		{"long word kept", "incomprehensibilities", "incomprehensibilities"},
		{"digit-bearing token", "key abcdef12345", "key ***TOKEN***"},
		{"email", "mail me at a.b+c@test.io now", "mail me at ***@***.*** now"},
		{"absolute path", "wrote /var/log/app.log", "wrote /***PATH***"},
		{"ipv4", "peer 192.168.10.1 down", "peer ***.***.***.*** down"},
		// short alphanumerics survive
		{"short token kept", "id ab12cd", "id ab12cd"},
	}
	for _, tc := range cases {
		if got := Mask(tc.in); got != tc.want {
			t.Fatalf("%s: Mask(%q) = %q; want %q", tc.name, tc.in, got, tc.want)
		}
	}
}

func TestMask_Idempotent(t *testing.T) {
	in := "user@example.com /etc/shadow 10.0.0.1 secret12345"
	once := Mask(in)
	twice := Mask(once)
	if once != twice {
		t.Fatalf("mask not idempotent: %q vs %q", once, twice)
	}
}

func TestMaskAny_RecursesStructure(t *testing.T) {
	in := map[string]any{
		"email": "user@example.com",
		"count": 3,
		"nested": map[string]any{
			"path": "/home/user/.ssh/id_rsa",
		},
		"list": []any{"10.0.0.1", 42, "plain"},
	}
	got := MaskAny(in)

	want := map[string]any{
		"email": "***@***.***",
		"count": 3,
		"nested": map[string]any{
			"path": "/***PATH***",
		},
		"list": []any{"***.***.***.***", 42, "plain"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("MaskAny = %#v; want %#v", got, want)
	}
}

func TestMaskAny_NonStringScalars(t *testing.T) {
	if got := MaskAny(12.5); got != 12.5 {
		t.Fatalf("float changed: %v", got)
	}
	if got := MaskAny(nil); got != nil {
		t.Fatalf("nil changed: %v", got)
	}
}

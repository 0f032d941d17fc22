package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestString_ValidInputs(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"My new bike", "My new bike"},
		{"  padded  ", "padded"},
		{"inner  spaces kept", "inner  spaces kept"},
		{"   ", ""}, // all-whitespace normalizes to empty
		{"", ""},
	}
	for _, tc := range cases {
		got, err := String(tc.in, "name", 200)
		if err != nil {
			t.Fatalf("String(%q): unexpected error %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("String(%q) = %q; want %q", tc.in, got, tc.want)
		}
	}
}

func TestString_LengthBoundary(t *testing.T) {
	exact := strings.Repeat("a", 50)
	if _, err := String(exact, "name", 50); err != nil {
		t.Fatalf("value of exactly maxLength must pass: %v", err)
	}
	if _, err := String(exact+"a", "name", 50); err == nil {
		t.Fatal("value over maxLength must fail")
	} else if !strings.Contains(err.Error(), "too long") {
		t.Fatalf("expected length message, got %v", err)
	}

	// The bound counts characters, not bytes: 50 two-byte runes are
	// exactly at the limit even though len() sees 100 bytes.
	accented := strings.Repeat("é", 50)
	if _, err := String(accented, "name", 50); err != nil {
		t.Fatalf("multi-byte value of exactly maxLength must pass: %v", err)
	}
	if _, err := String(accented+"é", "name", 50); err == nil {
		t.Fatal("multi-byte value over maxLength must fail")
	}
}

func TestString_DenylistRejects(t *testing.T) {
	inputs := []string{
		"<script>alert(1)</script>",
		"<SCRIPT src=x>",
		"click javascript:void(0)",
		"../../etc/passwd",
		"..\\windows\\system32",
		"..%2F..%2Fetc",
		"1 UNION SELECT password FROM users",
		"DROP TABLE items",
		"delete from wishlist",
		"insert into users values",
		"update set admin=1",
		"' OR '1'='1",
		"x or 1=1 --",
		"exec(rm -rf)",
		"eval(code)",
		"system(ls)",
	}
	for _, in := range inputs {
		_, err := String(in, "name", 1000)
		if err == nil {
			t.Fatalf("expected rejection for %q", in)
		}
		var verr *Error
		if !errors.As(err, &verr) {
			t.Fatalf("expected *validation.Error, got %T", err)
		}
		// Generic message: the matched pattern must not be disclosed.
		if verr.Message != "contains unsafe characters" {
			t.Fatalf("unexpected message for %q: %q", in, verr.Message)
		}
	}
}

func TestString_NonString(t *testing.T) {
	if _, err := String(42, "name", 10); err == nil {
		t.Fatal("non-string input must fail")
	} else if !strings.Contains(err.Error(), "must be a string") {
		t.Fatalf("unexpected message: %v", err)
	}
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestDecimal_ParseAndQuantize(t *testing.T) {
	got, err := Decimal("19.99", "price", DecimalOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.StringFixed(2) != "19.99" {
		t.Fatalf("got %s", got.StringFixed(2))
	}

	// A float with binary representation noise must normalize cleanly.
	got, err = Decimal(0.3, "price", DecimalOptions{})
	if err != nil {
		t.Fatalf("0.3 must validate: %v", err)
	}
	if !got.Equal(decimal.RequireFromString("0.30")) || got.StringFixed(2) != "0.30" {
		t.Fatalf("0.3 should quantize to 0.30, got %s", got.String())
	}
}

func TestDecimal_ScaleCheck(t *testing.T) {
	_, err := Decimal("123.456", "price", DecimalOptions{Places: 2})
	if err == nil {
		t.Fatal("three fractional digits must fail at two places")
	}
	if !strings.Contains(err.Error(), "too many decimal places") {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestDecimal_PrecisionCheck(t *testing.T) {
	_, err := Decimal("1234567890123", "price", DecimalOptions{MaxDigits: 12})
	if err == nil {
		t.Fatal("13 digits must fail at maxDigits=12")
	}
	if !strings.Contains(err.Error(), "too many digits") {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestDecimal_RangeChecks(t *testing.T) {
	if _, err := Decimal(-1, "price", DecimalOptions{Min: dec("0")}); err == nil {
		t.Fatal("below min must fail")
	} else if !strings.Contains(err.Error(), "must be at least 0") {
		t.Fatalf("unexpected message: %v", err)
	}

	if _, err := Decimal("101", "price", DecimalOptions{Max: dec("100")}); err == nil {
		t.Fatal("above max must fail")
	} else if !strings.Contains(err.Error(), "must be at most 100") {
		t.Fatalf("unexpected message: %v", err)
	}

	// Inclusive bounds.
	if _, err := Decimal(0, "price", DecimalOptions{Min: dec("0")}); err != nil {
		t.Fatalf("value at min must pass: %v", err)
	}
	if _, err := Decimal("100", "price", DecimalOptions{Max: dec("100")}); err != nil {
		t.Fatalf("value at max must pass: %v", err)
	}
}

func TestDecimal_InvalidFormat(t *testing.T) {
	if _, err := Decimal("not-a-number", "price", DecimalOptions{}); err == nil {
		t.Fatal("non-numeric text must fail")
	} else if !strings.Contains(err.Error(), "invalid format") {
		t.Fatalf("unexpected message: %v", err)
	}

	if _, err := Decimal(struct{}{}, "price", DecimalOptions{}); err == nil {
		t.Fatal("non-numeric type must fail")
	} else if !strings.Contains(err.Error(), "must be a number") {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestDecimal_AcceptsNumericTypes(t *testing.T) {
	for _, v := range []any{int(7), int64(7), float64(7), decimal.NewFromInt(7), "7"} {
		got, err := Decimal(v, "price", DecimalOptions{})
		if err != nil {
			t.Fatalf("%T: unexpected error %v", v, err)
		}
		if got.StringFixed(2) != "7.00" {
			t.Fatalf("%T: got %s", v, got.StringFixed(2))
		}
	}
}

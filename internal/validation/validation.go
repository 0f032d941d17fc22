// Package validation implements input validation for free-text and numeric
// fields. Validators are pure functions over their arguments and safe to
// call concurrently; all shared lookup tables are immutable.
//
// The string validator is deliberately coarse: it protects free-text fields
// that have no legitimate need for code-like syntax, so false positives
// (e.g. prose containing "exec(") are accepted by design.
package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Error is the general validation failure kind, shared by text, numeric,
// and file checks. Message is user-actionable except for the denylist case,
// which stays generic so detection rules are not disclosed.
type Error struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string { return e.Field + " " + e.Message }

func failf(field, format string, args ...any) *Error {
	return &Error{Field: field, Message: fmt.Sprintf(format, args...)}
}

// dangerousPatterns is the fixed denylist scanned (case-insensitively)
// against free-text input: script/URI-scheme markers, path traversal
// (including URL-encoded variants), SQL injection fragments, and
// code-execution markers. Never mutated at runtime.
var dangerousPatterns = []string{
	"<script",
	"javascript:",
	"data:",
	"vbscript:",
	"../",
	"..\\",
	"..%2f",
	"..%5c",
	"union select",
	"drop table",
	"delete from",
	"exec(",
	"eval(",
	"system(",
	"';",
	"1'",
	"admin'",
	"insert into",
	"update set",
	"or '1'='1",
	"or 1=1",
	"union all",
}

// String validates a free-text value. Checks run in order: type, length
// (a value of exactly maxLength is allowed), then the denylist scan. On
// success the value is returned with surrounding whitespace trimmed; inner
// whitespace is preserved, and an all-whitespace value normalizes to "".
func String(value any, field string, maxLength int) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", failf(field, "must be a string")
	}
	// Character count, not bytes: a multi-byte name must not burn through
	// the bound faster than its visible length.
	if utf8.RuneCountInString(s) > maxLength {
		return "", failf(field, "is too long (maximum %d characters)", maxLength)
	}
	lower := strings.ToLower(s)
	for _, pattern := range dangerousPatterns {
		if strings.Contains(lower, pattern) {
			// Generic on purpose: the matched pattern is never disclosed.
			return "", failf(field, "contains unsafe characters")
		}
	}
	return strings.TrimSpace(s), nil
}

// DecimalOptions bounds a decimal field. Min and Max are inclusive and
// optional; MaxDigits and Places fall back to 12 and 2 when zero.
type DecimalOptions struct {
	Min       *decimal.Decimal
	Max       *decimal.Decimal
	MaxDigits int
	Places    int
}

const (
	defaultMaxDigits = 12
	defaultPlaces    = 2
)

// Decimal validates a numeric-typed or numeric-looking value and normalizes
// it to a fixed number of fractional digits. Checks run in order:
//
//  1. exact decimal parse ("invalid format" on failure, with parse detail)
//  2. inclusive range check against Min/Max when supplied
//  3. significant-digit count against MaxDigits
//  4. fractional-digit count against Places
//
// On success the value is quantized (rounded) to exactly Places fractional
// digits. Float inputs are converted through their shortest decimal
// representation, so binary representation noise of an otherwise-valid
// value (e.g. 0.3) does not fail the scale check.
func Decimal(value any, field string, opts DecimalOptions) (decimal.Decimal, error) {
	maxDigits := opts.MaxDigits
	if maxDigits <= 0 {
		maxDigits = defaultMaxDigits
	}
	places := opts.Places
	if places <= 0 {
		places = defaultPlaces
	}

	var (
		d   decimal.Decimal
		err error
	)
	switch v := value.(type) {
	case string:
		d, err = decimal.NewFromString(strings.TrimSpace(v))
	case int:
		d = decimal.NewFromInt(int64(v))
	case int64:
		d = decimal.NewFromInt(v)
	case float64:
		// Shortest decimal representation, matching strconv 'g' formatting.
		d = decimal.NewFromFloat(v)
	case decimal.Decimal:
		d = v
	default:
		return decimal.Decimal{}, failf(field, "must be a number")
	}
	if err != nil {
		return decimal.Decimal{}, failf(field, "has invalid format: %v", err)
	}

	if opts.Min != nil && d.Cmp(*opts.Min) < 0 {
		return decimal.Decimal{}, failf(field, "must be at least %s", opts.Min.String())
	}
	if opts.Max != nil && d.Cmp(*opts.Max) > 0 {
		return decimal.Decimal{}, failf(field, "must be at most %s", opts.Max.String())
	}

	if int(d.NumDigits()) > maxDigits {
		return decimal.Decimal{}, failf(field, "has too many digits (maximum %d)", maxDigits)
	}
	if int(-d.Exponent()) > places {
		return decimal.Decimal{}, failf(field, "has too many decimal places (maximum %d)", places)
	}

	return d.Round(int32(places)), nil
}

// Package mask provides PII redaction for strings headed to clients or log
// sinks. It scrubs email addresses, long digit-bearing tokens, absolute
// filesystem paths, and dotted-quad IPv4 addresses.
//
// Design goals:
//   - Idempotent: masking already-masked text is a no-op
//   - Order-stable: rules always run email → token → path → IP, so the
//     loosest patterns never clobber the output of earlier ones
//   - Structure-preserving: MaskAny walks nested maps/slices and only
//     rewrites string leaves
//
// Security note: masking reduces but does not eliminate the risk of data
// leakage. Error details should still be written with care; the masker is
// the last line of defense, not the first.
package mask

import (
	"regexp"
	"unicode"
)

// Compiled once; all patterns are safe for concurrent use.
var (
	emailRE = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	// tokenRE matches bare alphanumeric runs of length >= 10. Runs without a
	// digit (ordinary long words) are kept; see Mask.
	tokenRE = regexp.MustCompile(`\b[A-Za-z0-9]{10,}\b`)
	pathRE  = regexp.MustCompile(`/[A-Za-z0-9/._-]+`)
	ipv4RE  = regexp.MustCompile(`\b(?:[0-9]{1,3}\.){3}[0-9]{1,3}\b`)
)

// Replacement markers. Stable strings so downstream tooling can grep for them.
const (
	maskedEmail = "***@***.***"
	maskedToken = "***TOKEN***"
	maskedPath  = "/***PATH***"
	maskedIPv4  = "***.***.***.***"
)

// Mask redacts PII-looking substrings from text. Empty input is returned
// unchanged. The four rules are applied in sequence:
//
//  1. email-like patterns            → ***@***.***
//  2. alphanumeric runs >= 10 chars
//     containing at least one digit → ***TOKEN***
//  3. absolute path-like substrings  → /***PATH***
//  4. dotted-quad IPv4 substrings    → ***.***.***.***
func Mask(text string) string {
	if text == "" {
		return text
	}
	out := emailRE.ReplaceAllString(text, maskedEmail)
	out = tokenRE.ReplaceAllStringFunc(out, func(m string) string {
		if hasDigit(m) {
			return maskedToken
		}
		return m
	})
	out = pathRE.ReplaceAllString(out, maskedPath)
	out = ipv4RE.ReplaceAllString(out, maskedIPv4)
	return out
}

// MaskAny recursively masks string leaves inside nested data structures.
// Maps and slices are rebuilt with the same shape; non-string scalars are
// returned untouched. Useful for scrubbing structured log payloads before
// they reach a sink.
func MaskAny(v any) any {
	switch val := v.(type) {
	case string:
		return Mask(val)
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = MaskAny(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = MaskAny(item)
		}
		return out
	default:
		return v
	}
}

func hasDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

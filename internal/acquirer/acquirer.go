// Package acquirer validates payment terminal records against
// acquirer-specific rules: a fixed set of acquirer names, an optional
// zero-fill width for the logical number and per-acquirer patterns for
// the logical number and the code.
package acquirer

import (
	"fmt"
	"strings"
)

// Kind classifies a validation failure.
type Kind string

const (
	KindMissingField    Kind = "missing_field"
	KindUnknownAcquirer Kind = "unknown_acquirer"
	KindFormatError     Kind = "format_error"
	KindPatternMismatch Kind = "pattern_mismatch"
)

// Record is one acquirer terminal registration to validate.
type Record struct {
	Acquirer      string
	LogicalNumber string
	Code          string
}

// Result reports the outcome of validating a Record. On success
// LogicalNumber holds the normalized (possibly zero-filled) value and
// Kind is empty.
type Result struct {
	OK            bool
	Kind          Kind
	Message       string
	LogicalNumber string
}

// Validate checks a record against the rule registered for its acquirer.
// The acquirer name is matched case-insensitively. Validate holds no
// shared state and is safe for concurrent use.
func Validate(rec Record) Result {
	if rec.Acquirer == "" {
		return failure(KindMissingField, "invalid adquirence")
	}
	if rec.LogicalNumber == "" {
		return failure(KindMissingField, "invalid logic number")
	}
	if rec.Code == "" {
		return failure(KindMissingField, "invalid code number")
	}

	name := strings.ToLower(rec.Acquirer)
	rule, ok := rules[name]
	if !ok {
		return failure(KindUnknownAcquirer, "unsupported adquirence type")
	}

	logical := rec.LogicalNumber
	if rule.PadLength > 0 {
		if len(logical) > rule.PadLength {
			return failure(KindFormatError, "logic number %s is longer than %d digits", logical, rule.PadLength)
		}
		logical = strings.Repeat("0", rule.PadLength-len(logical)) + logical
	}

	if !rule.Logical.MatchString(logical) {
		return failure(KindPatternMismatch, "logic number does not match the %s format", name)
	}
	if rule.Code != nil && !rule.Code.MatchString(rec.Code) {
		return failure(KindPatternMismatch, "code does not match the %s format", name)
	}

	message := fmt.Sprintf("%s processed with logic number %s", name, logical)
	if rule.Code != nil {
		message = fmt.Sprintf("%s processed with logic number %s and code %s", name, logical, rec.Code)
	}

	return Result{OK: true, Message: message, LogicalNumber: logical}
}

func failure(kind Kind, format string, args ...any) Result {
	return Result{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

package compat

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/alexivanou/carryon-checker/internal/model"
)

// NotApplicable marks a restriction cell with no limit
const NotApplicable = "N/A"

// ParseLimit reads the longest numeric prefix of s, after leading
// whitespace. "40,0" is 40, "-55" is -55 and "Infinity" is +Inf.
// A cell without a numeric prefix yields NaN.
func ParseLimit(s string) model.Limit {
	s = strings.TrimLeftFunc(s, isLimitSpace)

	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	if strings.HasPrefix(s[i:], "Infinity") {
		if s[0] == '-' {
			return model.Limit(math.Inf(-1))
		}
		return model.Limit(math.Inf(1))
	}

	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		j := i + 1
		frac := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			frac++
		}
		// A lone dot only counts when digits precede it.
		if digits > 0 || frac > 0 {
			i = j
			digits += frac
		}
	}
	if digits == 0 {
		return model.Limit(math.NaN())
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		start := j
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		if j > start {
			i = j
		}
	}

	// Out of range values come back as ±Inf or 0 together with ErrRange.
	f, err := strconv.ParseFloat(s[:i], 64)
	if err != nil && !isRangeError(err) {
		return model.Limit(math.NaN())
	}
	return model.Limit(f)
}

// ParseOptionalLimit is ParseLimit with the N/A sentinel mapped to nil
func ParseOptionalLimit(s string) *model.Limit {
	if s == NotApplicable {
		return nil
	}
	l := ParseLimit(s)
	return &l
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLimitSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

func isRangeError(err error) bool {
	numErr, ok := err.(*strconv.NumError)
	return ok && numErr.Err == strconv.ErrRange
}

package normalize

import (
	"math"
	"strconv"
	"strings"
)

// NumberResult is the outcome of ParseNumber: either a parsed number or the
// original text that could not be parsed.
type NumberResult struct {
	parsed bool
	value  float64
	text   string
}

// Parsed wraps a successfully parsed number.
func Parsed(n float64) NumberResult {
	return NumberResult{parsed: true, value: n, text: strconv.FormatFloat(n, 'f', -1, 64)}
}

// Unparsed wraps text that is not a decimal number.
func Unparsed(text string) NumberResult {
	return NumberResult{text: text}
}

// Number returns the parsed value; ok is false for Unparsed results.
func (r NumberResult) Number() (float64, bool) {
	return r.value, r.parsed
}

// Text returns the source text for Unparsed results and the canonical
// decimal form for Parsed ones.
func (r NumberResult) Text() string {
	return r.text
}

// ParseNumber parses decimal notation the way a browser number field reports
// it: optional sign, digits, fraction and exponent, surrounded by optional
// whitespace. Hexadecimal, digit separators, infinities, NaN and values that
// overflow float64 are Unparsed.
func ParseNumber(text string) NumberResult {
	candidate := strings.TrimSpace(text)
	if candidate == "" || !isDecimalLiteral(candidate) {
		return Unparsed(text)
	}
	n, err := strconv.ParseFloat(candidate, 64)
	if err != nil || math.IsInf(n, 0) || math.IsNaN(n) {
		return Unparsed(text)
	}
	return Parsed(n)
}

func isDecimalLiteral(s string) bool {
	i := 0
	if s[i] == '+' || s[i] == '-' {
		i++
	}
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return false
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		expDigits := 0
		for i < len(s) && isDigit(s[i]) {
			i++
			expDigits++
		}
		if expDigits == 0 {
			return false
		}
	}
	return i == len(s)
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

package words

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ones covers 0-19; 10-19 are the irregular teens.
var ones = [...]string{
	"Zero", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tens = [...]string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

// scales by three-digit group position, least significant first.
var scales = [...]string{"", "Thousand", "Million", "Billion", "Trillion"}

// maxScaledDigits is the largest integer width with a named scale word.
// Wider magnitudes fall back to digit-by-digit reading.
const maxScaledDigits = len(scales) * 3

// FromDecimal renders a decimal number as English words.
func FromDecimal(d decimal.Decimal) string {
	s := d.String()

	negative := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, fracPart, _ := strings.Cut(s, ".")

	var parts []string
	if negative {
		parts = append(parts, "Negative")
	}
	parts = append(parts, integerWords(intPart))
	if fracPart != "" {
		parts = append(parts, "Point")
		for i := 0; i < len(fracPart); i++ {
			parts = append(parts, ones[fracPart[i]-'0'])
		}
	}
	return strings.Join(parts, " ")
}

// FromString parses a plain decimal literal and renders it as words.
func FromString(s string) (string, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return "", err
	}
	return FromDecimal(d), nil
}

// integerWords converts an unsigned digit string.
func integerWords(digits string) string {
	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		return "Zero"
	}
	if len(digits) > maxScaledDigits {
		return digitByDigit(digits)
	}

	// Pad to whole groups of three, most significant group first.
	for len(digits)%3 != 0 {
		digits = "0" + digits
	}
	groups := len(digits) / 3

	var rendered []string
	for i := 0; i < groups; i++ {
		g := digits[i*3 : i*3+3]
		h, t, o := int(g[0]-'0'), int(g[1]-'0'), int(g[2]-'0')
		if h == 0 && t == 0 && o == 0 {
			continue
		}
		w := groupWords(h, t, o)
		if scale := scales[groups-1-i]; scale != "" {
			w += " " + scale
		}
		rendered = append(rendered, w)
	}
	return strings.Join(rendered, ", ")
}

// groupWords converts one nonzero three-digit group via the
// hundreds-tens-ones rule.
func groupWords(h, t, o int) string {
	var parts []string
	if h > 0 {
		parts = append(parts, ones[h]+" Hundred")
	}
	rem := t*10 + o
	switch {
	case rem == 0:
	case rem < 20:
		parts = append(parts, ones[rem])
	default:
		w := tens[t]
		if o > 0 {
			w += "-" + ones[o]
		}
		parts = append(parts, w)
	}
	return strings.Join(parts, " ")
}

// digitByDigit reads digits individually, the same rule as fractions.
func digitByDigit(digits string) string {
	parts := make([]string, len(digits))
	for i := 0; i < len(digits); i++ {
		parts[i] = ones[digits[i]-'0']
	}
	return strings.Join(parts, " ")
}

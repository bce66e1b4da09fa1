package transform

import "strings"

const (
	arabicIndicZero         = '٠'
	extendedArabicIndicZero = '۰'
)

// Digits replaces Arabic-Indic (U+0660–U+0669) and Extended Arabic-Indic
// (U+06F0–U+06F9) digits with their ASCII equivalents. Other runes are kept.
func Digits(s string) string {
	return strings.Map(digit, s)
}

func digit(r rune) rune {
	switch {
	case r >= arabicIndicZero && r <= arabicIndicZero+9:
		return '0' + (r - arabicIndicZero)
	case r >= extendedArabicIndicZero && r <= extendedArabicIndicZero+9:
		return '0' + (r - extendedArabicIndicZero)
	}
	return r
}

// Numeric normalizes digits with [Digits] and keeps only ASCII digits,
// decimal points and a minus sign that leads the result. The output is not
// guaranteed to parse; "1.2.3" and "-" survive unchanged.
func Numeric(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		r = digit(r)
		switch {
		case r >= '0' && r <= '9', r == '.':
			b.WriteRune(r)
		case r == '-' && b.Len() == 0:
			b.WriteRune(r)
		}
	}
	return b.String()
}

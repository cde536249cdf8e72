package secret

import "strings"

// Mask returns a masked representation of a secret option value.
// - length <= 5: fully masked
// - length <= 20: first and last characters visible
// - length > 20: first 3 and last 1 characters visible
func Mask(s string) string {
	runes := []rune(s)
	n := len(runes)
	switch {
	case n == 0:
		return ""
	case n <= 5:
		return strings.Repeat("*", n)
	case n <= 20:
		return string(runes[:1]) + strings.Repeat("*", n-2) + string(runes[n-1:])
	default:
		return string(runes[:3]) + strings.Repeat("*", n-4) + string(runes[n-1:])
	}
}

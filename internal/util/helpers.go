package util

import "unicode/utf8"

// TruncateRunes — безопасное усечение по рунам
func TruncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	rs := []rune(s)
	return string(rs[:n])
}

// Preview обрезает строку для логов и помечает усечение многоточием
func Preview(s string, n int) string {
	out := TruncateRunes(s, n)
	if len(out) < len(s) {
		return out + "..."
	}
	return out
}

package openai

// truncateText returns the first max characters of s, never splitting a
// multi-byte rune.
func truncateText(s string, max int) string {
	if len(s) <= max {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

package shared

import (
	"fmt"
	"net/url"
	"strings"
	"unicode"
)

const MaxSampleTextLen = 280

func GetHostName(rawUrl string) (string, error) {
	var parsedUrl *url.URL
	var urlError error
	parsedUrl, urlError = url.Parse(rawUrl)
	if urlError != nil {
		return "", fmt.Errorf("Failed to parse URL '%s': %v", rawUrl, urlError)
	}
	return strings.ToLower(parsedUrl.Hostname()), nil
}

// BaseDomain reduces a host to its last two labels, so insight lookups match
// "example.com" against "blog.example.com" too. Not public-suffix aware.
func BaseDomain(host string) string {
	host = strings.TrimPrefix(strings.ToLower(host), "www.")
	parts := strings.Split(host, ".")
	if len(parts) <= 2 {
		return host
	}
	return parts[len(parts)-2] + "." + parts[len(parts)-1]
}

func TruncateWithEllipsis(text string, maxLen int) string {
	if len(text) <= maxLen {
		return text
	}
	// https://stackoverflow.com/a/73939904/7479498
	lastSpaceIx := maxLen
	len := 0
	for i, r := range text {
		if unicode.IsSpace(r) {
			lastSpaceIx = i
		}
		len++
		if len > maxLen {
			return text[:lastSpaceIx] + "…"
		}
	}
	// If here, string is shorter or equal to maxLen
	return text
}

// FormatCount renders engagement counts the way the platform does: 999,
// 1.2K, 34K, 1.2M. One decimal below 10 of a unit, none above.
func FormatCount(n int64) string {
	format := func(val float64, unit string) string {
		if val < 10 {
			res := fmt.Sprintf("%.1f%s", val, unit)
			return strings.Replace(res, ".0", "", 1)
		}
		return fmt.Sprintf("%.0f%s", val, unit)
	}
	switch {
	case n < 1000:
		return fmt.Sprintf("%d", n)
	case n < 1000000:
		return format(float64(n)/1000.0, "K")
	default:
		return format(float64(n)/1000000.0, "M")
	}
}

// CompactText collapses all whitespace runs to single spaces and trims.
func CompactText(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

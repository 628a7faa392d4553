package intent

import (
	"regexp"
	"strconv"
	"strings"
)

// orderIDPatterns are tried in order; the first pattern whose capture parses
// as an integer wins. A capture that fails to parse is skipped, not fatal.
var orderIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)order\s*#?\s*(\d+)`),
	regexp.MustCompile(`#\s*(\d+)`),
	regexp.MustCompile(`(?i)order\s*number\s*(\d+)`),
	regexp.MustCompile(`(?i)tracking\s*number\s*(\d+)`),
}

// ExtractOrderID pulls an order number out of a query. The second return
// value reports whether one was found.
func ExtractOrderID(query string) (int, bool) {
	for _, p := range orderIDPatterns {
		m := p.FindStringSubmatch(query)
		if m == nil {
			continue
		}
		id, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		return id, true
	}
	return 0, false
}

// productPatterns are tried in order; the first non-empty trimmed capture
// wins. Captures are non-greedy and terminate at "?", end of string, or ".".
var productPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)stock\s*(?:for|of)\s*([\w\s]+?)(?:\?|$|\.)`),
	regexp.MustCompile(`(?i)([\w\s]+?)\s*(?:in stock|available)`),
	regexp.MustCompile(`(?i)availability\s*(?:for|of)\s*([\w\s]+?)(?:\?|$|\.)`),
	regexp.MustCompile(`(?i)do you have\s*([\w\s]+?)(?:\?|$|\.)`),
}

// ExtractProductName pulls a product name out of a query. When no pattern
// matches and the query has at least two words, the last three words are
// used as a fallback guess.
func ExtractProductName(query string) (string, bool) {
	for _, p := range productPatterns {
		m := p.FindStringSubmatch(query)
		if m == nil {
			continue
		}
		name := strings.TrimSpace(m[1])
		if name != "" {
			return name, true
		}
	}

	words := strings.Fields(query)
	if len(words) >= 2 {
		start := len(words) - 3
		if start < 0 {
			start = 0
		}
		return strings.Join(words[start:], " "), true
	}

	return "", false
}

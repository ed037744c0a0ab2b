package collection

import (
	"regexp"
	"sort"
	"strings"
)

// titleWhitelist keeps word characters, whitespace, a small set of punctuation
// (parentheses, brackets, dashes, dots) and the Arabic sentence punctuation
// that product titles commonly carry.
var titleWhitelist = regexp.MustCompile(`[^\p{L}\p{N}_\s\-\(\)\[\]،؛\.!؟]`)

// StringInList returns true if s is an element of list
func StringInList(s string, list []string) bool {
	for i := range list {
		if list[i] == s {
			return true
		}
	}
	return false
}

// UniqueNames returns the distinct non-empty elements of in, order preserved
func UniqueNames(in []string) []string {
	var out []string
	uniqueMap := make(map[string]struct{}, len(in))
	for i := range in {
		if in[i] == "" {
			continue
		}
		_, exist := uniqueMap[in[i]]
		if exist {
			continue
		}
		uniqueMap[in[i]] = struct{}{}
		out = append(out, in[i])
	}
	return out
}

// SortedUnique returns the distinct non-empty elements of in, sorted ascending
func SortedUnique(in []string) []string {
	out := UniqueNames(in)
	sort.Strings(out)
	return out
}

// SanitizeTitle strips every rune outside the title whitelist
func SanitizeTitle(s string) string {
	return strings.TrimSpace(titleWhitelist.ReplaceAllString(s, ""))
}

// TruncateRunes shortens s to at most max runes, appending "..." when truncated.
// The marker counts against the limit.
func TruncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

// AnyEmpty returns true if any of the supplied strings is empty
func AnyEmpty(fields []*string) bool {
	for i := range fields {
		if fields[i] == nil || *fields[i] == "" {
			return true
		}
	}
	return false
}

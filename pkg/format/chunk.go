package format

import "strings"

// MaxMessageLength is the Telegram message size limit
const MaxMessageLength = 4096

// Split breaks an oversized message into delivery-sized chunks
func Split(message string) []string {
	return SplitWithLimit(message, MaxMessageLength)
}

// SplitWithLimit packs lines greedily into chunks of at most limit runes.
// Lines keep their trailing newline inside the chunk so that concatenating
// all chunks reproduces the input exactly. A single line longer than the
// limit is hard-sliced into limit-sized pieces.
func SplitWithLimit(message string, limit int) []string {
	if limit < 1 {
		limit = MaxMessageLength
	}
	runes := []rune(message)
	if len(runes) <= limit {
		return []string{message}
	}

	var (
		chunks  []string
		current []rune
	)
	flush := func() {
		if len(current) > 0 {
			chunks = append(chunks, string(current))
			current = nil
		}
	}

	for _, line := range splitAfterNewlines(runes) {
		for len(line) > limit {
			flush()
			chunks = append(chunks, string(line[:limit]))
			line = line[limit:]
		}
		if len(line) == 0 {
			continue
		}
		if len(current)+len(line) > limit {
			flush()
		}
		current = append(current, line...)
	}
	flush()

	return chunks
}

// splitAfterNewlines cuts the message into lines, each keeping its
// trailing newline
func splitAfterNewlines(runes []rune) [][]rune {
	var (
		lines [][]rune
		start int
	)
	for i := range runes {
		if runes[i] == '\n' {
			lines = append(lines, runes[start:i+1])
			start = i + 1
		}
	}
	if start < len(runes) {
		lines = append(lines, runes[start:])
	}
	return lines
}

// Rejoin is the inverse of Split: chunks concatenate back into the
// original message
func Rejoin(chunks []string) string {
	return strings.Join(chunks, "")
}

package text

import (
	"strings"
	"unicode"
)

// Polish cleans up a free-text summary or bullet for display: whitespace
// runs collapse to single spaces, each sentence is sentence-cased, and
// non-empty text gains a terminal period. Polishing already-polished text is
// a no-op.
func Polish(s string) string {
	collapsed := strings.Join(strings.Fields(s), " ")
	if collapsed == "" {
		return ""
	}
	out := SentenceCase(collapsed)
	switch {
	case strings.HasSuffix(out, "."), strings.HasSuffix(out, "!"), strings.HasSuffix(out, "?"):
	default:
		out += "."
	}
	return out
}

// PolishLines applies Polish to each line, dropping lines that polish to
// empty and deduplicating case-insensitively in first-seen order.
func PolishLines(lines []string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, line := range lines {
		p := Polish(line)
		if p == "" {
			continue
		}
		key := strings.ToLower(p)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, p)
	}
	return out
}

// SentenceCase uppercases the first letter of each sentence and leaves the
// rest of the text untouched, so acronyms and proper nouns survive.
func SentenceCase(s string) string {
	runes := []rune(s)
	startOfSentence := true
	for i, r := range runes {
		if startOfSentence && unicode.IsLetter(r) {
			runes[i] = unicode.ToUpper(r)
			startOfSentence = false
			continue
		}
		switch r {
		case '.', '!', '?':
			startOfSentence = true
		default:
			if !unicode.IsSpace(r) {
				startOfSentence = false
			}
		}
	}
	return string(runes)
}

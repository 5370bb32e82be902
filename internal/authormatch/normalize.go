// Package authormatch reconciles two independently-authored lists of author
// names, one extracted from a submitted document and one from the
// authoritative reference registry, and produces a deterministic, auditable
// match report. Matching runs in two phases: exact equality of normalized
// names, then a loose pass over first-initial+surname and transliterated
// forms. The output drives a pass/fail compliance decision, so phase order,
// tie-breaks, and consumption semantics are behaviorally significant and
// must stay stable.
package authormatch

import "strings"

// strayRunes are formatting glyphs observed in submitted documents that carry
// no name information: footnote daggers, soft hyphens, zero-width spaces, and
// decode-failure placeholders.
var strayRunes = map[rune]struct{}{
	'†':      {},
	'‡':      {},
	'­': {},
	'​': {},
	'�': {},
}

// Normalize canonicalizes a raw author name for comparison:
//   - every period is followed by exactly one space
//   - hyphens are removed, so hyphenated and plain surnames compare equal
//   - asterisks (footnote markers) and stray formatting glyphs are removed
//   - whitespace runs are collapsed and the ends trimmed
//
// Case is deliberately preserved: author comparison is case-sensitive,
// unlike the title comparison which uppercases both sides.
func Normalize(name string) string {
	var sb strings.Builder
	sb.Grow(len(name) + 4)

	for _, r := range name {
		if r == '-' || r == '*' {
			continue
		}
		if _, stray := strayRunes[r]; stray {
			continue
		}
		sb.WriteRune(r)
		if r == '.' {
			sb.WriteRune(' ')
		}
	}

	return strings.Join(strings.Fields(sb.String()), " ")
}

// FirstLast reduces a normalized name to its first initial plus surname:
// the first two characters (expected to be an initial and its period)
// joined to the surname by a single space. "T. J. Z. Bytes" reduces to
// "T. Bytes".
func FirstLast(normalized string) string {
	runes := []rune(normalized)
	if len(runes) < 2 {
		return normalized
	}
	return string(runes[:2]) + " " + surname(normalized)
}

// surname returns the substring starting two characters past the last
// period, skipping every "X. " initial segment. Using the last period, not
// the first, is what makes multiple middle initials reduce correctly.
func surname(name string) string {
	runes := []rune(name)
	last := -1
	for i, r := range runes {
		if r == '.' {
			last = i
		}
	}
	start := last + 2
	if start >= len(runes) {
		return ""
	}
	return string(runes[start:])
}

// SplitAuthors splits a raw comma-delimited author-list string into
// individual name tokens, trimming whitespace and dropping empty fragments.
func SplitAuthors(text string) []string {
	parts := strings.Split(text, ",")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		if name := strings.TrimSpace(p); name != "" {
			names = append(names, name)
		}
	}
	return names
}

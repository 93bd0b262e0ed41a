package answer

import "strings"

// The correct-answer notation understood here:
//
//	a|b|c        any one alternative is a complete answer
//	a, b         every comma group must be supplied, in any order
//	(a|b), (c|d) one alternative from each group, in any order
//	word [note]  "word" alone or "word note"; the note alone is wrong
//
// Evaluation is case-, accent- and whitespace-insensitive via Normalize.

// IsCorrect reports whether userAnswer satisfies the correct-answer notation
// in pattern. Pure function, no side effects.
func IsCorrect(userAnswer, pattern string) bool {
	groups := splitTopLevel(pattern)
	accepted := make([][]string, 0, len(groups))
	for _, g := range groups {
		accepted = append(accepted, expandGroup(g))
	}

	parts := strings.Split(userAnswer, ",")
	supplied := make([]string, 0, len(parts))
	for _, p := range parts {
		supplied = append(supplied, Normalize(p))
	}

	// Each comma group must be covered by exactly one supplied part, so both
	// missing groups and extra parts fail.
	if len(supplied) != len(accepted) {
		return false
	}
	return matchGroups(supplied, accepted, make([]bool, len(supplied)))
}

// matchGroups finds an assignment of supplied parts to groups where every
// group is satisfied by a distinct part. Group counts are tiny, so plain
// backtracking is enough.
func matchGroups(supplied []string, groups [][]string, used []bool) bool {
	if len(groups) == 0 {
		return true
	}
	group := groups[0]
	for i, part := range supplied {
		if used[i] || !containsString(group, part) {
			continue
		}
		used[i] = true
		if matchGroups(supplied, groups[1:], used) {
			return true
		}
		used[i] = false
	}
	return false
}

// splitTopLevel splits pattern on commas that are outside parentheses and
// brackets.
func splitTopLevel(pattern string) []string {
	var groups []string
	depth := 0
	start := 0
	for i, r := range pattern {
		switch r {
		case '(', '[':
			depth++
		case ')', ']':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				groups = append(groups, pattern[start:i])
				start = i + 1
			}
		}
	}
	groups = append(groups, pattern[start:])
	return groups
}

// expandGroup turns one comma group into the normalized set of strings it
// accepts: outer parentheses are stripped, pipe alternatives are split, and
// bracketed clarifications expand to with/without variants.
func expandGroup(group string) []string {
	group = strings.TrimSpace(group)
	if strings.HasPrefix(group, "(") && strings.HasSuffix(group, ")") {
		group = group[1 : len(group)-1]
	}

	var accepted []string
	for _, alt := range strings.Split(group, "|") {
		for _, variant := range expandBrackets(alt) {
			norm := Normalize(variant)
			if norm != "" {
				accepted = append(accepted, norm)
			}
		}
	}
	return accepted
}

// expandBrackets returns the variants of an alternative with each bracketed
// clarification either included (space-joined) or omitted.
func expandBrackets(alt string) []string {
	open := strings.IndexByte(alt, '[')
	if open < 0 {
		return []string{alt}
	}
	end := strings.IndexByte(alt[open:], ']')
	if end < 0 {
		return []string{alt}
	}
	end += open

	before, note, after := alt[:open], alt[open+1:end], alt[end+1:]
	var variants []string
	for _, rest := range expandBrackets(after) {
		variants = append(variants, before+" "+rest)
		variants = append(variants, before+" "+note+" "+rest)
	}
	return variants
}

func containsString(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

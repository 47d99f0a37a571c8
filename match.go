package ufmt

import "strings"

// MatchPattern reports whether str matches pattern, where '*' matches any
// run of bytes (including none) and '?' matches exactly one byte. Every
// other byte matches itself.
func MatchPattern(str, pattern string) bool {
	s, p := 0, 0
	star, mark := -1, 0
	for s < len(str) {
		switch {
		case p < len(pattern) && (pattern[p] == '?' || pattern[p] == str[s]):
			s++
			p++
		case p < len(pattern) && pattern[p] == '*':
			star, mark = p, s
			p++
		case star >= 0:
			// Let the last star absorb one more byte and retry.
			mark++
			s, p = mark, star+1
		default:
			return false
		}
	}
	for p < len(pattern) && pattern[p] == '*' {
		p++
	}
	return p == len(pattern)
}

// Replace returns str with every non-overlapping occurrence of find replaced
// by repl. An empty find returns str unchanged.
func Replace(str, find, repl string) string {
	if find == "" {
		return str
	}
	return strings.ReplaceAll(str, find, repl)
}

// Trim returns str without leading and trailing ASCII whitespace.
func Trim(str string) string {
	return strings.TrimFunc(str, func(r rune) bool {
		switch r {
		case ' ', '\t', '\n', '\r', '\v', '\f':
			return true
		}
		return false
	})
}

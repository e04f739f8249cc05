package main

import "strings"

// getLine returns line idx of content without its line break
func getLine(content string, idx int) string {
	lines := strings.Split(content, "\n")
	if idx < 0 || idx >= len(lines) {
		return ""
	}
	return strings.TrimRight(lines[idx], "\r")
}

// getWordAtPosition returns the identifier under the cursor, or ""
func getWordAtPosition(content string, line, char int) string {
	runes := []rune(getLine(content, line))
	if char > len(runes) {
		char = len(runes)
	}
	if char < 0 {
		return ""
	}
	start, end := char, char
	for start > 0 && isIdentifierChar(runes[start-1]) {
		start--
	}
	for end < len(runes) && isIdentifierChar(runes[end]) {
		end++
	}
	return string(runes[start:end])
}

// getPrefixAtPosition returns the part of the identifier left of the cursor
func getPrefixAtPosition(content string, line, char int) string {
	runes := []rune(getLine(content, line))
	if char > len(runes) {
		char = len(runes)
	}
	start := char
	for start > 0 && isIdentifierChar(runes[start-1]) {
		start--
	}
	return string(runes[start:char])
}

// isIdentifierChar accepts the same characters the lexer allows in names
func isIdentifierChar(r rune) bool {
	if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' {
		return true
	}
	switch r {
	case '@', '#', '$', '¢', '£', '¥', '€':
		return true
	}
	return false
}

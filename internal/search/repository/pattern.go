package repository

import "strings"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike escapes LIKE metacharacters so user text matches literally.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// ContainsPattern builds the %text% pattern shared by every lookup.
func ContainsPattern(text string) string {
	return "%" + EscapeLike(text) + "%"
}

// PrefixPattern builds the text% pattern used by suggestions.
func PrefixPattern(text string) string {
	return EscapeLike(text) + "%"
}

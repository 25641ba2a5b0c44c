package util

import (
	"strings"
	"unicode"
)

// PascalCase turns "monthly sales report" into "MonthlySalesReport"
func PascalCase(s string) string {
	var sb strings.Builder
	for _, w := range splitWords(s) {
		sb.WriteString(capitalize(w))
	}
	return sb.String()
}

// CamelCase turns "reset password" into "resetPassword"
func CamelCase(s string) string {
	words := splitWords(s)
	if len(words) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(strings.ToLower(words[0]))
	for _, w := range words[1:] {
		sb.WriteString(capitalize(w))
	}
	return sb.String()
}

// SnakeCase turns "Reset Password" into "reset_password"
func SnakeCase(s string) string {
	words := splitWords(s)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, "_")
}

// Identifier makes a PlantUML-safe alias such as "registered_user"
func Identifier(s string) string {
	id := SnakeCase(s)
	if id == "" {
		return "unnamed"
	}
	return id
}

func splitWords(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func capitalize(w string) string {
	if w == "" {
		return ""
	}
	runes := []rune(strings.ToLower(w))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

package typescript

import (
	"strings"
	"unicode"
)

// TypeScript reserved words.
var reservedWords = map[string]bool{
	"break":      true,
	"case":       true,
	"catch":      true,
	"class":      true,
	"const":      true,
	"continue":   true,
	"debugger":   true,
	"default":    true,
	"delete":     true,
	"do":         true,
	"else":       true,
	"enum":       true,
	"export":     true,
	"extends":    true,
	"false":      true,
	"finally":    true,
	"for":        true,
	"function":   true,
	"if":         true,
	"implements": true,
	"import":     true,
	"in":         true,
	"instanceof": true,
	"interface":  true,
	"let":        true,
	"new":        true,
	"null":       true,
	"package":    true,
	"private":    true,
	"protected":  true,
	"public":     true,
	"return":     true,
	"static":     true,
	"super":      true,
	"switch":     true,
	"this":       true,
	"throw":      true,
	"true":       true,
	"try":        true,
	"type":       true,
	"typeof":     true,
	"var":        true,
	"void":       true,
	"while":      true,
	"with":       true,
	"yield":      true,
}

// Global types a catalog type must not shadow, plus the names the
// endpoint and event declarations define themselves.
var reservedTypeNames = map[string]bool{
	"any":                 true,
	"boolean":             true,
	"never":               true,
	"number":              true,
	"object":              true,
	"string":              true,
	"symbol":              true,
	"unknown":             true,
	"Array":               true,
	"Awaited":             true,
	"Exclude":             true,
	"Extract":             true,
	"NonNullable":         true,
	"Omit":                true,
	"Partial":             true,
	"Pick":                true,
	"Promise":             true,
	"Readonly":            true,
	"Record":              true,
	"Required":            true,
	"ReturnType":          true,
	"HttpMethod":          true,
	"EndpointsWithMethod": true,
	"LCUEndpoint":         true,
	"LCUEndpoints":        true,
	"LCUWebSocketEvents":  true,
}

// escapeReservedWord escapes a reserved word by appending an underscore.
func escapeReservedWord(name string) string {
	if reservedWords[name] {
		return name + "_"
	}
	return name
}

// typeName maps a catalog type name to its declared identifier. Dashes
// become underscores, and names colliding with keywords or global types
// get an underscore suffix. Declarations and references both go through
// here so they always agree.
func typeName(name string) string {
	name = sanitizeIdentifier(name)
	if reservedTypeNames[name] {
		return name + "_"
	}
	return name
}

// needsQuoting returns true if a property name must be written as a string literal.
// Reserved words are valid property names and are left bare.
func needsQuoting(name string) bool {
	if name == "" {
		return true
	}

	// Check if it starts with a number
	if unicode.IsDigit(rune(name[0])) {
		return true
	}

	// Check for invalid characters
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '$' {
			return true
		}
	}

	return false
}

// propertyKey formats a property name, quoting it when needed.
func propertyKey(name string) string {
	if needsQuoting(name) {
		return quote(name)
	}
	return name
}

// quote writes s as a double-quoted TypeScript string literal.
func quote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"', '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		case '\n':
			b.WriteString(`\n`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// sanitizeIdentifier makes an identifier valid for TypeScript.
func sanitizeIdentifier(name string) string {
	if name == "" {
		return "_"
	}

	var result strings.Builder

	// Handle leading digit
	if unicode.IsDigit(rune(name[0])) {
		result.WriteRune('_')
	}

	// Replace invalid characters with underscores
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '$' {
			result.WriteRune(r)
		} else {
			result.WriteRune('_')
		}
	}

	return escapeReservedWord(result.String())
}

// parameterLabel formats a path placeholder as a tuple element label.
func parameterLabel(name string) string {
	return sanitizeIdentifier(strings.ReplaceAll(name, "+", ""))
}

// Package render resolves a screen element's file-name template against the
// element's own fields.
package render

import (
	"strings"
	"unicode"

	"github.com/atomicstack/screen-generator/internal/model"
)

const (
	tokenOpen  = "${"
	tokenClose = "}"
)

// Token documents one placeholder understood by FileName.
type Token struct {
	Name        string
	Description string
	resolve     func(model.ScreenElement) string
}

var tokens = []Token{
	{"Name", "element name", func(e model.ScreenElement) string { return e.Name }},
	{"name", "element name in snake_case", func(e model.ScreenElement) string { return snakeCase(e.Name) }},
	{"Component", "android component", func(e model.ScreenElement) string {
		if e.AndroidComponent == model.AndroidComponentNone {
			return ""
		}
		return e.AndroidComponent.DisplayName()
	}},
	{"SourceSet", "source set", func(e model.ScreenElement) string { return e.SourceSet }},
	{"Subdirectory", "sub package", func(e model.ScreenElement) string { return e.Subdirectory }},
	{"Extension", "file type extension", func(e model.ScreenElement) string { return e.FileType.Extension() }},
}

var tokenIndex = func() map[string]Token {
	idx := make(map[string]Token, len(tokens))
	for _, t := range tokens {
		idx[t.Name] = t
	}
	return idx
}()

// Tokens lists the recognised placeholders in display order.
func Tokens() []Token {
	out := make([]Token, len(tokens))
	copy(out, tokens)
	return out
}

// Placeholder returns the literal form of a token, e.g. "${Name}".
func (t Token) Placeholder() string {
	return tokenOpen + t.Name + tokenClose
}

// Resolve returns the value t expands to for e.
func (t Token) Resolve(e model.ScreenElement) string {
	return t.resolve(e)
}

// FileName renders e.FileNameTemplate. Unknown or unterminated placeholders
// are copied through unchanged.
func FileName(e model.ScreenElement) string {
	template := e.FileNameTemplate
	if template == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(template))
	for {
		start := strings.Index(template, tokenOpen)
		if start < 0 {
			b.WriteString(template)
			break
		}
		b.WriteString(template[:start])
		rest := template[start+len(tokenOpen):]
		end := strings.Index(rest, tokenClose)
		if end < 0 {
			b.WriteString(template[start:])
			break
		}
		key := rest[:end]
		// A stray opener before a real placeholder is literal text.
		if inner := strings.LastIndex(key, tokenOpen); inner >= 0 {
			b.WriteString(tokenOpen + key[:inner])
			template = rest[inner:]
			continue
		}
		if token, ok := tokenIndex[key]; ok {
			b.WriteString(token.resolve(e))
		} else {
			b.WriteString(tokenOpen + key + tokenClose)
		}
		template = rest[end+len(tokenClose):]
	}
	return b.String()
}

// snakeCase lower-cases s and separates words at case boundaries,
// spaces and dashes: "LoginScreen" -> "login_screen".
func snakeCase(s string) string {
	runes := []rune(strings.TrimSpace(s))
	var b strings.Builder
	for i, r := range runes {
		switch {
		case r == ' ' || r == '-' || r == '_':
			if b.Len() > 0 && !strings.HasSuffix(b.String(), "_") {
				b.WriteRune('_')
			}
		case unicode.IsUpper(r):
			if i > 0 && b.Len() > 0 && !strings.HasSuffix(b.String(), "_") {
				prev := runes[i-1]
				nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
				if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
					b.WriteRune('_')
				}
			}
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
	}
	return strings.TrimSuffix(b.String(), "_")
}

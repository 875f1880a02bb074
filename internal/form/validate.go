package form

import (
	"strings"
	"unicode"
)

const (
	MsgFirstNameRequired = "Nama depan wajib diisi"
	MsgLastNameRequired  = "Nama belakang wajib diisi"
	MsgEmailInvalid      = "Email tidak valid"
)

// rule returns a message when the value fails, "" otherwise.
type rule func(value string) string

var rules = [fieldCount]rule{
	FirstName: required(MsgFirstNameRequired),
	LastName:  required(MsgLastNameRequired),
	Email:     containsAt,
}

func required(msg string) rule {
	return func(v string) string {
		if isBlank(v) {
			return msg
		}
		return ""
	}
}

// containsAt is deliberately loose: "@", "x@" and "@y" all pass.
func containsAt(v string) string {
	if !strings.Contains(v, "@") {
		return MsgEmailInvalid
	}
	return ""
}

func isBlank(s string) bool {
	return trimBlank(s) == ""
}

func trimBlank(s string) string {
	return strings.TrimFunc(s, isWhitespace)
}

// isWhitespace is unicode.IsSpace plus the information separators
// U+001C..U+001F, minus NEL (U+0085).
func isWhitespace(r rune) bool {
	switch {
	case r >= '\u001c' && r <= '\u001f':
		return true
	case r == '\u0085':
		return false
	}
	return unicode.IsSpace(r)
}

// Findings holds the per-field results of one validation pass.
type Findings [fieldCount]string

func (f Findings) OK() bool {
	for _, msg := range f {
		if msg != "" {
			return false
		}
	}
	return true
}

func (f Findings) For(field Field) string {
	if !field.Valid() {
		return ""
	}
	return f[field]
}

// Validate runs every rule against s in field order without changing it.
func Validate(s State) Findings {
	var out Findings
	for _, f := range Fields() {
		out[f] = rules[f](s.Value(f))
	}
	return out
}

// JoinFullName builds the derived display name from the two name inputs.
func JoinFullName(first, last string) string {
	return trimBlank(first) + " " + trimBlank(last)
}

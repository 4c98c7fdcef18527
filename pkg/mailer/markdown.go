package mailer

import (
	"strings"
	"unicode"
)

// markdownEscaper backslash-escapes characters that change inline markdown
// structure. Raw '<' is escaped too, so goldmark renders it as "&lt;" text.
var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	`*`, `\*`,
	`_`, `\_`,
	`[`, `\[`,
	`]`, `\]`,
	`<`, `\<`,
	`>`, `\>`,
	`!`, `\!`,
	`|`, `\|`,
	`#`, `\#`,
	`~`, `\~`,
	"\r", " ",
	"\n", " ",
	"\x00", "",
)

// EscapeMarkdown makes s safe to interpolate into a single line of a markdown template.
// Available inside templates as {{md .Value}}.
func EscapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}

// SingleLine prepares s for a header such as the subject. Line breaks and
// tabs become spaces; other control characters are dropped.
func SingleLine(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\r', r == '\n', r == '\t':
			return ' '
		case unicode.IsControl(r):
			return -1
		}
		return r
	}, s)
}

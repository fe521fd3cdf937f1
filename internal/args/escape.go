package args

import (
	"fmt"
	"strings"
)

// escaper replaces every special byte in a single left-to-right pass, so a
// backslash inserted for one character is never escaped again by another rule.
var escaper = strings.NewReplacer(
	`\`, `\\`,
	" ", `\s`,
	`"`, `\2`,
	":", `\c`,
	"#", `\h`,
)

// Escape encodes free text for use inside a colon or hash delimited
// mkvpropedit argument, such as an attachment name selector.
//
// Escape is not idempotent: apply it exactly once per raw value.
func Escape(s string) string {
	return escaper.Replace(s)
}

// Unescape reverses Escape. It fails on a dangling backslash or on an
// escape sequence Escape never produces.
func Unescape(s string) (string, error) {
	if !strings.Contains(s, `\`) {
		return s, nil
	}

	var b strings.Builder

	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			b.WriteByte(c)

			continue
		}

		if i+1 >= len(s) {
			return "", fmt.Errorf("unescape %q: dangling backslash", s)
		}

		i++

		switch s[i] {
		case '\\':
			b.WriteByte('\\')
		case 's':
			b.WriteByte(' ')
		case '2':
			b.WriteByte('"')
		case 'c':
			b.WriteByte(':')
		case 'h':
			b.WriteByte('#')
		default:
			return "", fmt.Errorf("unescape %q: unknown sequence \\%c", s, s[i])
		}
	}

	return b.String(), nil
}

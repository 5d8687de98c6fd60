// Package retag implements the filename/date transformation engine: parsing user-entered
// filename templates, resolving placeholder tokens against image metadata, compiling new
// filenames and computing new date-taken values. Everything in this package is pure
// computation over in-memory metadata; it never touches the filesystem.
package retag

import (
	"errors"
	"fmt"
	"strings"
)

/**************************************************************************************************
** ErrInvalidTemplate is returned by ParseTemplate for any syntactically invalid template:
** a character outside [A-Za-z0-9_-.] appearing outside brackets, an unclosed or malformed
** bracket pair, or an unknown tag name. Callers are expected to keep their previous valid
** token sequence when they receive this error.
**************************************************************************************************/
var ErrInvalidTemplate = errors.New("invalid template")

// isLiteralChar reports whether c may appear in a template outside brackets.
func isLiteralChar(c byte) bool {
	return c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' ||
		c == '_' || c == '-' || c == '.'
}

/**************************************************************************************************
** ParseTemplate parses a raw template string into an ordered token sequence. A template is a
** run of literal characters from [A-Za-z0-9_-.] interleaved with bracketed tags [TAG] or
** [TAG:ARG]. Only the FIRST colon inside a bracket pair splits the tag from its argument,
** so the argument itself may contain colons; it may contain any character except ']'.
**
** Validation is syntactic and membership-only: whether an argument will actually be found
** in a given basename is decided per image at compile time, not here. On failure no partial
** result is returned.
**
** @param raw - The raw template string as entered by the user
** @return []Token - Ordered token sequence, literals and placeholders in appearance order
** @return error - ErrInvalidTemplate (wrapped with detail) if the template is not valid
**************************************************************************************************/
func ParseTemplate(raw string) ([]Token, error) {
	tokens := make([]Token, 0, 8)

	i := 0
	for i < len(raw) {
		c := raw[i]

		if c == '[' {
			end := strings.IndexByte(raw[i+1:], ']')
			if end < 0 {
				return nil, fmt.Errorf("%w: unclosed tag at position %d", ErrInvalidTemplate, i)
			}
			inner := raw[i+1 : i+1+end]
			if strings.IndexByte(inner, '[') >= 0 {
				return nil, fmt.Errorf("%w: nested '[' in tag at position %d", ErrInvalidTemplate, i)
			}

			name, arg, hasArg := strings.Cut(inner, ":")
			key := name
			if hasArg {
				key = name + ":"
			}
			spec, known := tagTable[key]
			if !known {
				return nil, fmt.Errorf("%w: unknown tag %q", ErrInvalidTemplate, inner)
			}
			tokens = append(tokens, Token{Kind: spec.kind, Text: arg})
			i += end + 2
			continue
		}

		if isLiteralChar(c) {
			j := i
			for j < len(raw) && isLiteralChar(raw[j]) {
				j++
			}
			tokens = append(tokens, Token{Kind: TokenLiteral, Text: raw[i:j]})
			i = j
			continue
		}

		return nil, fmt.Errorf("%w: character %q not allowed outside tags", ErrInvalidTemplate, c)
	}

	return tokens, nil
}

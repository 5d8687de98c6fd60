package retag

import (
	"strings"
	"time"
	"unicode"

	"github.com/majorfi/photo-retag/pkg/utils"
)

// hasAlphanumeric reports whether s contains at least one letter or digit.
func hasAlphanumeric(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

/**************************************************************************************************
** CompileFilename combines a parsed template with one image's metadata to produce a concrete
** new filename. The boolean result is false when no rename applies:
** - the token sequence is empty
** - the template contains placeholders and NONE of them resolved to a value, meaning the
**   template carries no usable information for this image
** - the assembled name contains no alphanumeric character (guards against producing an
**   all-symbol filename)
**
** When at least one placeholder resolved, unresolved placeholders substitute the empty
** string. A placeholder that resolved to an empty string still counts as resolved: empty
** is a valid value, absence is not.
**
** @param tokens - Parsed template token sequence
** @param img - Metadata snapshot of the image being converted
** @param effective - Effective date taken from the date rule engine, nil when none exists
** @return string - The new filename including the image's extension
** @return bool - True if a rename applies, false to keep the current filename
**************************************************************************************************/
func CompileFilename(tokens []Token, img utils.TImage, effective *time.Time) (string, bool) {
	if len(tokens) == 0 {
		return "", false
	}

	parts := make([]string, len(tokens))
	placeholders := 0
	resolved := 0

	for i, token := range tokens {
		if token.Kind == TokenLiteral {
			parts[i] = token.Text
			continue
		}
		placeholders++
		if value, ok := Resolve(token.Kind, img, token.Text, effective); ok {
			parts[i] = value
			resolved++
		}
	}

	if placeholders > 0 && resolved == 0 {
		return "", false
	}

	assembled := strings.Join(parts, "")
	if !hasAlphanumeric(assembled) {
		return "", false
	}

	return assembled + img.Extension, true
}

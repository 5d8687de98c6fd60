package retag

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/majorfi/photo-retag/pkg/utils"
)

// Characters allowed to survive in camera maker/model values; everything else becomes '-'.
var scrubRegex = regexp.MustCompile(`[^a-zA-Z0-9_-]`)

// scrubString replaces every character outside [A-Za-z0-9_-] with '-'.
func scrubString(text string) string {
	return scrubRegex.ReplaceAllString(text, "-")
}

/**************************************************************************************************
** Resolve produces the string value of a single placeholder for one image. The boolean
** result distinguishes "no value available" (false) from a present-but-empty value (true,
** ""): an empty camera maker resolves, a missing one does not.
**
** Date-derived tokens read from the EFFECTIVE date taken: the value already produced by the
** date rule engine for this image, not necessarily the raw EXIF timestamp. This makes
** filename tokens reflect a date change applied in the same operation.
**
** Substring tokens search the basename case-sensitively for the leftmost occurrence of
** their argument and slice around it; an argument that does not occur yields no value.
**
** @param kind - The placeholder kind (TokenLiteral is not a placeholder and yields no value)
** @param img - Metadata snapshot of the image being converted
** @param arg - Search argument for the substring kinds, ignored otherwise
** @param effective - Effective date taken for this conversion, nil when none exists
** @return string - The resolved value, empty unless the second result is true
** @return bool - True if the placeholder produced a value for this image
**************************************************************************************************/
func Resolve(kind TokenKind, img utils.TImage, arg string, effective *time.Time) (string, bool) {
	switch kind {
	case TokenOriginal:
		return img.Basename, true

	case TokenYear:
		if effective == nil {
			return "", false
		}
		return fmt.Sprintf("%04d", effective.Year()), true

	case TokenMonth:
		if effective == nil {
			return "", false
		}
		return fmt.Sprintf("%02d", int(effective.Month())), true

	case TokenDay:
		if effective == nil {
			return "", false
		}
		return fmt.Sprintf("%02d", effective.Day()), true

	case TokenHour:
		if effective == nil {
			return "", false
		}
		return fmt.Sprintf("%02d", effective.Hour()), true

	case TokenMinute:
		if effective == nil {
			return "", false
		}
		return fmt.Sprintf("%02d", effective.Minute()), true

	case TokenSecond:
		if effective == nil {
			return "", false
		}
		return fmt.Sprintf("%02d", effective.Second()), true

	case TokenCameraMaker:
		if img.CameraMaker == nil {
			return "", false
		}
		return scrubString(*img.CameraMaker), true

	case TokenCameraModel:
		if img.CameraModel == nil {
			return "", false
		}
		return scrubString(*img.CameraModel), true

	case TokenUpTo:
		pos := strings.Index(img.Basename, arg)
		if pos < 0 {
			return "", false
		}
		return img.Basename[:pos], true

	case TokenUpToInclusive:
		pos := strings.Index(img.Basename, arg)
		if pos < 0 {
			return "", false
		}
		return img.Basename[:pos+len(arg)], true

	case TokenFrom:
		pos := strings.Index(img.Basename, arg)
		if pos < 0 {
			return "", false
		}
		return img.Basename[pos+len(arg):], true

	case TokenFromInclusive:
		pos := strings.Index(img.Basename, arg)
		if pos < 0 {
			return "", false
		}
		return img.Basename[pos:], true

	default:
		return "", false
	}
}

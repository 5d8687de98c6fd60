package utils

import (
	"regexp"
	"strings"
)

var copySuffixRegex = regexp.MustCompile(`^(.+)-\d+$`)

/**************************************************************************************************
** Contains checks if a string is present in a slice of strings.
**
** @param list - Slice of strings to search
** @param s - String to search for
** @return bool - True if string is present in slice, false otherwise
**************************************************************************************************/
func Contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

/**************************************************************************************************
** SplitFilename splits a file name into its basename and extension, keeping the leading dot
** on the extension so that basename + extension == filename. Only the last dot counts as the
** extension separator; a name without a dot has an empty extension.
**
** @param filename - File name with extension (no directory part)
** @return string - Basename without extension
** @return string - Extension including the leading dot, or empty string
**************************************************************************************************/
func SplitFilename(filename string) (string, string) {
	idx := strings.LastIndex(filename, ".")
	if idx <= 0 {
		return filename, ""
	}
	return filename[:idx], filename[idx:]
}

/**************************************************************************************************
** StripCopySuffix removes a trailing numeric disambiguation suffix ("-1", "-2", ...) from a
** basename. Saved files get such suffixes when their target name already exists on disk, so
** the suffix must be ignored when deciding whether a computed name is actually a rename.
**
** @param basename - File name without extension
** @return string - Basename without the trailing -N suffix, or unchanged if none present
**************************************************************************************************/
func StripCopySuffix(basename string) string {
	match := copySuffixRegex.FindStringSubmatch(basename)
	if len(match) == 2 {
		return match[1]
	}
	return basename
}

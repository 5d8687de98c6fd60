package retag

import "time"

/**************************************************************************************************
** TokenKind identifies one kind of template token. Literal text and every supported
** placeholder get their own kind so that resolution is a single exhaustive switch instead
** of a map of callables.
**************************************************************************************************/
type TokenKind int

const (
	TokenLiteral        TokenKind = iota // Literal text, copied as-is
	TokenOriginal                        // [ORG] original basename
	TokenYear                            // [YYYY] four digit year
	TokenMonth                           // [MM] two digit month
	TokenDay                             // [DD] two digit day
	TokenHour                            // [hh] two digit hour
	TokenMinute                          // [mm] two digit minute
	TokenSecond                          // [ss] two digit second
	TokenCameraMaker                     // [MAK] scrubbed EXIF Make
	TokenCameraModel                     // [MOD] scrubbed EXIF Model
	TokenUpTo                            // [UPT:x] basename up to x, exclusive
	TokenUpToInclusive                   // [UPTI:x] basename up to x, inclusive
	TokenFrom                            // [FRM:x] basename from x, exclusive
	TokenFromInclusive                   // [FRMI:x] basename from x, inclusive
)

/**************************************************************************************************
** Token is one element of a parsed filename template. Tokens are produced in left-to-right
** order by ParseTemplate, are immutable, and are rebuilt from scratch on every parse.
**
** Text holds the literal run for TokenLiteral and the search argument for the four
** arg-bearing kinds; it is empty for every other kind.
**************************************************************************************************/
type Token struct {
	Kind TokenKind `json:"kind"`
	Text string    `json:"text,omitempty"`
}

/**************************************************************************************************
** DateRuleMode selects which date-taken policy a DateRule carries. Exactly one mode is
** active at a time, mirroring the mutually exclusive choice in the settings.
**************************************************************************************************/
type DateRuleMode int

const (
	DateRuleUnchanged DateRuleMode = iota // Pass the original date taken through
	DateRuleRelative                      // Shift the original by a signed day/time offset
	DateRuleSpecific                      // Replace with a fixed timestamp
)

/**************************************************************************************************
** DateRule represents the date-taken policy as a tagged variant. Only the fields belonging
** to the active mode are meaningful:
** - DateRuleRelative uses Sign, Days and TimeOfDay
** - DateRuleSpecific uses Specific
**
** Sign flips the ENTIRE combined offset: a rule of sign -1, 1 day, 02:00:00 subtracts
** 26 hours, it does not add a day and subtract two hours.
**
** Days is a non-negative whole-day count and TimeOfDay a non-negative sub-day duration;
** both are bounded by the settings layer and trusted here.
**************************************************************************************************/
type DateRule struct {
	Mode      DateRuleMode  `json:"mode"`
	Sign      int           `json:"sign,omitempty"`      // +1 or -1, relative mode only
	Days      int           `json:"days,omitempty"`      // Whole days, relative mode only
	TimeOfDay time.Duration `json:"timeOfDay,omitempty"` // Hours/minutes/seconds, relative mode only
	Specific  time.Time     `json:"specific,omitempty"`  // Fixed timestamp, specific mode only
}

/**************************************************************************************************
** TagInfo describes one user-facing template tag for display purposes (the tags command).
**************************************************************************************************/
type TagInfo struct {
	Tag         string `json:"tag"`         // Base tag name, with trailing colon for arg-bearing tags
	Description string `json:"description"` // Human readable description
	HasArg      bool   `json:"hasArg"`      // Whether the tag takes a search argument
}

// tagSpec ties a base tag name to its token kind and display metadata.
type tagSpec struct {
	kind        TokenKind
	description string
	hasArg      bool
}

// Package-level tag table to avoid reallocation on each parse. Arg-bearing tags are keyed
// with their trailing colon, matching the user-facing syntax [UPT:x].
var tagTable = map[string]tagSpec{
	"ORG":   {TokenOriginal, "Original file name", false},
	"YYYY":  {TokenYear, "Year", false},
	"MM":    {TokenMonth, "Month", false},
	"DD":    {TokenDay, "Day", false},
	"hh":    {TokenHour, "Hour", false},
	"mm":    {TokenMinute, "Minute", false},
	"ss":    {TokenSecond, "Second", false},
	"MAK":   {TokenCameraMaker, "Camera maker", false},
	"MOD":   {TokenCameraModel, "Camera model", false},
	"UPT:":  {TokenUpTo, "Up to", true},
	"UPTI:": {TokenUpToInclusive, "Up to and including", true},
	"FRM:":  {TokenFrom, "From", true},
	"FRMI:": {TokenFromInclusive, "From and including", true},
}

// tagOrder fixes the display order of tags, matching the order users see them documented.
var tagOrder = []string{"ORG", "YYYY", "MM", "DD", "hh", "mm", "ss", "MAK", "MOD", "UPT:", "UPTI:", "FRM:", "FRMI:"}

/**************************************************************************************************
** Tags returns the supported template tags in display order.
**
** @return []TagInfo - Ordered list of tag descriptions
**************************************************************************************************/
func Tags() []TagInfo {
	result := make([]TagInfo, 0, len(tagOrder))
	for _, tag := range tagOrder {
		spec := tagTable[tag]
		result = append(result, TagInfo{Tag: tag, Description: spec.description, HasArg: spec.hasArg})
	}
	return result
}

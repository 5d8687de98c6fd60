package retag

import (
	"time"

	"github.com/majorfi/photo-retag/pkg/utils"
)

/**************************************************************************************************
** UnchangedRule returns the pass-through date rule: the original date taken is kept as-is.
**************************************************************************************************/
func UnchangedRule() DateRule {
	return DateRule{Mode: DateRuleUnchanged}
}

/**************************************************************************************************
** RelativeRule returns a rule shifting the original date taken by sign * (days + timeOfDay).
**
** @param sign - +1 to add the offset, -1 to subtract it (any negative value counts as -1)
** @param days - Non-negative whole-day count
** @param timeOfDay - Non-negative sub-day duration (hours, minutes, seconds)
** @return DateRule - The relative rule
**************************************************************************************************/
func RelativeRule(sign int, days int, timeOfDay time.Duration) DateRule {
	if sign >= 0 {
		sign = 1
	} else {
		sign = -1
	}
	return DateRule{Mode: DateRuleRelative, Sign: sign, Days: days, TimeOfDay: timeOfDay}
}

/**************************************************************************************************
** RelativeRuleFromSeconds builds a relative rule from the persisted exchange format: a
** single signed total-seconds integer. The sign of the integer becomes the rule's sign and
** the magnitude is split into whole days plus a sub-day remainder.
**
** @param totalSeconds - Signed offset in seconds
** @return DateRule - The equivalent relative rule
**************************************************************************************************/
func RelativeRuleFromSeconds(totalSeconds int) DateRule {
	sign := 1
	if totalSeconds < 0 {
		sign = -1
		totalSeconds = -totalSeconds
	}
	days := totalSeconds / utils.SecondsPerDay
	remainder := totalSeconds % utils.SecondsPerDay
	return RelativeRule(sign, days, time.Duration(remainder)*time.Second)
}

/**************************************************************************************************
** SpecificRule returns a rule assigning a fixed timestamp to every image, regardless of
** whether the image had a date taken at all.
**************************************************************************************************/
func SpecificRule(ts time.Time) DateRule {
	return DateRule{Mode: DateRuleSpecific, Specific: ts}
}

/**************************************************************************************************
** ApplyDateRule computes the effective date taken for one image under the given rule.
**
** - DateRuleUnchanged passes the original through, nil or not, so downstream consumers can
**   distinguish "no active rule" from "rule present but not applicable".
** - DateRuleSpecific always yields the fixed timestamp, even when the original is absent;
**   this lets users assign a date taken to images that never had one.
** - DateRuleRelative yields nil when the original is absent (a relative shift has no base;
**   this is an absence, not an error) and original + sign * (days + timeOfDay) otherwise.
**
** @param rule - The active date rule
** @param original - The image's original date taken, nil when the file has none
** @return *time.Time - The effective date taken, nil when no value exists
**************************************************************************************************/
func ApplyDateRule(rule DateRule, original *time.Time) *time.Time {
	switch rule.Mode {
	case DateRuleUnchanged:
		return original

	case DateRuleSpecific:
		ts := rule.Specific
		return &ts

	case DateRuleRelative:
		if original == nil {
			return nil
		}
		offset := time.Duration(rule.Days)*24*time.Hour + rule.TimeOfDay
		if rule.Sign < 0 {
			offset = -offset
		}
		ts := original.Add(offset)
		return &ts

	default:
		return original
	}
}

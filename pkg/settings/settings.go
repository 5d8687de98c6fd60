// Package settings persists the last-used filename template and relative date offset
// between runs, as a small YAML file. The conversion core only ever sees the loaded values
// as initial configuration; it has no dependency on the storage format.
package settings

import (
	"errors"
	"fmt"
	"os"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"

	"github.com/majorfi/photo-retag/pkg/retag"
	"github.com/majorfi/photo-retag/pkg/utils"
)

/**************************************************************************************************
** TOffset holds a relative date offset split into its user-facing components: a sign, a
** whole-day count and an hh:mm:ss time of day. The hour/minute/second bounds mirror the
** time-edit control of the original tool; the core trusts them and does not re-validate.
**************************************************************************************************/
type TOffset struct {
	Sign    int `yaml:"sign"`    // +1 or -1, flips the whole offset
	Days    int `yaml:"days"`    // Whole days, >= 0
	Hours   int `yaml:"hours"`   // 0-23
	Minutes int `yaml:"minutes"` // 0-59
	Seconds int `yaml:"seconds"` // 0-59
}

/**************************************************************************************************
** TSettings is the persisted application state: the last-used template string and the
** last-used relative offset.
**************************************************************************************************/
type TSettings struct {
	Template string  `yaml:"template"`
	Offset   TOffset `yaml:"offset"`
}

// Default returns the settings used when no file exists yet.
func Default() TSettings {
	return TSettings{Offset: TOffset{Sign: 1}}
}

// Validate validates the offset bounds.
func (o *TOffset) Validate() error {
	return validation.ValidateStruct(o,
		validation.Field(&o.Sign, validation.Required, validation.In(-1, 1)),
		validation.Field(&o.Days, validation.Min(0)),
		validation.Field(&o.Hours, validation.Min(0), validation.Max(23)),
		validation.Field(&o.Minutes, validation.Min(0), validation.Max(59)),
		validation.Field(&o.Seconds, validation.Min(0), validation.Max(59)),
	)
}

// Validate validates the whole settings document, including template syntax.
func (s *TSettings) Validate() error {
	if s.Template != "" {
		if _, err := retag.ParseTemplate(s.Template); err != nil {
			return err
		}
	}
	return s.Offset.Validate()
}

/**************************************************************************************************
** TotalSeconds converts the offset to the signed total-seconds exchange format used by
** callers that take a single integer offset. Round trips with OffsetFromSeconds.
**************************************************************************************************/
func (o TOffset) TotalSeconds() int {
	total := o.Days*utils.SecondsPerDay + o.Hours*utils.SecondsPerHour + o.Minutes*utils.SecondsPerMinute + o.Seconds
	if o.Sign < 0 {
		return -total
	}
	return total
}

/**************************************************************************************************
** OffsetFromSeconds splits a signed total-seconds offset into its sign/day/time components.
**************************************************************************************************/
func OffsetFromSeconds(totalSeconds int) TOffset {
	sign := 1
	if totalSeconds < 0 {
		sign = -1
		totalSeconds = -totalSeconds
	}
	return TOffset{
		Sign:    sign,
		Days:    totalSeconds / utils.SecondsPerDay,
		Hours:   totalSeconds % utils.SecondsPerDay / utils.SecondsPerHour,
		Minutes: totalSeconds % utils.SecondsPerHour / utils.SecondsPerMinute,
		Seconds: totalSeconds % utils.SecondsPerMinute,
	}
}

// Rule converts the offset to the core's relative date rule.
func (o TOffset) Rule() retag.DateRule {
	timeOfDay := time.Duration(o.Hours)*time.Hour + time.Duration(o.Minutes)*time.Minute + time.Duration(o.Seconds)*time.Second
	return retag.RelativeRule(o.Sign, o.Days, timeOfDay)
}

/**************************************************************************************************
** Load reads settings from a YAML file. A missing file yields the defaults, not an error,
** so a fresh working directory behaves like a first run.
**
** @param path - Path to the settings file
** @return TSettings - The loaded (or default) settings
** @return error - An error if the file is unreadable, malformed or out of bounds
**************************************************************************************************/
func Load(path string) (TSettings, error) {
	s := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("failed to parse settings file %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return s, fmt.Errorf("settings validation failed: %w", err)
	}
	return s, nil
}

/**************************************************************************************************
** Save writes settings to a YAML file, validating them first so a broken template or an
** out-of-bounds offset never reaches disk.
**
** @param path - Path to the settings file
** @param s - The settings to persist
** @return error - An error if validation or the write fails
**************************************************************************************************/
func Save(path string, s TSettings) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("refusing to save invalid settings: %w", err)
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write settings file %s: %w", path, err)
	}
	return nil
}

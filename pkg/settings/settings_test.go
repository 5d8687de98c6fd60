package settings

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/majorfi/photo-retag/pkg/retag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
	assert.Equal(t, 1, s.Offset.Sign)
	assert.Equal(t, "", s.Template)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	s := TSettings{
		Template: "[YYYY]-[MM]-[DD]_[ORG]",
		Offset:   TOffset{Sign: -1, Days: 1, Hours: 2, Minutes: 3, Seconds: 4},
	}

	require.NoError(t, Save(path, s))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, s, loaded)
}

func TestSaveRejectsInvalidSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")

	tests := []struct {
		name string
		s    TSettings
	}{
		{name: "broken template", s: TSettings{Template: "[XYZ]", Offset: TOffset{Sign: 1}}},
		{name: "hours out of bounds", s: TSettings{Offset: TOffset{Sign: 1, Hours: 24}}},
		{name: "minutes out of bounds", s: TSettings{Offset: TOffset{Sign: 1, Minutes: 60}}},
		{name: "seconds out of bounds", s: TSettings{Offset: TOffset{Sign: 1, Seconds: 99}}},
		{name: "negative days", s: TSettings{Offset: TOffset{Sign: 1, Days: -1}}},
		{name: "zero sign", s: TSettings{Offset: TOffset{Sign: 0}}},
		{name: "sign other than unit", s: TSettings{Offset: TOffset{Sign: 2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Save(path, tt.s)
			assert.Error(t, err)
			assert.NoFileExists(t, path, "invalid settings never reach disk")
		})
	}
}

func TestLoadRejectsMalformedYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("template: [unclosed\n  bad"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestOffsetTotalSecondsRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		offset  TOffset
		seconds int
	}{
		{name: "positive mixed", offset: TOffset{Sign: 1, Days: 1, Hours: 2, Minutes: 3, Seconds: 4}, seconds: 93784},
		{name: "negative hours", offset: TOffset{Sign: -1, Hours: 2}, seconds: -7200},
		{name: "zero", offset: TOffset{Sign: 1}, seconds: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.seconds, tt.offset.TotalSeconds())
			assert.Equal(t, tt.offset, OffsetFromSeconds(tt.seconds))
		})
	}
}

func TestOffsetRule(t *testing.T) {
	offset := TOffset{Sign: -1, Days: 1, Hours: 2}
	rule := offset.Rule()

	assert.Equal(t, retag.DateRuleRelative, rule.Mode)
	assert.Equal(t, -1, rule.Sign)
	assert.Equal(t, 1, rule.Days)
	assert.Equal(t, 2*time.Hour, rule.TimeOfDay)

	original := time.Date(2023, 1, 3, 2, 0, 0, 0, time.UTC)
	result := retag.ApplyDateRule(rule, &original)
	require.NotNil(t, result)
	assert.Equal(t, time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC), *result)
}

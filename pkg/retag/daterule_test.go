package retag

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDateRuleUnchanged(t *testing.T) {
	original := timePtr(time.Date(2023, 1, 2, 3, 4, 5, 0, time.UTC))

	result := ApplyDateRule(UnchangedRule(), original)
	require.NotNil(t, result)
	assert.Equal(t, *original, *result, "pass-through keeps the original value")

	assert.Nil(t, ApplyDateRule(UnchangedRule(), nil))
}

func TestApplyDateRuleSpecific(t *testing.T) {
	fixed := time.Date(2020, 6, 15, 12, 0, 0, 0, time.UTC)
	original := timePtr(time.Date(2023, 1, 2, 3, 4, 5, 0, time.UTC))

	result := ApplyDateRule(SpecificRule(fixed), original)
	require.NotNil(t, result)
	assert.Equal(t, fixed, *result)

	result = ApplyDateRule(SpecificRule(fixed), nil)
	require.NotNil(t, result, "specific rule applies even without an original date")
	assert.Equal(t, fixed, *result)
}

func TestApplyDateRuleRelative(t *testing.T) {
	tests := []struct {
		name     string
		rule     DateRule
		original time.Time
		expected time.Time
	}{
		{
			name:     "subtract one day",
			rule:     RelativeRule(-1, 1, 0),
			original: time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "add days and time of day",
			rule:     RelativeRule(1, 2, 3*time.Hour+4*time.Minute+5*time.Second),
			original: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2023, 1, 3, 3, 4, 5, 0, time.UTC),
		},
		{
			name:     "sign flips the whole combined offset",
			rule:     RelativeRule(-1, 1, 2*time.Hour),
			original: time.Date(2023, 1, 3, 2, 0, 0, 0, time.UTC),
			expected: time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "month rollover",
			rule:     RelativeRule(1, 1, 0),
			original: time.Date(2023, 1, 31, 10, 0, 0, 0, time.UTC),
			expected: time.Date(2023, 2, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			name:     "year rollover backwards",
			rule:     RelativeRule(-1, 1, 0),
			original: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2022, 12, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "zero offset keeps the value",
			rule:     RelativeRule(1, 0, 0),
			original: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ApplyDateRule(tt.rule, &tt.original)
			require.NotNil(t, result)
			assert.Equal(t, tt.expected, *result)
		})
	}
}

func TestApplyDateRuleRelativeWithoutOriginal(t *testing.T) {
	result := ApplyDateRule(RelativeRule(1, 1, 0), nil)
	assert.Nil(t, result, "relative rule without a base date yields no value")
}

func TestRelativeRuleFromSeconds(t *testing.T) {
	tests := []struct {
		name         string
		totalSeconds int
		expected     DateRule
	}{
		{
			name:         "positive offset with days and remainder",
			totalSeconds: 93784, // 1 day, 2h 3m 4s
			expected:     DateRule{Mode: DateRuleRelative, Sign: 1, Days: 1, TimeOfDay: 2*time.Hour + 3*time.Minute + 4*time.Second},
		},
		{
			name:         "negative offset",
			totalSeconds: -7200,
			expected:     DateRule{Mode: DateRuleRelative, Sign: -1, Days: 0, TimeOfDay: 2 * time.Hour},
		},
		{
			name:         "zero offset",
			totalSeconds: 0,
			expected:     DateRule{Mode: DateRuleRelative, Sign: 1, Days: 0, TimeOfDay: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RelativeRuleFromSeconds(tt.totalSeconds))
		})
	}
}

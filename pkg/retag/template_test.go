package retag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTemplate(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected []Token
	}{
		{
			name:     "empty template",
			raw:      "",
			expected: []Token{},
		},
		{
			name: "literal only",
			raw:  "holiday_2023",
			expected: []Token{
				{Kind: TokenLiteral, Text: "holiday_2023"},
			},
		},
		{
			name: "literals and placeholders in order",
			raw:  "[ORG]-[YYYY][MM][DD]",
			expected: []Token{
				{Kind: TokenOriginal},
				{Kind: TokenLiteral, Text: "-"},
				{Kind: TokenYear},
				{Kind: TokenMonth},
				{Kind: TokenDay},
			},
		},
		{
			name: "time placeholders",
			raw:  "[hh].[mm].[ss]",
			expected: []Token{
				{Kind: TokenHour},
				{Kind: TokenLiteral, Text: "."},
				{Kind: TokenMinute},
				{Kind: TokenLiteral, Text: "."},
				{Kind: TokenSecond},
			},
		},
		{
			name: "camera placeholders",
			raw:  "[MAK]_[MOD]",
			expected: []Token{
				{Kind: TokenCameraMaker},
				{Kind: TokenLiteral, Text: "_"},
				{Kind: TokenCameraModel},
			},
		},
		{
			name: "arg placeholder keeps argument",
			raw:  "[UPT:beach]",
			expected: []Token{
				{Kind: TokenUpTo, Text: "beach"},
			},
		},
		{
			name: "only first colon splits tag from argument",
			raw:  "[FRMI:a:b]",
			expected: []Token{
				{Kind: TokenFromInclusive, Text: "a:b"},
			},
		},
		{
			name: "empty argument is syntactically valid",
			raw:  "[UPTI:]",
			expected: []Token{
				{Kind: TokenUpToInclusive, Text: ""},
			},
		},
		{
			name: "all arg-bearing tags",
			raw:  "[UPT:x][UPTI:x][FRM:x][FRMI:x]",
			expected: []Token{
				{Kind: TokenUpTo, Text: "x"},
				{Kind: TokenUpToInclusive, Text: "x"},
				{Kind: TokenFrom, Text: "x"},
				{Kind: TokenFromInclusive, Text: "x"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := ParseTemplate(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, tokens)
		})
	}
}

func TestParseTemplateInvalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "unknown tag", raw: "[XYZ]"},
		{name: "empty tag", raw: "[]"},
		{name: "space outside brackets", raw: "photo [ORG]"},
		{name: "slash outside brackets", raw: "a/b"},
		{name: "unclosed bracket", raw: "[ORG"},
		{name: "stray closing bracket", raw: "ORG]"},
		{name: "nested opening bracket", raw: "[OR[G]"},
		{name: "simple tag with argument", raw: "[ORG:x]"},
		{name: "arg tag without argument", raw: "[UPT]"},
		{name: "known tag with surrounding spaces", raw: "[ ORG ]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := ParseTemplate(tt.raw)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidTemplate)
			assert.Nil(t, tokens, "no partial result on failure")
		})
	}
}

package retag

import (
	"testing"
	"time"

	"github.com/majorfi/photo-retag/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileFilename(t *testing.T) {
	img := utils.TImage{
		Filename:  "IMG_1234.jpg",
		Basename:  "IMG_1234",
		Extension: ".jpg",
	}
	effective := timePtr(time.Date(2022, 5, 6, 10, 0, 0, 0, time.UTC))

	tests := []struct {
		name       string
		template   string
		img        utils.TImage
		effective  *time.Time
		expected   string
		expectedOk bool
	}{
		{
			name:       "date and original basename",
			template:   "[YYYY]-[MM]-[DD]_[ORG]",
			img:        img,
			effective:  effective,
			expected:   "2022-05-06_IMG_1234.jpg",
			expectedOk: true,
		},
		{
			name:       "literal only template",
			template:   "holiday",
			img:        img,
			expected:   "holiday.jpg",
			expectedOk: true,
		},
		{
			name:       "all placeholders unresolved falls back",
			template:   "[YYYY][MM][DD]",
			img:        img,
			effective:  nil,
			expectedOk: false,
		},
		{
			name:       "partially resolved substitutes empties",
			template:   "[YYYY]_[ORG]",
			img:        img,
			effective:  nil,
			expected:   "_IMG_1234.jpg",
			expectedOk: true,
		},
		{
			name:       "no alphanumeric output falls back",
			template:   "---",
			img:        img,
			expectedOk: false,
		},
		{
			name:       "unresolved placeholders plus symbol literals fall back",
			template:   "-[YYYY]-",
			img:        img,
			effective:  nil,
			expectedOk: false,
		},
		{
			name:       "empty but resolved values still count",
			template:   "[FRM:IMG_1234]x",
			img:        img,
			expected:   "x.jpg",
			expectedOk: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := ParseTemplate(tt.template)
			require.NoError(t, err)

			name, ok := CompileFilename(tokens, tt.img, tt.effective)
			assert.Equal(t, tt.expectedOk, ok)
			assert.Equal(t, tt.expected, name)
		})
	}
}

func TestCompileFilenameEmptyTemplate(t *testing.T) {
	img := utils.TImage{Filename: "IMG_1234.jpg", Basename: "IMG_1234", Extension: ".jpg"}

	_, ok := CompileFilename(nil, img, nil)
	assert.False(t, ok, "empty template means no rename")

	_, ok = CompileFilename([]Token{}, img, nil)
	assert.False(t, ok)
}

func TestCompileFilenameDeterministic(t *testing.T) {
	img := utils.TImage{
		Filename:    "DSC_0042.jpeg",
		Basename:    "DSC_0042",
		Extension:   ".jpeg",
		CameraMaker: stringPtr("FUJIFILM"),
	}
	effective := timePtr(time.Date(2021, 12, 31, 23, 59, 58, 0, time.UTC))

	tokens, err := ParseTemplate("[MAK]_[YYYY][MM][DD]_[hh][mm][ss]_[ORG]")
	require.NoError(t, err)

	first, firstOk := CompileFilename(tokens, img, effective)
	for i := 0; i < 10; i++ {
		name, ok := CompileFilename(tokens, img, effective)
		assert.Equal(t, firstOk, ok)
		assert.Equal(t, first, name)
	}
	assert.Equal(t, "FUJIFILM_20211231_235958_DSC_0042.jpeg", first)
}

package numerals

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGlyph(t *testing.T) {
	testCases := []struct {
		name     string
		language int
		digit    int
		want     string
	}{
		{name: "khmer nine", language: 3, digit: 9, want: "៩"},
		{name: "unknown language", language: 99, digit: 9, want: "9"},
		{name: "english", language: English, digit: 4, want: "4"},
		{name: "devanagari seven", language: 1, digit: 7, want: "७"},
		{name: "chinese one", language: 2, digit: 1, want: "一"},
		{name: "financial three", language: 4, digit: 3, want: "參"},
		{name: "hangul two", language: 5, digit: 2, want: "이"},
		{name: "glagolitic five", language: 6, digit: 5, want: "Ⰴ"},
		{name: "glagolitic zero falls back", language: 6, digit: 0, want: "0"},
		{name: "digit out of range", language: 3, digit: 12, want: "12"},
		{name: "negative language", language: -1, digit: 1, want: "1"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Glyph(tc.language, tc.digit))
		})
	}
}

func TestGlyph_EveryKnownDigitIsNonEmpty(t *testing.T) {
	for _, sys := range Languages() {
		for d := 0; d <= 9; d++ {
			assert.NotEmpty(t, Glyph(sys.ID, d), "language %d digit %d", sys.ID, d)
		}
	}
}

func TestLanguages(t *testing.T) {
	langs := Languages()

	assert.Len(t, langs, 7)
	assert.Equal(t, English, langs[0].ID)
	for i, l := range langs {
		assert.Equal(t, i, l.ID)
		assert.True(t, Known(l.ID))
		assert.NotEmpty(t, l.Name)
	}
	assert.False(t, Known(7))
}

func TestNext_Wraps(t *testing.T) {
	assert.Equal(t, 1, Next(English))
	assert.Equal(t, English, Next(6))
	assert.Equal(t, English, Next(42))
}

func TestLookup(t *testing.T) {
	sys, ok := Lookup(3)
	assert.True(t, ok)
	assert.Equal(t, "Khmer", sys.Name)

	_, ok = Lookup(99)
	assert.False(t, ok)
}

// Package numerals maps digits to the glyphs of the supported numeral systems.
package numerals

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// English is the default language; it renders plain decimal digits
const English = 0

// System describes one selectable numeral system
type System struct {
	// ID is the persisted language identifier
	ID int

	// Name is the label shown in the change-language menu
	Name string

	// Tag is the language the numerals belong to
	Tag language.Tag

	glyphs [10]string
}

var systems = []System{
	{ID: English, Name: "English", Tag: language.English},
	{
		ID:     1,
		Name:   "Devanagari",
		Tag:    language.Hindi,
		glyphs: [10]string{"०", "१", "२", "३", "४", "५", "६", "७", "८", "९"},
	},
	{
		ID:     2,
		Name:   "Chinese",
		Tag:    language.Chinese,
		glyphs: [10]string{"零", "一", "二", "三", "四", "五", "六", "七", "八", "九"},
	},
	{
		ID:     3,
		Name:   "Khmer",
		Tag:    language.Make("km"),
		glyphs: [10]string{"០", "១", "២", "៣", "៤", "៥", "៦", "៧", "៨", "៩"},
	},
	{
		ID:     4,
		Name:   "Chinese (financial)",
		Tag:    language.TraditionalChinese,
		glyphs: [10]string{"零", "壹", "貳", "參", "肆", "伍", "陸", "柒", "捌", "玖"},
	},
	{
		ID:     5,
		Name:   "Hangul",
		Tag:    language.Korean,
		glyphs: [10]string{"공", "일", "이", "삼", "사", "오", "육", "칠", "팔", "구"},
	},
	{
		ID:   6,
		Name: "Glagolitic",
		Tag:  language.Make("cu-Glag"),
		// Glagolitic has no zero
		glyphs: [10]string{"", "Ⰰ", "Ⰱ", "Ⰲ", "Ⰳ", "Ⰴ", "Ⰵ", "Ⰶ", "Ⰷ", "Ⰸ"},
	},
}

var byID = func() map[int]*System {
	m := make(map[int]*System, len(systems))
	for i := range systems {
		m[systems[i].ID] = &systems[i]
	}
	return m
}()

// Glyph returns digit rendered in the numeral system of languageID. Unknown
// languages, digits outside 0–9 and missing glyphs fall back to the decimal form.
func Glyph(languageID, digit int) string {
	sys, ok := byID[languageID]
	if !ok || digit < 0 || digit > 9 {
		return strconv.Itoa(digit)
	}
	if g := sys.glyphs[digit]; g != "" {
		return g
	}
	return strconv.Itoa(digit)
}

// Languages lists the selectable numeral systems in menu order.
func Languages() []System {
	out := make([]System, len(systems))
	copy(out, systems)
	return out
}

// Lookup returns the system for languageID.
func Lookup(languageID int) (System, bool) {
	sys, ok := byID[languageID]
	if !ok {
		return System{}, false
	}
	return *sys, true
}

// Known reports whether languageID names a supported numeral system.
func Known(languageID int) bool {
	_, ok := byID[languageID]
	return ok
}

// Next returns the language following languageID in menu order, wrapping around.
func Next(languageID int) int {
	for i, sys := range systems {
		if sys.ID == languageID {
			return systems[(i+1)%len(systems)].ID
		}
	}
	return English
}

// NativeName returns the language's name written in that language, e.g. "हिन्दी".
func (s System) NativeName() string {
	return display.Self.Name(s.Tag)
}

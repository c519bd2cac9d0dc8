// Package fonts provides the embedded fonts used to measure and render
// chart text.
//
// The Go font family ships with golang.org/x/image, so measurement works
// without any system fonts. Parsed fonts are cached after first use.
package fonts

import (
	"strings"
	"sync"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FontFamily is the CSS font-family name of the embedded regular font.
const FontFamily = "Go"

// FallbackFontFamily is the font-family list written into SVG output.
const FallbackFontFamily = `'Go', 'Helvetica Neue', Arial, sans-serif`

// RegularTTF returns the TTF data of the regular font.
func RegularTTF() []byte {
	return goregular.TTF
}

// BoldTTF returns the TTF data of the bold font.
func BoldTTF() []byte {
	return gobold.TTF
}

var (
	regularOnce sync.Once
	regular     *opentype.Font
	regularErr  error

	boldOnce sync.Once
	bold     *opentype.Font
	boldErr  error
)

// Regular returns the parsed regular font.
func Regular() (*opentype.Font, error) {
	regularOnce.Do(func() {
		regular, regularErr = opentype.Parse(goregular.TTF)
	})
	return regular, regularErr
}

// Bold returns the parsed bold font.
func Bold() (*opentype.Font, error) {
	boldOnce.Do(func() {
		bold, boldErr = opentype.Parse(gobold.TTF)
	})
	return bold, boldErr
}

// ForFamily picks the embedded font closest to a CSS font-family. Every
// family maps to the regular font unless it asks for a bold weight.
func ForFamily(family string) (*opentype.Font, error) {
	if strings.Contains(strings.ToLower(family), "bold") {
		return Bold()
	}
	return Regular()
}

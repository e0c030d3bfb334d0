// Package icon renders the placeholder app icons: a blue-to-purple gradient
// background, a stylised paint brush, and a centred letter glyph on the
// larger sizes.
package icon

// Entry describes a single icon in the output set: its filename, pixel edge
// length, and the asset-catalog metadata used for Contents.json.
type Entry struct {
	Name   string // output filename, e.g. "icon-60@2x.png"
	Pixels int    // edge length in pixels (icons are square)
	Idiom  string // asset-catalog idiom: "iphone", "ipad", "ios-marketing"
	Size   string // point size, e.g. "60x60"
	Scale  string // scale factor, e.g. "2x"
}

// DefaultSet is the fixed set of icons required for an iOS app, in
// generation order. Filenames are unique and every edge length is positive.
var DefaultSet = []Entry{
	// iPhone
	{Name: "icon-20@2x.png", Pixels: 40, Idiom: "iphone", Size: "20x20", Scale: "2x"},
	{Name: "icon-20@3x.png", Pixels: 60, Idiom: "iphone", Size: "20x20", Scale: "3x"},
	{Name: "icon-29@2x.png", Pixels: 58, Idiom: "iphone", Size: "29x29", Scale: "2x"},
	{Name: "icon-29@3x.png", Pixels: 87, Idiom: "iphone", Size: "29x29", Scale: "3x"},
	{Name: "icon-40@2x.png", Pixels: 80, Idiom: "iphone", Size: "40x40", Scale: "2x"},
	{Name: "icon-40@3x.png", Pixels: 120, Idiom: "iphone", Size: "40x40", Scale: "3x"},
	{Name: "icon-60@2x.png", Pixels: 120, Idiom: "iphone", Size: "60x60", Scale: "2x"},
	{Name: "icon-60@3x.png", Pixels: 180, Idiom: "iphone", Size: "60x60", Scale: "3x"},

	// iPad
	{Name: "icon-20.png", Pixels: 20, Idiom: "ipad", Size: "20x20", Scale: "1x"},
	{Name: "icon-20@2x-ipad.png", Pixels: 40, Idiom: "ipad", Size: "20x20", Scale: "2x"},
	{Name: "icon-29.png", Pixels: 29, Idiom: "ipad", Size: "29x29", Scale: "1x"},
	{Name: "icon-29@2x-ipad.png", Pixels: 58, Idiom: "ipad", Size: "29x29", Scale: "2x"},
	{Name: "icon-40.png", Pixels: 40, Idiom: "ipad", Size: "40x40", Scale: "1x"},
	{Name: "icon-40@2x-ipad.png", Pixels: 80, Idiom: "ipad", Size: "40x40", Scale: "2x"},
	{Name: "icon-76.png", Pixels: 76, Idiom: "ipad", Size: "76x76", Scale: "1x"},
	{Name: "icon-76@2x.png", Pixels: 152, Idiom: "ipad", Size: "76x76", Scale: "2x"},
	{Name: "icon-83.5@2x.png", Pixels: 167, Idiom: "ipad", Size: "83.5x83.5", Scale: "2x"},

	// App Store
	{Name: "icon-1024.png", Pixels: 1024, Idiom: "ios-marketing", Size: "1024x1024", Scale: "1x"},
}

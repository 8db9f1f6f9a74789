package news

import "strings"

// House colors for the publishers the dashboard recognizes. Anything
// not listed renders on the neutral gray.
var sourceColors = map[string]string{
	"NDTV":     "#e40000",
	"BBC News": "#bb1919",
	"CNN":      "#cc0000",
	"Reuters":  "#ff8000",
}

// DefaultSourceColor backs the avatar of unrecognized publishers.
const DefaultSourceColor = "#607d8b"

// SourceColor returns the avatar background color for a publisher.
func SourceColor(name string) string {
	if c, ok := sourceColors[name]; ok {
		return c
	}
	return DefaultSourceColor
}

// SourceInitials concatenates the upper-cased first rune of each
// whitespace-separated word in the publisher name.
func SourceInitials(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		r := []rune(word)
		b.WriteString(strings.ToUpper(string(r[0])))
	}
	return b.String()
}

package report

import (
	"hash/fnv"
	"math/rand"
)

// Palette maps a language name to a display color.
type Palette interface {
	Color(name string) string
}

var languageColors = map[string]string{
	"Python":           "#3572A5",
	"JavaScript":       "#f1e05a",
	"TypeScript":       "#2b7489",
	"TypeScript (TSX)": "#2b7489",
	"JavaScript (JSX)": "#f1e05a",
	"HTML":             "#e34c26",
	"CSS":              "#563d7c",
	"SCSS":             "#c6538c",
	"Sass":             "#a53b70",
	"Less":             "#1d365d",
	"Java":             "#b07219",
	"C":                "#555555",
	"C++":              "#f34b7d",
	"C/C++ Header":     "#555555",
	"C++ Header":       "#f34b7d",
	"C#":               "#178600",
	"Go":               "#00ADD8",
	"Rust":             "#dea584",
	"Ruby":             "#701516",
	"PHP":              "#4F5D95",
	"Swift":            "#ffac45",
	"Kotlin":           "#F18E33",
	"Scala":            "#c22d40",
	"R":                "#198CE7",
	"SQL":              "#e38c00",
	"Shell":            "#89e051",
	"Bash":             "#89e051",
	"PowerShell":       "#012456",
	"JSON":             "#292929",
	"XML":              "#0060ac",
	"YAML":             "#cb171e",
	"Markdown":         "#083fa1",
	"Text":             "#999999",
	"Vue":              "#41b883",
	"Svelte":           "#ff3e00",
}

var fallbackColors = []string{"#6366f1", "#10b981", "#f59e0b", "#ef4444", "#8b5cf6", "#ec4899"}

// KnownColor returns the fixed color for a language, if it has one.
func KnownColor(name string) (string, bool) {
	c, ok := languageColors[name]
	return c, ok
}

// RandomPalette picks a random fallback color for unknown languages. Only
// suitable for display.
type RandomPalette struct{}

func (RandomPalette) Color(name string) string {
	if c, ok := languageColors[name]; ok {
		return c
	}
	return fallbackColors[rand.Intn(len(fallbackColors))]
}

// HashPalette picks the fallback color from a hash of the name, so the
// same name always gets the same color.
type HashPalette struct{}

func (HashPalette) Color(name string) string {
	if c, ok := languageColors[name]; ok {
		return c
	}
	h := fnv.New32a()
	h.Write([]byte(name))
	return fallbackColors[h.Sum32()%uint32(len(fallbackColors))]
}

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLanguageFor(t *testing.T) {
	tests := []struct {
		name     string
		wantLang string
		wantExt  string
		wantOK   bool
	}{
		{"main.go", "Go", ".go", true},
		{"App.TSX", "TypeScript (TSX)", ".tsx", true},
		{"analysis.R", "R", ".R", true},
		{"analysis.r", "R", ".r", true},
		{"header.h", "C/C++ Header", ".h", true},
		{"page.htm", "HTML", ".htm", true},
		{".eslintrc.json", "JSON", ".json", true},
		{"archive.tar.gz", "", ".gz", false},
		{".bashrc", "", "", false},
		{"Makefile", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lang, ext, ok := LanguageFor(tt.name)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantLang, lang)
			assert.Equal(t, tt.wantExt, ext)
		})
	}
}

func TestLanguagesAreUnique(t *testing.T) {
	names := Languages()
	assert.Len(t, names, 35)
	assert.Equal(t, "Python", names[0])
	assert.Contains(t, names, "C#")
	assert.Contains(t, names, "Svelte")
}

func TestRepresentativeExt(t *testing.T) {
	assert.Equal(t, ".yml", representativeExt(map[string]int{".yaml": 1, ".yml": 2}))
	assert.Equal(t, ".yaml", representativeExt(map[string]int{".yaml": 2, ".yml": 2}))
	assert.Equal(t, ".cfg", representativeExt(map[string]int{".ini": 1, ".cfg": 1}))
	assert.Equal(t, ".txt", representativeExt(map[string]int{".txt": 1, "": 1}))
}

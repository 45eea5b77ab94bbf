package core

import (
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

type language struct {
	ext  string
	name string
}

// languageTable is ordered; the order picks the representative extension
// when two extensions of one language tie.
var languageTable = []language{
	{".py", "Python"},
	{".js", "JavaScript"},
	{".ts", "TypeScript"},
	{".tsx", "TypeScript (TSX)"},
	{".jsx", "JavaScript (JSX)"},
	{".html", "HTML"},
	{".htm", "HTML"},
	{".css", "CSS"},
	{".scss", "SCSS"},
	{".sass", "Sass"},
	{".less", "Less"},
	{".java", "Java"},
	{".c", "C"},
	{".cpp", "C++"},
	{".h", "C/C++ Header"},
	{".hpp", "C++ Header"},
	{".cs", "C#"},
	{".go", "Go"},
	{".rs", "Rust"},
	{".rb", "Ruby"},
	{".php", "PHP"},
	{".swift", "Swift"},
	{".kt", "Kotlin"},
	{".scala", "Scala"},
	{".r", "R"},
	{".R", "R"},
	{".sql", "SQL"},
	{".sh", "Shell"},
	{".bash", "Bash"},
	{".ps1", "PowerShell"},
	{".json", "JSON"},
	{".xml", "XML"},
	{".yaml", "YAML"},
	{".yml", "YAML"},
	{".md", "Markdown"},
	{".txt", "Text"},
	{".vue", "Vue"},
	{".svelte", "Svelte"},
}

const (
	TextLanguage = "Text"
	textExt      = ".txt"
)

var (
	languageByExt = make(map[string]string, len(languageTable))
	extRank       = make(map[string]int, len(languageTable))
)

func init() {
	for i, l := range languageTable {
		languageByExt[l.ext] = l.name
		extRank[l.ext] = i
	}
}

// Languages returns the display names in table order, without duplicates.
func Languages() []string {
	seen := make(map[string]bool)
	var names []string
	for _, l := range languageTable {
		if !seen[l.name] {
			seen[l.name] = true
			names = append(names, l.name)
		}
	}
	return names
}

// LanguageFor returns the language for a file name and the extension
// used to find it. An exact match wins over a lower-cased one.
func LanguageFor(name string) (lang, ext string, ok bool) {
	ext = extOf(name)
	if ext == "" {
		return "", "", false
	}
	if lang, ok := languageByExt[ext]; ok {
		return lang, ext, true
	}
	lower := strings.ToLower(ext)
	if lang, ok := languageByExt[lower]; ok {
		return lang, lower, true
	}
	return "", ext, false
}

// extOf is filepath.Ext, except that a leading dot does not start an
// extension: ".bashrc" has none, ".eslintrc.json" has ".json".
func extOf(name string) string {
	base := strings.TrimLeft(filepath.Base(name), ".")
	if base == "" {
		return ""
	}
	return filepath.Ext(base)
}

func rankOf(ext string) int {
	if r, ok := extRank[ext]; ok {
		return r
	}
	return len(languageTable)
}

// isTextFile sniffs the first bytes of path.
func isTextFile(path string) (bool, error) {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return false, err
	}
	for m := mtype; m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return true, nil
		}
	}
	return false, nil
}

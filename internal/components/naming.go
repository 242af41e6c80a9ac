package components

import (
	"path/filepath"
	"strings"
	"unicode"
)

// ComponentName converts a component file name to its registered name:
// the extension is dropped, separators ("-", "_", ".", " ") split words and
// each word is capitalised. The prefix is prepended as is. A file name
// without any word yields "".
func ComponentName(prefix, fileName string) string {
	base := strings.TrimSuffix(filepath.Base(fileName), filepath.Ext(fileName))

	words := strings.FieldsFunc(base, func(r rune) bool {
		return r == '-' || r == '_' || r == '.' || unicode.IsSpace(r)
	})
	if len(words) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(prefix)
	for _, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		b.WriteString(string(runes))
	}

	return b.String()
}

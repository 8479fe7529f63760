// assets/embed.go
//
// Embedded fallback dictionary. Used when no dictionary file is configured
// so the solver still runs out of the box.

package assets

import (
	"embed"
	"io/fs"
)

//go:embed words_ru.txt
var FS embed.FS

// DictionaryFile is the name of the embedded Russian word list.
const DictionaryFile = "words_ru.txt"

// Dictionary opens the embedded raw word list. Callers close it.
func Dictionary() (fs.File, error) {
	return FS.Open(DictionaryFile)
}

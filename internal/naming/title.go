package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// CapitalizeWords upper-cases the first letter of every whitespace separated word.
// Runs of whitespace collapse to a single space.
func CapitalizeWords(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		first, size := utf8.DecodeRuneInString(word)
		words[i] = string(unicode.ToUpper(first)) + word[size:]
	}
	return strings.Join(words, " ")
}

// Title derives a section heading from a base name: underscores become spaces, words get capitalized.
func Title(base string) string {
	return CapitalizeWords(strings.ReplaceAll(base, Separator, " "))
}

// DirectoryTitle turns a directory name into its section heading, ignoring any prefix.
func DirectoryTitle(dirName string) string {
	return Title(Decode(dirName).Base)
}

// FileTitle turns the base name of a numbered document into its display title.
// The extension is dropped and a second leading prefix inside the base is stripped as well,
// so "01_02_setup.md" decodes to base "02_setup.md" which is shown as "Setup".
func FileTitle(base string) string {
	stem := strings.TrimSuffix(base, DocumentExtension)
	return Title(Decode(stem).Base)
}

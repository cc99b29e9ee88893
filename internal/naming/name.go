package naming

import (
	"fmt"
	"strconv"
	"strings"
)

const Separator = "_"

const DefaultWidth = 2

// IndexFileName is the per-directory index document. It never carries a prefix.
const IndexFileName = "README.md"

const DocumentExtension = ".md"

// NumberedName is the decoded form of a "<prefix>_<base>" file or directory name.
type NumberedName struct {
	Prefix   int
	Numbered bool //false if the name carries no valid prefix, Prefix is meaningless then
	Base     string
}

// Decode splits name on its first separator. The left part counts as prefix only if it is
// a non-empty run of ASCII digits that fits into 32 bits, otherwise the whole name is the base.
func Decode(name string) NumberedName {
	left, right, found := strings.Cut(name, Separator)
	if !found || !allDigits(left) {
		return NumberedName{Base: name}
	}
	value, err := strconv.ParseUint(left, 10, 32)
	if err != nil {
		return NumberedName{Base: name} //overflow
	}
	return NumberedName{Prefix: int(value), Numbered: true, Base: right}
}

// Encode formats prefix zero-padded to width digits followed by the separator and base.
// Prefixes wider than width are written in full.
func Encode(prefix int, base string, width int) string {
	if width < 1 {
		width = 1
	}
	return fmt.Sprintf("%0*d%s%s", width, prefix, Separator, base)
}

func (n NumberedName) String() string {
	if !n.Numbered {
		return n.Base
	}
	return strconv.Itoa(n.Prefix) + Separator + n.Base
}

func IsIndexFile(name string) bool {
	return name == IndexFileName
}

func IsDocument(name string) bool {
	return strings.HasSuffix(name, DocumentExtension)
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

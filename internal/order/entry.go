package order

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/n2code/bookorder/internal/naming"
)

type Kind int

const (
	File Kind = iota
	Directory
)

func (k Kind) String() string {
	switch k {
	case File:
		return "file"
	case Directory:
		return "directory"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Entry is a file or directory together with its decoded name.
type Entry struct {
	Path string //absolute, system-native
	Name naming.NumberedName
	Kind Kind
}

func NewEntry(path string, kind Kind) Entry {
	return Entry{Path: path, Name: naming.Decode(filepath.Base(path)), Kind: kind}
}

func (e Entry) FileName() string {
	return filepath.Base(e.Path)
}

func (e Entry) Dir() string {
	return filepath.Dir(e.Path)
}

// SiblingSet holds the numbered entries of a single directory.
type SiblingSet []Entry

// Scan lists the numbered entries directly inside dir. The index file and unnumbered entries are left out.
func Scan(dir string) (SiblingSet, error) {
	children, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var set SiblingSet
	for _, child := range children {
		if naming.IsIndexFile(child.Name()) {
			continue
		}
		name := naming.Decode(child.Name())
		if !name.Numbered {
			continue
		}
		kind := File
		if child.IsDir() {
			kind = Directory
		}
		set = append(set, Entry{Path: filepath.Join(dir, child.Name()), Name: name, Kind: kind})
	}
	return set, nil
}

// Sorted returns a copy ordered by ascending prefix, ties broken by raw name.
func (s SiblingSet) Sorted() SiblingSet {
	sorted := make(SiblingSet, len(s))
	copy(sorted, s)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Name.Prefix != sorted[j].Name.Prefix {
			return sorted[i].Name.Prefix < sorted[j].Name.Prefix
		}
		return sorted[i].FileName() < sorted[j].FileName()
	})
	return sorted
}

// Without returns the set minus the entry located at path.
func (s SiblingSet) Without(path string) (rest SiblingSet, found bool) {
	for _, e := range s {
		if e.Path == path {
			found = true
			continue
		}
		rest = append(rest, e)
	}
	return
}

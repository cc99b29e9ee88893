package order

// Validate sorts the set by prefix and verifies that the prefixes form exactly 1, 2, ..., N.
// The first violation is reported as *GapError. Nothing is repaired.
func Validate(set SiblingSet) (SiblingSet, error) {
	sorted := set.Sorted()
	for i, entry := range sorted {
		if expected := i + 1; entry.Name.Prefix != expected {
			return nil, &GapError{Expected: expected, Actual: entry.Name.Prefix, Path: entry.Path}
		}
	}
	return sorted, nil
}

// ScanValid combines Scan and Validate for the directory.
func ScanValid(dir string) (SiblingSet, error) {
	set, err := Scan(dir)
	if err != nil {
		return nil, err
	}
	return Validate(set)
}

// checkDistinct only rejects duplicate prefixes, gaps are tolerated.
func checkDistinct(sorted SiblingSet) error {
	for i := 1; i < len(sorted); i++ {
		if prev, cur := sorted[i-1].Name.Prefix, sorted[i].Name.Prefix; cur == prev {
			return &GapError{Expected: prev + 1, Actual: cur, Path: sorted[i].Path}
		}
	}
	return nil
}

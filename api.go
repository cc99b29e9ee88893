package bookorder

// RequestChoice represents a single-choice decision callback, the first option is considered the default "yes"-like choice.
// If the choice is aborted an empty string must be returned.
// If cleanup is set the implementation is recommended to remove the choice presentation after selection.
type RequestChoice func(request string, options []string, cleanup bool) (choice string)

const ChoiceAborted = ""

// EntryKind restricts which kind of filesystem entry a relocation accepts as its source.
type EntryKind int

const (
	AnyKind EntryKind = iota
	FileKind
	DirectoryKind
)

// OutlineRequest selects the book and how its outline is built.
type OutlineRequest struct {
	SourceDirs []string //projected one after another into a single outline
	OutputDir  string   //receives SUMMARY.md
	Ignore     []string //paths excluded from the outline along with everything below them

	IncludeUnnumberedDirectories          bool
	IncludeDirectoryContentWithoutSection bool

	// RelativeLinks makes link targets relative to OutputDir, otherwise they are absolute.
	RelativeLinks bool
}

// RelocateRequest moves Source to position Index among the numbered entries of Destination.
type RelocateRequest struct {
	Source      string
	Destination string
	Index       int
	Width       int       //prefix width of all renamed entries
	Kind        EntryKind //refused if the source is of a different kind

	// UpdateOutline regenerates the outline after a successful relocation unless nil.
	UpdateOutline *OutlineRequest
}

// Bookorder maintains a book whose chapters are ordered by numeric name prefixes.
type Bookorder interface {

	// GenerateOutline projects the source directories into an outline and writes it to the output directory.
	// Entries that cannot be read are reported and left out; only an unreadable source root is fatal.
	GenerateOutline(request OutlineRequest) error

	// DiffOutline compares the outline on disk with a freshly generated one without writing anything.
	// The difference is printed and reported as changed.
	DiffOutline(request OutlineRequest) (changed bool, err error)

	// CheckOutline reads the outline in outputDir and reports every link whose target does not exist.
	CheckOutline(outputDir string) error

	// Relocate moves an entry into a numbered position, shifting the destination entries at or after the position
	// and renumbering the directory the entry was taken from. All renames are planned before anything is touched.
	// If a rename fails the ones already applied are reported and remain in place.
	Relocate(request RelocateRequest) error

	// Renumber closes gaps in the numbering of dir so that its entries are prefixed 1..N again.
	Renumber(dir string, width int) error

	// PrintTree prints the directory tree below root, marking directories with broken numbering.
	PrintTree(root string) error

	// PrintOrderStatus checks the numbering of every directory below root and lists all violations.
	PrintOrderStatus(root string) error
}

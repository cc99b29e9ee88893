package bookorder

import (
	"fmt"

	"github.com/n2code/bookorder/internal/config"
	out "github.com/n2code/bookorder/internal/output"
)

type VerbosityLevel int

const (
	DefaultVerbosity VerbosityLevel = iota
	VerboseMode
	QuietMode
)

// CreateConfig holds a set of common configuration switches that concern all calls to the bookorder API.
// The zero value is a sensible default.
type CreateConfig struct {
	Verbosity VerbosityLevel
	Plain     bool //never emit terminal escape sequences

	// Confirm is asked before any rename is applied. If nil all changes are applied without asking.
	Confirm RequestChoice
}

type bookorder struct {
	printer out.Printer
	confirm RequestChoice
}

// New creates a handle that performs all operations with the given output and confirmation behavior.
func New(config CreateConfig) Bookorder {
	return makeBookorder(config, out.NewPrinter(classesFor(config.Verbosity), !config.Plain && out.EscapesSupported()))
}

func makeBookorder(config CreateConfig, printer out.Printer) *bookorder {
	return &bookorder{printer: printer, confirm: config.Confirm}
}

func classesFor(verbosity VerbosityLevel) []out.Class {
	return out.ClassesFor(verbosity == QuietMode, verbosity == VerboseMode)
}

func (b *bookorder) Print(class out.Class, format string, values ...interface{}) {
	b.printer.Out(class, format, values...)
}

// OutlineRequestFrom derives the outline settings of a settings file.
func OutlineRequestFrom(settings config.Config) OutlineRequest {
	return OutlineRequest{
		SourceDirs:                            settings.SourceDirs,
		OutputDir:                             settings.OutputDir,
		Ignore:                                settings.Ignore,
		IncludeUnnumberedDirectories:          settings.IncludeUnnumberedDirectories,
		IncludeDirectoryContentWithoutSection: settings.IncludeDirectoryContentWithoutSection,
		RelativeLinks:                         settings.RelativeLinks,
	}
}

// approve asks for confirmation if a confirmation callback is configured.
func (b *bookorder) approve(question string) bool {
	if b.confirm == nil {
		return true
	}
	switch b.confirm(question, []string{"Yes", "No"}, false) {
	case "Yes":
		return true
	case ChoiceAborted:
		b.Print(out.Normal, "Aborted.\n")
	}
	return false
}

func counted(count int, singular string, plural string) string {
	return fmt.Sprintf("%d %s", count, out.Plural(count, singular, plural))
}

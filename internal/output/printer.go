package output

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

type Class int

const (
	Required Class = iota //explicitly requested information, only silenced never
	Error
	Normal
	Verbose
)

type Printer struct {
	classes    map[Class]bool
	terminal   io.Writer
	diagnosis  io.Writer
	useEscapes bool
}

func NewPrinter(include []Class, allowEscapes bool) (p Printer) {
	return NewPrinterTo(include, allowEscapes, os.Stdout, os.Stderr)
}

func NewPrinterTo(include []Class, allowEscapes bool, terminal io.Writer, diagnosis io.Writer) (p Printer) {
	p = Printer{
		classes:    map[Class]bool{},
		terminal:   terminal,
		diagnosis:  diagnosis,
		useEscapes: allowEscapes,
	}
	for _, class := range include {
		p.classes[class] = true
	}
	return
}

// ClassesFor maps the quiet/verbose switches onto the set of classes to print.
func ClassesFor(quiet bool, verbose bool) []Class {
	switch {
	case quiet:
		return []Class{Required, Error}
	case verbose:
		return []Class{Required, Error, Normal, Verbose}
	default:
		return []Class{Required, Error, Normal}
	}
}

// EscapesSupported reports whether stdout is an interactive terminal that accepts colors.
func EscapesSupported() bool {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func (p Printer) Out(class Class, format string, values ...interface{}) {
	if !p.classes[class] {
		return
	}
	target := p.terminal
	if class == Error {
		target = p.diagnosis
		format = p.Colorize(Failure, format)
	}
	fmt.Fprintf(target, format, values...)
}

func (p Printer) UsesEscapes() bool {
	return p.useEscapes
}

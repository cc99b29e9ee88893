package output

import "github.com/fatih/color"

type Style int

const (
	Dim Style = iota
	Failure
	Warning
	Success
	Highlight
)

var styles = map[Style]*color.Color{
	Dim:       color.New(color.Faint),
	Failure:   color.New(color.FgRed),
	Warning:   color.New(color.FgYellow),
	Success:   color.New(color.FgGreen),
	Highlight: color.New(color.Bold),
}

// Colorize wraps text in the escape sequences of the style unless the printer is plain.
func (p Printer) Colorize(style Style, text string) string {
	if !p.useEscapes {
		return text
	}
	c := *styles[style]
	c.EnableColor() //color decides on its own whether stdout is a terminal, the printer already did
	return c.Sprint(text)
}

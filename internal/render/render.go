package render

import (
	"fmt"

	"formlang/internal/automaton"
)

// Format selects an output syntax.
type Format string

const (
	FormatText    Format = "text"
	FormatDOT     Format = "dot"
	FormatMermaid Format = "mermaid"
)

// Formats lists the accepted formats, for flag help.
var Formats = []Format{FormatText, FormatDOT, FormatMermaid}

// Render draws a in format f. The overlay is only drawn by Mermaid.
func Render(a *automaton.Automaton, f Format, overlay *Overlay) (string, error) {
	switch f {
	case FormatText:
		return a.String(), nil
	case FormatDOT:
		return DOT(a), nil
	case FormatMermaid:
		return Mermaid(a, overlay), nil
	}
	return "", fmt.Errorf("unknown format %q (want one of %v)", f, Formats)
}

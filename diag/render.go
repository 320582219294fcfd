package diag

import (
	"fmt"
	"io"
	"strings"
)

// ANSI color codes for the default renderer, matching common compiler
// diagnostic coloring: notes cyan, remarks/warnings yellow, errors and
// fatal red.
const (
	colorReset  = "\x1b[0m"
	colorCyan   = "\x1b[36m"
	colorYellow = "\x1b[33m"
	colorRed    = "\x1b[31m"
	colorBold   = "\x1b[1m"
)

func levelColor(l Level) string {
	switch l {
	case Note:
		return colorCyan
	case Remark, Warning:
		return colorYellow
	case Error, Fatal:
		return colorRed
	default:
		return ""
	}
}

// Renderer writes diagnostic groups to w as a "well" of box-drawing
// characters around a level-colored header and message body, the same
// shape spec.md §4.6 describes: a primary diagnostic opens the well with
// ╭, attached notes continue it with ├, and the last record of a group of
// two or more closes it with ╰. A single-record group is drawn with ╭ only.
type Renderer struct {
	w     io.Writer
	color bool
}

// NewRenderer returns a Renderer writing to w. color enables ANSI escapes;
// callers should disable it when w is not a terminal.
func NewRenderer(w io.Writer, color bool) *Renderer {
	return &Renderer{w: w, color: color}
}

// Callback returns a diag.Callback bound to r, suitable for passing to
// New.
func (r *Renderer) Callback() Callback {
	return r.render
}

func (r *Renderer) render(group Group) {
	for i, rec := range group {
		well := "╭"
		if i == len(group)-1 {
			well = "╰"
		}
		if len(group) == 1 {
			well = "╭"
		} else if i > 0 && i < len(group)-1 {
			well = "├"
		}
		r.renderRecord(well, rec)
	}
}

func (r *Renderer) renderRecord(well string, rec Record) {
	loc := ""
	if rec.Source != nil {
		loc = fmt.Sprintf(" @%s[%d]", rec.Source.Name, rec.ByteOffset)
	}

	level := rec.Level.String()
	if r.color {
		c := levelColor(rec.Level)
		fmt.Fprintf(r.w, "%s %s%s%s%s:%s %s\n", well, colorBold, c, level, colorReset, loc, firstLine(rec.Message))
	} else {
		fmt.Fprintf(r.w, "%s %s:%s %s\n", well, level, loc, firstLine(rec.Message))
	}

	for _, line := range restLines(rec.Message) {
		fmt.Fprintf(r.w, "│ %s\n", line)
	}
}

func firstLine(message string) string {
	if i := strings.IndexByte(message, '\n'); i >= 0 {
		return message[:i]
	}
	return message
}

func restLines(message string) []string {
	i := strings.IndexByte(message, '\n')
	if i < 0 {
		return nil
	}
	return strings.Split(message[i+1:], "\n")
}

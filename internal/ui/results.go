package ui

import (
	"fmt"
	"strings"
)

// ResultRow is one record in a search result listing.
type ResultRow struct {
	Num      int    // 1-indexed display number
	ID       string // resolved record identifier
	Type     string // record type
	Category string // record category, may be empty
}

// RenderResults renders a column-aligned result listing. Ids get the accent
// style, numbers and categories are muted, and every line is truncated to
// the terminal width.
func RenderResults(d *DisplayContext, rows []ResultRow) string {
	if len(rows) == 0 {
		return ""
	}

	numWidth := len(fmt.Sprintf("%d", rows[len(rows)-1].Num))
	idWidth, typeWidth := 0, 0
	for _, r := range rows {
		if len(r.ID) > idWidth {
			idWidth = len(r.ID)
		}
		if len(r.Type) > typeWidth {
			typeWidth = len(r.Type)
		}
	}

	var sb strings.Builder
	for _, r := range rows {
		num := Muted.Render(fmt.Sprintf("%*d.", numWidth, r.Num))
		id := Accent.Render(pad(r.ID, idWidth))
		line := fmt.Sprintf("%s %s  %s", num, id, pad(r.Type, typeWidth))
		if r.Category != "" {
			line += "  " + Muted.Render(r.Category)
		}
		sb.WriteString(truncate(line, d.TermWidth))
		sb.WriteString("\n")
	}
	return sb.String()
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// truncate clips line to width printable runes. ANSI escape sequences do
// not count toward the width and are never split.
func truncate(line string, width int) string {
	if width <= 0 {
		return line
	}
	var sb strings.Builder
	printed := 0
	inEscape := false
	for _, r := range line {
		switch {
		case inEscape:
			sb.WriteRune(r)
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
		case r == '\x1b':
			sb.WriteRune(r)
			inEscape = true
		default:
			if printed >= width {
				continue
			}
			sb.WriteRune(r)
			printed++
		}
	}
	return sb.String()
}

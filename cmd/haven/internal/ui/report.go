package ui

import (
	"fmt"
	"strings"
)

// Row is one line of a report
type Row struct {
	Name   string
	OK     bool
	Detail string
}

// Report renders rows in a bordered box under title, with a summary line
func Report(title string, rows []Row) string {
	var b strings.Builder
	ok := 0
	for _, r := range rows {
		mark := successStyle.Render("✓")
		detail := mutedStyle.Render(r.Detail)
		if r.OK {
			ok++
		} else {
			mark = warningStyle.Render("•")
			detail = warningStyle.Render(r.Detail)
		}
		b.WriteString(mark + " " + nameStyle.Render(r.Name) + " " + detail + "\n")
	}
	b.WriteString("\n" + mutedStyle.Render(fmt.Sprintf("%d of %d active", ok, len(rows))))
	return titleStyle.Render(title) + "\n" + boxStyle.Render(b.String())
}

// FormatSize renders a byte count with a binary unit
func FormatSize(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(size)/float64(div), "KMGTPE"[exp])
}

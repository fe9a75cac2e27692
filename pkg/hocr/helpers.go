package hocr

import (
	"strings"
)

// Text returns the recognized text of the whole document. Words are separated
// by a single space, lines by a newline and pages by a blank line.
func (h HOCR) Text() string {
	pages := make([]string, 0, len(h.Pages))
	for _, page := range h.Pages {
		pages = append(pages, page.Text())
	}
	return strings.Join(pages, "\n\n")
}

// Text returns the recognized text of a single page
func (p Page) Text() string {
	var builder strings.Builder
	for i, line := range p.Lines {
		if i > 0 {
			builder.WriteString("\n")
		}
		for j, word := range line.Words {
			if j > 0 {
				builder.WriteString(" ")
			}
			builder.WriteString(word.Text)
		}
	}
	return builder.String()
}

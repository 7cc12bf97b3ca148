// Package textutil provides the plain-text layout helpers used by help
// output: word wrapping and two-column alignment.
package textutil

import "strings"

// Wrap breaks text into lines of at most width characters, splitting on
// whitespace. A single word longer than width is kept on its own line.
func Wrap(text string, width int) []string {
	words := strings.Fields(text)
	var (
		lines         []string
		currentLine   []string
		currentLength int
	)
	for _, word := range words {
		if currentLength+len(word)+1 > width {
			if len(currentLine) > 0 {
				lines = append(lines, strings.Join(currentLine, " "))
				currentLine = []string{word}
				currentLength = len(word)
			} else {
				lines = append(lines, word)
			}
		} else {
			currentLine = append(currentLine, word)
			if currentLength == 0 {
				currentLength = len(word)
			} else {
				currentLength += len(word) + 1
			}
		}
	}
	if len(currentLine) > 0 {
		lines = append(lines, strings.Join(currentLine, " "))
	}
	return lines
}

// TwoColumn lays out rows of [name, description] pairs. Names are printed
// after indent and padded so every description starts at the same column,
// four spaces past the widest name. Descriptions wrap at width, with
// continuation lines indented to the description column.
func TwoColumn(rows [][2]string, indent string, width int) []string {
	maxLen := 0
	for _, row := range rows {
		if len(row[0]) > maxLen {
			maxLen = len(row[0])
		}
	}
	nameWidth := maxLen + 4
	wrapWidth := width - len(indent) - nameWidth
	if wrapWidth < 1 {
		wrapWidth = 1
	}

	var out []string
	for _, row := range rows {
		if row[1] == "" {
			out = append(out, indent+row[0])
			continue
		}
		lines := Wrap(row[1], wrapWidth)
		padding := strings.Repeat(" ", nameWidth-len(row[0]))
		out = append(out, indent+row[0]+padding+lines[0])

		indentPadding := indent + strings.Repeat(" ", nameWidth)
		for _, line := range lines[1:] {
			out = append(out, indentPadding+line)
		}
	}
	return out
}

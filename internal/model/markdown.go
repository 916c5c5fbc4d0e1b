// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"strings"
)

// markdownMarks lists formatting attributes in wrapping order, outermost first.
var markdownMarks = []struct {
	key   string
	open  string
	close string
}{
	{"bold", "**", "**"},
	{"italic", "_", "_"},
	{"strikethrough", "~~", "~~"},
	{"underline", "<u>", "</u>"},
	{"superscript", "<sup>", "</sup>"},
	{"subscript", "<sub>", "</sub>"},
	{"code", "`", "`"},
}

// Markdown renders the document as markdown. Runs of characters sharing the
// same formatting are wrapped once; marks never span a line break.
func (d *Document) Markdown() string {
	var sb strings.Builder

	start := 0
	for start < len(d.chars) {
		end := start + 1
		for end < len(d.chars) && sameMarks(d.chars[start].Attrs, d.chars[end].Attrs) {
			end++
		}
		writeRun(&sb, d.chars[start:end])
		start = end
	}
	return sb.String()
}

func writeRun(sb *strings.Builder, chars []Char) {
	text := charsText(chars)
	attrs := chars[0].Attrs

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		if line == "" {
			continue
		}
		for _, mark := range markdownMarks {
			if _, ok := attrs[mark.key]; ok {
				sb.WriteString(mark.open)
			}
		}
		sb.WriteString(line)
		for j := len(markdownMarks) - 1; j >= 0; j-- {
			if _, ok := attrs[markdownMarks[j].key]; ok {
				sb.WriteString(markdownMarks[j].close)
			}
		}
	}
}

func sameMarks(a, b Attributes) bool {
	for _, mark := range markdownMarks {
		_, inA := a[mark.key]
		_, inB := b[mark.key]
		if inA != inB {
			return false
		}
	}
	return true
}

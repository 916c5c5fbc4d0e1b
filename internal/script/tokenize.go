// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package script

import (
	"errors"
	"strings"
	"unicode"
)

// ErrUnterminatedQuote is returned for a line with an open quote.
var ErrUnterminatedQuote = errors.New("unterminated quote")

// Tokenize splits a line into words. Single and double quotes group words
// and may produce empty tokens. Inside quotes a backslash escapes a quote or
// a backslash; inside double quotes \n and \t are a newline and a tab.
func Tokenize(line string) ([]string, error) {
	var tokens []string
	var current strings.Builder
	var inSingle, inDouble, quoted bool

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		r := runes[i]

		switch {
		case r == '\'' && !inDouble:
			inSingle = !inSingle
			quoted = true

		case r == '"' && !inSingle:
			inDouble = !inDouble
			quoted = true

		case r == '\\' && i+1 < len(runes) && (inDouble || inSingle):
			next := runes[i+1]
			switch {
			case next == '"' || next == '\'' || next == '\\':
				current.WriteRune(next)
				i++
			case inDouble && next == 'n':
				current.WriteRune('\n')
				i++
			case inDouble && next == 't':
				current.WriteRune('\t')
				i++
			default:
				current.WriteRune(r)
			}

		case unicode.IsSpace(r) && !inSingle && !inDouble:
			if current.Len() > 0 || quoted {
				tokens = append(tokens, current.String())
				current.Reset()
				quoted = false
			}

		default:
			current.WriteRune(r)
		}
	}

	if inSingle || inDouble {
		return nil, ErrUnterminatedQuote
	}
	if current.Len() > 0 || quoted {
		tokens = append(tokens, current.String())
	}
	return tokens, nil
}

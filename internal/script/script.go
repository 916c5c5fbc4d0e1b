// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package script

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/jeranaias/slashdoc/internal/config"
	"github.com/jeranaias/slashdoc/internal/editor"
	"github.com/jeranaias/slashdoc/internal/mention"
)

var (
	// ErrUnknownDirective is returned for a directive the runner does not know.
	ErrUnknownDirective = errors.New("unknown directive")

	// ErrUsage is returned for a directive with wrong arguments.
	ErrUsage = errors.New("usage")

	// ErrExpectation is returned when an expect directive does not hold.
	ErrExpectation = errors.New("expectation failed")

	// ErrSetAfterEdit is returned for set directives after the editor exists.
	ErrSetAfterEdit = errors.New("set must come before editing directives")
)

// =============================================================================
// PARSING
// =============================================================================

// Step is one parsed script line.
type Step struct {
	Line      int
	Directive string
	Args      []string
}

func (s Step) String() string {
	return strings.TrimSpace(s.Directive + " " + strings.Join(s.Args, " "))
}

// Error is a script failure at a line.
type Error struct {
	Line      int
	Directive string
	Err       error
}

func (e *Error) Error() string {
	if e.Directive == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d: %s: %v", e.Line, e.Directive, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Parse reads a script. Blank lines and # comments are skipped.
func Parse(r io.Reader) ([]Step, error) {
	var steps []Step
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		tokens, err := Tokenize(text)
		if err != nil {
			return nil, &Error{Line: line, Err: err}
		}
		steps = append(steps, Step{
			Line:      line,
			Directive: strings.ToLower(tokens[0]),
			Args:      tokens[1:],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return steps, nil
}

// ParseFile parses the script at path.
func ParseFile(path string) ([]Step, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// =============================================================================
// RUNNER
// =============================================================================

// Runner replays steps against a fresh editor.
type Runner struct {
	// Variant is the editor build
	Variant string

	// Config is cloned before set directives change it; defaults when nil
	Config *config.Config

	// Out receives print and suggest output
	Out io.Writer

	// Logger is handed to the editor when set
	Logger *log.Logger

	cfg *config.Config
	ed  *editor.Editor
}

// Run replays steps and returns the editor in its final state. The caller
// owns the editor and must Destroy it. On error the editor is destroyed.
func (r *Runner) Run(steps []Step) (*editor.Editor, error) {
	r.cfg = config.Default()
	if r.Config != nil {
		r.cfg = r.Config.Clone()
	}
	if r.Out == nil {
		r.Out = io.Discard
	}
	r.ed = nil

	for _, step := range steps {
		if err := r.step(step); err != nil {
			if r.ed != nil {
				r.ed.Destroy()
			}
			return nil, &Error{Line: step.Line, Directive: step.Directive, Err: err}
		}
	}
	if err := r.editor(); err != nil {
		return nil, err
	}
	return r.ed, nil
}

// editor creates the editor on first use.
func (r *Runner) editor() error {
	if r.ed != nil {
		return nil
	}
	variant := r.Variant
	if variant == "" {
		variant = r.cfg.UI.Variant
	}
	var opts []editor.Option
	if r.Logger != nil {
		opts = append(opts, editor.WithLogger(r.Logger))
	}
	ed, err := editor.New(variant, r.cfg, opts...)
	if err != nil {
		return err
	}
	r.ed = ed
	return nil
}

func (r *Runner) step(s Step) error {
	if s.Directive == "set" {
		if r.ed != nil {
			return ErrSetAfterEdit
		}
		if len(s.Args) != 2 {
			return fmt.Errorf("%w: set <key> <value>", ErrUsage)
		}
		return r.cfg.Set(s.Args[0], s.Args[1])
	}

	if err := r.editor(); err != nil {
		return err
	}
	ed := r.ed

	switch s.Directive {
	case "type":
		if len(s.Args) == 0 {
			return fmt.Errorf("%w: type <text>", ErrUsage)
		}
		return ed.Type(strings.Join(s.Args, " "))

	case "key":
		if len(s.Args) != 1 {
			return fmt.Errorf("%w: key <name>", ErrUsage)
		}
		return pressKey(ed, s.Args[0])

	case "cursor":
		pos, err := intArgs(s.Args, 1, "cursor <pos>")
		if err != nil {
			return err
		}
		return ed.SetCursor(pos[0])

	case "select":
		pos, err := intArgs(s.Args, 2, "select <start> <end>")
		if err != nil {
			return err
		}
		return ed.Select(pos[0], pos[1])

	case "suggest":
		return r.printSuggestions()

	case "accept":
		if len(s.Args) > 1 {
			return fmt.Errorf("%w: accept [id]", ErrUsage)
		}
		if len(s.Args) == 1 {
			return ed.AcceptID(s.Args[0])
		}
		_, items, ok := ed.Suggestions()
		if !ok {
			return mention.ErrNoSession
		}
		if len(items) == 0 {
			return editor.ErrNoSuggestion
		}
		return ed.Accept(items[0])

	case "exec":
		switch len(s.Args) {
		case 1:
			return ed.Execute(s.Args[0], nil)
		case 2:
			v, err := strconv.ParseBool(s.Args[1])
			if err != nil {
				return fmt.Errorf("%w: exec <command> [true|false]", ErrUsage)
			}
			return ed.Execute(s.Args[0], v)
		default:
			return fmt.Errorf("%w: exec <command> [true|false]", ErrUsage)
		}

	case "undo":
		return ed.Undo()

	case "redo":
		return ed.Redo()

	case "print":
		format := "text"
		if len(s.Args) > 0 {
			format = s.Args[0]
		}
		out, err := render(ed, format)
		if err != nil {
			return err
		}
		fmt.Fprintln(r.Out, out)
		return nil

	case "expect":
		format, want := "text", ""
		switch len(s.Args) {
		case 1:
			want = s.Args[0]
		case 2:
			format, want = s.Args[0], s.Args[1]
		default:
			return fmt.Errorf("%w: expect [text|markdown] <value>", ErrUsage)
		}
		got, err := render(ed, format)
		if err != nil {
			return err
		}
		if got != want {
			return fmt.Errorf("%w: %s is %q, want %q", ErrExpectation, format, got, want)
		}
		return nil
	}

	return fmt.Errorf("%w: %s", ErrUnknownDirective, s.Directive)
}

func (r *Runner) printSuggestions() error {
	m, items, ok := r.ed.Suggestions()
	if !ok {
		fmt.Fprintln(r.Out, "(no active suggestion session)")
		return nil
	}
	fmt.Fprintf(r.Out, "%s%s: %d suggestion(s)\n", m.Marker(), m.Query, len(items))
	for _, item := range items {
		fmt.Fprintf(r.Out, "  %s\n", m.Feed.Render(item))
	}
	return nil
}

func pressKey(ed *editor.Editor, name string) error {
	switch strings.ToLower(name) {
	case "backspace":
		return ed.Backspace()
	case "delete":
		return ed.Delete()
	case "left":
		return ed.MoveCursor(-1)
	case "right":
		return ed.MoveCursor(1)
	case "home":
		return ed.SetCursor(0)
	case "end":
		return ed.SetCursor(ed.Model().Document().Len())
	case "enter":
		return ed.Type("\n")
	}
	return fmt.Errorf("%w: unknown key %q", ErrUsage, name)
}

func render(ed *editor.Editor, format string) (string, error) {
	switch format {
	case "text":
		return ed.Data(), nil
	case "markdown", "md":
		return ed.Markdown(), nil
	}
	return "", fmt.Errorf("%w: unknown format %q", ErrUsage, format)
}

func intArgs(args []string, n int, usage string) ([]int, error) {
	if len(args) != n {
		return nil, fmt.Errorf("%w: %s", ErrUsage, usage)
	}
	out := make([]int, n)
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrUsage, usage)
		}
		out[i] = v
	}
	return out, nil
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// exec_cmd.go - Script replay commands.
//
// Command: exec <script> [--markdown] [--watch]
// Short:   Replay an editor script and print the document
//
// Command: preview <script> [--width <n>]
// Short:   Replay an editor script and render its markdown
package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/jeranaias/slashdoc/internal/config"
	"github.com/jeranaias/slashdoc/internal/editor"
	"github.com/jeranaias/slashdoc/internal/script"
	"github.com/jeranaias/slashdoc/internal/ui/editorview"
)

const execUsage = "slashdoc exec <script> [--markdown] [--watch]"

// HandleExec handles the "exec" command.
func HandleExec(args Args) error {
	if args.File == "" {
		return ErrMissingArgument("script", execUsage)
	}
	cfg, err := loadConfig(args)
	if err != nil {
		return NewCommandError("exec", "", err)
	}

	if !args.Watch {
		return execOnce(args, cfg, stdout)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return watchScript(ctx, args, cfg, DefaultDebounce)
}

// watchScript runs the script now and after every change until ctx ends.
// Failing runs are reported and watching goes on.
func watchScript(ctx context.Context, args Args, cfg *config.Config, debounce time.Duration) error {
	run := func() {
		fmt.Fprintln(stdout, RenderSeparator())
		fmt.Fprintln(stdout, DimStyle.Render(fmt.Sprintf("%s  %s", time.Now().Format("15:04:05"), args.File)))
		if err := execOnce(args, cfg, stdout); err != nil {
			DisplayError(stdout, err, args.JSON)
		}
	}
	run()

	w := NewScriptWatcher(args.File, debounce, run, func(err error) {
		DisplayError(stderr, NewCommandError("exec", "watch", err), false)
	})
	if err := w.Watch(ctx); err != nil {
		return NewCommandError("exec", "watch", err)
	}
	return nil
}

// replay parses and runs the script, writing directive output to out.
func replay(args Args, cfg *config.Config, out io.Writer) (*editor.Editor, error) {
	steps, err := script.ParseFile(args.File)
	if err != nil {
		return nil, err
	}
	r := &script.Runner{
		Variant: variantOf(args, cfg),
		Config:  cfg,
		Out:     out,
	}
	return r.Run(steps)
}

func execOnce(args Args, cfg *config.Config, w io.Writer) error {
	var printed bytes.Buffer
	out := io.Writer(&printed)
	if !args.JSON {
		out = w
	}

	ed, err := replay(args, cfg, out)
	if err != nil {
		return NewCommandError("exec", "", err)
	}
	defer ed.Destroy()

	if args.JSON {
		return NewJSONResponse("exec", ExecData{
			Script:   args.File,
			Text:     ed.Data(),
			Markdown: ed.Markdown(),
			Output:   printed.String(),
		}).Print(w)
	}

	doc := ed.Data()
	if args.Markdown {
		doc = ed.Markdown()
	}
	fmt.Fprintln(w, doc)
	return nil
}

// HandlePreview handles the "preview" command.
func HandlePreview(args Args) error {
	const usage = "slashdoc preview <script> [--width <n>]"
	if args.File == "" {
		return ErrMissingArgument("script", usage)
	}
	width := GetTerminalWidth() - 2
	if args.Width != "" {
		n, err := parsePositiveInt(args.Width, "--width")
		if err != nil {
			return &UsageError{Message: err.Error(), Usage: usage}
		}
		width = n
	}
	cfg, err := loadConfig(args)
	if err != nil {
		return NewCommandError("preview", "", err)
	}

	ed, err := replay(args, cfg, io.Discard)
	if err != nil {
		return NewCommandError("preview", "", err)
	}
	defer ed.Destroy()

	md := ed.Markdown()
	if !ColorsEnabled() {
		fmt.Fprintln(stdout, md)
		return nil
	}
	out, err := editorview.RenderMarkdown(md, width, cfg.UI.Theme)
	if err != nil {
		return NewCommandError("preview", "render", err)
	}
	fmt.Fprint(stdout, strings.TrimLeft(out, "\n"))
	return nil
}

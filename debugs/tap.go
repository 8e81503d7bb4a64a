package debugs

import (
	"context"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"github.com/reusee/e5"
	"github.com/reusee/tapeopt/cmds"
	"github.com/reusee/tapeopt/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var wrap = e5.Wrap.With(e5.WrapStacktrace)

var fileOptions = &syntax.FileOptions{
	Set:             true,
	GlobalReassign:  true,
	While:           true,
	TopLevelControl: true,
}

// TapScript is a starlark file run by Tap instead of the interactive REPL.
type TapScript string

var tapScriptFlag = cmds.Var[string]("-tap-script", "run a starlark file at the tap instead of the REPL")

func (Module) TapScript() TapScript {
	return TapScript(*tapScriptFlag)
}

// TapOutput receives print() output of tap scripts.
type TapOutput io.Writer

func (Module) TapOutput() TapOutput {
	return os.Stdout
}

// Tap exposes globals to starlark under the label what.
type Tap func(ctx context.Context, what string, globals map[string]any) error

func (Module) Tap(
	logger logs.Logger,
	script TapScript,
	output TapOutput,
) Tap {
	return func(ctx context.Context, what string, globals map[string]any) error {
		names := slices.Sorted(maps.Keys(globals))
		logger.InfoContext(ctx, "tap: "+what,
			"globals", names,
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		mappings := make(starlark.StringDict)
		for name, value := range globals {
			mappings[name] = toStarlarkValue(value)
		}

		thread := &starlark.Thread{
			Name: what,
			Print: func(_ *starlark.Thread, msg string) {
				fmt.Fprintln(output, msg)
			},
		}

		if script == "" {
			repl.REPLOptions(fileOptions, thread, mappings)
			return nil
		}

		src, err := os.ReadFile(string(script))
		if err != nil {
			return wrap(err)
		}
		if _, err := starlark.ExecFileOptions(fileOptions, thread, string(script), src, mappings); err != nil {
			return wrap(fmt.Errorf("tap script: %w", err))
		}
		return nil
	}
}

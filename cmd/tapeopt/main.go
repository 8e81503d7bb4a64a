package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/reusee/dscope"
	"github.com/reusee/tapeopt/cmds"
	"github.com/reusee/tapeopt/ir"
	"github.com/reusee/tapeopt/logs"
	"github.com/reusee/tapeopt/machines"
	"github.com/reusee/tapeopt/modes"
	"github.com/reusee/tapeopt/sources"
)

var (
	fileFlag    = cmds.Var[string]("-file", "program path, - for stdin, or an http(s) URL")
	cmdFlag     = cmds.Var[string]("-cmd", "program text")
	inputFlag   = cmds.Var[*string]("-input", "program input instead of stdin")
	naiveFlag   = cmds.Switch("-naive", "run with the reference interpreter")
	compileFlag = cmds.Var[string]("-compile", "write the compiled image to a path and exit")
	imageFlag   = cmds.Var[string]("-image", "run a compiled image")
	tapFlag     = cmds.Switch("-tap", "open a starlark REPL over the final tape")
)

func init() {
	cmds.DefineFallback(cmds.Func(func(path string) {
		*fileFlag = path
	}).Desc("program path").Args("PATH"))
}

var (
	errNoProgram     = errors.New("no program given, use - to read it from stdin")
	errNaiveCompiled = errors.New("-naive runs source and cannot be combined with -compile or -image")
)

// checkFlags rejects flag combinations that would silently drop one of them.
func checkFlags() error {
	if *fileFlag == "" && *cmdFlag == "" && *imageFlag == "" {
		return errNoProgram
	}
	if *naiveFlag && (*compileFlag != "" || *imageFlag != "") {
		return errNaiveCompiled
	}
	return nil
}

func main() {
	cmds.Execute(os.Args[1:])

	if err := checkFlags(); err != nil {
		fmt.Fprintf(cmds.GlobalExecutor.Output, "%v\n\n", err)
		cmds.GlobalExecutor.PrintUsage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	go func() {
		// a second interrupt kills programs that never write
		<-ctx.Done()
		stop()
	}()

	scope := dscope.New(
		new(machines.Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		machine *machines.Machine,
		load sources.Load,
		stdin sources.Stdin,
		logger logs.Logger,
	) {
		if err := run(ctx, machine, load, stdin); err != nil {
			logger.Error("tapeopt", "error", err)
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
	})
}

func run(
	ctx context.Context,
	machine *machines.Machine,
	load sources.Load,
	stdin sources.Stdin,
) error {

	var input io.Reader = stdin
	if *inputFlag != nil {
		input = strings.NewReader(**inputFlag)
	}

	var src []byte
	var prog ir.Program
	switch {

	case *imageFlag != "":
		var err error
		prog, err = machine.ReadImage(ctx, *imageFlag)
		if err != nil {
			return err
		}

	case *cmdFlag != "":
		src = []byte(*cmdFlag)

	default:
		var err error
		src, err = load(ctx, *fileFlag)
		if err != nil {
			return err
		}

	}

	var result *machines.Result
	var err error
	if *naiveFlag {
		result, err = machine.Interpret(ctx, src, input, os.Stdout)
		if err != nil {
			return err
		}

	} else {
		if prog == nil {
			prog, err = machine.Compile(ctx, src)
			if err != nil {
				return err
			}
		}
		if *compileFlag != "" {
			return machine.WriteImage(ctx, *compileFlag, prog)
		}
		result, err = machine.Run(ctx, prog, input, os.Stdout)
		if err != nil {
			return err
		}
	}

	if *tapFlag {
		return machine.Tap(ctx, result, prog)
	}
	return nil
}

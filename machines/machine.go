package machines

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/reusee/e5"
	"github.com/reusee/tapeopt/checks"
	"github.com/reusee/tapeopt/debugs"
	"github.com/reusee/tapeopt/evaluator"
	"github.com/reusee/tapeopt/ir"
	"github.com/reusee/tapeopt/logs"
	"github.com/reusee/tapeopt/optimizer"
	"github.com/reusee/tapeopt/tapes"
)

var wrap = e5.Wrap.With(e5.WrapStacktrace)

// Machine compiles programs and runs them on a fresh tape per run.
type Machine struct {
	logger     logs.Logger
	newSpan    logs.NewSpan
	tap        debugs.Tap
	size       int
	origin     int
	force      bool
	dumpIR     bool
	dumpOutput io.Writer
}

// Result is the state a run leaves behind.
type Result struct {
	Tape *tapes.Tape
	// logical index of the final cursor
	Position int
}

// Compile checks the brackets of src and translates it. Force lets
// unbalanced brackets through but never excessive nesting.
func (m *Machine) Compile(ctx context.Context, src []byte) (ir.Program, error) {
	if err := m.check(ctx, src); err != nil {
		return nil, err
	}

	prog := optimizer.Compile(src)
	m.logger.InfoContext(ctx, "compiled",
		"source", humanize.Bytes(uint64(len(src))),
		"instructions", humanize.Comma(int64(prog.Len())),
		"depth", prog.Depth(),
	)

	if m.dumpIR {
		if err := ir.Fprint(m.dumpOutput, prog); err != nil {
			return nil, wrap(err)
		}
	}

	return prog, nil
}

func (m *Machine) check(ctx context.Context, src []byte) error {
	if err := checks.Nesting(src); err != nil {
		return wrap(err)
	}
	err := checks.Validate(src)
	if err == nil {
		return nil
	}
	if m.force {
		m.logger.WarnContext(ctx, "running malformed program",
			"error", err,
		)
		return nil
	}
	return wrap(err)
}

// Run evaluates prog. Output is buffered and flushed before every input
// read and at the end of the run. A cancelled ctx fails the next output
// write.
func (m *Machine) Run(ctx context.Context, prog ir.Program, input io.Reader, output io.Writer) (*Result, error) {
	return m.run(ctx, "run", input, output, func(tape *tapes.Tape, in io.Reader, out io.Writer) (int, error) {
		return evaluator.Eval(prog, tape, tape.Zero, in, out)
	})
}

// Interpret runs src through the reference interpreter.
func (m *Machine) Interpret(ctx context.Context, src []byte, input io.Reader, output io.Writer) (*Result, error) {
	if err := m.check(ctx, src); err != nil {
		return nil, err
	}
	return m.run(ctx, "interpret", input, output, func(tape *tapes.Tape, in io.Reader, out io.Writer) (int, error) {
		return evaluator.Interpret(src, tape, tape.Zero, in, out)
	})
}

func (m *Machine) run(
	ctx context.Context,
	name string,
	input io.Reader,
	output io.Writer,
	fn func(*tapes.Tape, io.Reader, io.Writer) (int, error),
) (_ *Result, err error) {
	ctx, _ = m.newSpan(ctx, name, "")
	defer func() {
		err = logs.WrapSpan(ctx, err)
	}()

	tape := tapes.New(m.size, m.origin)
	m.logger.DebugContext(ctx, "tape",
		"size", humanize.Comma(int64(m.size)),
		"origin", m.origin,
	)

	w := bufio.NewWriter(output)
	out := &ctxWriter{
		ctx: ctx,
		w:   w,
	}
	var in io.Reader
	if input != nil {
		in = &flushReader{
			r: input,
			w: w,
		}
	}

	pos, err := fn(tape, in, out)
	if flushErr := w.Flush(); err == nil {
		err = flushErr
	}
	if err != nil {
		return nil, wrap(err)
	}

	low, high := tape.Bounds()
	result := &Result{
		Tape:     tape,
		Position: tape.Logical(pos),
	}
	m.logger.InfoContext(ctx, name+" finished",
		"position", result.Position,
		"cells", humanize.Comma(int64(high-low)),
	)
	return result, nil
}

// Tap exposes the final tape of a run to starlark.
func (m *Machine) Tap(ctx context.Context, result *Result, prog ir.Program) error {
	low, high := result.Tape.Bounds()
	cells := make([]int, 0, high-low)
	for _, cell := range result.Tape.Slice(low, high) {
		cells = append(cells, int(cell))
	}
	return m.tap(ctx, "tape", map[string]any{
		"cells":    cells,
		"low":      low,
		"position": result.Position,
		"zero":     result.Tape.Zero,
		"program":  prog,
		"cell": func(index int) int {
			return int(result.Tape.Cell(index))
		},
	})
}

type ctxWriter struct {
	ctx context.Context
	w   io.Writer
}

func (c *ctxWriter) Write(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, fmt.Errorf("output: %w", err)
	}
	return c.w.Write(p)
}

type flushReader struct {
	r io.Reader
	w *bufio.Writer
}

func (f *flushReader) Read(p []byte) (int, error) {
	if err := f.w.Flush(); err != nil {
		return 0, err
	}
	return f.r.Read(p)
}

package evaluator

import (
	"fmt"
	"io"

	"github.com/reusee/e5"
	"github.com/reusee/tapeopt/ir"
	"github.com/reusee/tapeopt/tapes"
)

var wrap = e5.Wrap.With(e5.WrapStacktrace)

// Eval executes prog against tape starting at the physical cursor pos and
// returns the final cursor. Reads past the end of input store zero. The
// first failed write to output aborts evaluation and is returned.
//
// Accesses are not bounds checked beyond what the Touch instructions in prog
// guarantee, so prog must come from optimizer.Compile or uphold the same
// contract.
func Eval(prog ir.Program, tape *tapes.Tape, pos int, input io.Reader, output io.Writer) (int, error) {
	e := &evaluator{
		tape:   tape,
		input:  input,
		output: output,
	}
	return e.eval(prog, pos)
}

type evaluator struct {
	tape   *tapes.Tape
	input  io.Reader
	output io.Writer
	buf    [1]byte
}

func (e *evaluator) eval(prog ir.Program, pos int) (int, error) {
	var register uint8

	for i := range prog {
		inst := &prog[i]
		switch inst.Op {

		case ir.OpStart:

		case ir.OpTouch:
			pos = e.tape.Touch(pos, inst.High, inst.Low)

		case ir.OpSet:
			e.tape.Cells[pos+inst.Offset] = inst.Value

		case ir.OpAdd:
			e.tape.Cells[pos+inst.Offset] += inst.Value

		case ir.OpMul:
			e.tape.Cells[pos+inst.Offset] += inst.Value * register

		case ir.OpMove:
			pos += inst.Offset

		case ir.OpStore:
			cell := &e.tape.Cells[pos+inst.Offset]
			register = *cell
			*cell = 0

		case ir.OpScan:
			for e.tape.At(pos) != inst.Value {
				pos += inst.Step
			}

		case ir.OpFill:
			for e.tape.At(pos) != 0 {
				pos = e.fill(pos, inst.Offset, inst.Value)
				pos += inst.Step
			}

		case ir.OpInput:
			e.tape.Cells[pos+inst.Offset] = e.read()

		case ir.OpOutput:
			e.buf[0] = e.tape.Cells[pos+inst.Offset]
			if _, err := e.output.Write(e.buf[:]); err != nil {
				return pos, wrap(fmt.Errorf("output cell %d: %w", e.tape.Logical(pos+inst.Offset), err))
			}

		case ir.OpLoop, ir.OpFixedLoop:
			for e.tape.Cells[pos] != 0 {
				var err error
				pos, err = e.eval(inst.Body, pos)
				if err != nil {
					return pos, err
				}
			}

		default:
			panic(fmt.Errorf("unknown instruction: %v", inst.Op))
		}
	}

	return pos, nil
}

// fill writes value at pos+offset. Unmaterialized cells already read as
// zero, so only nonzero values force the tape to grow.
func (e *evaluator) fill(pos, offset int, value uint8) int {
	target := pos + offset
	if target >= 0 && target < len(e.tape.Cells) {
		e.tape.Cells[target] = value
		return pos
	}
	if value == 0 {
		return pos
	}
	pos = e.tape.Touch(pos, offset, offset)
	e.tape.Cells[pos+offset] = value
	return pos
}

func (e *evaluator) read() byte {
	if e.input == nil {
		return 0
	}
	if _, err := io.ReadFull(e.input, e.buf[:]); err != nil {
		return 0
	}
	return e.buf[0]
}

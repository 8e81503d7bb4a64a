package evaluator

import (
	"errors"
	"fmt"
	"io"

	"github.com/reusee/tapeopt/tapes"
)

var ErrStepLimit = errors.New("step limit exceeded")

// Interpret executes src one operator at a time with no optimization. It
// treats malformed brackets the way the optimizer does: input after a stray
// ']' is ignored and an unterminated '[' is closed at the end of src.
func Interpret(src []byte, tape *tapes.Tape, pos int, input io.Reader, output io.Writer) (int, error) {
	return interpret(src, tape, pos, input, output, 0)
}

// interpret stops with ErrStepLimit after limit operators when limit is
// positive.
func interpret(src []byte, tape *tapes.Tape, pos int, input io.Reader, output io.Writer, limit int) (int, error) {
	code, jumps := balance(src)
	e := &evaluator{
		tape:   tape,
		input:  input,
		output: output,
	}

	steps := 0
	for pc := 0; pc < len(code); pc++ {
		if limit > 0 {
			steps++
			if steps > limit {
				return pos, ErrStepLimit
			}
		}

		switch code[pc] {

		case '+':
			pos = tape.Touch(pos, 0, 0)
			tape.Cells[pos]++

		case '-':
			pos = tape.Touch(pos, 0, 0)
			tape.Cells[pos]--

		case '>':
			pos++

		case '<':
			pos--

		case ',':
			pos = tape.Touch(pos, 0, 0)
			tape.Cells[pos] = e.read()

		case '.':
			pos = tape.Touch(pos, 0, 0)
			e.buf[0] = tape.Cells[pos]
			if _, err := output.Write(e.buf[:]); err != nil {
				return pos, wrap(fmt.Errorf("output cell %d: %w", tape.Logical(pos), err))
			}

		case '[':
			pos = tape.Touch(pos, 0, 0)
			if tape.Cells[pos] == 0 {
				pc = jumps[pc]
			}

		case ']':
			pos = tape.Touch(pos, 0, 0)
			if tape.Cells[pos] != 0 {
				pc = jumps[pc]
			}

		}
	}

	return pos, nil
}

// balance strips everything but operators, truncates at the first stray
// ']', closes unterminated loops and returns the matching bracket of every
// bracket position.
func balance(src []byte) ([]byte, []int) {
	code := make([]byte, 0, len(src))
	var open []int
scan:
	for _, b := range src {
		switch b {
		case '+', '-', '<', '>', ',', '.':
			code = append(code, b)
		case '[':
			open = append(open, len(code))
			code = append(code, b)
		case ']':
			if len(open) == 0 {
				break scan
			}
			open = open[:len(open)-1]
			code = append(code, b)
		}
	}
	for range open {
		code = append(code, ']')
	}

	jumps := make([]int, len(code))
	var stack []int
	for i, b := range code {
		switch b {
		case '[':
			stack = append(stack, i)
		case ']':
			j := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			jumps[i] = j
			jumps[j] = i
		}
	}
	return code, jumps
}

package images

import (
	"fmt"

	"github.com/reusee/tapeopt/ir"
)

// window is the range materialized by the last Touch, relative to the
// current cursor. An invalid window guarantees nothing.
type window struct {
	span  ir.Span
	valid bool
}

func (w *window) covers(offset int) bool {
	return w.valid && w.span.Contains(offset)
}

// verify checks that every access in prog falls inside the window of the
// preceding Touch, which the evaluator relies on instead of bounds checks.
func verify(prog ir.Program) error {
	return verifyBlock(prog, window{}, false)
}

func verifyBlock(block ir.Program, w window, body bool) error {
	for _, inst := range block {
		switch inst.Op {

		case ir.OpStart:

		case ir.OpTouch:
			if inst.Low > inst.High {
				return fmt.Errorf("%w: empty touch %v", ErrCorrupt, inst)
			}
			w = window{
				span: ir.Span{
					Low:  inst.Low,
					High: inst.High,
				},
				valid: true,
			}

		case ir.OpMove:
			w.span.Shift(-inst.Offset)

		case ir.OpScan, ir.OpFill:
			// the cursor is unknown until the next Touch
			w = window{}

		case ir.OpLoop:
			if !w.covers(0) {
				return fmt.Errorf("%w: loop cursor outside touched cells", ErrCorrupt)
			}
			// each iteration starts on the cell the condition read
			if err := verifyBlock(inst.Body, window{valid: true}, true); err != nil {
				return err
			}
			w = window{valid: true}

		case ir.OpFixedLoop:
			if inst.Low > 0 || inst.High < 0 {
				return fmt.Errorf("%w: fixed loop range excludes its cursor", ErrCorrupt)
			}
			if !w.covers(inst.Low) || !w.covers(inst.High) {
				return fmt.Errorf("%w: fixed loop outside touched cells", ErrCorrupt)
			}
			if err := verifyFixed(inst.Body, inst.Low, inst.High); err != nil {
				return err
			}

		default:
			if !w.covers(inst.Offset) {
				return fmt.Errorf("%w: %v outside touched cells", ErrCorrupt, inst)
			}

		}
	}

	if body && !w.covers(0) {
		// the loop condition reads the cell under the final cursor
		return fmt.Errorf("%w: block ends outside touched cells", ErrCorrupt)
	}
	return nil
}

// verifyFixed checks a FixedLoop body against the range the loop declares.
// The body must return the cursor to where it started.
func verifyFixed(body ir.Program, low, high int) error {
	shift := 0
	for _, inst := range body {
		switch inst.Op {

		case ir.OpMove:
			shift += inst.Offset

		case ir.OpFixedLoop:
			if inst.Low > 0 || inst.High < 0 ||
				shift+inst.Low < low || shift+inst.High > high {
				return fmt.Errorf("%w: fixed loop outside enclosing range", ErrCorrupt)
			}
			if err := verifyFixed(inst.Body, inst.Low, inst.High); err != nil {
				return err
			}

		default:
			if !inst.Op.Addressed() {
				return fmt.Errorf("%w: %v in fixed loop", ErrCorrupt, inst.Op)
			}
			if offset := shift + inst.Offset; offset < low || offset > high {
				return fmt.Errorf("%w: %v outside fixed loop range", ErrCorrupt, inst)
			}

		}
	}
	if shift != 0 {
		return fmt.Errorf("%w: fixed loop moves the cursor", ErrCorrupt)
	}
	return nil
}

package optimizer

import (
	"slices"

	"github.com/reusee/tapeopt/ir"
)

// hoist places a Touch before every run of statically addressed
// instructions in block. Loop, Scan and Fill end a run because the cursor
// after them is not known at compile time. The pass walks backwards so that
// each Touch is expressed relative to the cursor at the start of its run.
func hoist(block ir.Program) ir.Program {
	ret := make(ir.Program, 0, len(block)+4)
	var span ir.Span
	pending := false

	flush := func(force bool) {
		if pending || force {
			span.Include(0)
			ret = append(ret, ir.Touch(span.High, span.Low))
		}
		span = ir.Span{}
		pending = false
	}

	for i := len(block) - 1; i >= 0; i-- {
		inst := block[i]
		switch {

		case inst.Op == ir.OpTouch:
			// recomputed

		case inst.Op.Barrier():
			// cursors left by Scan and Fill have not been materialized
			flush(inst.Op == ir.OpScan || inst.Op == ir.OpFill)
			ret = append(ret, inst)

		case inst.Op == ir.OpStart:
			flush(true)
			ret = append(ret, inst)

		default:
			accumulate(&span, inst)
			pending = true
			ret = append(ret, inst)

		}
	}
	flush(false)

	slices.Reverse(ret)
	return ret
}

// footprint returns the offsets a barrier-free body may access, including
// the cell under the cursor.
func footprint(body ir.Program) ir.Span {
	var span ir.Span
	for i := len(body) - 1; i >= 0; i-- {
		accumulate(&span, body[i])
	}
	span.Include(0)
	return span
}

// accumulate folds inst into span, which is relative to the cursor right
// after inst executes. On return span is relative to the cursor before it.
func accumulate(span *ir.Span, inst ir.Inst) {
	switch {
	case inst.Op == ir.OpMove:
		span.Shift(inst.Offset)
	case inst.Op == ir.OpFixedLoop:
		span.IncludeRange(inst.Low, inst.High)
	case inst.Op.Addressed():
		span.Include(inst.Offset)
	}
}

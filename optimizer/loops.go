package optimizer

import "github.com/reusee/tapeopt/ir"

// loopInst appends the translation of a bracketed loop whose raw body has
// already been translated. The recognizers are tried in order and the first
// match wins; offset is the pending cursor displacement of the enclosing
// block.
func loopInst(out ir.Program, body ir.Program, offset *int) ir.Program {
	if ret, ok := clearLoop(out, body, *offset); ok {
		return ret
	}
	if ret, ok := flatLoop(out, body, *offset); ok {
		return ret
	}
	if ret, ok := scanLoop(out, body, offset); ok {
		return ret
	}

	out = moveInst(out, offset)

	if ret, ok := fillLoop(out, body); ok {
		return ret
	}
	if ret, ok := fixedLoop(out, body); ok {
		return ret
	}

	return append(out, ir.Loop(hoist(body)))
}

// clearLoop matches [-] and [+].
func clearLoop(out ir.Program, body ir.Program, offset int) (ir.Program, bool) {
	if len(body) != 1 {
		return out, false
	}
	inst := body[0]
	if inst.Op != ir.OpAdd || inst.Offset != 0 {
		return out, false
	}
	if inst.Value != 1 && inst.Value != 255 {
		return out, false
	}
	return setInst(out, 0, offset), true
}

// flatLoop matches bodies made only of increments that leave the cursor in
// place and decrement the loop cell by exactly one per iteration, like
// [->++>+++<<]. Each target cell receives delta times the loop cell.
func flatLoop(out ir.Program, body ir.Program, offset int) (ir.Program, bool) {
	sum := uint8(1)
	for _, inst := range body {
		if inst.Op != ir.OpAdd {
			return out, false
		}
		if inst.Offset == 0 {
			sum += inst.Value
		}
	}
	if sum != 0 {
		return out, false
	}

	if factor, ok := knownValue(out, offset); ok {
		for _, inst := range body {
			if inst.Offset == 0 {
				continue
			}
			out = addInst(out, inst.Value*factor, offset+inst.Offset)
		}
		return setInst(out, 0, offset), true
	}

	out = append(out, ir.Store(offset))
	for _, inst := range body {
		if inst.Offset == 0 {
			continue
		}
		out = append(out, ir.Mul(offset+inst.Offset, inst.Value))
	}
	return out, true
}

// scanLoop matches bodies that only step the cursor by a fixed amount and
// whose increments cancel out between the current and the next cell, like
// [>] or [-<+].
func scanLoop(out ir.Program, body ir.Program, offset *int) (ir.Program, bool) {
	step := 0
	hasStep := false
	for _, inst := range body {
		switch inst.Op {
		case ir.OpMove:
			if hasStep {
				return out, false
			}
			step = inst.Offset
			hasStep = true
		case ir.OpAdd:
			if hasStep {
				return out, false
			}
		default:
			return out, false
		}
	}
	if !hasStep {
		return out, false
	}

	var startCell, endCell uint8
	for _, inst := range body {
		if inst.Op != ir.OpAdd {
			continue
		}
		switch inst.Offset {
		case 0:
			startCell += inst.Value
		case step:
			endCell += inst.Value
		default:
			return out, false
		}
	}
	if startCell+endCell != 0 {
		return out, false
	}

	out = addInst(out, startCell, *offset)
	out = moveInst(out, offset)
	out = append(out, ir.Scan(startCell, step))
	out = addInst(out, endCell, 0)
	return out, true
}

// fillLoop matches [[-]+++>] style bodies: an assignment followed by a step.
func fillLoop(out ir.Program, body ir.Program) (ir.Program, bool) {
	if len(body) != 2 {
		return out, false
	}
	set, move := body[0], body[1]
	if set.Op != ir.OpSet || move.Op != ir.OpMove {
		return out, false
	}
	return append(out, ir.Fill(set.Offset, set.Value, move.Offset)), true
}

// fixedLoop matches bodies that return the cursor to where it started and
// contain no cursor-dependent loops. Such a body has a static footprint that
// the enclosing block can materialize once.
func fixedLoop(out ir.Program, body ir.Program) (ir.Program, bool) {
	displacement := 0
	for _, inst := range body {
		switch inst.Op {
		case ir.OpMove:
			displacement += inst.Offset
		case ir.OpLoop, ir.OpScan, ir.OpFill:
			return out, false
		}
	}
	if displacement != 0 {
		return out, false
	}
	span := footprint(body)
	return append(out, ir.FixedLoop(body, span.High, span.Low)), true
}

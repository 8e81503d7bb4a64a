package optimizer

import (
	"slices"

	"github.com/reusee/tapeopt/ir"
)

// addInst appends a wrapped increment of the cell at offset, folding it into
// the nearest earlier write to that cell when nothing in between can observe
// the difference.
func addInst(out ir.Program, sum uint8, offset int) ir.Program {
	if sum == 0 {
		return out
	}

	multiplied := false
scan:
	for i := len(out) - 1; i >= 0; i-- {
		inst := &out[i]
		switch inst.Op {

		case ir.OpSet:
			if inst.Offset == offset {
				inst.Value += sum
				return out
			}

		case ir.OpAdd:
			if inst.Offset == offset {
				inst.Value += sum
				if inst.Value == 0 {
					out = slices.Delete(out, i, i+1)
				}
				return out
			}

		case ir.OpMul:
			// additive, commutes with the new increment
			if inst.Offset == offset {
				multiplied = true
			}

		case ir.OpStore, ir.OpInput, ir.OpOutput:
			if inst.Offset == offset {
				break scan
			}

		case ir.OpTouch:

		case ir.OpFixedLoop:
			if inst.Covers(offset) {
				break scan
			}

		case ir.OpStart:
			if multiplied {
				break scan
			}
			// every cell is still zero
			return append(out, ir.Set(offset, sum))

		default:
			break scan
		}
	}

	return append(out, ir.Add(offset, sum))
}

// setInst appends an assignment to the cell at offset, deleting earlier
// writes to the same cell that the assignment makes unobservable.
func setInst(out ir.Program, value uint8, offset int) ir.Program {
scan:
	for i := len(out) - 1; i >= 0; i-- {
		inst := out[i]
		switch inst.Op {

		case ir.OpSet, ir.OpAdd, ir.OpMul:
			if inst.Offset == offset {
				out = slices.Delete(out, i, i+1)
			}

		case ir.OpStore, ir.OpInput, ir.OpOutput:
			if inst.Offset == offset {
				break scan
			}

		case ir.OpTouch:

		case ir.OpFixedLoop:
			if inst.Covers(offset) {
				break scan
			}

		case ir.OpStart:
			if value == 0 {
				return out
			}
			break scan

		default:
			break scan
		}
	}

	return append(out, ir.Set(offset, value))
}

// moveInst materializes a pending cursor displacement.
func moveInst(out ir.Program, offset *int) ir.Program {
	if *offset != 0 {
		out = append(out, ir.Move(*offset))
		*offset = 0
	}
	return out
}

// knownValue returns the value of the cell at offset if it is fixed at
// compile time at the end of out.
func knownValue(out ir.Program, offset int) (uint8, bool) {
	for i := len(out) - 1; i >= 0; i-- {
		inst := out[i]
		switch inst.Op {

		case ir.OpSet:
			if inst.Offset == offset {
				return inst.Value, true
			}

		case ir.OpAdd, ir.OpMul, ir.OpStore, ir.OpInput:
			if inst.Offset == offset {
				return 0, false
			}

		case ir.OpOutput, ir.OpTouch:

		case ir.OpFixedLoop:
			if inst.Covers(offset) {
				return 0, false
			}

		case ir.OpStart:
			return 0, true

		default:
			return 0, false
		}
	}
	return 0, false
}

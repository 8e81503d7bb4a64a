package ir

import "strconv"

type Op uint8

const (
	OpStart Op = iota + 1
	OpTouch
	OpSet
	OpAdd
	OpMul
	OpMove
	OpStore
	OpLoop
	OpFixedLoop
	OpScan
	OpFill
	OpInput
	OpOutput
)

var opNames = [...]string{
	OpStart:     "start",
	OpTouch:     "touch",
	OpSet:       "set",
	OpAdd:       "add",
	OpMul:       "mul",
	OpMove:      "mov",
	OpStore:     "str",
	OpLoop:      "loop",
	OpFixedLoop: "fixed",
	OpScan:      "scn",
	OpFill:      "fll",
	OpInput:     "in",
	OpOutput:    "out",
}

func (o Op) String() string {
	if int(o) < len(opNames) && opNames[o] != "" {
		return opNames[o]
	}
	return "op(" + strconv.Itoa(int(o)) + ")"
}

// Barrier reports whether instructions of this kind move the cursor by an
// amount unknown at compile time.
func (o Op) Barrier() bool {
	switch o {
	case OpLoop, OpScan, OpFill:
		return true
	}
	return false
}

// Addressed reports whether the instruction accesses the single cell at
// Inst.Offset.
func (o Op) Addressed() bool {
	switch o {
	case OpSet, OpAdd, OpMul, OpStore, OpInput, OpOutput:
		return true
	}
	return false
}

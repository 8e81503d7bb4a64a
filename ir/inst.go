package ir

// Inst is one node of the tree IR. Op selects which of the fields are
// meaningful:
//
//	Start
//	Touch      High, Low
//	Set        Offset, Value
//	Add        Offset, Value
//	Mul        Offset, Value
//	Move       Offset
//	Store      Offset
//	Loop       Body
//	FixedLoop  Body, High, Low
//	Scan       Value, Step
//	Fill       Offset, Value, Step
//	Input      Offset
//	Output     Offset
//
// Offsets are relative to the cursor at the time the instruction executes.
type Inst struct {
	Op     Op
	Offset int
	Value  uint8
	Step   int
	High   int
	Low    int
	Body   Program
}

type Program []Inst

// MaxDepth bounds loop nesting. Translation and evaluation recurse once per
// level.
const MaxDepth = 1 << 14

func Start() Inst {
	return Inst{Op: OpStart}
}

func Touch(high, low int) Inst {
	return Inst{Op: OpTouch, High: high, Low: low}
}

func Set(offset int, value uint8) Inst {
	return Inst{Op: OpSet, Offset: offset, Value: value}
}

func Add(offset int, value uint8) Inst {
	return Inst{Op: OpAdd, Offset: offset, Value: value}
}

func Mul(offset int, value uint8) Inst {
	return Inst{Op: OpMul, Offset: offset, Value: value}
}

func Move(offset int) Inst {
	return Inst{Op: OpMove, Offset: offset}
}

func Store(offset int) Inst {
	return Inst{Op: OpStore, Offset: offset}
}

func Loop(body Program) Inst {
	return Inst{Op: OpLoop, Body: body}
}

func FixedLoop(body Program, high, low int) Inst {
	return Inst{Op: OpFixedLoop, Body: body, High: high, Low: low}
}

func Scan(value uint8, step int) Inst {
	return Inst{Op: OpScan, Value: value, Step: step}
}

func Fill(offset int, value uint8, step int) Inst {
	return Inst{Op: OpFill, Offset: offset, Value: value, Step: step}
}

func Input(offset int) Inst {
	return Inst{Op: OpInput, Offset: offset}
}

func Output(offset int) Inst {
	return Inst{Op: OpOutput, Offset: offset}
}

// Covers reports whether a FixedLoop may access the cell at offset.
func (i Inst) Covers(offset int) bool {
	return offset >= i.Low && offset <= i.High
}

// Len returns the number of instructions in p, counting loop bodies.
func (p Program) Len() int {
	n := len(p)
	for _, inst := range p {
		n += inst.Body.Len()
	}
	return n
}

// Depth returns the deepest loop nesting in p.
func (p Program) Depth() int {
	depth := 0
	for _, inst := range p {
		if inst.Op == OpLoop || inst.Op == OpFixedLoop {
			depth = max(depth, 1+inst.Body.Depth())
		}
	}
	return depth
}

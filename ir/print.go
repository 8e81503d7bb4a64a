package ir

import (
	"fmt"
	"io"
	"strings"
)

const indentWidth = 4

func (p Program) String() string {
	buf := new(strings.Builder)
	_ = Fprint(buf, p)
	return buf.String()
}

// Fprint writes p as an indented tree, one instruction per line.
func Fprint(w io.Writer, p Program) error {
	return fprint(w, p, 0)
}

func fprint(w io.Writer, p Program, depth int) error {
	indent := strings.Repeat(" ", depth*indentWidth)
	for _, inst := range p {
		if _, err := fmt.Fprintf(w, "%s%s\n", indent, inst); err != nil {
			return err
		}
		if inst.Op == OpLoop || inst.Op == OpFixedLoop {
			if err := fprint(w, inst.Body, depth+1); err != nil {
				return err
			}
		}
	}
	return nil
}

func (i Inst) String() string {
	switch i.Op {
	case OpStart:
		return "start"
	case OpTouch:
		return fmt.Sprintf("touch %+d %+d", i.High, i.Low)
	case OpSet, OpAdd, OpMul:
		return fmt.Sprintf("%s %+d %d", i.Op, i.Offset, i.Value)
	case OpMove, OpStore, OpInput, OpOutput:
		return fmt.Sprintf("%s %+d", i.Op, i.Offset)
	case OpLoop:
		return "loop:"
	case OpFixedLoop:
		return fmt.Sprintf("fixed %+d %+d:", i.High, i.Low)
	case OpScan:
		return fmt.Sprintf("scn %d %+d", i.Value, i.Step)
	case OpFill:
		return fmt.Sprintf("fll %+d %d %+d", i.Offset, i.Value, i.Step)
	}
	return i.Op.String()
}

package optimizer

import (
	"testing"

	"github.com/reusee/tapeopt/ir"
)

func expect(t *testing.T, got, want ir.Program) {
	t.Helper()
	if got.String() != want.String() {
		t.Fatalf("got\n%s\nwant\n%s", got, want)
	}
}

func TestCompile(t *testing.T) {
	for _, c := range []struct {
		src  string
		want ir.Program
	}{
		{
			"",
			ir.Program{ir.Start(), ir.Touch(0, 0)},
		},
		{
			"+++>--<[>++++<-]++",
			ir.Program{
				ir.Start(),
				ir.Touch(1, 0),
				ir.Set(1, 10),
				ir.Set(0, 2),
			},
		},
		{
			",[+++.,]",
			ir.Program{
				ir.Start(),
				ir.Touch(0, 0),
				ir.Input(0),
				ir.FixedLoop(ir.Program{
					ir.Add(0, 3),
					ir.Output(0),
					ir.Input(0),
				}, 0, 0),
			},
		},
		{
			">>[<]",
			ir.Program{
				ir.Start(),
				ir.Touch(2, 0),
				ir.Move(2),
				ir.Scan(0, -1),
				ir.Touch(0, 0),
			},
		},
		{
			"[[-]>]",
			ir.Program{
				ir.Start(),
				ir.Touch(0, 0),
				ir.Fill(0, 0, 1),
				ir.Touch(0, 0),
			},
		},
		{
			",[->+++<]",
			ir.Program{
				ir.Start(),
				ir.Touch(1, 0),
				ir.Input(0),
				ir.Store(0),
				ir.Mul(1, 3),
			},
		},
		{
			"[-]",
			ir.Program{ir.Start(), ir.Touch(0, 0)},
		},
		{
			"+[-]",
			ir.Program{ir.Start(), ir.Touch(0, 0)},
		},
		{
			",[-]",
			ir.Program{
				ir.Start(),
				ir.Touch(0, 0),
				ir.Input(0),
				ir.Set(0, 0),
			},
		},
		{
			",[-<+]",
			ir.Program{
				ir.Start(),
				ir.Touch(0, 0),
				ir.Input(0),
				ir.Add(0, 255),
				ir.Scan(255, -1),
				ir.Touch(0, 0),
				ir.Add(0, 1),
			},
		},
		{
			",>[.>]",
			ir.Program{
				ir.Start(),
				ir.Touch(1, 0),
				ir.Input(0),
				ir.Move(1),
				ir.Loop(ir.Program{
					ir.Touch(1, 0),
					ir.Output(0),
					ir.Move(1),
				}),
			},
		},
		{
			"+a+ b\n+",
			ir.Program{ir.Start(), ir.Touch(0, 0), ir.Set(0, 3)},
		},
		{
			"+]+++",
			ir.Program{ir.Start(), ir.Touch(0, 0), ir.Set(0, 1)},
		},
		{
			",[.",
			ir.Program{
				ir.Start(),
				ir.Touch(0, 0),
				ir.Input(0),
				ir.FixedLoop(ir.Program{ir.Output(0)}, 0, 0),
			},
		},
		{
			"><<>",
			ir.Program{ir.Start(), ir.Touch(0, 0)},
		},
	} {
		t.Run(c.src, func(t *testing.T) {
			expect(t, Compile([]byte(c.src)), c.want)
		})
	}
}

func TestCompileNestedFixedLoop(t *testing.T) {
	got := Compile([]byte(",[>,[>+<-.]<-]"))
	if len(got) != 4 {
		t.Fatalf("got\n%s", got)
	}
	outer := got[3]
	if outer.Op != ir.OpFixedLoop {
		t.Fatalf("got %v", outer.Op)
	}
	if outer.Low != 0 || outer.High != 2 {
		t.Fatalf("got %d %d", outer.Low, outer.High)
	}
	if got[1].Op != ir.OpTouch || got[1].High != 2 || got[1].Low != 0 {
		t.Fatalf("got %v", got[1])
	}
	for _, inst := range outer.Body {
		if inst.Op == ir.OpTouch {
			t.Fatal("touch in fixed loop body")
		}
	}
}

func TestCompileLoopBodiesHoisted(t *testing.T) {
	var check func(prog ir.Program, top bool)
	check = func(prog ir.Program, top bool) {
		for _, inst := range prog {
			switch inst.Op {
			case ir.OpLoop:
				check(inst.Body, true)
			case ir.OpFixedLoop:
				check(inst.Body, false)
			case ir.OpTouch:
				if !top {
					t.Fatal("touch in fixed loop body")
				}
			}
		}
	}
	for _, src := range []string{
		"+[>[>.<-]<[<]>>]",
		",[>>,[-<+>]<<[>]<]",
		"++[>+++[>++<-]<-]",
	} {
		check(Compile([]byte(src)), true)
	}
}

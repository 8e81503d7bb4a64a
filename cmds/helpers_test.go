package cmds

import (
	"fmt"
	"testing"
	"time"
)

func TestVar(t *testing.T) {
	size := Var[int]("TestVar-size", "tape cells")
	name := Var[string]("TestVar-name")
	GlobalExecutor.MustExecute([]string{
		"TestVar-size", "0x1000",
		"TestVar-name", "hello.b",
	})
	if *size != 4096 {
		t.Fatalf("got %d", *size)
	}
	if *name != "hello.b" {
		t.Fatalf("got %s", *name)
	}

	// reset
	GlobalExecutor.MustExecute([]string{
		"TestVar-size.",
	})
	if *size != 0 {
		t.Fatalf("got %d", *size)
	}

	if desc := GlobalExecutor.commands["TestVar-size"].Description; desc != "tape cells" {
		t.Fatalf("got %q", desc)
	}
}

func TestPointerVar(t *testing.T) {
	origin := Var[*int]("TestPointerVar")
	if *origin != nil {
		t.Fatal()
	}
	GlobalExecutor.MustExecute([]string{
		"TestPointerVar", "0",
	})
	if *origin == nil || **origin != 0 {
		t.Fatalf("got %v", *origin)
	}
}

func TestSwitch(t *testing.T) {
	force := Switch("TestSwitch", "run anyway")
	GlobalExecutor.MustExecute([]string{
		"TestSwitch",
	})
	if !*force {
		t.Fatal()
	}
	GlobalExecutor.MustExecute([]string{
		"!TestSwitch",
	})
	if *force {
		t.Fatal()
	}
}

func TestCollect(t *testing.T) {
	list := Collect[string]("TestCollect")
	GlobalExecutor.MustExecute([]string{
		"TestCollect", "a.cue",
		"TestCollect", "b.cue",
	})
	if str := fmt.Sprintf("%v", *list); str != "[a.cue b.cue]" {
		t.Fatalf("got %s", str)
	}
}

func TestTypedVar(t *testing.T) {
	type Path string
	v := Var[Path]("TestTypedVar")
	timeout := Var[time.Duration]("TestTypedVar-timeout")
	GlobalExecutor.MustExecute([]string{
		"TestTypedVar", "prog.b",
		"TestTypedVar-timeout", "1m30s",
	})
	if *v != "prog.b" {
		t.Fatalf("got %s", *v)
	}
	if *timeout != 90*time.Second {
		t.Fatalf("got %v", *timeout)
	}
}

package cmds

import (
	"bytes"
	"strings"
	"testing"
)

func TestUsage(t *testing.T) {
	executor := NewExecutor()
	buf := new(bytes.Buffer)
	executor.Output = buf
	executor.Define("foo", Sub(map[string]*Command{
		"bar": Func(func() {
		}).Desc("BAR"),
		"baz": Sub(map[string]*Command{
			"qux": Func(func(n int, s *string) {}).Desc("QUX"),
		}).Desc("BAZ"),
	}).Desc("FOO"))
	executor.DefineFallback(Func(func(string) {}).Args("PATH").Desc("FALLBACK"))
	executor.PrintUsage()

	out := buf.String()
	for _, expected := range []string{
		"-h, help, -help, --help",
		"FOO",
		"  bar",
		"    qux N [STR]",
		"QUX",
		"PATH",
		"FALLBACK",
	} {
		if !strings.Contains(out, expected) {
			t.Fatalf("%q not in\n%s", expected, out)
		}
	}
	if strings.Count(out, "print this usage") != 1 {
		t.Fatalf("got\n%s", out)
	}
}

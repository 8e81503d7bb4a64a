package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

func TestModuleForProduction(t *testing.T) {
	t.Setenv(modeEnv, "")
	dscope.New(new(ModuleForProduction)).Call(func(
		testingT *testing.T,
		mode Mode,
	) {
		if testingT != nil {
			t.Fatal()
		}
		if mode != ModeProduction {
			t.Fatalf("got %v", mode)
		}
	})

	t.Setenv(modeEnv, "dev")
	dscope.New(ForProduction()).Call(func(
		mode Mode,
	) {
		if mode != ModeDevelopment {
			t.Fatalf("got %v", mode)
		}
	})
}

func TestParse(t *testing.T) {
	for _, mode := range []Mode{ModeProduction, ModeDevelopment} {
		parsed, err := Parse(mode.String())
		if err != nil {
			t.Fatal(err)
		}
		if parsed != mode {
			t.Fatalf("got %v", parsed)
		}
	}
	if _, err := Parse("staging"); err == nil {
		t.Fatal("should error")
	}
	if Mode(9).String() != "mode(9)" {
		t.Fatal()
	}
}

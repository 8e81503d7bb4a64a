package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

// ModuleForTest runs in development mode and exposes the running test.
type ModuleForTest struct {
	dscope.Module
	t    *testing.T
	mode Mode
}

func ForTest(t *testing.T) ModuleForTest {
	return ModuleForTest{
		t:    t,
		mode: ModeDevelopment,
	}
}

// As switches the provided Mode, for tests exercising production paths.
func (m ModuleForTest) As(mode Mode) ModuleForTest {
	m.mode = mode
	return m
}

func (m ModuleForTest) T() *testing.T {
	return m.t
}

func (m ModuleForTest) Mode() Mode {
	return m.mode
}

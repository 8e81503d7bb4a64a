package modes

import (
	"os"
	"testing"

	"github.com/reusee/dscope"
)

const modeEnv = "TAPEOPT_MODE"

type ModuleForProduction struct {
	dscope.Module
}

func ForProduction() ModuleForProduction {
	return ModuleForProduction{}
}

func (ModuleForProduction) T() *testing.T {
	return nil
}

// Mode is ModeProduction unless overridden by the TAPEOPT_MODE variable.
func (ModuleForProduction) Mode() Mode {
	if mode, err := Parse(os.Getenv(modeEnv)); err == nil {
		return mode
	}
	return ModeProduction
}

package machines

import (
	"io"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/tapeopt/debugs"
	"github.com/reusee/tapeopt/logs"
	"github.com/reusee/tapeopt/sources"
	"github.com/reusee/tapeopt/tapeconfigs"
)

type Module struct {
	dscope.Module
	Logs        logs.Module
	TapeConfigs tapeconfigs.Module
	Sources     sources.Module
	Debugs      debugs.Module
}

// DumpOutput receives the optimized program when DumpIR is set.
type DumpOutput io.Writer

func (Module) DumpOutput() DumpOutput {
	return os.Stderr
}

func (Module) Machine(
	logger logs.Logger,
	newSpan logs.NewSpan,
	tap debugs.Tap,
	size tapeconfigs.TapeSize,
	origin tapeconfigs.TapeOrigin,
	force tapeconfigs.Force,
	dumpIR tapeconfigs.DumpIR,
	dumpOutput DumpOutput,
) *Machine {
	return &Machine{
		logger:     logger,
		newSpan:    newSpan,
		tap:        tap,
		size:       int(size),
		origin:     int(origin),
		force:      bool(force),
		dumpIR:     bool(dumpIR),
		dumpOutput: dumpOutput,
	}
}

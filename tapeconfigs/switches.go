package tapeconfigs

import (
	"github.com/reusee/tapeopt/cmds"
	"github.com/reusee/tapeopt/configs"
)

// Force runs programs that fail the bracket check.
type Force bool

var forceFlag = cmds.Switch("-force", "run programs with unbalanced brackets")

func (Module) Force(
	loader configs.Loader,
) Force {
	return Force(*forceFlag || configs.First[bool](loader, "force"))
}

// DumpIR prints the optimized program before running it.
type DumpIR bool

var dumpFlag = cmds.Switch("-dump", "print the optimized program")

func (Module) DumpIR(
	loader configs.Loader,
) DumpIR {
	return DumpIR(*dumpFlag || configs.First[bool](loader, "dump_ir"))
}

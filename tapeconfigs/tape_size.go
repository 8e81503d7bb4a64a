package tapeconfigs

import (
	"github.com/reusee/tapeopt/cmds"
	"github.com/reusee/tapeopt/configs"
	"github.com/reusee/tapeopt/vars"
)

// TapeSize is the number of cells allocated up front. The tape grows past
// it on demand.
type TapeSize int

const DefaultTapeSize = 0x1000

var tapeSizeFlag = cmds.Var[int]("-tape-size", "initial tape cells")

func (Module) TapeSize(
	loader configs.Loader,
) TapeSize {
	return TapeSize(max(0, vars.FirstNonZero(
		*tapeSizeFlag,
		configs.First[int](loader, "tape_size"),
		DefaultTapeSize,
	)))
}

package tapeconfigs

import (
	"github.com/reusee/tapeopt/cmds"
	"github.com/reusee/tapeopt/configs"
	"github.com/reusee/tapeopt/logs"
)

// TapeOrigin is the physical index of the initial cursor. Cells to its left
// are available to programs that move left first.
type TapeOrigin int

const DefaultTapeOrigin = 0x400

var tapeOriginFlag = cmds.Var[*int]("-tape-origin", "initial cursor index")

func (Module) TapeOrigin(
	loader configs.Loader,
	size TapeSize,
	logger logs.Logger,
) TapeOrigin {
	origin := DefaultTapeOrigin
	if *tapeOriginFlag != nil {
		origin = **tapeOriginFlag
	} else if n, ok, err := configs.Lookup[int](loader, "tape_origin"); err != nil {
		panic(err)
	} else if ok {
		origin = n
	}

	if origin < 0 || origin >= max(int(size), 1) {
		clamped := min(max(origin, 0), max(int(size)-1, 0))
		logger.Warn("tape origin out of range",
			"origin", origin,
			"size", size,
			"using", clamped,
		)
		origin = clamped
	}

	return TapeOrigin(origin)
}

package nets

import (
	"github.com/reusee/dscope"
	"github.com/reusee/tapeopt/logs"
)

// Module needs a configs.Loader in scope, usually from tapeconfigs.
type Module struct {
	dscope.Module
	Logs logs.Module
}

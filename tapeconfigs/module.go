package tapeconfigs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/tapeopt/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}

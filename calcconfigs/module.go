package calcconfigs

import (
	"github.com/reusee/calc/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}

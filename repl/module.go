package repl

import (
	"github.com/reusee/calc/calc"
	"github.com/reusee/calc/calcconfigs"
	"github.com/reusee/calc/debugs"
	"github.com/reusee/calc/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Calc    calc.Module
	Configs calcconfigs.Module
	Logs    logs.Module
	Debugs  debugs.Module
}

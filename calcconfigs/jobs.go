package calcconfigs

import (
	"github.com/reusee/calc/cmds"
	"github.com/reusee/calc/configs"
	"github.com/reusee/calc/vars"
)

// Jobs is the number of lines evaluated in parallel. 1 means line by line.
type Jobs int

var jobsFlag = cmds.Var[int]("-jobs")

func (Module) Jobs(
	loader configs.Loader,
) Jobs {
	n := vars.FirstNonZero(
		*jobsFlag,
		configs.First[int](loader, "jobs"),
		1,
	)
	return Jobs(max(n, 1))
}

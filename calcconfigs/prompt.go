package calcconfigs

import (
	"github.com/reusee/calc/configs"
	"github.com/reusee/calc/vars"
)

// Prompt is printed before each line read from an interactive terminal.
type Prompt string

func (Module) Prompt(
	loader configs.Loader,
) Prompt {
	return Prompt(vars.FirstNonZero(
		configs.First[string](loader, "prompt"),
		"> ",
	))
}

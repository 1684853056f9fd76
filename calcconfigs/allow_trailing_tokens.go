package calcconfigs

import (
	"github.com/reusee/calc/cmds"
	"github.com/reusee/calc/configs"
)

// AllowTrailingTokens makes the calculator ignore tokens after a complete expression.
type AllowTrailingTokens bool

var allowTrailingFlag = cmds.Switch("-allow-trailing")

func (Module) AllowTrailingTokens(
	loader configs.Loader,
) AllowTrailingTokens {
	if *allowTrailingFlag {
		return true
	}
	return AllowTrailingTokens(configs.First[bool](loader, "allow_trailing_tokens"))
}

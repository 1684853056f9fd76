package calcconfigs

import (
	"github.com/reusee/calc/configs"
)

// LogLevel is the configured default log level; command line flags override it.
type LogLevel string

func (Module) LogLevel(
	loader configs.Loader,
) LogLevel {
	return LogLevel(configs.First[string](loader, "log_level"))
}

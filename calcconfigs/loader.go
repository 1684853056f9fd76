package calcconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/calc/configs"
	"github.com/reusee/calc/logs"
)

//go:embed schema.cue
var schema string

var filenames = []string{
	"calc.cue",
	".calc.cue",
}

// ConfigsLoader loads config files from the working directory, the user config dir and /etc,
// in that order of precedence.
func (Module) ConfigsLoader(
	logger logs.Logger,
) configs.Loader {

	var paths []string
	defer func() {
		if len(paths) > 0 {
			logger.Info("config file",
				"paths", paths,
			)
		}
	}()

	var dirs []string
	if workingDir, err := os.Getwd(); err == nil {
		dirs = append(dirs, workingDir)
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, configDir)
	}
	dirs = append(dirs, "/etc")

	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}

	return NewLoader(paths...)
}

// NewLoader returns a loader for paths validated against the calculator schema.
func NewLoader(paths ...string) configs.Loader {
	return configs.NewLoader(paths, schema)
}

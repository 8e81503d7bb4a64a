package tapeconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/tapeopt/cmds"
	"github.com/reusee/tapeopt/configs"
	"github.com/reusee/tapeopt/logs"
)

//go:embed schema.cue
var schema string

var configFiles = cmds.Collect[string]("-config", "load a config file before the default ones")

var filenames = []string{
	"tapeopt.cue",
	".tapeopt.cue",
}

// ConfigsLoader looks for config files given by -config, then in the working
// directory, the user config directory and /etc, in that precedence.
func (Module) ConfigsLoader(
	logger logs.Logger,
) configs.Loader {

	paths := append([]string(nil), *configFiles...)
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

	paths = append(paths, findFiles(dirs)...)

	return configs.NewLoader(paths, schema)
}

func findFiles(dirs []string) (paths []string) {
	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				paths = append(paths, path)
			}
		}
	}
	return
}

package configure

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/apex/log"
	"github.com/mitchellh/mapstructure"

	"github.com/tpexpress/create-tpexpress/cli/config"
	"github.com/tpexpress/create-tpexpress/cli/util"
)

const (
	// ConfigName is the configuration file name searched for.
	ConfigName = "create-tpexpress.yaml"

	defaultProjectName    = "my-app"
	defaultPackageManager = "npm"
	defaultNodeCommand    = "node"
	defaultNodeMinVersion = "22"
)

// GetDefaultCliOpts returns default options.
func GetDefaultCliOpts() *config.CliOpts {
	return &config.CliOpts{
		DefaultName:    defaultProjectName,
		PackageManager: defaultPackageManager,
		Node: &config.NodeOpts{
			Command:    defaultNodeCommand,
			MinVersion: defaultNodeMinVersion,
		},
	}
}

func decodeConfig(input map[string]any, cfg *config.CliOpts) error {
	decoderConfig := mapstructure.DecoderConfig{
		Result:           cfg,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
	}
	decoder, err := mapstructure.NewDecoder(&decoderConfig)
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}

// fillDefaults restores defaults for options left empty by the config file.
func fillDefaults(cfg *config.CliOpts) {
	defaults := GetDefaultCliOpts()
	if cfg.DefaultName == "" {
		cfg.DefaultName = defaults.DefaultName
	}
	if cfg.PackageManager == "" {
		cfg.PackageManager = defaults.PackageManager
	}
	if cfg.Node == nil {
		cfg.Node = defaults.Node
		return
	}
	if cfg.Node.Command == "" {
		cfg.Node.Command = defaults.Node.Command
	}
	if cfg.Node.MinVersion == "" {
		cfg.Node.MinVersion = defaults.Node.MinVersion
	}
}

// GetCliOpts returns options from the config file located at configurePath.
// If configurePath is empty, the config is searched from the working directory
// up to the root. Defaults are returned if there is no config.
func GetCliOpts(configurePath string) (*config.CliOpts, string, error) {
	cfg := GetDefaultCliOpts()

	configPath := configurePath
	if configPath == "" {
		var err error
		if configPath, err = getConfigPath(ConfigName); err != nil {
			return nil, "", err
		}
		if configPath == "" {
			return cfg, "", nil
		}
	} else {
		var err error
		if configPath, err = util.GetYamlFileName(configPath, true); err != nil {
			return nil, "", fmt.Errorf("failed to get access to configuration file: %s", err)
		}
	}

	configPath, err := filepath.Abs(configPath)
	if err != nil {
		return nil, "", fmt.Errorf("cannot determine config file path: %s", err)
	}
	log.Debugf("Using configuration file %s", configPath)

	rawConfigOpts, err := util.ParseYAML(configPath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to parse create-tpexpress configuration: %s", err)
	}
	if err := decodeConfig(rawConfigOpts, cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse create-tpexpress configuration: %s", err)
	}
	fillDefaults(cfg)

	if cfg.TemplatesDir != "" && !filepath.IsAbs(cfg.TemplatesDir) {
		cfg.TemplatesDir = filepath.Join(filepath.Dir(configPath), cfg.TemplatesDir)
	}

	return cfg, configPath, nil
}

// getConfigPath looks for the configuration file, looking through all
// directories from the current one to the root.
func getConfigPath(configName string) (string, error) {
	curDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to detect current directory: %s", err)
	}

	for {
		configPath, err := util.GetYamlFileName(filepath.Join(curDir, configName), true)
		if err == nil {
			return configPath, nil
		} else if !os.IsNotExist(err) {
			return "", err
		}

		parent := filepath.Dir(curDir)
		if parent == curDir {
			return "", nil
		}
		curDir = parent
	}
}

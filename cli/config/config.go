package config

// CliOpts stores create-tpexpress configuration.
// Filled in when parsing the create-tpexpress.yaml configuration file.
//
// create-tpexpress.yaml file format:
//
//	templates_dir: path
//	default_name: name
//	package_manager: npm
//	node:
//	  command: node
//	  min_version: "22"
type CliOpts struct {
	// TemplatesDir is a path to a template root on disk. The embedded
	// templates are used if it is empty.
	TemplatesDir string `mapstructure:"templates_dir" yaml:"templates_dir"`
	// DefaultName is the project name used when the user enters nothing.
	DefaultName string `mapstructure:"default_name" yaml:"default_name"`
	// PackageManager is the program used to install dependencies.
	PackageManager string `mapstructure:"package_manager" yaml:"package_manager"`
	// Node contains JavaScript runtime options.
	Node *NodeOpts `mapstructure:"node" yaml:"node"`
}

// NodeOpts is used to store Node.js runtime options.
type NodeOpts struct {
	// Command is the runtime executable.
	Command string `mapstructure:"command" yaml:"command"`
	// MinVersion is the minimal supported runtime version.
	MinVersion string `mapstructure:"min_version" yaml:"min_version"`
}

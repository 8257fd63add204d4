package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tpexpress/create-tpexpress/cli/cmdcontext"
	"github.com/tpexpress/create-tpexpress/cli/config"
	"github.com/tpexpress/create-tpexpress/cli/configure"
)

var (
	cmdCtx  cmdcontext.CmdCtx
	cliOpts *config.CliOpts
	rootCmd *cobra.Command
)

// NewCmdRoot creates a new root command. The root command creates a project.
func NewCmdRoot() *cobra.Command {
	rootCmd := NewCreateCmd()

	rootCmd.PersistentFlags().StringVarP(&cmdCtx.Cli.ConfigPath, "cfg", "c",
		"", "Path to configuration file")
	rootCmd.PersistentFlags().BoolVarP(&cmdCtx.Cli.Verbose, "verbose", "V",
		false, "Show debug output")
	rootCmd.PersistentFlags().BoolVar(&cmdCtx.Cli.NoColor, "no-color",
		false, "Disable colored output")

	rootCmd.AddCommand(
		NewVersionCmd(),
		NewCompletionCmd(),
		NewListCmd(),
		NewPrepareCmd(),
	)

	rootCmd.InitDefaultHelpCmd()

	log.SetHandler(cli.Default)

	return rootCmd
}

// Execute root command. Interrupt and termination signals cancel the
// command context.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Fatalf("%s", err)
	}
}

// configureLogging sets log level and colors from the global flags.
func configureLogging(cliCtx *cmdcontext.CliCtx) {
	if cliCtx.Verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
	if cliCtx.NoColor || os.Getenv("NO_COLOR") != "" {
		color.NoColor = true
	}
}

// InitRoot initializes global flags and configures CLI.
func InitRoot() {
	rootCmd = NewCmdRoot()
	rootCmd.ParseFlags(os.Args)

	configureLogging(&cmdCtx.Cli)

	var err error
	cliOpts, _, err = configure.GetCliOpts(cmdCtx.Cli.ConfigPath)
	if err != nil {
		log.Fatalf("Failed to get create-tpexpress configuration: %s", err)
	}
}

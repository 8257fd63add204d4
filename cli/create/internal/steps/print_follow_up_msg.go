package steps

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	create_ctx "github.com/tpexpress/create-tpexpress/cli/create/context"
	"github.com/tpexpress/create-tpexpress/cli/util"
)

// packageScripts are the scripts shipped with every template.
var packageScripts = []struct {
	name        string
	description string
}{
	{"dev", "Development with hot reload"},
	{"build", "Production build"},
	{"start", "Run production server"},
	{"lint", "Check code style"},
	{"format", "Format code"},
	{"check", "Run all checks"},
}

// PrintFollowUpMessage prints the success message and next steps.
type PrintFollowUpMessage struct {
	// Writer is used to write follow-up message.
	Writer io.Writer
}

// Run prints the project location, commands to start with and available
// package scripts.
func (step PrintFollowUpMessage) Run(ctx context.Context, createCtx *create_ctx.CreateCtx,
	scaffoldCtx *ScaffoldCtx,
) error {
	w := step.Writer
	green := color.New(color.FgGreen).SprintFunc()
	blue := color.New(color.FgBlue).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	magenta := color.New(color.FgMagenta).SprintFunc()
	faint := color.New(color.Faint).SprintFunc()

	location := scaffoldCtx.ProjectName
	if scaffoldCtx.IsCurrentDir {
		location = "Current directory"
	}
	run := func(script string) string {
		return createCtx.PackageManager + " run " + script
	}
	// Padding is applied before coloring, escape sequences have no width.
	column := func(s string) string {
		return fmt.Sprintf("%-18s", s)
	}

	fmt.Fprintf(w, "\n%s\n\n", green(util.Bold("🎉 Project created successfully!")))
	fmt.Fprintf(w, "%s %s\n\n", blue("📁 Location:"), util.Bold(location))

	fmt.Fprintln(w, cyan("📋 Next steps:"))
	if !scaffoldCtx.IsCurrentDir {
		fmt.Fprintf(w, "  %s\n", yellow("cd "+scaffoldCtx.ProjectName))
	}
	if !scaffoldCtx.DependenciesInstalled {
		fmt.Fprintf(w, "  %s\n", yellow(createCtx.PackageManager+" install"))
	}
	fmt.Fprintf(w, "  %s %s\n", yellow(column(run("dev"))), faint("# Start development server"))
	fmt.Fprintf(w, "  %s %s\n", yellow(column(run("build"))), faint("# Build for production"))
	fmt.Fprintf(w, "  %s %s\n\n", yellow(column(run("start"))), faint("# Run production build"))

	fmt.Fprintln(w, cyan("📚 Available Scripts:"))
	for _, script := range packageScripts {
		fmt.Fprintf(w, "  %s %s\n", green(column(run(script.name))), faint(script.description))
	}
	fmt.Fprintf(w, "\n%s\n", magenta("🚀 Happy coding!"))
	return nil
}

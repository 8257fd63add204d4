package steps

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	create_ctx "github.com/tpexpress/create-tpexpress/cli/create/context"
)

const banner = `
╭─────────────────────────────────────────────────────╮
│                 CREATE-TPEXPRESS 🚀                 │
│      TypeScript + Node.js + Express.js Scaffolder   │
╰─────────────────────────────────────────────────────╯
`

// PrintBanner prints the tool banner.
type PrintBanner struct {
	// Writer is used to write the banner.
	Writer io.Writer
}

// Run prints the banner.
func (step PrintBanner) Run(ctx context.Context, createCtx *create_ctx.CreateCtx,
	scaffoldCtx *ScaffoldCtx,
) error {
	fmt.Fprintln(step.Writer, color.New(color.FgCyan, color.Bold).Sprint(banner))
	return nil
}

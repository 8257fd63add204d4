// Package steps provides a set of handlers for create command chain of responsibility.
package steps

import (
	"context"

	create_ctx "github.com/tpexpress/create-tpexpress/cli/create/context"
)

// Step is an interface for single step in create chain.
type Step interface {
	Run(ctx context.Context, createCtx *create_ctx.CreateCtx, scaffoldCtx *ScaffoldCtx) error
}

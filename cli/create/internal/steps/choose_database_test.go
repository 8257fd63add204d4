package steps

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	create_ctx "github.com/tpexpress/create-tpexpress/cli/create/context"
	"github.com/tpexpress/create-tpexpress/cli/util"
)

func TestChooseDatabaseFromArgs(t *testing.T) {
	chooser := &fakeChooser{id: "mongoose"}
	createCtx := create_ctx.CreateCtx{Database: "postgres", Interactive: true}
	var scaffoldCtx ScaffoldCtx
	require.NoError(t, ChooseDatabase{Chooser: chooser}.Run(context.Background(),
		&createCtx, &scaffoldCtx))
	assert.Equal(t, "postgres", scaffoldCtx.Database.ID)
	assert.Zero(t, chooser.calls)
}

func TestChooseDatabaseUnsupported(t *testing.T) {
	createCtx := create_ctx.CreateCtx{Database: "oracle"}
	var scaffoldCtx ScaffoldCtx
	err := ChooseDatabase{}.Run(context.Background(), &createCtx, &scaffoldCtx)
	require.ErrorIs(t, err, util.ErrValidation)
	assert.Contains(t, err.Error(), `unsupported database "oracle"`)
	assert.Empty(t, scaffoldCtx.Database.ID)
}

func TestChooseDatabaseMenu(t *testing.T) {
	chooser := &fakeChooser{id: "prisma"}
	createCtx := create_ctx.CreateCtx{Interactive: true}
	var scaffoldCtx ScaffoldCtx
	require.NoError(t, ChooseDatabase{Chooser: chooser}.Run(context.Background(),
		&createCtx, &scaffoldCtx))
	assert.Equal(t, "prisma", scaffoldCtx.Database.ID)
	assert.Equal(t, 1, chooser.calls)
}

func TestChooseDatabaseMenuCancelled(t *testing.T) {
	chooser := &fakeChooser{err: fmt.Errorf("selection cancelled: %w", util.ErrCmdAbort)}
	createCtx := create_ctx.CreateCtx{Interactive: true}
	err := ChooseDatabase{Chooser: chooser}.Run(context.Background(), &createCtx,
		&ScaffoldCtx{})
	assert.ErrorIs(t, err, util.ErrCmdAbort)
}

func TestChooseDatabaseNonInteractive(t *testing.T) {
	chooser := &fakeChooser{id: "prisma"}
	createCtx := create_ctx.CreateCtx{}
	err := ChooseDatabase{Chooser: chooser}.Run(context.Background(), &createCtx,
		&ScaffoldCtx{})
	assert.ErrorIs(t, err, util.ErrValidation)
	assert.Zero(t, chooser.calls)
}

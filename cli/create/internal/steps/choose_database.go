package steps

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/apex/log"

	create_ctx "github.com/tpexpress/create-tpexpress/cli/create/context"
	"github.com/tpexpress/create-tpexpress/cli/database"
	"github.com/tpexpress/create-tpexpress/cli/selector"
	"github.com/tpexpress/create-tpexpress/cli/terminal"
	"github.com/tpexpress/create-tpexpress/cli/util"
)

// DatabaseChooser asks the user to pick one of the databases.
type DatabaseChooser interface {
	ChooseDatabase(ctx context.Context, dbs []database.Database) (database.Database, error)
}

// menuChooser shows an arrow-key menu in the terminal.
type menuChooser struct {
	in  *os.File
	out io.Writer
}

// NewMenuChooser creates a database chooser reading keys from in.
func NewMenuChooser(in *os.File, out io.Writer) DatabaseChooser {
	return menuChooser{in: in, out: out}
}

// ChooseDatabase shows the database menu and waits for the choice.
func (c menuChooser) ChooseDatabase(ctx context.Context,
	dbs []database.Database,
) (database.Database, error) {
	options := make([]selector.Option, 0, len(dbs))
	for _, db := range dbs {
		options = append(options, selector.Option{
			ID:          db.ID,
			Label:       db.Label,
			Description: db.Description,
			Style:       selector.ParseStyle(db.Color),
		})
	}

	session, err := terminal.Start(c.in, c.out)
	if err != nil {
		return database.Database{}, err
	}

	menu := selector.Menu{
		Title:   "Select a database:",
		Hint:    "(Use arrow keys)",
		Options: options,
	}
	option, err := menu.Run(ctx, session, terminal.NewLineWriter(c.out))
	if err != nil {
		return database.Database{}, err
	}
	return database.Lookup(option.ID)
}

// ChooseDatabase determines the project database.
type ChooseDatabase struct {
	Chooser DatabaseChooser
}

// Run takes the database from the command line or shows the selection menu.
func (step ChooseDatabase) Run(ctx context.Context, createCtx *create_ctx.CreateCtx,
	scaffoldCtx *ScaffoldCtx,
) error {
	if createCtx.Database != "" {
		db, err := database.Lookup(createCtx.Database)
		if err != nil {
			return err
		}
		scaffoldCtx.Database = db
		return nil
	}

	if !createCtx.Interactive || step.Chooser == nil {
		return fmt.Errorf("%w: database is not specified, use --database with one of: %v",
			util.ErrValidation, database.IDs())
	}

	db, err := step.Chooser.ChooseDatabase(ctx, database.Supported())
	if err != nil {
		return err
	}
	log.Debugf("Database selected: %s", db.ID)
	scaffoldCtx.Database = db
	return nil
}

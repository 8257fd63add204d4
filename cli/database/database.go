// Package database describes database backends a project can be generated for.
package database

import (
	"fmt"
	"strings"

	"github.com/tpexpress/create-tpexpress/cli/util"
)

// Database is a supported database backend. ID is also the name of the overlay
// template directory.
type Database struct {
	// ID is a database identifier used on the command line and as the overlay
	// directory name.
	ID string
	// Label is a human readable name shown in the selection menu.
	Label string
	// Description is a short hint shown next to the label.
	Description string
	// Color is a color name used to highlight the database in the menu.
	Color string
}

var supported = []Database{
	{
		ID:          "mongoose",
		Label:       "MongoDB with Mongoose",
		Description: "(NoSQL database with elegant ODM)",
		Color:       "green",
	},
	{
		ID:          "drizzle",
		Label:       "Drizzle with PostgreSQL",
		Description: "(Modern TypeScript ORM)",
		Color:       "blue",
	},
	{
		ID:          "prisma",
		Label:       "Prisma with PostgreSQL",
		Description: "(Auto-generated type-safe client)",
		Color:       "magenta",
	},
	{
		ID:          "postgres",
		Label:       "Plain PostgreSQL",
		Description: "(Raw SQL with pg driver)",
		Color:       "blue",
	},
}

// Supported returns supported databases in display order.
func Supported() []Database {
	dbs := make([]Database, len(supported))
	copy(dbs, supported)
	return dbs
}

// IDs returns identifiers of all supported databases.
func IDs() []string {
	ids := make([]string, 0, len(supported))
	for _, db := range supported {
		ids = append(ids, db.ID)
	}
	return ids
}

// Lookup finds a database by its identifier.
func Lookup(id string) (Database, error) {
	for _, db := range supported {
		if db.ID == id {
			return db, nil
		}
	}
	return Database{}, fmt.Errorf("%w: unsupported database %q, supported: %s",
		util.ErrValidation, id, strings.Join(IDs(), ", "))
}

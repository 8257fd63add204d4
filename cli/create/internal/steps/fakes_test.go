package steps

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tpexpress/create-tpexpress/cli/database"
)

type fakePrompter struct {
	name      string
	confirm   bool
	err       error
	asked     []string
	questions []string
}

func (p *fakePrompter) AskProjectName(_ context.Context, defaultName string) (string, error) {
	p.asked = append(p.asked, defaultName)
	return p.name, p.err
}

func (p *fakePrompter) Confirm(_ context.Context, question string) (bool, error) {
	p.questions = append(p.questions, question)
	return p.confirm, p.err
}

type fakeChooser struct {
	id    string
	err   error
	calls int
}

func (c *fakeChooser) ChooseDatabase(_ context.Context,
	dbs []database.Database,
) (database.Database, error) {
	c.calls++
	if c.err != nil {
		return database.Database{}, c.err
	}
	return database.Lookup(c.id)
}

func assertNoCalls(t *testing.T, p *fakePrompter) {
	t.Helper()
	assert.Empty(t, p.asked)
	assert.Empty(t, p.questions)
}

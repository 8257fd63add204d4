package steps

import (
	"context"
	"errors"
	"testing"

	goVersion "github.com/hashicorp/go-version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	create_ctx "github.com/tpexpress/create-tpexpress/cli/create/context"
	"github.com/tpexpress/create-tpexpress/cli/version"
)

func fixedVersion(ver string) func(string) (*goVersion.Version, error) {
	return func(string) (*goVersion.Version, error) {
		return goVersion.NewVersion(ver)
	}
}

func TestCheckRuntime(t *testing.T) {
	tests := []struct {
		name        string
		getVersion  func(string) (*goVersion.Version, error)
		skipInstall bool
		errIs       error
		errMsg      string
	}{
		{
			name:       "new enough",
			getVersion: fixedVersion("22.19.0"),
		},
		{
			name:       "too old",
			getVersion: fixedVersion("20.11.1"),
			errIs:      version.ErrRuntimeTooOld,
		},
		{
			name:        "too old without install",
			getVersion:  fixedVersion("20.11.1"),
			skipInstall: true,
		},
		{
			name: "not installed",
			getVersion: func(string) (*goVersion.Version, error) {
				return nil, errors.New("executable file not found")
			},
			errMsg: "node is required: executable file not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			createCtx := create_ctx.CreateCtx{
				NodeCommand:    "node",
				NodeMinVersion: "22",
				SkipInstall:    tt.skipInstall,
			}
			err := CheckRuntime{GetVersion: tt.getVersion}.Run(context.Background(),
				&createCtx, &ScaffoldCtx{})
			switch {
			case tt.errIs != nil:
				assert.ErrorIs(t, err, tt.errIs)
			case tt.errMsg != "":
				assert.EqualError(t, err, tt.errMsg)
			default:
				require.NoError(t, err)
			}
		})
	}
}

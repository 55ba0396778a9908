package list

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmeckel/tfsprops/internal/cmd/util"
	"github.com/tmeckel/tfsprops/internal/iostreams"
	"github.com/tmeckel/tfsprops/internal/mocks"
	"github.com/tmeckel/tfsprops/internal/properties"
	"go.uber.org/mock/gomock"
)

const collectionURL = "https://tfs.example.com/tfs/DefaultCollection"

type fixture struct {
	cmdCtx  *mocks.MockCmdContext
	factory *mocks.MockClientFactory
	store   *mocks.MockStore
	stdout  *bytes.Buffer
	stderr  *bytes.Buffer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	ios, _, stdout, stderr := iostreams.Test()
	f := &fixture{
		cmdCtx:  mocks.NewMockCmdContext(ctrl),
		factory: mocks.NewMockClientFactory(ctrl),
		store:   mocks.NewMockStore(ctrl),
		stdout:  stdout,
		stderr:  stderr,
	}
	f.cmdCtx.EXPECT().IOStreams().Return(ios, nil).AnyTimes()
	f.cmdCtx.EXPECT().Context().Return(context.Background()).AnyTimes()
	f.cmdCtx.EXPECT().ClientFactory().Return(f.factory).AnyTimes()
	return f
}

func (f *fixture) expectSession() {
	f.factory.EXPECT().Authenticate(gomock.Any(), collectionURL).Return("Alice", nil)
	f.factory.EXPECT().PropertyStore(gomock.Any(), collectionURL).Return(f.store, nil)
}

func (f *fixture) run(args ...string) error {
	cmd := NewCmd(f.cmdCtx)
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	return cmd.Execute()
}

func TestList(t *testing.T) {
	t.Run("prints properties in store order", func(t *testing.T) {
		f := newFixture(t)
		f.expectSession()
		f.store.EXPECT().GetProperties(gomock.Any(), "Fabrikam").Return(&properties.Set{
			State: "s",
			Properties: []properties.Property{
				{Name: "Owner", Value: "Alice"},
				{Name: "Color", Value: "Red"},
			},
		}, nil)

		err := f.run("-c", collectionURL, "-p", "Fabrikam")
		require.NoError(t, err)
		assert.Equal(t, "Owner = Alice\nColor = Red\n", f.stdout.String())
		assert.Equal(t, "Connecting to TFS '"+collectionURL+"'\n", f.stderr.String())
	})

	t.Run("empty set prints nothing", func(t *testing.T) {
		f := newFixture(t)
		f.expectSession()
		f.store.EXPECT().GetProperties(gomock.Any(), "Fabrikam").Return(&properties.Set{}, nil)

		require.NoError(t, f.run("--collection", collectionURL, "--project", "Fabrikam"))
		assert.Empty(t, f.stdout.String())
	})

	t.Run("json output", func(t *testing.T) {
		f := newFixture(t)
		f.expectSession()
		f.store.EXPECT().GetProperties(gomock.Any(), "Fabrikam").Return(&properties.Set{
			Properties: []properties.Property{{Name: "Owner", Value: "Alice"}},
		}, nil)

		require.NoError(t, f.run("-c", collectionURL, "-p", "Fabrikam", "--json"))
		assert.JSONEq(t, `[{"name":"Owner","value":"Alice"}]`, f.stdout.String())
	})

	t.Run("json output with field selection and jq", func(t *testing.T) {
		f := newFixture(t)
		f.expectSession()
		f.store.EXPECT().GetProperties(gomock.Any(), "Fabrikam").Return(&properties.Set{
			Properties: []properties.Property{
				{Name: "Owner", Value: "Alice"},
				{Name: "Color", Value: "Red"},
			},
		}, nil)

		require.NoError(t, f.run("-c", collectionURL, "-p", "Fabrikam", "--json=name", "--jq", ".[].name"))
		assert.Equal(t, "Owner\nColor\n", f.stdout.String())
	})

	t.Run("remote error aborts", func(t *testing.T) {
		f := newFixture(t)
		f.expectSession()
		boom := errors.New("TF200016: project not found")
		f.store.EXPECT().GetProperties(gomock.Any(), "Nope").Return(nil, boom)

		err := f.run("-c", collectionURL, "-p", "Nope")
		require.ErrorIs(t, err, boom)
		assert.Empty(t, f.stdout.String())
	})

	t.Run("authentication failure opens no store", func(t *testing.T) {
		f := newFixture(t)
		authErr := errors.New("401")
		f.factory.EXPECT().Authenticate(gomock.Any(), collectionURL).Return("", authErr)

		err := f.run("-c", collectionURL, "-p", "Fabrikam")
		require.ErrorIs(t, err, authErr)
	})

	t.Run("missing project flag", func(t *testing.T) {
		f := newFixture(t)

		err := f.run("-c", collectionURL)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `required flag(s) "project" not set`)
	})

	t.Run("invalid collection url", func(t *testing.T) {
		f := newFixture(t)

		err := f.run("-c", "tfs.example.com", "-p", "Fabrikam")
		var flagErr *util.ErrFlag
		require.ErrorAs(t, err, &flagErr)
	})

	t.Run("jq without json", func(t *testing.T) {
		f := newFixture(t)

		err := f.run("-c", collectionURL, "-p", "Fabrikam", "--jq", ".")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot use `--jq` without specifying `--json`")
	})
}

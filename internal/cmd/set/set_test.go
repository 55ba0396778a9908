package set

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmeckel/tfsprops/internal/iostreams"
	"github.com/tmeckel/tfsprops/internal/mocks"
	"github.com/tmeckel/tfsprops/internal/properties"
	"go.uber.org/mock/gomock"
)

const collectionURL = "http://tfs:8080/tfs/DefaultCollection"

func props(kv ...string) []properties.Property {
	res := []properties.Property{}
	for i := 0; i+1 < len(kv); i += 2 {
		res = append(res, properties.Property{Name: kv[i], Value: kv[i+1]})
	}
	return res
}

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

func (f *fixture) expectRead(current ...string) {
	f.factory.EXPECT().Authenticate(gomock.Any(), collectionURL).Return("Alice", nil)
	f.factory.EXPECT().PropertyStore(gomock.Any(), collectionURL).Return(f.store, nil)
	f.store.EXPECT().GetProperties(gomock.Any(), "Fabrikam").Return(&properties.Set{
		State:      "v1",
		Properties: props(current...),
	}, nil)
}

func (f *fixture) run(args ...string) error {
	cmd := NewCmd(f.cmdCtx)
	cmd.SetArgs(append([]string{"-c", collectionURL, "-p", "Fabrikam"}, args...))
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	return cmd.Execute()
}

func TestSet(t *testing.T) {
	t.Run("overwrites existing value", func(t *testing.T) {
		f := newFixture(t)
		f.expectRead("Color", "Red", "Owner", "Alice")
		f.store.EXPECT().SetProperties(gomock.Any(), "Fabrikam", "v1", props("Color", "Red", "Owner", "Bob")).Return(nil)

		require.NoError(t, f.run("-n", "Owner", "-v", "Bob"))
		assert.Equal(t, "\nSetting property 'Owner' to value 'Bob'\n", f.stdout.String())
		assert.NotContains(t, f.stderr.String(), "warning")
	})

	t.Run("force adds missing property", func(t *testing.T) {
		f := newFixture(t)
		f.expectRead("Color", "Red")
		f.store.EXPECT().SetProperties(gomock.Any(), "Fabrikam", "v1", props("Color", "Red", "Size", "L")).Return(nil)

		require.NoError(t, f.run("--name", "Size", "--value", "L", "--force"))
		assert.Contains(t, f.stdout.String(), "Property 'Size' was not found. Adding a new one with value 'L'")
	})

	t.Run("missing property without force is reported", func(t *testing.T) {
		f := newFixture(t)
		f.expectRead("Color", "Red", "Owner", "Alice")

		require.NoError(t, f.run("-n", "Size", "-v", "L"))
		assert.Contains(t, f.stdout.String(),
			"Property 'Size' was not found. Use the --force option in order to create it. Only the following properties exist: 'Color', 'Owner'\n")
		assert.NotContains(t, f.stderr.String(), "was not found")
	})

	t.Run("delete removes property", func(t *testing.T) {
		f := newFixture(t)
		f.expectRead("Color", "Red", "Owner", "Alice")
		f.store.EXPECT().SetProperties(gomock.Any(), "Fabrikam", "v1", props("Color", "Red")).Return(nil)

		require.NoError(t, f.run("-n", "Owner", "-v", "ignored", "-d"))
		assert.Equal(t, "\nDeleting property 'Owner'\n", f.stdout.String())
	})

	t.Run("delete and force on missing property adds it", func(t *testing.T) {
		f := newFixture(t)
		f.expectRead("A", "1")
		f.store.EXPECT().SetProperties(gomock.Any(), "Fabrikam", "v1", props("A", "1", "B", "2")).Return(nil)

		require.NoError(t, f.run("-n", "B", "-v", "2", "-d", "-f"))
	})

	t.Run("missing value writes empty string with warning", func(t *testing.T) {
		f := newFixture(t)
		f.expectRead("Owner", "Alice")
		f.store.EXPECT().SetProperties(gomock.Any(), "Fabrikam", "v1", props("Owner", "")).Return(nil)

		require.NoError(t, f.run("-n", "Owner"))
		assert.Contains(t, f.stderr.String(), "warning: no value given, property 'Owner' was set to an empty string")
	})

	t.Run("write error is returned", func(t *testing.T) {
		f := newFixture(t)
		f.expectRead("Owner", "Alice")
		boom := errors.New("conflict")
		f.store.EXPECT().SetProperties(gomock.Any(), "Fabrikam", "v1", gomock.Any()).Return(boom)

		err := f.run("-n", "Owner", "-v", "Bob")
		require.ErrorIs(t, err, boom)
		assert.NotContains(t, f.stdout.String(), "Setting property")
	})

	t.Run("name is required", func(t *testing.T) {
		f := newFixture(t)

		err := f.run("-v", "Bob")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `required flag(s) "name" not set`)
	})
}

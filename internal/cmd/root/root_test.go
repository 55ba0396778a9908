package root

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmeckel/tfsprops/internal/iostreams"
	"github.com/tmeckel/tfsprops/internal/mocks"
	"go.uber.org/mock/gomock"
)

func newRoot(t *testing.T) (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	ios, _, stdout, stderr := iostreams.Test()
	cmdCtx := mocks.NewMockCmdContext(ctrl)
	cmdCtx.EXPECT().IOStreams().Return(ios, nil).AnyTimes()

	cmd, err := NewCmdRoot(cmdCtx, "1.0.0", "")
	require.NoError(t, err)
	return cmd, stdout, stderr
}

func TestRoot_VerbsAreCaseInsensitive(t *testing.T) {
	for _, verb := range []string{"license", "License", "LICENSE"} {
		t.Run(verb, func(t *testing.T) {
			cmd, stdout, _ := newRoot(t)
			cmd.SetArgs([]string{verb})

			require.NoError(t, cmd.Execute())
			assert.Contains(t, stdout.String(), "MIT License")
		})
	}
}

func TestRoot_UnknownCommand(t *testing.T) {
	cmd, _, _ := newRoot(t)
	cmd.SetArgs([]string{"frobnicate"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown command "frobnicate" for "tfsprops"`)
}

func TestRoot_MissingRequiredFlag(t *testing.T) {
	cmd, _, _ := newRoot(t)
	cmd.SetArgs([]string{"SET", "-c", "https://tfs.example.com/tfs/DefaultCollection", "-p", "Fabrikam"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `required flag(s) "name" not set`)
}

func TestRoot_Version(t *testing.T) {
	cmd, stdout, _ := newRoot(t)
	cmd.SetArgs([]string{"--version"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "tfsprops version 1.0.0\nhttps://github.com/tmeckel/tfsprops/releases/tag/v1.0.0\n", stdout.String())
}

func TestRoot_HelpTopics(t *testing.T) {
	cmd, stdout, _ := newRoot(t)
	cmd.SetArgs([]string{"help", "exit-codes"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, stdout.String(), "authentication issue, the exit code will be 4")
}

func TestRoot_Help(t *testing.T) {
	cmd, stdout, _ := newRoot(t)
	cmd.SetArgs([]string{"--help"})

	require.NoError(t, cmd.Execute())
	out := stdout.String()
	assert.Contains(t, out, "PROPERTY COMMANDS")
	assert.Contains(t, out, "list:")
	assert.Contains(t, out, "set:")
	assert.Contains(t, out, "HELP TOPICS")
	assert.Contains(t, out, "environment:")
}

func TestDedent(t *testing.T) {
	assert.Equal(t, "a\n  b\nc", dedent("    a\n      b\n    c"))
}

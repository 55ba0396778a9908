package logout

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmeckel/tfsprops/internal/cmd/util"
	"github.com/tmeckel/tfsprops/internal/iostreams"
	"github.com/tmeckel/tfsprops/internal/mocks"
	"go.uber.org/mock/gomock"
)

const (
	collectionURL = "https://tfs.example.com/tfs/DefaultCollection/"
	collectionKey = "https://tfs.example.com/tfs/defaultcollection"
)

func TestLogout(t *testing.T) {
	var ios *iostreams.IOStreams
	var prompter *mocks.MockPrompter
	setup := func(t *testing.T) (*mocks.MockCmdContext, *mocks.MockAuthConfig, func() string) {
		ctrl := gomock.NewController(t)
		var stderr *bytes.Buffer
		ios, _, _, stderr = iostreams.Test()
		prompter = mocks.NewMockPrompter(ctrl)
		cmdCtx := mocks.NewMockCmdContext(ctrl)
		cmdCtx.EXPECT().Prompter().Return(prompter, nil).AnyTimes()
		cfg := mocks.NewMockConfig(ctrl)
		authCfg := mocks.NewMockAuthConfig(ctrl)
		cmdCtx.EXPECT().IOStreams().Return(ios, nil).AnyTimes()
		cmdCtx.EXPECT().Config().Return(cfg, nil).AnyTimes()
		cfg.EXPECT().Authentication().Return(authCfg).AnyTimes()
		return cmdCtx, authCfg, stderr.String
	}
	run := func(cmdCtx util.CmdContext, args ...string) error {
		cmd := NewCmd(cmdCtx)
		cmd.SetArgs(args)
		cmd.SetOut(io.Discard)
		cmd.SetErr(io.Discard)
		return cmd.Execute()
	}

	t.Run("removes stored credentials", func(t *testing.T) {
		cmdCtx, authCfg, stderr := setup(t)
		authCfg.EXPECT().GetCollections().Return([]string{"https://other", collectionKey})
		authCfg.EXPECT().Logout(collectionKey).Return(nil)

		require.NoError(t, run(cmdCtx, "-c", collectionURL))
		assert.Equal(t, "✓ Logged out of "+collectionURL+"\n", stderr())
	})

	t.Run("confirmed in a terminal", func(t *testing.T) {
		cmdCtx, authCfg, _ := setup(t)
		ios.SetStdinTTY(true)
		ios.SetStdoutTTY(true)
		authCfg.EXPECT().GetCollections().Return([]string{collectionKey})
		prompter.EXPECT().Confirm(gomock.Any(), true).Return(true, nil)
		authCfg.EXPECT().Logout(collectionKey).Return(nil)

		require.NoError(t, run(cmdCtx, "-c", collectionURL))
	})

	t.Run("declined in a terminal", func(t *testing.T) {
		cmdCtx, authCfg, _ := setup(t)
		ios.SetStdinTTY(true)
		ios.SetStdoutTTY(true)
		authCfg.EXPECT().GetCollections().Return([]string{collectionKey})
		prompter.EXPECT().Confirm(gomock.Any(), true).Return(false, nil)

		require.ErrorIs(t, run(cmdCtx, "-c", collectionURL), util.ErrCancel)
	})

	t.Run("not logged in", func(t *testing.T) {
		cmdCtx, authCfg, stderr := setup(t)
		authCfg.EXPECT().GetCollections().Return(nil)

		require.ErrorIs(t, run(cmdCtx, "-c", collectionURL), util.ErrSilent)
		assert.Contains(t, stderr(), "You are not logged in to")
	})

	t.Run("logout fails", func(t *testing.T) {
		cmdCtx, authCfg, _ := setup(t)
		boom := errors.New("keyring locked")
		authCfg.EXPECT().GetCollections().Return([]string{collectionKey})
		authCfg.EXPECT().Logout(collectionKey).Return(boom)

		err := run(cmdCtx, "-c", collectionURL)
		require.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "failed to remove credentials")
	})

	t.Run("invalid collection", func(t *testing.T) {
		cmdCtx, _, _ := setup(t)

		var flagErr *util.ErrFlag
		require.ErrorAs(t, run(cmdCtx, "-c", "not a url"), &flagErr)
	})
}

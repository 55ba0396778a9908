package license

import (
	"io"
	"strings"
	"testing"

	"github.com/mgutz/ansi"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmeckel/tfsprops/internal/iostreams"
	"github.com/tmeckel/tfsprops/internal/mocks"
	"go.uber.org/mock/gomock"
)

func TestLicense(t *testing.T) {
	ctrl := gomock.NewController(t)
	ios, _, stdout, stderr := iostreams.Test()
	cmdCtx := mocks.NewMockCmdContext(ctrl)
	cmdCtx.EXPECT().IOStreams().Return(ios, nil).AnyTimes()

	cmd := NewCmd(cmdCtx)
	cmd.SetArgs([]string{})
	cmd.SetOut(io.Discard)
	require.NoError(t, cmd.Execute())

	out := stdout.String()
	assert.Empty(t, stderr.String())
	for _, n := range notices {
		assert.Contains(t, out, n.intro)
	}
	assert.Contains(t, out, "MIT License")
	assert.Contains(t, out, "Apache License")
	assert.Contains(t, out, "BSD 3-Clause")
	assert.NotContains(t, out, "3-\n")
	intros := lo.Map(notices, func(n notice, _ int) string { return n.intro })
	for _, line := range strings.Split(out, "\n") {
		if lo.Contains(intros, line) {
			continue
		}
		assert.LessOrEqual(t, len(line), 80, "license line exceeds terminal width: %q", line)
	}
	assert.Greater(t, strings.Count(out, "\n"), 3*len(notices), "license text is wrapped")
}

func TestLicense_Colors(t *testing.T) {
	ctrl := gomock.NewController(t)
	ios, _, stdout, _ := iostreams.Test()
	ios.SetColorEnabled(true)
	cmdCtx := mocks.NewMockCmdContext(ctrl)
	cmdCtx.EXPECT().IOStreams().Return(ios, nil).AnyTimes()

	require.NoError(t, runLicense(cmdCtx))

	out := stdout.String()
	assert.Equal(t, len(notices), strings.Count(out, ansi.ColorCode("yellow")))
	assert.Equal(t, len(notices), strings.Count(out, ansi.ColorCode("black+h")))
	assert.Equal(t, 2*len(notices), strings.Count(out, ansi.Reset))
}

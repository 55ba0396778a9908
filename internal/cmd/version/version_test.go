package version

import (
	"io"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmeckel/tfsprops/internal/iostreams"
	"github.com/tmeckel/tfsprops/internal/mocks"
	"go.uber.org/mock/gomock"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name      string
		version   string
		buildDate string
		want      string
	}{
		{
			name:      "release with date",
			version:   "v1.2.3",
			buildDate: "2024-05-01",
			want:      "tfsprops version 1.2.3 (2024-05-01)\nhttps://github.com/tmeckel/tfsprops/releases/tag/v1.2.3\n",
		},
		{
			name:    "pre-release",
			version: "2.0.0-rc.1",
			want:    "tfsprops version 2.0.0-rc.1\nhttps://github.com/tmeckel/tfsprops/releases/tag/v2.0.0-rc.1\n",
		},
		{
			name:    "development build",
			version: "DEV",
			want:    "tfsprops version DEV\nhttps://github.com/tmeckel/tfsprops/releases/latest\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.version, tt.buildDate))
		})
	}
}

func TestVersionCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	ios, _, stdout, _ := iostreams.Test()
	cmdCtx := mocks.NewMockCmdContext(ctrl)
	cmdCtx.EXPECT().IOStreams().Return(ios, nil).AnyTimes()

	root := &cobra.Command{Use: "tfsprops"}
	Annotate(root, "1.0.0", "")
	root.AddCommand(NewCmd(cmdCtx))
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)

	root.SetArgs([]string{"version"})
	require.NoError(t, root.Execute())
	assert.Equal(t, "tfsprops version 1.0.0\nhttps://github.com/tmeckel/tfsprops/releases/tag/v1.0.0\n", stdout.String())
	assert.Equal(t, "tfsprops version 1.0.0\nhttps://github.com/tmeckel/tfsprops/releases/tag/v1.0.0", root.Version)
}

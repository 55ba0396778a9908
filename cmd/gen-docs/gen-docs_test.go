package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantErr  string
		markdown bool
		manPages bool
	}{
		{name: "both by default", args: []string{"--doc-path", "out"}, markdown: true, manPages: true},
		{name: "markdown only", args: []string{"--doc-path", "out", "--markdown"}, markdown: true},
		{name: "man pages only", args: []string{"--doc-path", "out", "--man-page"}, manPages: true},
		{name: "missing path", args: []string{"--markdown"}, wantErr: "--doc-path not set"},
		{name: "unknown flag", args: []string{"--website"}, wantErr: "unknown flag: --website"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := parseArgs(append([]string{"gen-docs"}, tt.args...), &bytes.Buffer{})
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "out", opts.dir)
			assert.Equal(t, tt.markdown, opts.markdown)
			assert.Equal(t, tt.manPages, opts.manPages)
		})
	}
}

func TestParseArgs_Help(t *testing.T) {
	stderr := &bytes.Buffer{}
	opts, err := parseArgs([]string{"gen-docs", "--help"}, stderr)
	require.NoError(t, err)
	assert.Nil(t, opts)
	assert.Contains(t, stderr.String(), "--doc-path")
}

func TestRun(t *testing.T) {
	t.Setenv("TFSPROPS_CONFIG_DIR", t.TempDir())
	dir := t.TempDir()

	require.NoError(t, run([]string{"gen-docs", "--doc-path", dir}, &bytes.Buffer{}))

	for _, name := range []string{"tfsprops.md", "tfsprops_list.md", "tfsprops_set.md", "tfsprops_auth_login.md", "tfsprops_help_exit-codes.md"} {
		assert.FileExists(t, filepath.Join(dir, "markdown", name))
	}
	for _, name := range []string{"tfsprops.1", "tfsprops-set.1", "tfsprops-help-environment.1"} {
		assert.FileExists(t, filepath.Join(dir, "man1", name))
	}

	set, err := os.ReadFile(filepath.Join(dir, "markdown", "tfsprops_set.md"))
	require.NoError(t, err)
	assert.Contains(t, string(set), "(required)")
	assert.Contains(t, string(set), "See [tfsprops help exit-codes](./tfsprops_help_exit-codes.md).")
}

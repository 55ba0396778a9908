package docs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noop(*cobra.Command, []string) error { return nil }

func helpTopic(name, short, long string) *cobra.Command {
	return &cobra.Command{
		Use:    name,
		Short:  short,
		Long:   long,
		Hidden: true,
		Annotations: map[string]string{
			"markdown:generate": "true",
			"markdown:basename": "tfsprops_help_" + name,
		},
	}
}

func testTree() *cobra.Command {
	root := &cobra.Command{Use: "tfsprops", Short: "Team project properties CLI"}
	list := &cobra.Command{
		Use:     "list",
		Short:   "List the properties of a team project",
		Example: "$ tfsprops list -c https://tfs/c -p P\n",
		Annotations: map[string]string{
			"help:json-fields": "value,name",
		},
		RunE: noop,
	}
	list.Flags().StringP("collection", "c", "", "URL of the team project collection")
	list.Flags().String("jq", "", "Filter JSON output using a jq `expression`")
	_ = list.MarkFlagRequired("collection")

	auth := &cobra.Command{Use: "auth", Short: "Manage credentials"}
	auth.AddCommand(&cobra.Command{Use: "status", Short: "Show authentication status", RunE: noop})

	version := &cobra.Command{Use: "version", Hidden: true, RunE: noop}

	root.AddCommand(list, auth, version,
		helpTopic("environment", "Environment variables", "TFSPROPS_TOKEN: a personal access token"),
		helpTopic("exit-codes", "Exit codes", "0 ok, 4 authentication"))
	return root
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestGenMarkdownTree(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "docs")
	require.NoError(t, GenMarkdownTree(testTree(), dir, func(s string) string { return "./" + s }))

	t.Run("index", func(t *testing.T) {
		md := readFile(t, filepath.Join(dir, "tfsprops.md"))
		assert.Contains(t, md, "# tfsprops\n\nTeam project properties CLI\n")
		assert.Contains(t, md, "* [tfsprops list](./tfsprops_list.md): List the properties of a team project")
		assert.Contains(t, md, "## Help topics\n\n* [tfsprops help environment](./tfsprops_help_environment.md): Environment variables")
		assert.NotContains(t, md, "## Usage")
		assert.NotContains(t, md, "version")
	})

	t.Run("command", func(t *testing.T) {
		md := readFile(t, filepath.Join(dir, "tfsprops_list.md"))
		assert.Contains(t, md, "## Usage\n\n```sh\ntfsprops list [flags]\n```")
		assert.Contains(t, md, "| `-c, --collection string` (required) |  | URL of the team project collection |")
		assert.Contains(t, md, "| `--jq expression` |  | Filter JSON output using a jq expression |")
		assert.Contains(t, md, "## JSON fields\n\nThe fields accepted by `--json`:\n\n* `name`\n* `value`")
		assert.Contains(t, md, "## Examples\n\n```sh\n$ tfsprops list -c https://tfs/c -p P\n```")
		assert.Contains(t, md, "## Exit codes\n\nSee [tfsprops help exit-codes](./tfsprops_help_exit-codes.md).")
		assert.Contains(t, md, "## See also\n\n* [tfsprops](./tfsprops.md)")
	})

	t.Run("nested command", func(t *testing.T) {
		md := readFile(t, filepath.Join(dir, "tfsprops_auth.md"))
		assert.Contains(t, md, "* [tfsprops auth status](./tfsprops_auth_status.md): Show authentication status")
		assert.FileExists(t, filepath.Join(dir, "tfsprops_auth_status.md"))
	})

	t.Run("help topic", func(t *testing.T) {
		md := readFile(t, filepath.Join(dir, "tfsprops_help_environment.md"))
		assert.Contains(t, md, "# tfsprops help environment\n\nTFSPROPS_TOKEN: a personal access token")
		assert.NotContains(t, md, "## Flags")
	})

	assert.NoFileExists(t, filepath.Join(dir, "tfsprops_version.md"))
}

func TestGenManTree(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, GenManTree(testTree(), dir, "1.0.0"))

	assert.Contains(t, readFile(t, filepath.Join(dir, "tfsprops-list.1")), "TFSPROPS")
	assert.FileExists(t, filepath.Join(dir, "tfsprops.1"))
	assert.NoFileExists(t, filepath.Join(dir, "tfsprops-environment.1"))

	topic := readFile(t, filepath.Join(dir, "tfsprops-help-environment.1"))
	assert.Contains(t, topic, ".TH")
	assert.Contains(t, topic, "personal access token")
	assert.FileExists(t, filepath.Join(dir, "tfsprops-help-exit-codes.1"))
}

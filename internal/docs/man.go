package docs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cpuguy83/go-md2man/v2/md2man"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// GenManTree writes a manual page for cmd and each of its visible
// subcommands into dir. Help topics, which cobra skips, get a page named
// <root>-help-<topic>.1.
func GenManTree(cmd *cobra.Command, dir, version string) error {
	header := &doc.GenManHeader{
		Title:   strings.ToUpper(cmd.Name()),
		Section: "1",
		Source:  strings.TrimSpace(cmd.Name() + " " + version),
		Manual:  "tfsprops manual",
	}
	if err := os.MkdirAll(dir, 0o755); err != nil { //nolint:gosec
		return err
	}
	if err := doc.GenManTree(cmd, header, dir); err != nil {
		return err
	}

	for _, c := range cmd.Commands() {
		if !isHelpTopic(c) {
			continue
		}
		if err := genTopicMan(c, header, dir); err != nil {
			return err
		}
	}
	return nil
}

func genTopicMan(c *cobra.Command, header *doc.GenManHeader, dir string) error {
	root := c.Root().Name()
	name := fmt.Sprintf("%s-help-%s", root, c.Name())

	var md strings.Builder
	fmt.Fprintf(&md, "%% %s(%s) %s\n%% %s\n%% %s\n\n", strings.ToUpper(name), header.Section, header.Source, "", header.Manual)
	fmt.Fprintf(&md, "# NAME\n\n%s help %s - %s\n\n", root, c.Name(), c.Short)
	fmt.Fprintf(&md, "# DESCRIPTION\n\n%s\n", c.Long)

	filename := filepath.Join(dir, name+"."+header.Section)
	return os.WriteFile(filename, md2man.Render([]byte(md.String())), 0o644) //nolint:gosec
}

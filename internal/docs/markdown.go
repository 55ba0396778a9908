// Package docs renders the tfsprops command tree as markdown and manual pages.
package docs

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"text/template"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/tmeckel/tfsprops/internal/cmd/root"
)

const exitCodesTopic = "exit-codes"

type link struct {
	Name   string
	Short  string
	Target string
}

type linkGroup struct {
	Title string
	Links []link
}

type flagRow struct {
	Flag     string
	Default  string
	Usage    string
	Required bool
}

// page is the view of one command or help topic.
type page struct {
	Title      string
	Summary    string
	Usage      string
	Groups     []linkGroup
	Topics     []link
	Flags      []flagRow
	Inherited  []flagRow
	JSONFields []string
	Example    string
	ExitCodes  *link
	Parent     *link
}

var pageTemplate = template.Must(template.New("page").Funcs(template.FuncMap{
	"fence": func() string { return "```" },
	"code":  func(s string) string { return "`" + s + "`" },
	"cell": func(s string) string {
		return strings.ReplaceAll(strings.ReplaceAll(s, "|", `\|`), "\n", " ")
	},
}).Parse(`# {{ .Title }}

{{ .Summary }}
{{- with .Usage }}

## Usage

{{ fence }}sh
{{ . }}
{{ fence }}
{{- end }}
{{- range .Groups }}

## {{ .Title }}
{{ range .Links }}
* [{{ .Name }}]({{ .Target }}){{ with .Short }}: {{ . }}{{ end }}
{{- end }}
{{- end }}
{{- with .Topics }}

## Help topics
{{ range . }}
* [{{ .Name }}]({{ .Target }}){{ with .Short }}: {{ . }}{{ end }}
{{- end }}
{{- end }}
{{- with .Flags }}

## Flags

| Flag | Default | Description |
| --- | --- | --- |
{{- range . }}
| {{ code .Flag }}{{ if .Required }} (required){{ end }} | {{ with .Default }}{{ code . }}{{ end }} | {{ cell .Usage }} |
{{- end }}
{{- end }}
{{- with .Inherited }}

## Global flags

| Flag | Default | Description |
| --- | --- | --- |
{{- range . }}
| {{ code .Flag }} | {{ with .Default }}{{ code . }}{{ end }} | {{ cell .Usage }} |
{{- end }}
{{- end }}
{{- with .JSONFields }}

## JSON fields

The fields accepted by {{ code "--json" }}:
{{ range . }}
* {{ code . }}
{{- end }}
{{- end }}
{{- with .Example }}

## Examples

{{ fence }}sh
{{ . }}
{{ fence }}
{{- end }}
{{- with .ExitCodes }}

## Exit codes

See [{{ .Name }}]({{ .Target }}).
{{- end }}
{{- with .Parent }}

## See also

* [{{ .Name }}]({{ .Target }})
{{- end }}
`))

// GenMarkdownTree writes one markdown page for cmd, for every available
// subcommand below it and for every help topic into dir. linkHandler turns a
// page file name into the link target used between pages.
func GenMarkdownTree(cmd *cobra.Command, dir string, linkHandler func(string) string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil { //nolint:gosec
		return err
	}
	return genMarkdownTree(cmd, dir, linkHandler)
}

func genMarkdownTree(cmd *cobra.Command, dir string, linkHandler func(string) string) error {
	for _, c := range cmd.Commands() {
		switch {
		case isHelpTopic(c):
			if err := writePage(dir, c, topicPage(c, linkHandler)); err != nil {
				return err
			}
		case c.IsAvailableCommand():
			if err := genMarkdownTree(c, dir, linkHandler); err != nil {
				return err
			}
		}
	}
	return writePage(dir, cmd, commandPage(cmd, linkHandler))
}

func writePage(dir string, cmd *cobra.Command, p page) error {
	f, err := os.Create(filepath.Join(dir, pageName(cmd))) //nolint:gosec
	if err != nil {
		return err
	}
	defer f.Close()
	return pageTemplate.Execute(f, p)
}

func commandPage(cmd *cobra.Command, linkHandler func(string) string) page {
	p := page{
		Title:   cmd.CommandPath(),
		Summary: strings.TrimSpace(lo.Ternary(cmd.Long != "", cmd.Long, cmd.Short)),
		Example: strings.TrimRight(cmd.Example, "\n"),
		Flags:   flagRows(cmd.NonInheritedFlags()),
	}
	if cmd.Runnable() {
		p.Usage = cmd.UseLine()
		p.Inherited = flagRows(cmd.InheritedFlags())
		if topic := findTopic(cmd.Root(), exitCodesTopic); topic != nil {
			exitCodes := commandLink(topic, linkHandler)
			p.ExitCodes = &exitCodes
		}
	}

	for _, g := range root.GroupedCommands(cmd) {
		p.Groups = append(p.Groups, linkGroup{
			Title: g.Title,
			Links: lo.Map(g.Commands, func(c *cobra.Command, _ int) link {
				return commandLink(c, linkHandler)
			}),
		})
	}
	if !cmd.HasParent() {
		p.Topics = lo.FilterMap(cmd.Commands(), func(c *cobra.Command, _ int) (link, bool) {
			return commandLink(c, linkHandler), isHelpTopic(c)
		})
	}

	if raw, ok := cmd.Annotations["help:json-fields"]; ok {
		p.JSONFields = strings.Split(raw, ",")
		slices.Sort(p.JSONFields)
	}
	if cmd.HasParent() {
		parent := commandLink(cmd.Parent(), linkHandler)
		p.Parent = &parent
	}
	return p
}

func topicPage(cmd *cobra.Command, linkHandler func(string) string) page {
	parent := commandLink(cmd.Root(), linkHandler)
	return page{
		Title:   cmd.Root().Name() + " help " + cmd.Name(),
		Summary: strings.TrimSpace(cmd.Long),
		Parent:  &parent,
	}
}

func commandLink(c *cobra.Command, linkHandler func(string) string) link {
	name := c.CommandPath()
	if isHelpTopic(c) {
		name = c.Root().Name() + " help " + c.Name()
	}
	return link{Name: name, Short: c.Short, Target: linkHandler(pageName(c))}
}

func flagRows(fs *pflag.FlagSet) []flagRow {
	var rows []flagRow
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Hidden || f.Name == "help" {
			return
		}
		varname, usage := pflag.UnquoteUsage(f)

		name := "--" + f.Name
		if f.Shorthand != "" {
			name = "-" + f.Shorthand + ", " + name
		}
		if varname != "" {
			name += " " + varname
		}

		_, required := f.Annotations[cobra.BashCompOneRequiredFlag]
		rows = append(rows, flagRow{
			Flag:     name,
			Default:  flagDefault(f),
			Usage:    usage,
			Required: required,
		})
	})
	return rows
}

// flagDefault hides zero values, which carry no information in the table.
func flagDefault(f *pflag.Flag) string {
	switch f.DefValue {
	case "", "false", "0", "[]", "0s":
		return ""
	}
	if f.Value.Type() == "string" {
		return `"` + f.DefValue + `"`
	}
	return f.DefValue
}

func isHelpTopic(c *cobra.Command) bool {
	_, ok := c.Annotations["markdown:generate"]
	return ok && !c.Runnable()
}

func findTopic(rootCmd *cobra.Command, name string) *cobra.Command {
	c, _ := lo.Find(rootCmd.Commands(), func(c *cobra.Command) bool {
		return isHelpTopic(c) && c.Name() == name
	})
	return c
}

func pageName(c *cobra.Command) string {
	if basename, ok := c.Annotations["markdown:basename"]; ok {
		return basename + ".md"
	}
	return strings.ReplaceAll(c.CommandPath(), " ", "_") + ".md"
}

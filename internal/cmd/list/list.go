package list

import (
	"fmt"
	"io"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
	"github.com/tmeckel/tfsprops/internal/cmd/util"
	"github.com/tmeckel/tfsprops/internal/iostreams"
	"github.com/tmeckel/tfsprops/internal/properties"
)

var propertyFields = []string{"name", "value"}

type listOptions struct {
	util.CollectionOptions
	exporter util.Exporter
}

func NewCmd(ctx util.CmdContext) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the properties of a team project",
		Long: heredoc.Doc(`
			List every property of a team project as "name = value", one per line,
			in the order the server returns them.
		`),
		Example: heredoc.Doc(`
			$ tfsprops list -c https://tfs.example.com/tfs/DefaultCollection -p Fabrikam

			# print the value of a single property
			$ tfsprops list -c https://tfs.example.com/tfs/DefaultCollection -p Fabrikam \
			    --json --jq '.[] | select(.name == "Owner") | .value'
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(ctx, opts)
		},
	}

	util.AddCollectionFlags(cmd, &opts.CollectionOptions)
	util.AddJSONFlags(cmd, &opts.exporter, propertyFields)

	return cmd
}

func runList(ctx util.CmdContext, opts *listOptions) error {
	return util.WithSession(ctx, &opts.CollectionOptions, func(s *util.Session) error {
		ios, err := ctx.IOStreams()
		if err != nil {
			return err
		}

		set, err := s.Store.GetProperties(ctx.Context(), s.Project)
		if err != nil {
			return fmt.Errorf("failed to get properties of project %q: %w", s.Project, err)
		}
		if set == nil {
			set = &properties.Set{}
		}

		if opts.exporter != nil {
			props := set.Properties
			if props == nil {
				props = []properties.Property{}
			}
			return opts.exporter.Write(ios, props)
		}

		if err := ios.StartPager(); err != nil {
			fmt.Fprintf(ios.ErrOut, "failed to start pager: %v\n", err)
		}
		defer ios.StopPager()

		for _, p := range set.Properties {
			err := ios.WithStyle(ios.Out, iostreams.StyleGreen, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "%s = %s", p.Name, p.Value)
				return err
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(ios.Out)
		}
		return nil
	})
}

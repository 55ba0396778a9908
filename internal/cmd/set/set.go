package set

import (
	"fmt"
	"io"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
	"github.com/tmeckel/tfsprops/internal/cmd/util"
	"github.com/tmeckel/tfsprops/internal/iostreams"
	"github.com/tmeckel/tfsprops/internal/properties"
)

type setOptions struct {
	util.CollectionOptions
	name     string
	value    string
	hasValue bool
	delete   bool
	force    bool
}

func NewCmd(ctx util.CmdContext) *cobra.Command {
	opts := &setOptions{}

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set or delete a property of a team project",
		Long: heredoc.Doc(`
			Set the value of a team project property, or delete it.

			The property name is matched exactly and case-sensitively. A property
			that does not exist is only created when --force is given; otherwise the
			names of all existing properties are reported and nothing is changed.
			--delete is ignored for a property that does not exist.
		`),
		Example: heredoc.Doc(`
			$ tfsprops set -c https://tfs.example.com/tfs/DefaultCollection -p Fabrikam -n Owner -v Bob
			$ tfsprops set -c https://tfs.example.com/tfs/DefaultCollection -p Fabrikam -n Size -v L --force
			$ tfsprops set -c https://tfs.example.com/tfs/DefaultCollection -p Fabrikam -n Owner --delete
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.hasValue = cmd.Flags().Changed("value")
			return runSet(ctx, opts)
		},
	}

	util.AddCollectionFlags(cmd, &opts.CollectionOptions)
	cmd.Flags().StringVarP(&opts.name, "name", "n", "", "Name of the property")
	cmd.Flags().StringVarP(&opts.value, "value", "v", "", "Value of the property")
	cmd.Flags().BoolVarP(&opts.delete, "delete", "d", false, "Delete the property")
	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "Create the property if it does not exist")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func runSet(ctx util.CmdContext, opts *setOptions) error {
	if opts.name == "" {
		return util.FlagErrorf("a property name is required")
	}

	return util.WithSession(ctx, &opts.CollectionOptions, func(s *util.Session) error {
		ios, err := ctx.IOStreams()
		if err != nil {
			return err
		}
		fmt.Fprintln(ios.Out)

		m := properties.Mutation{
			Name:   opts.name,
			Value:  opts.value,
			Force:  opts.force,
			Delete: opts.delete,
		}
		res, err := properties.Update(ctx.Context(), s.Store, s.Project, m)
		if err != nil {
			return err
		}

		switch res.Action {
		case properties.ActionNotFound:
			return ios.WithStyle(ios.Out, iostreams.StyleRed, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, properties.NotFoundMessage(opts.name, res.Existing))
				return err
			})
		case properties.ActionAdd:
			return status(ios, iostreams.StyleGreen, "Property '%s' was not found. Adding a new one with value '%s'", opts.name, opts.value)
		case properties.ActionDelete:
			return status(ios, iostreams.StyleYellow, "Deleting property '%s'", opts.name)
		default:
			if !opts.hasValue {
				cs := ios.ColorScheme()
				fmt.Fprintf(ios.ErrOut, "%s warning: no value given, property '%s' was set to an empty string\n", cs.WarningIcon(), opts.name)
			}
			return status(ios, iostreams.StyleGreen, "Setting property '%s' to value '%s'", opts.name, opts.value)
		}
	})
}

func status(ios *iostreams.IOStreams, style iostreams.Style, format string, args ...any) error {
	return ios.WithStyle(ios.Out, style, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, format+"\n", args...)
		return err
	})
}

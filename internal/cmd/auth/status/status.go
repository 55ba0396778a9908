package status

import (
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
	"github.com/tmeckel/tfsprops/internal/azdo"
	"github.com/tmeckel/tfsprops/internal/cmd/util"
	"github.com/tmeckel/tfsprops/internal/printer"
	"github.com/tmeckel/tfsprops/internal/text"
)

type statusOptions struct {
	collection string
}

func NewCmd(ctx util.CmdContext) *cobra.Command {
	opts := &statusOptions{}

	cmd := &cobra.Command{
		Use:   "status",
		Args:  cobra.NoArgs,
		Short: "View authentication status",
		Long: heredoc.Doc(`
			Verifies and displays information about your authentication state.

			This command connects to every team project collection tfsprops has
			credentials for and reports any issues.
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return statusRun(ctx, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.collection, "collection", "c", "", "Check only the given team project collection")

	return cmd
}

func statusRun(ctx util.CmdContext, opts *statusOptions) error {
	cfg, err := ctx.Config()
	if err != nil {
		return err
	}
	ios, err := ctx.IOStreams()
	if err != nil {
		return err
	}
	authCfg := cfg.Authentication()
	cs := ios.ColorScheme()

	var collections []string
	if opts.collection != "" {
		key, err := azdo.NormalizeCollection(opts.collection)
		if err != nil {
			return util.FlagErrorWrap(err)
		}
		collections = []string{key}
	} else {
		collections = authCfg.GetCollections()
	}
	if len(collections) == 0 {
		fmt.Fprintf(ios.ErrOut,
			"You are not logged into any team project collection. Run %s to authenticate.\n",
			cs.Bold("tfsprops auth login"))
		return util.ErrSilent
	}

	fmt.Fprintf(ios.ErrOut, "Checking %s\n", text.Pluralize(len(collections), "collection"))

	tp := printer.NewTablePrinter(ios.Out, ios.IsStdoutTTY(), ios.TerminalWidth())
	tp.AddColumns("Collection", "Token", "Status")

	failed := false
	for _, key := range collections {
		collectionURL := key
		if u, err := authCfg.GetURL(key); err == nil && u != "" {
			collectionURL = u
		}
		tp.AddField(collectionURL, printer.WithTruncate(nil), printer.WithColor(cs.Bold))

		_, source, err := authCfg.GetTokenWithSource(key)
		if err != nil {
			failed = true
			tp.AddField("-")
			tp.AddField("no token found", printer.WithColor(cs.Red))
			tp.EndRow()
			continue
		}
		tp.AddField(string(source))

		ios.StartProgressIndicator("Checking " + collectionURL)
		user, err := ctx.ClientFactory().Authenticate(ctx.Context(), collectionURL)
		ios.StopProgressIndicator()
		if err != nil {
			failed = true
			tp.AddField(err.Error(), printer.WithColor(cs.Red))
		} else {
			tp.AddField("logged in as "+user, printer.WithColor(cs.Green))
		}
		tp.EndRow()
	}

	if err := tp.Render(); err != nil {
		return err
	}
	if failed {
		return util.ErrSilent
	}
	return nil
}

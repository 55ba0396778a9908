package logout

import (
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/tmeckel/tfsprops/internal/azdo"
	"github.com/tmeckel/tfsprops/internal/cmd/util"
)

type logoutOptions struct {
	collection string
}

func NewCmd(ctx util.CmdContext) *cobra.Command {
	opts := &logoutOptions{}

	cmd := &cobra.Command{
		Use:   "logout",
		Args:  cobra.NoArgs,
		Short: "Remove the stored credentials of a team project collection",
		Example: heredoc.Doc(`
			$ tfsprops auth logout -c https://tfs.example.com/tfs/DefaultCollection
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return logoutRun(ctx, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.collection, "collection", "c", "", "URL of the team project collection to log out of")
	_ = cmd.MarkFlagRequired("collection")

	return cmd
}

func logoutRun(ctx util.CmdContext, opts *logoutOptions) error {
	key, err := azdo.NormalizeCollection(opts.collection)
	if err != nil {
		return util.FlagErrorWrap(err)
	}
	cfg, err := ctx.Config()
	if err != nil {
		return util.FlagErrorf("error getting configuration: %w", err)
	}
	ios, err := ctx.IOStreams()
	if err != nil {
		return util.FlagErrorf("error getting io streams: %w", err)
	}
	cs := ios.ColorScheme()

	authCfg := cfg.Authentication()
	if !lo.Contains(authCfg.GetCollections(), key) {
		fmt.Fprintf(ios.ErrOut, "You are not logged in to %s\n", cs.Bold(opts.collection))
		return util.ErrSilent
	}

	if ios.CanPrompt() {
		p, err := ctx.Prompter()
		if err != nil {
			return util.FlagErrorf("error getting prompter: %w", err)
		}
		confirmed, err := p.Confirm(fmt.Sprintf("Remove the stored credentials of %s?", opts.collection), true)
		if err != nil {
			return err
		}
		if !confirmed {
			return util.ErrCancel
		}
	}

	if err := authCfg.Logout(key); err != nil {
		return fmt.Errorf("failed to remove credentials: %w", err)
	}
	fmt.Fprintf(ios.ErrOut, "%s Logged out of %s\n", cs.SuccessIcon(), cs.Bold(opts.collection))
	return nil
}

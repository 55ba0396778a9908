package list

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/tmeckel/tfsprops/internal/azdo"
	"github.com/tmeckel/tfsprops/internal/cmd/util"
	"github.com/tmeckel/tfsprops/internal/config"
)

type listOptions struct {
	collection string
	all        bool
}

func NewCmd(ctx util.CmdContext) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "Print a list of configuration keys and values",
		Aliases: []string{"ls"},
		Args:    cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return listRun(ctx, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.collection, "collection", "c", "", "Get per-collection configuration")
	cmd.Flags().BoolVar(&opts.all, "all", false, "Show config options which are not configured")
	return cmd
}

func listRun(ctx util.CmdContext, opts *listOptions) error {
	cfg, err := ctx.Config()
	if err != nil {
		return util.FlagErrorf("error getting configuration: %w", err)
	}
	ios, err := ctx.IOStreams()
	if err != nil {
		return util.FlagErrorf("error getting io streams: %w", err)
	}

	if opts.collection != "" {
		key, err := azdo.NormalizeCollection(opts.collection)
		if err != nil {
			return util.FlagErrorWrap(err)
		}
		if !lo.Contains(cfg.Authentication().GetCollections(), key) {
			fmt.Fprintf(
				ios.ErrOut,
				"You are not logged in to the team project collection %q. Run %s to authenticate.\n",
				opts.collection, ios.ColorScheme().Bold("tfsprops auth login"),
			)
			return util.ErrSilent
		}
		// the token is never listed
		val, _ := cfg.Get([]string{config.Collections, key, config.URL})
		fmt.Fprintf(ios.Out, "%s=%s\n", config.URL, val)
		return nil
	}

	for _, co := range config.Options() {
		val, err := cfg.GetOrDefault([]string{co.Key})
		if err != nil {
			return err
		}
		if val != "" || opts.all {
			fmt.Fprintf(ios.Out, "%s=%s\n", co.Key, val)
		}
	}

	return nil
}

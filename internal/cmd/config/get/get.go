package get

import (
	"errors"
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
	"github.com/tmeckel/tfsprops/internal/azdo"
	"github.com/tmeckel/tfsprops/internal/cmd/util"
	"github.com/tmeckel/tfsprops/internal/config"
)

type getOptions struct {
	collection string
	key        string
}

func NewCmd(ctx util.CmdContext) *cobra.Command {
	opts := &getOptions{}

	cmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Print the value of a given configuration key",
		Example: heredoc.Doc(`
			$ tfsprops config get prompt
			enabled

			$ tfsprops config get url -c https://tfs.example.com/tfs/defaultcollection
			https://tfs.example.com/tfs/DefaultCollection
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.key = args[0]

			return getRun(ctx, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.collection, "collection", "c", "", "Get per-collection setting")

	return cmd
}

func getRun(ctx util.CmdContext, opts *getOptions) error {
	cfg, err := ctx.Config()
	if err != nil {
		return util.FlagErrorf("error getting configuration: %w", err)
	}
	ios, err := ctx.IOStreams()
	if err != nil {
		return util.FlagErrorf("error getting io streams: %w", err)
	}

	keys := []string{}
	if opts.collection != "" {
		key, err := azdo.NormalizeCollection(opts.collection)
		if err != nil {
			return util.FlagErrorWrap(err)
		}

		// the token may live in the keyring
		if opts.key == config.Pat {
			token, err := cfg.Authentication().GetToken(key)
			if err != nil {
				return fmt.Errorf("failed to get token for collection %s: %w", opts.collection, err)
			}
			fmt.Fprintf(ios.Out, "%s\n", token)
			return nil
		}
		keys = append(keys, config.Collections, key)
	}
	keys = append(keys, opts.key)

	val, err := cfg.GetOrDefault(keys)
	if err != nil {
		if errors.Is(err, &config.KeyNotFoundError{}) {
			return util.ErrSilent
		}
		return err
	}

	if val != "" {
		fmt.Fprintf(ios.Out, "%s\n", val)
	}
	return nil
}

package login

import (
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
	"github.com/tmeckel/tfsprops/internal/azdo"
	"github.com/tmeckel/tfsprops/internal/cmd/util"
	"github.com/tmeckel/tfsprops/internal/text"
	"go.uber.org/zap"
)

type loginOptions struct {
	collection      string
	token           string
	interactive     bool
	insecureStorage bool
}

func NewCmd(ctx util.CmdContext) *cobra.Command {
	var tokenStdin bool
	var tokenFile string

	opts := &loginOptions{}

	cmd := &cobra.Command{
		Use:   "login",
		Args:  cobra.NoArgs,
		Short: "Store a personal access token for a team project collection",
		Long: heredoc.Docf(`
			Store a personal access token (PAT) for a team project collection.

			By default the token is asked for interactively. Use %[1]s--with-token%[1]s to
			pass it on standard input or %[1]s--token-file%[1]s to read it from a file instead.

			The token is stored in the system credential store. If no credential
			store is available, or %[1]s--insecure-storage%[1]s is given, it is written to
			the plain text configuration file.

			Alternatively, tfsprops uses the token found in the %[1]sTFSPROPS_TOKEN%[1]s environment
			variable. See %[1]stfsprops help environment%[1]s for more info.
		`, "`"),
		Example: heredoc.Doc(`
			# store a token interactively
			$ tfsprops auth login -c https://tfs.example.com/tfs/DefaultCollection

			# read the token from standard input
			$ tfsprops auth login -c https://tfs.example.com/tfs/DefaultCollection --with-token < token.txt

			# read the token from a file
			$ tfsprops auth login -c https://tfs.example.com/tfs/DefaultCollection --token-file token.txt
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			ios, err := ctx.IOStreams()
			if err != nil {
				return util.FlagErrorf("error getting io streams: %w", err)
			}

			if err := util.MutuallyExclusive("specify only one of `--with-token` or `--token-file`", tokenStdin, tokenFile != ""); err != nil {
				return err
			}
			if tokenStdin {
				tokenFile = "-"
			}
			if tokenFile != "" {
				raw, err := ios.ReadUserFile(tokenFile)
				if err != nil {
					return util.FlagErrorf("failed to read token: %w", err)
				}
				token, err := text.DecodeBOM(raw)
				if err != nil {
					return util.FlagErrorf("failed to decode token: %w", err)
				}
				opts.token = strings.TrimSpace(string(token))
				if opts.token == "" {
					return util.FlagErrorf("the personal access token must not be empty")
				}
			}

			if ios.CanPrompt() && opts.token == "" {
				opts.interactive = true
			}

			if !opts.interactive && opts.token == "" {
				return util.FlagErrorf("--with-token required when not running interactively")
			}

			return loginRun(ctx, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.collection, "collection", "c", "", "URL of the team project collection to authenticate with")
	cmd.Flags().BoolVar(&tokenStdin, "with-token", false, "Read token from standard input")
	cmd.Flags().StringVar(&tokenFile, "token-file", "", "Read token from `file`")
	cmd.Flags().BoolVar(&opts.insecureStorage, "insecure-storage", false, "Save authentication credentials in plain text instead of credential store")
	_ = cmd.MarkFlagRequired("collection")

	return cmd
}

func loginRun(ctx util.CmdContext, opts *loginOptions) error {
	u, err := azdo.ParseCollectionURL(opts.collection)
	if err != nil {
		return util.FlagErrorWrap(err)
	}
	key := azdo.CollectionKey(u)

	cfg, err := ctx.Config()
	if err != nil {
		return util.FlagErrorf("error getting configuration: %w", err)
	}
	ios, err := ctx.IOStreams()
	if err != nil {
		return util.FlagErrorf("error getting io streams: %w", err)
	}

	token := opts.token
	if token == "" {
		p, err := ctx.Prompter()
		if err != nil {
			return util.FlagErrorf("error getting prompter: %w", err)
		}
		token, err = p.Password("Paste your personal access token:")
		if err != nil {
			return err
		}
		token = strings.TrimSpace(token)
	}
	if token == "" {
		return util.FlagErrorf("the personal access token must not be empty")
	}

	insecure, err := cfg.Authentication().Login(key, u.String(), token, !opts.insecureStorage)
	if err != nil {
		return fmt.Errorf("failed to store credentials: %w", err)
	}
	zap.L().Debug("Stored credentials", zap.String("collection", key), zap.Bool("insecure", insecure))

	cs := ios.ColorScheme()
	if insecure && !opts.insecureStorage {
		fmt.Fprintf(ios.ErrOut, "%s credential store not available, token was stored in plain text\n", cs.WarningIcon())
	}
	fmt.Fprintf(ios.ErrOut, "%s Logged in to %s\n", cs.SuccessIcon(), cs.Bold(u.String()))
	return nil
}

package root

import (
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
	"github.com/tmeckel/tfsprops/internal/cmd/auth"
	"github.com/tmeckel/tfsprops/internal/cmd/config"
	"github.com/tmeckel/tfsprops/internal/cmd/license"
	"github.com/tmeckel/tfsprops/internal/cmd/list"
	"github.com/tmeckel/tfsprops/internal/cmd/set"
	"github.com/tmeckel/tfsprops/internal/cmd/util"
	versionCmd "github.com/tmeckel/tfsprops/internal/cmd/version"
)

func NewCmdRoot(ctx util.CmdContext, version, buildDate string) (*cobra.Command, error) {
	iostrms, err := ctx.IOStreams()
	if err != nil {
		return nil, fmt.Errorf("failed to get IOStreams: %w", err)
	}

	// verbs are matched regardless of their case, e.g. "List" or "SET"
	cobra.EnableCaseInsensitive = true

	cmd := &cobra.Command{
		Use:   "tfsprops <command> [flags]",
		Short: "Team project properties CLI",
		Long:  `List, set and delete the properties of a team project on Team Foundation Server or Azure DevOps Server.`,
		Example: heredoc.Doc(`
		$ tfsprops list -c https://tfs.example.com/tfs/DefaultCollection -p Fabrikam
		$ tfsprops set -c https://tfs.example.com/tfs/DefaultCollection -p Fabrikam -n Owner -v Alice
	`),
	}

	cmd.PersistentFlags().Bool("help", false, "Show help for command")

	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	cmd.SetOut(iostrms.Out)
	cmd.SetErr(iostrms.ErrOut)

	versionCmd.Annotate(cmd, version, buildDate)

	cmd.SetHelpFunc(func(c *cobra.Command, args []string) {
		rootHelpFunc(iostrms, c, args)
	})
	cmd.SetUsageFunc(func(c *cobra.Command) error {
		return rootUsageFunc(iostrms.ErrOut, c)
	})

	cmd.SetFlagErrorFunc(rootFlagErrorFunc)

	cmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "Property commands",
	})

	listCmd := list.NewCmd(ctx)
	listCmd.GroupID = "core"
	setCmd := set.NewCmd(ctx)
	setCmd.GroupID = "core"

	cmd.AddCommand(listCmd)
	cmd.AddCommand(setCmd)
	cmd.AddCommand(license.NewCmd(ctx))
	cmd.AddCommand(auth.NewCmd(ctx))
	cmd.AddCommand(config.NewCmd(ctx))
	cmd.AddCommand(versionCmd.NewCmd(ctx))

	// Help topics
	for _, ht := range HelpTopics {
		cmd.AddCommand(NewCmdHelpTopic(iostrms, ht))
	}

	return cmd, nil
}

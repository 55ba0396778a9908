package auth

import (
	"github.com/spf13/cobra"
	"github.com/tmeckel/tfsprops/internal/cmd/auth/login"
	"github.com/tmeckel/tfsprops/internal/cmd/auth/logout"
	"github.com/tmeckel/tfsprops/internal/cmd/auth/status"
	"github.com/tmeckel/tfsprops/internal/cmd/util"
)

func NewCmd(ctx util.CmdContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth <command>",
		Short: "Manage personal access tokens for team project collections",
	}

	cmd.AddCommand(login.NewCmd(ctx))
	cmd.AddCommand(logout.NewCmd(ctx))
	cmd.AddCommand(status.NewCmd(ctx))

	return cmd
}

package main

import (
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/spf13/cobra"
	"github.com/tmeckel/tfsprops/internal/azdo"
	"github.com/tmeckel/tfsprops/internal/build"
	"github.com/tmeckel/tfsprops/internal/cmd/root"
	cmdutil "github.com/tmeckel/tfsprops/internal/cmd/util"
	"github.com/tmeckel/tfsprops/internal/iostreams"
	"github.com/tmeckel/tfsprops/internal/util"
	"go.uber.org/zap"
)

type exitCode int

const (
	exitOK     exitCode = 0
	exitError  exitCode = 1
	exitCancel exitCode = 2
	exitAuth   exitCode = 4
)

func init() {
	// Initialize ZAP logger package
	var logger *zap.Logger
	var err error
	if debug, _ := util.IsDebugEnabled(); debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	zap.ReplaceGlobals(zap.Must(logger, err))
}

func main() {
	code := mainRun()
	_ = zap.L().Sync()
	os.Exit(int(code))
}

func mainRun() exitCode {
	buildDate := build.Date
	buildVersion := build.Version

	zap.L().Sugar().Debugf("Version %s, Date %+v", buildVersion, buildDate)
	cmdCtx, err := cmdutil.NewCmdContext()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create command context: %s\n", err)
		return exitError
	}

	iostrms, err := cmdCtx.IOStreams()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to get IOStreams: %s\n", err)
		return exitError
	}

	rootCmd, err := root.NewCmdRoot(cmdCtx, buildVersion, buildDate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create root command: %s\n", err)
		return exitError
	}

	cmd, err := rootCmd.ExecuteC()
	if err != nil {
		var pagerPipeError *iostreams.ErrClosedPagerPipe
		var authError *azdo.AuthError
		stderr := iostrms.ErrOut

		if err == cmdutil.ErrSilent {
			return exitError
		} else if cmdutil.IsUserCancellation(err) {
			if errors.Is(err, terminal.InterruptErr) {
				// ensure the next shell prompt will start on its own line
				fmt.Fprint(stderr, "\n")
			}
			return exitCancel
		} else if errors.As(err, &authError) {
			fmt.Fprintln(stderr, err)
			fmt.Fprintln(stderr, "To store a personal access token, run:  tfsprops auth login -c <collection>")
			return exitAuth
		} else if errors.As(err, &pagerPipeError) {
			// ignore the error raised when piping to a closed pager
			return exitOK
		}

		printError(stderr, err, cmd)
		return exitError
	}
	if root.HasFailed() {
		return exitError
	}

	return exitOK
}

func printError(out io.Writer, err error, cmd *cobra.Command) {
	var dnsError *net.DNSError
	if errors.As(err, &dnsError) {
		debug, _ := util.IsDebugEnabled()
		fmt.Fprintf(out, "error connecting to %s\n", dnsError.Name)
		if debug {
			fmt.Fprintln(out, dnsError)
		}
		fmt.Fprintln(out, "check your network connection and the collection URL")
		return
	}

	fmt.Fprintln(out, err)

	var flagError *cmdutil.ErrFlag
	if errors.As(err, &flagError) || isUsageError(err) {
		if !strings.HasSuffix(err.Error(), "\n") {
			fmt.Fprintln(out)
		}
		fmt.Fprintln(out, cmd.UsageString())
	}
}

// isUsageError matches the argument errors cobra raises itself.
func isUsageError(err error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "unknown command ") ||
		strings.HasPrefix(msg, "required flag") ||
		strings.HasPrefix(msg, "accepts ") ||
		strings.HasPrefix(msg, "unknown flag")
}

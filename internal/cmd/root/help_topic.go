package root

import (
	"fmt"
	"io"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
	"github.com/tmeckel/tfsprops/internal/iostreams"
	"github.com/tmeckel/tfsprops/internal/text"
)

type helpTopic struct {
	name    string
	short   string
	long    string
	example string
}

var HelpTopics = []helpTopic{
	{
		name:  "environment",
		short: "Environment variables that can be used with tfsprops",
		long: heredoc.Doc(`
			TFSPROPS_TOKEN: a personal access token used for every team project collection.
			Setting this avoids the need to run "tfsprops auth login" and takes precedence over
			previously stored credentials.

			TFSPROPS_DEBUG: set to a truthy value to enable verbose output on standard error.

			TFSPROPS_PAGER, PAGER (in order of precedence): a terminal paging program to send standard output
			to, e.g. "less".

			NO_COLOR: set to any value to avoid printing ANSI escape sequences for color output.

			CLICOLOR: set to "0" to disable printing ANSI colors in output.

			CLICOLOR_FORCE: set to a value other than "0" to keep ANSI colors in output
			even when the output is piped.

			TFSPROPS_CONFIG_DIR: the directory where tfsprops will store configuration files. If not specified,
			the default value will be one of the following paths (in order of precedence):
			  - "$XDG_CONFIG_HOME/tfsprops" (if $XDG_CONFIG_HOME is set),
			  - "$AppData/tfsprops" (on Windows if $AppData is set), or
			  - "$HOME/.config/tfsprops".

			TFSPROPS_PROMPT_DISABLED: set to any value to disable interactive prompting in the terminal.
		`),
	},
	{
		name:  "exit-codes",
		short: "Exit codes used by tfsprops",
		long: heredoc.Doc(`
			tfsprops follows normal conventions regarding exit codes.

			- If a command completes successfully, the exit code will be 0

			- If a command fails for any reason, the exit code will be 1

			- If a command is running but gets cancelled, the exit code will be 2

			- If a command encounters an authentication issue, the exit code will be 4

			NOTE: "tfsprops set" exits with 0 when the property does not exist and
			--force was not given. The existing property names are reported on
			standard output instead.
		`),
	},
}

func NewCmdHelpTopic(ios *iostreams.IOStreams, ht helpTopic) *cobra.Command {
	cmd := &cobra.Command{
		Use:     ht.name,
		Short:   ht.short,
		Long:    ht.long,
		Example: ht.example,
		Hidden:  true,
		Annotations: map[string]string{
			"markdown:generate": "true",
			"markdown:basename": "tfsprops_help_" + ht.name,
		},
	}

	cmd.SetUsageFunc(func(c *cobra.Command) error {
		return helpTopicUsageFunc(ios.ErrOut, c)
	})

	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		helpTopicHelpFunc(ios.Out, c)
	})

	return cmd
}

func helpTopicHelpFunc(w io.Writer, command *cobra.Command) {
	fmt.Fprint(w, command.Long)
	if command.Example != "" {
		fmt.Fprintf(w, "\n\nEXAMPLES\n")
		fmt.Fprint(w, text.Indent(command.Example, "  "))
	}
}

func helpTopicUsageFunc(w io.Writer, command *cobra.Command) error {
	fmt.Fprintf(w, "Usage: tfsprops help %s", command.Use)
	return nil
}

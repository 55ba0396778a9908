package version

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tmeckel/tfsprops/internal/cmd/util"
)

const versionInfoAnnotation = "versionInfo"

var semverRE = regexp.MustCompile(`^v?\d+\.\d+\.\d+(-[\w.]+)?$`)

func NewCmd(ctx util.CmdContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:    "version",
		Short:  "Show tfsprops version",
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ios, err := ctx.IOStreams()
			if err != nil {
				return util.FlagErrorf("error getting io streams: %w", err)
			}
			fmt.Fprint(ios.Out, cmd.Root().Annotations[versionInfoAnnotation])
			return nil
		},
	}

	return cmd
}

// Annotate stores the formatted version on the root command so that both
// the version command and --version print the same text.
func Annotate(root *cobra.Command, version, buildDate string) {
	if root.Annotations == nil {
		root.Annotations = map[string]string{}
	}
	info := Format(version, buildDate)
	root.Annotations[versionInfoAnnotation] = info
	root.Version = strings.TrimSpace(info)
	root.SetVersionTemplate("{{.Version}}\n")
}

func Format(version, buildDate string) string {
	version = strings.TrimPrefix(version, "v")

	var dateStr string
	if buildDate != "" {
		dateStr = fmt.Sprintf(" (%s)", buildDate)
	}

	return fmt.Sprintf("tfsprops version %s%s\n%s\n", version, dateStr, changelogURL(version))
}

func changelogURL(version string) string {
	path := "https://github.com/tmeckel/tfsprops"
	if !semverRE.MatchString(version) {
		return fmt.Sprintf("%s/releases/latest", path)
	}

	return fmt.Sprintf("%s/releases/tag/v%s", path, strings.TrimPrefix(version, "v"))
}

package set

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/MakeNowJust/heredoc"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/tmeckel/tfsprops/internal/cmd/util"
	"github.com/tmeckel/tfsprops/internal/config"
)

type setOptions struct {
	key   string
	value string
}

func NewCmd(ctx util.CmdContext) *cobra.Command {
	opts := &setOptions{}

	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Update configuration with a value for the given key",
		Example: heredoc.Doc(`
			$ tfsprops config set pager "less -R"
			$ tfsprops config set prompt disabled
		`),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.key = args[0]
			opts.value = args[1]

			return setRun(ctx, opts)
		},
	}

	return cmd
}

func setRun(ctx util.CmdContext, opts *setOptions) error {
	cfg, err := ctx.Config()
	if err != nil {
		return util.FlagErrorf("error getting configuration: %w", err)
	}
	ios, err := ctx.IOStreams()
	if err != nil {
		return util.FlagErrorf("error getting io streams: %w", err)
	}

	if opts.key == config.Collections {
		return util.FlagErrorf("%q can only be changed with `tfsprops auth`", opts.key)
	}

	if err := validateKey(opts.key); err != nil {
		fmt.Fprintf(ios.ErrOut, "%s warning: '%s' is not a known configuration key\n", ios.ColorScheme().WarningIcon(), opts.key)
	}

	if err := validateValue(opts.key, opts.value); err != nil {
		var invalidValue InvalidValueError
		if errors.As(err, &invalidValue) {
			values := lo.Map(invalidValue.ValidValues, func(v string, _ int) string {
				return fmt.Sprintf("'%s'", v)
			})
			return fmt.Errorf("failed to set %q to %q: valid values are %v", opts.key, opts.value, strings.Join(values, ", "))
		}
		return err
	}

	cfg.Set([]string{opts.key}, opts.value)

	if err := cfg.Write(); err != nil {
		return fmt.Errorf("failed to write config to disk: %w", err)
	}
	return nil
}

func validateKey(key string) error {
	if slices.ContainsFunc(config.Options(), func(co config.ConfigOption) bool { return co.Key == key }) {
		return nil
	}
	return fmt.Errorf("invalid key")
}

type InvalidValueError struct {
	ValidValues []string
}

func (e InvalidValueError) Error() string {
	return "invalid value"
}

func validateValue(key, value string) error {
	co, ok := lo.Find(config.Options(), func(co config.ConfigOption) bool { return co.Key == key })
	if !ok || co.AllowedValues == nil {
		return nil
	}
	if slices.Contains(co.AllowedValues, value) {
		return nil
	}
	return InvalidValueError{ValidValues: co.AllowedValues}
}

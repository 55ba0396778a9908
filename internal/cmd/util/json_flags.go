package util

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"sort"
	"strings"

	"github.com/emirpasic/gods/sets/hashset"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/tmeckel/tfsprops/internal/iostreams"
	"github.com/tmeckel/tfsprops/internal/jq"
	"github.com/tmeckel/tfsprops/internal/jsonpretty"
	"github.com/tmeckel/tfsprops/internal/types"
)

type JSONFlagError struct {
	error
}

const jsonSelectAllSentinel = "*"

// AddJSONFlags registers --json and --jq on cmd. After flag parsing
// exportTarget is nil unless --json was given.
func AddJSONFlags(cmd *cobra.Command, exportTarget *Exporter, fields []string) {
	f := cmd.Flags()
	f.StringSlice("json", nil, "Output JSON with the specified `fields`. Prefix a field with '-' to exclude it.")
	f.StringP("jq", "q", "", "Filter JSON output using a jq `expression`")

	f.Lookup("json").NoOptDefVal = jsonSelectAllSentinel

	_ = cmd.RegisterFlagCompletionFunc("json", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		var results []string
		var prefix string
		if idx := strings.LastIndexByte(toComplete, ','); idx >= 0 {
			prefix = toComplete[:idx+1]
			toComplete = toComplete[idx+1:]
		}
		toComplete = strings.ToLower(toComplete)
		for _, f := range fields {
			if strings.HasPrefix(strings.ToLower(f), toComplete) {
				results = append(results, prefix+f)
			}
		}
		sort.Strings(results)
		return results, cobra.ShellCompDirectiveNoSpace
	})

	oldPreRun := cmd.PreRunE
	cmd.PreRunE = func(c *cobra.Command, args []string) error {
		if oldPreRun != nil {
			if err := oldPreRun(c, args); err != nil {
				return err
			}
		}
		export, err := checkJSONFlags(c)
		if err != nil {
			return err
		}
		if export == nil {
			*exportTarget = nil
			return nil
		}
		resolved, err := resolveJSONSelection(export.fields, fields)
		if err != nil {
			return err
		}
		export.fields = resolved
		*exportTarget = export
		return nil
	}

	if cmd.Annotations == nil {
		cmd.Annotations = map[string]string{}
	}
	cmd.Annotations["help:json-fields"] = strings.Join(fields, ",")
}

func resolveJSONSelection(raw []string, allowed []string) ([]string, error) {
	if len(allowed) == 0 {
		return nil, JSONFlagError{fmt.Errorf("no JSON fields are defined for this command")}
	}

	allowedSet := hashset.New()
	for _, a := range allowed {
		allowedSet.Add(a)
	}

	include := []string{}
	exclude := hashset.New()
	for _, item := range types.Unique(raw) {
		if item == "" || item == jsonSelectAllSentinel {
			continue
		}
		remove := strings.HasPrefix(item, "-")
		item = strings.TrimPrefix(item, "-")
		if item == "" {
			return nil, JSONFlagError{fmt.Errorf("invalid JSON field selector \"-\"")}
		}
		if !allowedSet.Contains(item) {
			sorted := slices.Clone(allowed)
			sort.Strings(sorted)
			return nil, JSONFlagError{fmt.Errorf("unknown JSON field: %q\navailable fields:\n  %s", item, strings.Join(sorted, "\n  "))}
		}
		if remove {
			exclude.Add(item)
		} else {
			include = append(include, item)
		}
	}

	base := include
	if len(base) == 0 {
		base = allowed
	}
	result := []string{}
	for _, f := range base {
		if !exclude.Contains(f) {
			result = append(result, f)
		}
	}
	if len(result) == 0 {
		return nil, JSONFlagError{fmt.Errorf("no JSON fields selected; all fields were excluded")}
	}
	return result, nil
}

func checkJSONFlags(cmd *cobra.Command) (*jsonExporter, error) {
	f := cmd.Flags()
	jsonFlag := f.Lookup("json")
	jqFlag := f.Lookup("jq")

	if jsonFlag.Changed {
		jv := jsonFlag.Value.(pflag.SliceValue)
		return &jsonExporter{
			fields: jv.GetSlice(),
			filter: jqFlag.Value.String(),
		}, nil
	} else if jqFlag.Changed {
		return nil, errors.New("cannot use `--jq` without specifying `--json`")
	}
	return nil, nil
}

type Exporter interface {
	Fields() []string
	Write(io *iostreams.IOStreams, data any) error
}

type jsonExporter struct {
	fields []string
	filter string
}

// NewJSONExporter returns an Exporter emitting the given fields of every
// object in the data passed to Write.
func NewJSONExporter(fields []string, filter string) Exporter {
	return &jsonExporter{fields: fields, filter: filter}
}

func (e *jsonExporter) Fields() []string {
	return e.fields
}

// Write serializes data into JSON, keeps only the selected fields of every
// object and applies the jq filter, if any.
func (e *jsonExporter) Write(ios *iostreams.IOStreams, data any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return fmt.Errorf("failed to unmarshal JSON: %w", err)
	}
	generic = e.selectFields(generic)

	if e.filter != "" {
		return jq.Evaluate(generic, ios.Out, e.filter)
	}

	buf := bytes.Buffer{}
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(generic); err != nil {
		return err
	}
	if ios.IsStdoutTTY() {
		return jsonpretty.Format(ios.Out, &buf, "  ", ios.ColorEnabled())
	}
	_, err = io.Copy(ios.Out, &buf)
	return err
}

func (e *jsonExporter) selectFields(v any) any {
	switch t := v.(type) {
	case []any:
		for i := range t {
			t[i] = e.selectFields(t[i])
		}
		return t
	case map[string]any:
		if len(e.fields) == 0 {
			return t
		}
		m := make(map[string]any, len(e.fields))
		for _, f := range e.fields {
			if val, ok := t[f]; ok {
				m[f] = val
			}
		}
		return m
	}
	return v
}

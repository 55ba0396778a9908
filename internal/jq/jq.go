// Package jq filters JSON output of commands with jq expressions.
package jq

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/itchyny/gojq"
)

// Evaluate runs expr against data, which must be made of JSON compatible
// values (maps, slices, strings, float64, bool, nil), and writes every
// result to output. Top-level scalars are written raw, similar to jq --raw.
func Evaluate(data any, output io.Writer, expr string) error {
	code, err := CompileExpression(expr)
	if err != nil {
		return err
	}

	iter := code.Run(data)
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if err, isErr := v.(error); isErr {
			var e *gojq.HaltError
			if errors.As(err, &e) && e.Value() == nil {
				break
			}
			return err
		}
		if text, e := jsonScalarToString(v); e == nil {
			if _, err := fmt.Fprintln(output, text); err != nil {
				return fmt.Errorf("failed to format text: %w", err)
			}
			continue
		}
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to marshal value %+v: %w", v, err)
		}
		if _, err := fmt.Fprintln(output, string(b)); err != nil {
			return fmt.Errorf("failed to write data to output stream: %w", err)
		}
	}
	return nil
}

func CompileExpression(expr string) (*gojq.Code, error) {
	query, err := gojq.Parse(expr)
	if err != nil {
		var e *gojq.ParseError
		if errors.As(err, &e) {
			str, line, column := getLineColumn(expr, e.Offset-len(e.Token))
			return nil, fmt.Errorf(
				"failed to parse jq expression (line %d, column %d)\n    %s\n    %*c  %w",
				line, column, str, column, '^', err,
			)
		}
		return nil, fmt.Errorf("failed to parse jq expression %q: %w", expr, err)
	}

	code, err := gojq.Compile(
		query,
		gojq.WithEnvironLoader(os.Environ))
	if err != nil {
		return nil, fmt.Errorf("failed to compile jq expression: %w", err)
	}
	return code, nil
}

func jsonScalarToString(input any) (string, error) {
	switch tt := input.(type) {
	case string:
		return tt, nil
	case float64:
		if math.Trunc(tt) == tt {
			return strconv.FormatFloat(tt, 'f', 0, 64), nil
		}
		return strconv.FormatFloat(tt, 'f', 2, 64), nil
	case int:
		return strconv.Itoa(tt), nil
	case nil:
		return "", nil
	case bool:
		return strconv.FormatBool(tt), nil
	default:
		return "", fmt.Errorf("cannot convert type to string: %v", tt)
	}
}

func getLineColumn(expr string, offset int) (string, int, int) {
	for line := 1; ; line++ {
		index := strings.Index(expr, "\n")
		if index < 0 {
			return expr, line, offset + 1
		}
		if index >= offset {
			return expr[:index], line, offset + 1
		}
		expr = expr[index+1:]
		offset -= index + 1
	}
}

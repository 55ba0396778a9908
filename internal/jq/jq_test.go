package jq

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	data := []any{
		map[string]any{"name": "Color", "value": "Red"},
		map[string]any{"name": "Owner", "value": "Alice"},
	}

	tests := []struct {
		name string
		expr string
		want string
	}{
		{name: "scalars are raw", expr: ".[].name", want: "Color\nOwner\n"},
		{name: "objects are json", expr: ".[0]", want: `{"name":"Color","value":"Red"}` + "\n"},
		{name: "numbers", expr: "length", want: "2\n"},
		{name: "select", expr: `.[] | select(.name == "Owner") | .value`, want: "Alice\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, Evaluate(data, &out, tt.expr))
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestEvaluate_ParseError(t *testing.T) {
	var out bytes.Buffer
	err := Evaluate(nil, &out, ".[")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse jq expression")
}

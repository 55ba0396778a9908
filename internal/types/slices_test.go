package types

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnique(t *testing.T) {
	assert.Equal(t, []string{"name", "value"}, Unique([]string{"name", "value", "name"}))
	assert.Equal(t, []string{}, Unique([]string{}))
	assert.Equal(t, []string{}, Unique[string](nil))
}

func TestUniqueComparable_CaseInsensitive(t *testing.T) {
	input := []string{"Owner", "owner", "Color", "OWNER"}
	assert.Equal(t, []string{"Owner", "Color"}, UniqueComparable(input, strings.ToLower))
}

func TestGetValue(t *testing.T) {
	assert.Equal(t, "fallback", GetValue[string](nil, "fallback"))
	assert.Equal(t, "x", GetValue(ToPtr("x"), "fallback"))
}

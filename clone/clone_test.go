package clone_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erlorenz/go-notify/clone"
)

func TestShallowMap(t *testing.T) {
	nested := map[string]any{"inner": 1}
	original := map[string]any{"top": 1, "nested": nested}

	copied, ok := clone.Shallow(original).(map[string]any)
	require.True(t, ok)

	// Top-level mutation of the copy leaves the original intact.
	copied["top"] = 2
	assert.Equal(t, 1, original["top"])

	// Nested values are still shared.
	copied["nested"].(map[string]any)["inner"] = 2
	assert.Equal(t, 2, nested["inner"])
}

func TestDeepMap(t *testing.T) {
	original := map[string]any{
		"top":    1,
		"nested": map[string]any{"inner": 1},
		"list":   []any{[]byte("abc"), map[string]any{"deep": true}},
	}

	copied, ok := clone.Deep(original).(map[string]any)
	require.True(t, ok)

	copied["nested"].(map[string]any)["inner"] = 2
	copied["list"].([]any)[0].([]byte)[0] = 'X'

	assert.Equal(t, 1, original["nested"].(map[string]any)["inner"])
	assert.Equal(t, []byte("abc"), original["list"].([]any)[0])
}

func TestSlices(t *testing.T) {
	original := []any{1, "two", []any{3}}

	shallow := clone.Shallow(original).([]any)
	shallow[0] = 99
	assert.Equal(t, 1, original[0])

	deep := clone.Deep(original).([]any)
	deep[2].([]any)[0] = 99
	assert.Equal(t, 3, original[2].([]any)[0])
}

func TestBytes(t *testing.T) {
	original := []byte("hello")

	copied := clone.Shallow(original).([]byte)
	copied[0] = 'X'
	assert.Equal(t, []byte("hello"), original)
}

func TestStringMap(t *testing.T) {
	original := map[string]string{"source": "api"}

	copied := clone.Deep(original).(map[string]string)
	copied["source"] = "worker"
	assert.Equal(t, "api", original["source"])
}

func TestPassthrough(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{"nil", nil},
		{"int", 42},
		{"string", "immutable"},
		{"struct", struct{ N int }{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.value, clone.Shallow(tt.value))
			assert.Equal(t, tt.value, clone.Deep(tt.value))
		})
	}
}

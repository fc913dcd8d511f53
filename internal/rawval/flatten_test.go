package rawval

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlattenFlags(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected []string
	}{
		{
			name:     "flat flag map",
			input:    map[string]any{"chat": true, "export": "yes", "sms": false},
			expected: []string{"chat", "export"},
		},
		{
			name: "nested paths",
			input: map[string]any{
				"messaging": map[string]any{"chat": true, "sms": "no"},
				"export":    float64(1),
			},
			expected: []string{"export", "messaging.chat"},
		},
		{
			name: "object-shaped leaf recurses as flag map",
			input: map[string]any{
				"delivery": map[string]any{"value": true, "note": "fast"},
			},
			expected: []string{"delivery.value"},
		},
		{
			name:     "sequences are leaves not recursion targets",
			input:    map[string]any{"list": []any{"a", "b"}},
			expected: []string{},
		},
		{
			name:     "scalar input yields nothing",
			input:    "yes",
			expected: []string{},
		},
		{
			name:     "nil yields nothing",
			input:    nil,
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FlattenFlags(tt.input))
		})
	}
}

func TestFlattenFlagsSortsSiblingKeys(t *testing.T) {
	got := FlattenFlags(map[string]any{"zeta": true, "alpha": true, "mid": true})
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, got)
}

func TestFlattenFlagsDeepNestingIsBounded(t *testing.T) {
	v := map[string]any{"leaf": true}
	for i := 0; i < 200; i++ {
		v = map[string]any{"level": v}
	}
	assert.Empty(t, FlattenFlags(v))
}

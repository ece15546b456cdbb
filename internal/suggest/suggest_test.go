package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected int
	}{
		// Identical strings
		{"", "", 0},
		{"len", "len", 0},

		// Empty vs non-empty
		{"", "abc", 3},
		{"abc", "", 3},

		// Single edits
		{"a", "b", 1},
		{"len", "lenn", 1},
		{"split", "spit", 1},

		// Multiple edits
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},
		{"pushfront", "popfront", 3},

		// Case-sensitive
		{"EQ", "eq", 2},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Levenshtein(tt.a, tt.b), "%q vs %q", tt.a, tt.b)
		assert.Equal(t, tt.expected, Levenshtein(tt.b, tt.a), "%q vs %q", tt.b, tt.a)
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "pushfront", Normalize("Push_Front"))
	assert.Equal(t, "pushfront", Normalize("push-front"))
	assert.Equal(t, "popback", Normalize(" pop back"))
}

func TestScore(t *testing.T) {
	assert.InDelta(t, 1.0, Score("PushFront", "push-front"), 1e-9)
	assert.InDelta(t, 0.75, Score("lenn", "len"), 1e-9)
	assert.InDelta(t, 0.0, Score("abc", "xyz"), 1e-9)
	assert.InDelta(t, 1.0, Score("", ""), 1e-9)
}

func TestClosest(t *testing.T) {
	names := []string{"tuple", "len", "eq", "push-front", "pop-front", "push-back"}

	assert.Equal(t, []string{"len"}, Closest("lenn", names, DefaultThreshold))
	assert.Equal(t, []string{"push-front", "pop-front", "push-back"}, Closest("pushfrnt", names, DefaultThreshold))
	assert.Equal(t, []string{"push-front"}, Closest("PUSH_FRONT", names, 0.9))
	assert.Empty(t, Closest("zzzzzz", names, DefaultThreshold))
}

package label

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "composite label", input: "🛒 Courses", want: "courses"},
		{name: "bare name", input: "Courses", want: "courses"},
		{name: "surrounding whitespace", input: "  🏠   Loyer  ", want: "loyer"},
		{name: "variation selector glyph", input: "🛍️ Shopping", want: "shopping"},
		{name: "punctuation separator", input: "⛽ - Essence", want: "essence"},
		{name: "empty", input: "", want: ""},
		{name: "only glyph", input: "💰", want: ""},
		{name: "inner spaces kept", input: "🎮 Jeux Video", want: "jeux video"},
		{name: "leading digits kept", input: "2024 Taxes", want: "2024 taxes"},
		{name: "accented first letter is stripped", input: "Électricité", want: "lectricité"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"🛒 Courses",
		"Courses",
		"   ",
		"#1 Fan",
		"__init__",
		"💰💰 💰 Autres  ",
		"Électricité",
		"ÀÉÎ ÕÜ",
		"a\tb\n",
		"-- 42 --",
	}

	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}

func TestMatches(t *testing.T) {
	assert.True(t, Matches("🛒 Courses", "Courses"))
	assert.True(t, Matches("Courses", "Courses"))
	assert.True(t, Matches("courses ", "COURSES"))
	assert.True(t, Matches("🛒 Courses", "🛒 Courses"))
	assert.False(t, Matches("🛒 Courses", "Loyer"))
	assert.False(t, Matches("🛒 Courses en ligne", "Courses"))
}

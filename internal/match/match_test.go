package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatcher_RuleOrder(t *testing.T) {
	canonical := map[string]string{"热血": "热血", "Action": "热血"}
	m := New(
		Exact(canonical),
		Fold(canonical),
		Synonym(map[string]string{"rexue": "热血"}),
		Substring(map[string]string{"Action": "热血"}, 3),
	)

	tests := []struct {
		query string
		value string
		rule  string
	}{
		{"热血", "热血", "exact"},
		{"  ACTION ", "热血", "fold"},
		{"ReXue", "热血", "synonym"},
		{"Action & Adventure", "热血", "substring"},
	}

	for _, tt := range tests {
		res, ok := m.Match(tt.query)
		if assert.True(t, ok, tt.query) {
			assert.Equal(t, tt.value, res.Value, tt.query)
			assert.Equal(t, tt.rule, res.Rule, tt.query)
		}
	}
}

func TestMatcher_NoMatch(t *testing.T) {
	m := New(Exact(map[string]string{"a": "A"}), Substring(map[string]string{"Romance": "R"}, 3))

	_, ok := m.Match("Zombie")
	assert.False(t, ok)

	_, ok = m.Match("   ")
	assert.False(t, ok)

	// too short for the substring rule
	_, ok = m.Match("ro")
	assert.False(t, ok)
}

func TestSubstring_LongestLabelWins(t *testing.T) {
	r := Substring(map[string]string{"Sci": "short", "Sci-Fi": "long"}, 3)

	v, ok := r.Match("sci-fi thriller")
	assert.True(t, ok)
	assert.Equal(t, "long", v)
}

func TestNormalizeTitle(t *testing.T) {
	assert.Equal(t, "onepiece", NormalizeTitle(" One-Piece! "))
	assert.Equal(t, "进击的巨人", NormalizeTitle("进击的巨人 "))
	assert.Equal(t, NormalizeTitle("Ｏｎｅ Ｐｉｅｃｅ"), NormalizeTitle("one piece"))
}

func TestNormalized(t *testing.T) {
	r := Normalized(map[string]string{"Kimi no Na wa.": "42"})

	v, ok := r.Match("kimi no na wa")
	assert.True(t, ok)
	assert.Equal(t, "42", v)
}

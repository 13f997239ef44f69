package genre

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	v, err := Default()
	require.NoError(t, err)
	assert.Greater(t, v.Len(), 20)
}

func TestFilter_DropsUnknown(t *testing.T) {
	v, err := Default()
	require.NoError(t, err)

	valid, dropped := v.Filter([]string{"rexue", "NotAGenre"})

	assert.Equal(t, []string{"热血"}, valid)
	assert.Equal(t, []string{"NotAGenre"}, dropped)
}

func TestFilter_RulesAndDedup(t *testing.T) {
	v, err := Default()
	require.NoError(t, err)

	valid, _ := v.Filter([]string{"恋爱", " romance ", "Action, Comedy", "熱血", "Historical Fiction"})

	assert.Equal(t, []string{"恋爱", "热血", "搞笑", "历史"}, valid)
}

func TestLookup(t *testing.T) {
	v := New([]Entry{{Name: "冒险", English: "Adventure", Synonyms: []string{"maoxian"}}})

	name, ok := v.Lookup("ADVENTURE")
	assert.True(t, ok)
	assert.Equal(t, "冒险", name)

	name, ok = v.Lookup("Maoxian")
	assert.True(t, ok)
	assert.Equal(t, "冒险", name)

	_, ok = v.Lookup("cooking")
	assert.False(t, ok)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "genres.yaml")
	require.NoError(t, os.WriteFile(path, []byte("genres:\n  - name: Action\n    english: Action\n"), 0o644))

	v, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, v.Len())

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Parse([]byte("genres: []"))
	assert.Error(t, err)
}

func TestSplit(t *testing.T) {
	assert.Equal(t, []string{"Action", "Comedy", "恋爱"}, Split("Action, Comedy、恋爱"))
	assert.Empty(t, Split(" , "))
}

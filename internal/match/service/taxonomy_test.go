package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTaxonomyTables(t *testing.T) {
	tax := DefaultTaxonomy()

	assert.Equal(t, []string{"Fingering (14 wpi)", "Fingering"}, tax.Synonyms["fingering"])
	assert.Equal(t, []string{"DK (11 wpi)", "DK"}, tax.Synonyms["DK (11 wpi)"])

	rules := tax.HeldStrand["fingering"]
	require.Len(t, rules, 1)
	assert.Equal(t, "DK (11 wpi)", rules[0].Target)
	assert.Equal(t, 0.5, rules[0].Factor)

	// у каждого held-правила типизированный множитель
	for key, rr := range tax.HeldStrand {
		for _, r := range rr {
			assert.Equal(t, 0.5, r.Factor, "held rule %s -> %s", key, r.Target)
			assert.NotEmpty(t, r.Description)
		}
	}
}

func TestLoadTaxonomyEmptyPath(t *testing.T) {
	tax, err := LoadTaxonomy("")
	require.NoError(t, err)
	assert.Equal(t, DefaultTaxonomy().Synonyms["dk"], tax.Synonyms["dk"])
}

func TestLoadTaxonomyOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "taxonomy.yaml")
	body := `synonyms:
  chunky: ["Bulky (7 wpi)", "Bulky"]
held_strand:
  Fingering (14 wpi):
    - target: "DK (11 wpi)"
      description: "double fingering ~ DK"
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	tax, err := LoadTaxonomy(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Bulky (7 wpi)", "Bulky"}, tax.Synonyms["chunky"])

	// ключи held-таблицы нормализуются, пропущенный множитель = 0.5
	rules := tax.HeldStrand["fingering"]
	require.Len(t, rules, 1)
	assert.Equal(t, 0.5, rules[0].Factor)
	assert.Equal(t, "double fingering ~ DK", rules[0].Description)

	// семантика поиска не зависит от способа загрузки
	r := NewResolver(tax)
	out := r.Resolve("Fingering (14 wpi)", "DK (11 wpi)")
	require.True(t, out.Matched)
	assert.True(t, out.HeldStrand)
	assert.Equal(t, 0.5, out.Factor)
}

func TestLoadTaxonomyPartialFallsBack(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "taxonomy.yaml")
	require.NoError(t, os.WriteFile(path, []byte("synonyms:\n  dk: [\"DK\"]\n"), 0o644))

	tax, err := LoadTaxonomy(path)
	require.NoError(t, err)
	// held-таблица не задана — дефолтная
	assert.NotEmpty(t, tax.HeldStrand["worsted"])
}

func TestLoadTaxonomyErrors(t *testing.T) {
	_, err := LoadTaxonomy(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("synonyms: [not a map"), 0o644))
	_, err = LoadTaxonomy(bad)
	assert.Error(t, err)
}

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResolver() *Resolver {
	return NewResolver(DefaultTaxonomy())
}

func TestResolveDirect(t *testing.T) {
	r := newTestResolver()

	out := r.Resolve("Worsted (9 wpi)", "Worsted")
	require.True(t, out.Matched)
	assert.Equal(t, "Worsted (9 wpi) (direct match)", out.Reason)
	assert.False(t, out.HeldStrand)
	assert.Equal(t, 1.0, out.Factor)
}

func TestResolveSynonyms(t *testing.T) {
	r := newTestResolver()

	// короткий код из стэша против каталожной метки
	out := r.Resolve("dk", "DK (11 wpi)")
	require.True(t, out.Matched)
	assert.Equal(t, "dk (direct match)", out.Reason)

	// обратное направление: код в паттерне, полная метка в стэше
	out = r.Resolve("Fingering (14 wpi)", "fingering")
	require.True(t, out.Matched)
	assert.False(t, out.HeldStrand)

	// диапазонный wpi нормализация не трогает — тут работает именно
	// таблица синонимов, а не прямое равенство
	out = r.Resolve("super-bulky", "Super Bulky (5-6 wpi)")
	require.True(t, out.Matched)
	assert.Equal(t, "super-bulky (direct match)", out.Reason)
}

func TestResolveHeldStrand(t *testing.T) {
	r := newTestResolver()

	out := r.Resolve("fingering", "DK (11 wpi)")
	require.True(t, out.Matched)
	assert.True(t, out.HeldStrand)
	assert.Equal(t, "2 strands of fingering = DK weight", out.Reason)
	assert.Equal(t, 0.5, out.Factor)

	out = r.Resolve("Worsted (9 wpi)", "Bulky (7 wpi)")
	require.True(t, out.Matched)
	assert.Equal(t, "2 strands of Worsted = Chunky", out.Reason)
	assert.Equal(t, 0.5, out.Factor)
}

func TestResolveSubstringFallback(t *testing.T) {
	r := newTestResolver()

	// частичная метка против полной
	out := r.Resolve("fingering weight", "fingering")
	require.True(t, out.Matched)
	assert.False(t, out.HeldStrand)

	// принятый риск каскада: Super Bulky в стэше закрывает Bulky-паттерн
	// через подстроку (диапазонный wpi не нормализуется)
	out = r.Resolve("Super Bulky (5-6 wpi)", "Bulky")
	require.True(t, out.Matched)
	assert.False(t, out.HeldStrand)
	// обратная пара тоже матчится, но путём «двух нитей»
	rev := r.Resolve("Bulky", "Super Bulky (5-6 wpi)")
	require.True(t, rev.Matched)
	assert.True(t, rev.HeldStrand)
}

func TestResolveNoPath(t *testing.T) {
	r := newTestResolver()

	out := r.Resolve("Lace", "Bulky (7 wpi)")
	assert.False(t, out.Matched)
	assert.Empty(t, out.Reason)

	out = r.Resolve("Jumbo (0-4 wpi)", "Thread")
	assert.False(t, out.Matched)
}

// симметрия шагов 1–3: прямое/синонимичное совпадение не зависит
// от того, с какой стороны метка
func TestResolveSymmetry(t *testing.T) {
	r := newTestResolver()
	pairs := [][2]string{
		{"Worsted (9 wpi)", "Worsted"},
		{"dk", "DK (11 wpi)"},
		{"sport", "Sport (12 wpi)"},
		{"Lace", "lace"},
		{"Light Fingering", "light-fingering"},
	}
	for _, p := range pairs {
		a := r.Resolve(p[0], p[1])
		b := r.Resolve(p[1], p[0])
		assert.True(t, a.Matched, "%q vs %q", p[0], p[1])
		assert.Equal(t, a.Matched, b.Matched, "symmetry %q / %q", p[0], p[1])
		assert.False(t, a.HeldStrand)
		assert.False(t, b.HeldStrand)
	}
}

// подстрочный шаг покрывает пары несимметрично по пути,
// но итоговый matched на практике коммутативен — фиксируем явно
func TestResolveSubstringCommutative(t *testing.T) {
	r := newTestResolver()
	pairs := [][2]string{
		{"fingering weight", "fingering"},
		{"Super Bulky (5-6 wpi)", "Bulky"},
	}
	for _, p := range pairs {
		a := r.Resolve(p[0], p[1])
		b := r.Resolve(p[1], p[0])
		assert.Equal(t, a.Matched, b.Matched, "%q / %q", p[0], p[1])
	}
}

func TestResolveWeightClasses(t *testing.T) {
	ok, reason := ResolveWeightClasses("fingering", "DK (11 wpi)")
	require.True(t, ok)
	assert.Equal(t, "2 strands of fingering = DK weight", reason)

	ok, reason = ResolveWeightClasses("Lace", "Bulky (7 wpi)")
	assert.False(t, ok)
	assert.Empty(t, reason)
}

// альтернативная таксономия инжектится значением — без пакетных глобалов
func TestResolveCustomTaxonomy(t *testing.T) {
	tax := Taxonomy{
		Synonyms: map[string][]string{
			"chunky": {"Bulky (7 wpi)"},
		},
		HeldStrand: nil,
	}
	r := NewResolver(tax)

	out := r.Resolve("chunky", "Bulky (7 wpi)")
	require.True(t, out.Matched)

	// дефолтных held-правил в кастомной таблице нет
	out = r.Resolve("fingering", "DK (11 wpi)")
	assert.False(t, out.Matched)
}

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hollyschr/StitchMatch-sub000/internal/match/model"
)

func TestMemoEvaluator(t *testing.T) {
	m, err := NewMemoEvaluator(DefaultTaxonomy(), 8)
	require.NoError(t, err)

	inv := []model.InventoryItem{{ID: "y1", Weight: "DK", Yardage: 300}}
	req := model.Requirement{PatternID: "p1", Weights: []string{"DK"}, YardageMin: f64(100)}

	res1 := m.Evaluate(inv, req)
	require.True(t, res1.Matched)
	assert.Equal(t, 1, m.Len())

	// повторный вызов — из кэша, без роста
	res2 := m.Evaluate(inv, req)
	assert.Equal(t, res1, res2)
	assert.Equal(t, 1, m.Len())

	// другой паттерн — другой ключ
	req2 := req
	req2.PatternID = "p2"
	m.Evaluate(inv, req2)
	assert.Equal(t, 2, m.Len())

	// изменился стэш — изменился отпечаток, старый ключ не мешает
	inv[0].Yardage = 50
	res3 := m.Evaluate(inv, req)
	assert.False(t, res3.Matched)
	assert.Equal(t, 3, m.Len())
}

func TestFingerprint(t *testing.T) {
	a := []model.InventoryItem{{ID: "y1", Weight: "DK", Yardage: 300}}
	b := []model.InventoryItem{{ID: "y1", Weight: "DK", Yardage: 300}}
	assert.Equal(t, Fingerprint(a), Fingerprint(b))

	b[0].Grams = 1
	assert.NotEqual(t, Fingerprint(a), Fingerprint(b))

	assert.NotEqual(t, Fingerprint(nil), Fingerprint(a))
}

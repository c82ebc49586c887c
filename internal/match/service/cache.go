package service

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/hollyschr/StitchMatch-sub000/internal/match/model"
)

// MemoEvaluator — LRU-мемоизация Evaluate поверх чистого агрегатора.
// Ключ: отпечаток стэша + идентификатор требования. Инвалидация — забота
// вызывающего: поменялся стэш — поменялся отпечаток, старые ключи
// вытесняются сами.
type MemoEvaluator struct {
	ev  *Evaluator
	lru *lru.Cache[string, model.MatchResult]
}

func NewMemoEvaluator(t Taxonomy, size int) (*MemoEvaluator, error) {
	if size <= 0 {
		size = 1024
	}
	c, err := lru.New[string, model.MatchResult](size)
	if err != nil {
		return nil, fmt.Errorf("memo cache: %w", err)
	}
	return &MemoEvaluator{ev: NewEvaluator(t), lru: c}, nil
}

func (m *MemoEvaluator) Evaluate(inventory []model.InventoryItem, req model.Requirement) model.MatchResult {
	key := Fingerprint(inventory) + "|" + req.PatternID
	if v, ok := m.lru.Get(key); ok {
		return v
	}
	res := m.ev.Evaluate(inventory, req)
	m.lru.Add(key, res)
	return res
}

func (m *MemoEvaluator) Len() int { return m.lru.Len() }

// Fingerprint — sha256 по полям стэша в порядке следования позиций.
// Тот же приём, что и генерация yarn_id в импортёрах каталога:
// идентичность содержимого через хеш конкатенации полей.
func Fingerprint(inventory []model.InventoryItem) string {
	h := sha256.New()
	for _, it := range inventory {
		h.Write([]byte(it.ID))
		h.Write([]byte{0})
		h.Write([]byte(it.Weight))
		h.Write([]byte{0})
		h.Write([]byte(strconv.FormatFloat(it.Yardage, 'g', -1, 64)))
		h.Write([]byte{0})
		h.Write([]byte(strconv.FormatFloat(it.Grams, 'g', -1, 64)))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

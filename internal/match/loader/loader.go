package loader

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/hollyschr/StitchMatch-sub000/internal/fileio"
	"github.com/hollyschr/StitchMatch-sub000/internal/match/model"
	"github.com/hollyschr/StitchMatch-sub000/internal/match/service"
	"github.com/hollyschr/StitchMatch-sub000/internal/utils"
)

// Маппинг колонок стэша. Все ключи поддерживают альтернативы через "|".
type StashMapping struct {
	IDKey      string
	NameKey    string
	WeightKey  string
	YardageKey string
	GramsKey   string
	HeaderRow  int // 1-based
}

func DefaultStashMapping() StashMapping {
	return StashMapping{
		IDKey:      "ID|Yarn ID",
		NameKey:    "Name|Yarn Name",
		WeightKey:  "Weight|Yarn Weight",
		YardageKey: "Yardage|Yards",
		GramsKey:   "Grams|Weight (g)",
		HeaderRow:  1,
	}
}

// Маппинг колонок выгрузки паттернов.
type PatternMapping struct {
	IDKey         string
	NameKey       string
	WeightKey     string
	YardageMinKey string
	YardageMaxKey string
	GramsMinKey   string
	GramsMaxKey   string
	HeaderRow     int
}

func DefaultPatternMapping() PatternMapping {
	return PatternMapping{
		IDKey:         "Pattern ID|ID",
		NameKey:       "Name|Pattern Name",
		WeightKey:     "Weight|Yarn Weight|Required Weight",
		YardageMinKey: "Yardage Min|Min Yardage",
		YardageMaxKey: "Yardage Max|Max Yardage",
		GramsMinKey:   "Grams Min|Min Grams",
		GramsMaxKey:   "Grams Max|Max Grams",
		HeaderRow:     1,
	}
}

// LoadInventory читает стэш из csv/xls/xlsx. Строки без метки веса
// пропускаются (движку сравнивать нечего), позициям без id выдаётся uuid.
func LoadInventory(r io.Reader, filename string, m StashMapping) ([]model.InventoryItem, error) {
	recs, err := fileio.ReadAnyMaps(r, filename, m.HeaderRow)
	if err != nil {
		return nil, fmt.Errorf("read stash %s: %w", filename, err)
	}

	items := make([]model.InventoryItem, 0, len(recs))
	for _, rec := range recs {
		if looksLikeHeaderMap(rec) {
			continue
		}
		weightKey := resolveKey(rec, m.WeightKey)
		weight := strings.TrimSpace(rec[weightKey])
		if weight == "" {
			continue
		}
		it := model.InventoryItem{
			ID:     strings.TrimSpace(rec[resolveKey(rec, m.IDKey)]),
			Name:   strings.TrimSpace(rec[resolveKey(rec, m.NameKey)]),
			Weight: weight,
		}
		if it.ID == "" {
			it.ID = uuid.NewString()
		}
		if v, ok := utils.ParseQuantity(rec[resolveKey(rec, m.YardageKey)]); ok {
			it.Yardage = v
		}
		// колонку веса пряжи граммам не отдаём: без колонки Grams
		// альтернатива "Weight (g)" по подстроке цепляла бы "Weight"
		if gk := resolveKey(rec, m.GramsKey); gk != weightKey {
			if v, ok := utils.ParseQuantity(rec[gk]); ok {
				it.Grams = v
			}
		}
		items = append(items, it)
	}
	return items, nil
}

// LoadRequirements читает выгрузку паттернов. Поле веса — свободный текст
// ("DK / Worsted", "Sport or DK"), разбирается на допустимые классы;
// нечисловые границы становятся отсутствующими, а не ошибкой — паттерн без
// количества просто никогда не сматчится.
func LoadRequirements(r io.Reader, filename string, m PatternMapping) ([]model.Requirement, error) {
	recs, err := fileio.ReadAnyMaps(r, filename, m.HeaderRow)
	if err != nil {
		return nil, fmt.Errorf("read patterns %s: %w", filename, err)
	}

	reqs := make([]model.Requirement, 0, len(recs))
	for _, rec := range recs {
		if looksLikeHeaderMap(rec) {
			continue
		}
		req := model.Requirement{
			PatternID: strings.TrimSpace(rec[resolveKey(rec, m.IDKey)]),
			Name:      strings.TrimSpace(rec[resolveKey(rec, m.NameKey)]),
			Weights:   service.ParseRequiredWeights(rec[resolveKey(rec, m.WeightKey)]),
		}
		if req.PatternID == "" && req.Name == "" && len(req.Weights) == 0 {
			continue
		}
		if req.PatternID == "" {
			req.PatternID = uuid.NewString()
		}
		req.YardageMin = optQty(rec, m.YardageMinKey)
		req.YardageMax = optQty(rec, m.YardageMaxKey)
		req.GramsMin = optQty(rec, m.GramsMinKey)
		req.GramsMax = optQty(rec, m.GramsMaxKey)
		reqs = append(reqs, req)
	}
	return reqs, nil
}

func optQty(rec map[string]string, key string) *float64 {
	v, ok := utils.ParseQuantity(rec[resolveKey(rec, key)])
	if !ok {
		return nil
	}
	return &v
}

// LoadInventoryFile / LoadRequirementsFile — файловые обёртки для CLI.
func LoadInventoryFile(path string, m StashMapping) ([]model.InventoryItem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open stash: %w", err)
	}
	defer f.Close()
	return LoadInventory(f, path, m)
}

func LoadRequirementsFile(path string, m PatternMapping) ([]model.Requirement, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open patterns: %w", err)
	}
	defer f.Close()
	return LoadRequirements(f, path, m)
}

package service

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hollyschr/StitchMatch-sub000/internal/match/model"
)

// Taxonomy — неизменяемая справочная конфигурация: таблица синонимов классов
// и таблица «двух нитей». Передаётся в Resolver/Evaluator значением, никаких
// пакетных глобалов — в тестах подставляется любая альтернативная таблица.
type Taxonomy struct {
	// ключи — и короткие коды ("dk"), и полные метки ("DK (11 wpi)");
	// поиск идёт по метке как есть и по её нижнему регистру
	Synonyms map[string][]string `yaml:"synonyms"`
	// ключи — нормализованный класс исходной (тонкой) пряжи
	HeldStrand map[string][]model.HeldStrandRule `yaml:"held_strand"`
}

// DefaultTaxonomy — таблицы, зашитые в код. Значения повторяют каталожные
// метки Craft Yarn Council, двусторонность обеспечивает Resolve (прямой и
// обратный проход по таблице).
func DefaultTaxonomy() Taxonomy {
	return Taxonomy{
		Synonyms: map[string][]string{
			"lace":            {"Lace"},
			"cobweb":          {"Cobweb"},
			"thread":          {"Thread"},
			"light-fingering": {"Light Fingering"},
			"fingering":       {"Fingering (14 wpi)", "Fingering"},
			"sport":           {"Sport (12 wpi)", "Sport"},
			"dk":              {"DK (11 wpi)", "DK"},
			"worsted":         {"Worsted (9 wpi)", "Worsted"},
			"aran":            {"Aran (8 wpi)", "Aran"},
			"bulky":           {"Bulky (7 wpi)", "Bulky"},
			"super-bulky":     {"Super Bulky (5-6 wpi)", "Super Bulky"},
			"jumbo":           {"Jumbo (0-4 wpi)", "Jumbo"},
			// полные метки как ключи — для прямого поиска без маппинга
			"Lace":                  {"Lace"},
			"Cobweb":                {"Cobweb"},
			"Thread":                {"Thread"},
			"Light Fingering":       {"Light Fingering"},
			"Fingering (14 wpi)":    {"Fingering (14 wpi)", "Fingering"},
			"Sport (12 wpi)":        {"Sport (12 wpi)", "Sport"},
			"DK (11 wpi)":           {"DK (11 wpi)", "DK"},
			"Worsted (9 wpi)":       {"Worsted (9 wpi)", "Worsted"},
			"Aran (8 wpi)":          {"Aran (8 wpi)", "Aran"},
			"Bulky (7 wpi)":         {"Bulky (7 wpi)", "Bulky"},
			"Super Bulky (5-6 wpi)": {"Super Bulky (5-6 wpi)", "Super Bulky"},
			"Jumbo (0-4 wpi)":       {"Jumbo (0-4 wpi)", "Jumbo"},
		},
		HeldStrand: map[string][]model.HeldStrandRule{
			"thread": {
				{Target: "Lace", Description: "2 strands of thread = Lace weight", Factor: 0.5},
			},
			"lace": {
				{Target: "Fingering (14 wpi)", Description: "2 strands of lace = Fingering to Sport weight", Factor: 0.5},
				{Target: "Sport (12 wpi)", Description: "2 strands of lace = Fingering to Sport weight", Factor: 0.5},
			},
			"fingering": {
				{Target: "DK (11 wpi)", Description: "2 strands of fingering = DK weight", Factor: 0.5},
			},
			"sport": {
				{Target: "DK (11 wpi)", Description: "2 strands of sport = DK or Light Worsted", Factor: 0.5},
				{Target: "Worsted (9 wpi)", Description: "2 strands of sport = DK or Light Worsted", Factor: 0.5},
			},
			"dk": {
				{Target: "Worsted (9 wpi)", Description: "2 strands of DK = Worsted or Aran", Factor: 0.5},
				{Target: "Aran (8 wpi)", Description: "2 strands of DK = Worsted or Aran", Factor: 0.5},
			},
			"worsted": {
				{Target: "Bulky (7 wpi)", Description: "2 strands of Worsted = Chunky", Factor: 0.5},
			},
			"aran": {
				{Target: "Bulky (7 wpi)", Description: "2 strands of Aran = Chunky to Super Bulky", Factor: 0.5},
				{Target: "Super Bulky (5-6 wpi)", Description: "2 strands of Aran = Chunky to Super Bulky", Factor: 0.5},
			},
			"bulky": {
				{Target: "Super Bulky (5-6 wpi)", Description: "2 strands of Chunky = Super Bulky to Jumbo", Factor: 0.5},
				{Target: "Jumbo (0-4 wpi)", Description: "2 strands of Chunky = Super Bulky to Jumbo", Factor: 0.5},
			},
		},
	}
}

// LoadTaxonomy читает YAML-переопределение таблиц. Пустой путь — дефолт.
// Отсутствующая секция в файле тоже падает обратно на дефолтную таблицу,
// семантика поиска от способа загрузки не меняется.
func LoadTaxonomy(path string) (Taxonomy, error) {
	def := DefaultTaxonomy()
	if path == "" {
		return def, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Taxonomy{}, fmt.Errorf("taxonomy %s: %w", path, err)
	}
	var t Taxonomy
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return Taxonomy{}, fmt.Errorf("taxonomy %s: %w", path, err)
	}
	if t.Synonyms == nil {
		t.Synonyms = def.Synonyms
	}
	if t.HeldStrand == nil {
		t.HeldStrand = def.HeldStrand
	} else {
		// ключи приводим к нормализованной форме, нулевой множитель
		// означает «не указан» — две нити, т.е. 0.5
		hs := make(map[string][]model.HeldStrandRule, len(t.HeldStrand))
		for k, rules := range t.HeldStrand {
			for i := range rules {
				if rules[i].Factor == 0 {
					rules[i].Factor = 0.5
				}
			}
			hs[Normalize(k)] = rules
		}
		t.HeldStrand = hs
	}
	return t, nil
}

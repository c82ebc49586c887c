package service

import (
	"strings"

	"github.com/hollyschr/StitchMatch-sub000/internal/match/model"
)

// Resolver решает, покрывает ли метка из стэша метку из паттерна.
// Таблицы инжектятся значением, сам резолвер без состояния и потокобезопасен.
type Resolver struct {
	tax Taxonomy
}

func NewResolver(t Taxonomy) *Resolver {
	return &Resolver{tax: t}
}

// Resolve — каскад стратегий, первая удачная побеждает:
//  1. равенство после нормализации;
//  2. синонимы метки стэша → метка паттерна;
//  3. обратное направление (симметрия таблицы обеспечивается здесь);
//  4. таблица «двух нитей» (Factor из правила, обычно 0.5);
//  5. подстрока — ловит частичные метки ("fingering" vs "fingering (14 wpi)").
//
// Данные паттернов — свободный текст, метки стэша вводят руками, поэтому
// каскад осознанно щедрый: шаг 5 даёт ложные срабатывания на вложенных
// метках, это принятый размен точности на полноту.
func (r *Resolver) Resolve(stashWeight, patternWeight string) model.Outcome {
	sn := Normalize(stashWeight)
	pn := Normalize(patternWeight)

	direct := model.Outcome{
		Matched: true,
		Reason:  stashWeight + " (direct match)",
		Factor:  1,
	}

	// (1) прямое совпадение
	if sn == pn {
		return direct
	}

	// (2) синонимы stash → pattern
	for _, w := range r.synonymsFor(stashWeight) {
		if Normalize(w) == pn {
			return direct
		}
	}

	// (3) синонимы pattern → stash
	for _, w := range r.synonymsFor(patternWeight) {
		if Normalize(w) == sn {
			return direct
		}
	}

	// (4) две нити тонкой пряжи вместо одной толстой
	for _, rule := range r.tax.HeldStrand[sn] {
		if Normalize(rule.Target) == pn {
			return model.Outcome{
				Matched:    true,
				Reason:     rule.Description,
				HeldStrand: true,
				Factor:     rule.Factor,
			}
		}
	}

	// (5) подстрока в любую сторону
	if sn != "" && pn != "" && (strings.Contains(pn, sn) || strings.Contains(sn, pn)) {
		return direct
	}

	return model.Outcome{}
}

// поиск по таблице — по метке как есть и по нижнему регистру:
// в таблице лежат и короткие коды, и полные каталожные метки.
func (r *Resolver) synonymsFor(label string) []string {
	out := append([]string(nil), r.tax.Synonyms[label]...)
	if lower := strings.ToLower(label); lower != label {
		out = append(out, r.tax.Synonyms[lower]...)
	}
	return out
}

// ResolveWeightClasses — удобная обёртка на дефолтной таксономии
// для одиночной проверки пары меток.
func ResolveWeightClasses(stashWeight, patternWeight string) (bool, string) {
	out := NewResolver(DefaultTaxonomy()).Resolve(stashWeight, patternWeight)
	return out.Matched, out.Reason
}

package service

import (
	"strings"

	"github.com/hollyschr/StitchMatch-sub000/internal/match/model"
)

// Explainer: свод причин матча для показа. Причины стабильны (строятся
// резолвером детерминированно), поэтому по ним можно группировать и
// дедуплицировать между экранами.

// UniqueReasons — причины без повторов, порядок первого вхождения.
func UniqueReasons(contribs []model.Contribution) []string {
	seen := make(map[string]struct{}, len(contribs))
	out := make([]string, 0, len(contribs))
	for _, c := range contribs {
		if _, ok := seen[c.Reason]; ok {
			continue
		}
		seen[c.Reason] = struct{}{}
		out = append(out, c.Reason)
	}
	return out
}

// Summary — готовая строка для бейджа «почему подходит».
func Summary(contribs []model.Contribution, sep string) string {
	if sep == "" {
		sep = "; "
	}
	return strings.Join(UniqueReasons(contribs), sep)
}

// Representative — режим «одна причина на весь матч» для компактных
// карточек: описание двух нитей важнее прямого совпадения, поэтому
// первое held-правило побеждает.
func Representative(contribs []model.Contribution) string {
	first := ""
	for _, c := range contribs {
		if c.Held {
			return c.Reason
		}
		if first == "" {
			first = c.Reason
		}
	}
	return first
}

// WeightGroup — подытог вклада по классу пряжи из стэша.
type WeightGroup struct {
	Weight  string   `json:"weight"`
	Yardage float64  `json:"yardage"`
	Grams   float64  `json:"grams"`
	Items   int      `json:"items"`
	Reasons []string `json:"reasons"`
}

// GroupByWeight — группировка вкладов по классу позиции стэша,
// порядок групп — первое вхождение класса.
func GroupByWeight(contribs []model.Contribution) []WeightGroup {
	idx := make(map[string]int, len(contribs))
	out := make([]WeightGroup, 0, len(contribs))
	for _, c := range contribs {
		i, ok := idx[c.Item.Weight]
		if !ok {
			i = len(out)
			idx[c.Item.Weight] = i
			out = append(out, WeightGroup{Weight: c.Item.Weight})
		}
		g := &out[i]
		g.Yardage += c.Yardage
		g.Grams += c.Grams
		g.Items++
		g.Reasons = append(g.Reasons, c.Reason)
	}
	for i := range out {
		out[i].Reasons = dedupe(out[i].Reasons)
	}
	return out
}

func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := in[:0]
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

package service

import (
	"github.com/hollyschr/StitchMatch-sub000/internal/match/model"
)

// Evaluator — агрегатор: прогоняет стэш через Resolver и сверяет суммарный
// метраж с границами требования. Чистый, без состояния, ошибок не возвращает:
// кривые данные деградируют в детерминированный no-match.
type Evaluator struct {
	res *Resolver
}

func NewEvaluator(t Taxonomy) *Evaluator {
	return &Evaluator{res: NewResolver(t)}
}

func (e *Evaluator) Resolver() *Resolver { return e.res }

// Evaluate — одна пара (стэш, требование).
//
// Позиция стэша учитывается не больше одного раза за вызов, даже если
// подходит под несколько допустимых классов: для бухгалтерии побеждает
// первый успех, количество добавляется однократно.
//
// Границы: есть минимум → total >= min; только максимум → total >= max.
// Максимум как нижний порог — исторически сложившееся поведение всех
// экранов каталога, сохраняем как есть (см. тесты). Ни одной границы —
// требование неудовлетворимо при любом стэше.
func (e *Evaluator) Evaluate(inventory []model.InventoryItem, req model.Requirement) model.MatchResult {
	res := model.MatchResult{Contributions: []model.Contribution{}}
	if len(req.Weights) == 0 || len(inventory) == 0 {
		return res
	}

	for _, item := range inventory {
		for _, want := range req.Weights {
			out := e.res.Resolve(item.Weight, want)
			if !out.Matched {
				continue
			}
			c := model.Contribution{
				Item:    item,
				Reason:  out.Reason,
				Held:    out.HeldStrand,
				Yardage: item.Yardage * out.Factor,
				Grams:   item.Grams * out.Factor,
			}
			res.TotalYardage += c.Yardage
			res.TotalGrams += c.Grams
			res.Contributions = append(res.Contributions, c)
			break
		}
	}

	if len(res.Contributions) == 0 {
		return res
	}

	switch {
	case req.YardageMin != nil:
		res.Matched = res.TotalYardage >= *req.YardageMin
	case req.YardageMax != nil:
		res.Matched = res.TotalYardage >= *req.YardageMax
	default:
		// границ нет — матч невозможен
	}
	return res
}

// EvaluateMatch — точка входа на дефолтной таксономии (один вызов — одна
// пара стэш/требование).
func EvaluateMatch(inventory []model.InventoryItem, req model.Requirement) model.MatchResult {
	return NewEvaluator(DefaultTaxonomy()).Evaluate(inventory, req)
}

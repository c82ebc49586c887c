package service

import (
	"context"
	"runtime"
	"sync"

	"github.com/hollyschr/StitchMatch-sub000/internal/match/model"
)

// BatchResult — результат одного требования в пакетном прогоне.
type BatchResult struct {
	Requirement model.Requirement `json:"requirement"`
	Result      model.MatchResult `json:"result"`
}

// EvaluateAll — один стэш против многих паттернов. Каждая оценка чистая и
// независимая, поэтому обычный fan-out на ограниченном пуле без блокировок;
// порядок результатов совпадает с порядком reqs. Отмена контекста
// останавливает раздачу оставшихся требований, уже посчитанное сохраняется.
func EvaluateAll(ctx context.Context, ev *Evaluator, inventory []model.InventoryItem, reqs []model.Requirement, workers int) ([]BatchResult, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	out := make([]BatchResult, len(reqs))
	for i := range reqs {
		out[i].Requirement = reqs[i]
	}

	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

loop:
	for i := range reqs {
		// select при готовых обоих каналах выбирает случайно,
		// поэтому отмену проверяем до захвата слота
		if ctx.Err() != nil {
			break
		}
		select {
		case <-ctx.Done():
			break loop
		case sem <- struct{}{}:
		}
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()
			out[i].Result = ev.Evaluate(inventory, reqs[i])
		}(i)
	}
	wg.Wait()
	return out, ctx.Err()
}

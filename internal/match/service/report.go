package service

// PatternReport — строка итогового отчёта по одному паттерну:
// флаг матча, полезный метраж и объяснения в готовом для показа виде.
type PatternReport struct {
	PatternID      string        `json:"patternId"`
	Name           string        `json:"name"`
	Matched        bool          `json:"matched"`
	TotalYardage   float64       `json:"totalYardage"`
	TotalGrams     float64       `json:"totalGrams"`
	Summary        string        `json:"summary,omitempty"`
	Representative string        `json:"representative,omitempty"`
	Groups         []WeightGroup `json:"groups,omitempty"`
}

func BuildReport(results []BatchResult) []PatternReport {
	out := make([]PatternReport, 0, len(results))
	for _, r := range results {
		out = append(out, PatternReport{
			PatternID:      r.Requirement.PatternID,
			Name:           r.Requirement.Name,
			Matched:        r.Result.Matched,
			TotalYardage:   r.Result.TotalYardage,
			TotalGrams:     r.Result.TotalGrams,
			Summary:        Summary(r.Result.Contributions, "; "),
			Representative: Representative(r.Result.Contributions),
			Groups:         GroupByWeight(r.Result.Contributions),
		})
	}
	return out
}
